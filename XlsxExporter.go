package main

import (
	"io"
	"strings"

	"github.com/Halukc1974/erp-sub000/contracts"
	"github.com/xuri/excelize/v2"
)

const DataSheetName = "Data"

const ColumnsSheetName = "Columns"

// XlsxExporter writes a table as a workbook. The data starts at A1, so formula
// references keep pointing to the same cells; column labels go to a second sheet.
type XlsxExporter struct{}

func NewXlsxExporter() *XlsxExporter {
	return &XlsxExporter{}
}

func (x *XlsxExporter) Export(w io.Writer, table *contracts.TableData, formulas []*contracts.Formula) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), DataSheetName); err != nil {
		return err
	}
	if _, err := f.NewSheet(ColumnsSheetName); err != nil {
		return err
	}

	if err := x.writeColumns(f, table.Columns); err != nil {
		return err
	}

	formulaByCell := make(map[string]*contracts.Formula, len(formulas))
	for _, formula := range formulas {
		formulaByCell[formula.RowId+"\x00"+formula.ColumnName] = formula
	}

	for rowIndex, row := range table.Rows {
		for columnIndex, column := range table.Columns {
			cell := CellLabel(rowIndex, columnIndex)

			if formula, ok := formulaByCell[row.Id+"\x00"+column.Name]; ok {
				if err := f.SetCellFormula(DataSheetName, cell, strings.TrimPrefix(formula.Formula, FormulaPrefix)); err != nil {
					return err
				}
				continue
			}

			value, ok := row.Data[column.Name]
			if !ok || value.IsNull() {
				continue
			}
			if err := f.SetCellValue(DataSheetName, cell, x.exportValue(value)); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func (x *XlsxExporter) writeColumns(f *excelize.File, columns []*contracts.Column) error {
	header := []any{"letter", "name", "label", "dataType"}
	if err := f.SetSheetRow(ColumnsSheetName, "A1", &header); err != nil {
		return err
	}

	for index, column := range columns {
		cell, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return err
		}

		values := []any{ColumnIndexToLetter(index), column.Name, column.Label, string(column.DataType)}
		if err = f.SetSheetRow(ColumnsSheetName, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func (x *XlsxExporter) exportValue(value contracts.RawValue) any {
	switch value.Kind {
	case contracts.BooleanValue:
		return value.Bool
	case contracts.TextValue:
		if number, ok := CoerceForGrid(value).(float64); ok {
			return number
		}
		return value.Text
	default:
		return CoerceToNumeric(value)
	}
}
