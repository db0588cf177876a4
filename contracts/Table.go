package contracts

import (
	"errors"
	"fmt"
	"strings"
)

type DataType string

const (
	DataTypeText     DataType = "text"
	DataTypeNumber   DataType = "number"
	DataTypeDecimal  DataType = "decimal"
	DataTypeCurrency DataType = "currency"
	DataTypeDate     DataType = "date"
	DataTypeBoolean  DataType = "boolean"
	DataTypeSelect   DataType = "select"
)

var DataTypes = []DataType{
	DataTypeText, DataTypeNumber, DataTypeDecimal, DataTypeCurrency,
	DataTypeDate, DataTypeBoolean, DataTypeSelect,
}

type Table struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type Column struct {
	Id           string   `json:"id"`
	TableId      string   `json:"tableId"`
	Name         string   `json:"name"`
	Label        string   `json:"label"`
	DataType     DataType `json:"dataType"`
	SortPosition int      `json:"sortPosition"`
}

type Row struct {
	Id      string  `json:"id"`
	TableId string  `json:"tableId"`
	Data    RowData `json:"rowData"`
}

// TableData is the live, ordered view of a table: columns by sort position, rows by creation order.
type TableData struct {
	Table   *Table    `json:"table"`
	Columns []*Column `json:"columns"`
	Rows    []*Row    `json:"rows"`
}

var TableNotFoundError = errors.New("table not found")

var ColumnNotFoundError = errors.New("column not found")

var RowNotFoundError = errors.New("row not found")

var InvalidDataTypeError = fmt.Errorf("data type should be one of (%s)", joinDataTypes())

var ColumnExistsError = errors.New("column already exists")

var EmptyNameError = errors.New("name should not be empty")

func (t DataType) IsValid() bool {
	for _, dataType := range DataTypes {
		if dataType == t {
			return true
		}
	}
	return false
}

func (d *TableData) ColumnIndex(columnName string) int {
	for index, column := range d.Columns {
		if column.Name == columnName {
			return index
		}
	}
	return -1
}

func (d *TableData) RowIndex(rowId string) int {
	for index, row := range d.Rows {
		if row.Id == rowId {
			return index
		}
	}
	return -1
}

func joinDataTypes() string {
	names := make([]string, 0, len(DataTypes))
	for _, dataType := range DataTypes {
		names = append(names, string(dataType))
	}
	return strings.Join(names, ", ")
}
