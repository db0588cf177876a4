package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Halukc1974/erp-sub000/contracts"
)

// PendingFormulaDisplayValue is shown while the user has typed only "="
const PendingFormulaDisplayValue = "computing…"

// RecalculationController
/**
 * Cell edit flow:
 *    literal  => row value stored
 *    formula  => evaluated once on a fresh grid snapshot, formula upserted, result stored in the row
 * then one recalculation pass over the formulas which textually depend on the edited column.
 * The pass is not transitive: `A1 <- B1 <- C1`, editing A1 recomputes B1 only.
 * There is no lock between writing the cell and recomputing its dependents.
 */
type RecalculationController struct {
	tables             contracts.TableRepository
	formulas           contracts.FormulaStore
	evaluator          contracts.FormulaEvaluator
	finder             contracts.DependencyFinder
	onCellRecalculated contracts.CellRecalculatedCallback
	logger             *slog.Logger
}

func NewRecalculationController(
	tables contracts.TableRepository, formulas contracts.FormulaStore,
	evaluator contracts.FormulaEvaluator, finder contracts.DependencyFinder,
	onCellRecalculated contracts.CellRecalculatedCallback, logger *slog.Logger,
) *RecalculationController {
	if onCellRecalculated == nil {
		onCellRecalculated = func(contracts.RecalculatedCell) {}
	}

	return &RecalculationController{
		tables:             tables,
		formulas:           formulas,
		evaluator:          evaluator,
		finder:             finder,
		onCellRecalculated: onCellRecalculated,
		logger:             logger,
	}
}

func (c *RecalculationController) EditCell(tableId string, rowId string, columnName string, value string) (*contracts.CellEditResult, error) {
	table, err := c.tables.LoadTableData(tableId)
	if err != nil {
		return nil, err
	}

	columnIndex := table.ColumnIndex(columnName)
	if columnIndex < 0 {
		return nil, fmt.Errorf("%s: %w", columnName, contracts.ColumnNotFoundError)
	}
	if table.RowIndex(rowId) < 0 {
		return nil, fmt.Errorf("%s: %w", rowId, contracts.RowNotFoundError)
	}

	result := &contracts.CellEditResult{
		TableId:      tableId,
		RowId:        rowId,
		ColumnName:   columnName,
		Value:        value,
		Recalculated: make([]*contracts.RecalculatedCell, 0),
	}

	if !c.evaluator.IsFormula(value) {
		err = c.writeLiteral(tableId, table.Columns[columnIndex], rowId, value)
		result.Result = value
	} else if strings.TrimSpace(strings.TrimPrefix(value, FormulaPrefix)) == "" {
		// still typing: nothing is evaluated or persisted
		result.Pending = true
		result.Result = PendingFormulaDisplayValue
		return result, nil
	} else {
		var formula *contracts.Formula
		formula, err = c.writeFormula(table, rowId, columnName, value)
		if formula != nil {
			result.FormulaId = formula.Id
			result.Result = *formula.CalculatedValue
		}
	}

	if err != nil {
		return result, err
	}

	result.Recalculated, err = c.Recalculate(tableId, rowId, columnName)
	return result, err
}

// Recalculate performs a single pass over the formulas depending on the changed column.
func (c *RecalculationController) Recalculate(tableId string, rowId string, changedColumnName string) ([]*contracts.RecalculatedCell, error) {
	recalculated := make([]*contracts.RecalculatedCell, 0)

	table, formulas, err := c.loadLiveData(tableId)
	if err != nil {
		return recalculated, err
	}

	dependents := c.finder.FindDependents(changedColumnName, table, formulas)
	c.sortByGridPosition(table, dependents)

	c.logger.Debug("recalculation pass",
		slog.String("table", tableId), slog.String("column", changedColumnName),
		slog.Int("formulas", len(formulas)), slog.Int("dependents", len(dependents)))

	var errs []error
	for _, dependent := range dependents {
		if dependent.RowId == rowId && dependent.ColumnName == changedColumnName {
			continue
		}

		cell, err := c.recalculateFormula(tableId, dependent)
		if err != nil {
			c.logger.Error("formula recalculation failed",
				slog.String("formula", dependent.Id), slog.String("error", err.Error()))
			errs = append(errs, err)
			continue
		}

		if cell != nil {
			recalculated = append(recalculated, cell)
			c.onCellRecalculated(*cell)
		}
	}

	return recalculated, errors.Join(errs...)
}

// EvaluateFormula evaluates against the current table without persisting anything
func (c *RecalculationController) EvaluateFormula(tableId string, formula string) (string, error) {
	table, formulas, err := c.loadLiveData(tableId)
	if err != nil {
		return "", err
	}

	return c.evaluator.Evaluate(formula, BuildGridSnapshot(table.Rows, table.Columns, formulas))
}

// recalculateFormula returns nil when the value did not change
func (c *RecalculationController) recalculateFormula(tableId string, formula *contracts.Formula) (*contracts.RecalculatedCell, error) {
	// fresh snapshot: earlier recalculations of this pass are visible
	table, formulas, err := c.loadLiveData(tableId)
	if err != nil {
		return nil, err
	}

	output, evaluationErr := c.evaluator.Evaluate(formula.Formula, BuildGridSnapshot(table.Rows, table.Columns, formulas))
	if evaluationErr != nil {
		c.logger.Debug("formula evaluated to error",
			slog.String("formula", formula.Id), slog.String("error", evaluationErr.Error()))
	}

	if formula.CalculatedValue != nil && *formula.CalculatedValue == output {
		return nil, nil
	}

	if _, err = c.formulas.Update(formula.Id, contracts.FormulaPatch{CalculatedValue: &output}); err != nil {
		return nil, err
	}

	if _, err = c.tables.UpdateRow(tableId, formula.RowId, contracts.RowData{formula.ColumnName: contracts.NewTextValue(output)}); err != nil {
		return nil, err
	}

	return &contracts.RecalculatedCell{
		TableId:         tableId,
		RowId:           formula.RowId,
		ColumnName:      formula.ColumnName,
		CalculatedValue: output,
	}, nil
}

func (c *RecalculationController) writeLiteral(tableId string, column *contracts.Column, rowId string, value string) error {
	// a literal replaces the formula of the cell, otherwise the formula value would keep shadowing it
	existing, err := c.formulas.GetCellFormula(rowId, column.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		if err = c.formulas.Delete(existing.Id); err != nil {
			return err
		}
	}

	_, err = c.tables.UpdateRow(tableId, rowId, contracts.RowData{column.Name: ParseCellInput(value, column.DataType)})
	return err
}

func (c *RecalculationController) writeFormula(table *contracts.TableData, rowId string, columnName string, value string) (*contracts.Formula, error) {
	formulas, err := c.formulas.GetTableFormulas(table.Table.Id)
	if err != nil {
		return nil, err
	}

	output, evaluationErr := c.evaluator.Evaluate(value, BuildGridSnapshot(table.Rows, table.Columns, formulas))
	if evaluationErr != nil {
		c.logger.Debug("formula evaluated to error",
			slog.String("row", rowId), slog.String("column", columnName), slog.String("error", evaluationErr.Error()))
	}

	formula, err := c.formulas.Upsert(&contracts.Formula{
		TableId:         table.Table.Id,
		RowId:           rowId,
		ColumnName:      columnName,
		Formula:         value,
		CalculatedValue: &output,
	})
	if err != nil {
		return &contracts.Formula{Formula: value, CalculatedValue: &output}, err
	}

	_, err = c.tables.UpdateRow(table.Table.Id, rowId, contracts.RowData{columnName: contracts.NewTextValue(output)})
	return formula, err
}

func (c *RecalculationController) loadLiveData(tableId string) (*contracts.TableData, []*contracts.Formula, error) {
	table, err := c.tables.LoadTableData(tableId)
	if err != nil {
		return nil, nil, err
	}

	formulas, err := c.formulas.GetTableFormulas(tableId)
	if err != nil {
		return nil, nil, err
	}

	return table, formulas, nil
}

// sortByGridPosition orders the pass top to bottom, left to right
func (c *RecalculationController) sortByGridPosition(table *contracts.TableData, formulas []*contracts.Formula) {
	sort.SliceStable(formulas, func(i, j int) bool {
		rowI, rowJ := table.RowIndex(formulas[i].RowId), table.RowIndex(formulas[j].RowId)
		if rowI != rowJ {
			return rowI < rowJ
		}
		return table.ColumnIndex(formulas[i].ColumnName) < table.ColumnIndex(formulas[j].ColumnName)
	})
}
