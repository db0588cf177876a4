package main

import (
	"strconv"
	"strings"

	"github.com/Halukc1974/erp-sub000/contracts"
	"github.com/xuri/efp"
)

// TextualDependencyFinder
/**
 * Matches formula text, case-insensitively, against the changed column:
 *    - any of `<letter>1` ... `<letter>N`, N = max(row count, MinGridSize)
 *    - the raw column name
 *    - the bare column letter
 * It over-matches (`=AVG(B1:B3)` contains `A`) and under-matches references it cannot see in the text.
 */
type TextualDependencyFinder struct{}

func NewTextualDependencyFinder() *TextualDependencyFinder {
	return &TextualDependencyFinder{}
}

func (f *TextualDependencyFinder) FindDependents(changedColumnName string, table *contracts.TableData, formulas []*contracts.Formula) []*contracts.Formula {
	dependents := make([]*contracts.Formula, 0)

	needles := []string{strings.ToUpper(changedColumnName)}
	if columnIndex := table.ColumnIndex(changedColumnName); columnIndex >= 0 {
		letter := ColumnIndexToLetter(columnIndex)
		for rowNumber := 1; rowNumber <= max(len(table.Rows), MinGridSize); rowNumber++ {
			needles = append(needles, letter+strconv.Itoa(rowNumber))
		}
		needles = append(needles, letter)
	}

	for _, formula := range liveRowFormulas(table, formulas) {
		text := strings.ToUpper(formula.Formula)
		for _, needle := range needles {
			if needle != "" && strings.Contains(text, needle) {
				dependents = append(dependents, formula)
				break
			}
		}
	}

	return dependents
}

// ReferenceDependencyFinder matches only formulas whose cell or range operands cover the changed column.
type ReferenceDependencyFinder struct{}

func NewReferenceDependencyFinder() *ReferenceDependencyFinder {
	return &ReferenceDependencyFinder{}
}

func (f *ReferenceDependencyFinder) FindDependents(changedColumnName string, table *contracts.TableData, formulas []*contracts.Formula) []*contracts.Formula {
	dependents := make([]*contracts.Formula, 0)

	columnIndex := table.ColumnIndex(changedColumnName)
	if columnIndex < 0 {
		return dependents
	}

	for _, formula := range liveRowFormulas(table, formulas) {
		for _, reference := range ExtractCellReferences(formula.Formula) {
			if reference.covers(columnIndex) {
				dependents = append(dependents, formula)
				break
			}
		}
	}

	return dependents
}

type columnSpan struct {
	first int
	last  int
}

func (s columnSpan) covers(columnIndex int) bool {
	return s.first <= columnIndex && columnIndex <= s.last
}

// ExtractCellReferences returns the column spans of every `A1` or `A1:B5` operand of the formula
func ExtractCellReferences(formula string) []columnSpan {
	spans := make([]columnSpan, 0)

	parser := efp.ExcelParser()
	for _, token := range parser.Parse(strings.TrimPrefix(formula, FormulaPrefix)) {
		if token.TType != efp.TokenTypeOperand || token.TSubType != efp.TokenSubTypeRange {
			continue
		}

		bounds := strings.Split(strings.ToUpper(strings.ReplaceAll(token.TValue, "$", "")), ":")
		span := columnSpan{first: -1, last: -1}
		for _, bound := range bounds {
			coordinate, err := CellRefToCoordinate(bound)
			if err != nil {
				span.first = -1
				break
			}
			if span.first < 0 || coordinate.ColumnIndex < span.first {
				span.first = coordinate.ColumnIndex
			}
			span.last = max(span.last, coordinate.ColumnIndex)
		}

		if span.first >= 0 {
			spans = append(spans, span)
		}
	}

	return spans
}

// liveRowFormulas drops formulas left behind by deleted rows
func liveRowFormulas(table *contracts.TableData, formulas []*contracts.Formula) []*contracts.Formula {
	liveRows := make(map[string]bool, len(table.Rows))
	for _, row := range table.Rows {
		liveRows[row.Id] = true
	}

	live := make([]*contracts.Formula, 0, len(formulas))
	for _, formula := range formulas {
		if liveRows[formula.RowId] {
			live = append(live, formula)
		}
	}
	return live
}
