package contracts

import "errors"

// Matrix is a grid snapshot. Each cell is nil, float64 or string.
type Matrix [][]any

type Coordinate struct {
	ColumnIndex int
	RowNumber   int
}

type FormulaEvaluator interface {
	Evaluate(formula string, grid Matrix) (string, error)
	IsFormula(value string) bool
}

// ErrorDisplayValue is stored and shown instead of a result when evaluation fails
const ErrorDisplayValue = "#ERROR"

var InvalidCoordinateError = errors.New("invalid cell coordinate")

var UnsupportedRangeError = errors.New("range should span a single row or a single column")

var InvalidExpressionError = errors.New("invalid expression")

var EmptyFormulaError = errors.New("formula is empty")
