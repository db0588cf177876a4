package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/Halukc1974/erp-sub000/contracts"
)

// MaxRangeCells limits how many cells one range may read
const MaxRangeCells = 100000

type rangeAggregate func(values []float64) float64

var calculateSum = func(values []float64) float64 {
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum
}

var calculateAvg = func(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return math.Round(calculateSum(values)/float64(len(values))*100) / 100
}

// calculateCount is the range length: blank cells read as 0 and are counted too
var calculateCount = func(values []float64) float64 {
	return float64(len(values))
}

var calculateMin = func(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	minValue := values[0]
	for _, value := range values[1:] {
		minValue = math.Min(minValue, value)
	}
	return minValue
}

var calculateMax = func(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	maxValue := values[0]
	for _, value := range values[1:] {
		maxValue = math.Max(maxValue, value)
	}
	return maxValue
}

var rangeFunctions = map[string]rangeAggregate{
	"SUM":     calculateSum,
	"AVG":     calculateAvg,
	"AVERAGE": calculateAvg,
	"COUNT":   calculateCount,
	"MIN":     calculateMin,
	"MAX":     calculateMax,
}

// rangeValues reads a straight-line `CELL:CELL` range, every cell coerced to a number
func rangeValues(argument string, grid contracts.Matrix) ([]float64, error) {
	bounds := strings.Split(strings.ToUpper(strings.TrimSpace(argument)), ":")
	if len(bounds) != 2 {
		return nil, fmt.Errorf("range `%s`: %w", argument, contracts.InvalidExpressionError)
	}

	start, err := CellRefToCoordinate(strings.TrimSpace(bounds[0]))
	if err != nil {
		return nil, err
	}
	end, err := CellRefToCoordinate(strings.TrimSpace(bounds[1]))
	if err != nil {
		return nil, err
	}

	if abs(start.RowNumber-end.RowNumber)+abs(start.ColumnIndex-end.ColumnIndex) >= MaxRangeCells {
		return nil, fmt.Errorf("range `%s` is larger than %d cells: %w", argument, MaxRangeCells, contracts.InvalidExpressionError)
	}

	var values []float64
	switch {
	case start.ColumnIndex == end.ColumnIndex:
		for rowNumber := min(start.RowNumber, end.RowNumber); rowNumber <= max(start.RowNumber, end.RowNumber); rowNumber++ {
			values = append(values, NumericGridValue(gridValueAt(grid, rowNumber-1, start.ColumnIndex)))
		}
	case start.RowNumber == end.RowNumber:
		for columnIndex := min(start.ColumnIndex, end.ColumnIndex); columnIndex <= max(start.ColumnIndex, end.ColumnIndex); columnIndex++ {
			values = append(values, NumericGridValue(gridValueAt(grid, start.RowNumber-1, columnIndex)))
		}
	default:
		return nil, fmt.Errorf("range `%s`: %w", argument, contracts.UnsupportedRangeError)
	}

	return values, nil
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
