package main

import "github.com/Halukc1974/erp-sub000/contracts"

const MinGridSize = 10

// GridScratchSpace is the count of empty rows/columns kept after the data
const GridScratchSpace = 2

// BuildGridSnapshot
/**
 * Builds a square matrix where grid[r][c] is the cell `letter(c)+(r+1)`.
 * Cells holding a formula read as its last calculated value, never as the formula text.
 * The matrix is padded with nil to at least MinGridSize x MinGridSize.
 */
func BuildGridSnapshot(rows []*contracts.Row, columns []*contracts.Column, formulas []*contracts.Formula) contracts.Matrix {
	resolve := NewCellValueResolverChain(NewFormulaValuesResolver(formulas), RowDataResolver)

	size := max(MinGridSize, max(len(rows), len(columns))+GridScratchSpace)

	grid := make(contracts.Matrix, size)
	for rowIndex := range grid {
		grid[rowIndex] = make([]any, size)
		if rowIndex >= len(rows) {
			continue
		}

		for columnIndex, column := range columns {
			if value, ok := resolve(rows[rowIndex], column.Name); ok {
				grid[rowIndex][columnIndex] = CoerceForGrid(value)
			}
		}
	}

	return grid
}

// gridValueAt returns nil for cells outside of the snapshot
func gridValueAt(grid contracts.Matrix, rowIndex int, columnIndex int) any {
	if rowIndex < 0 || rowIndex >= len(grid) || columnIndex < 0 || columnIndex >= len(grid[rowIndex]) {
		return nil
	}
	return grid[rowIndex][columnIndex]
}
