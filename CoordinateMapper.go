package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Halukc1974/erp-sub000/contracts"
)

var cellRefRegex = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// ColumnIndexToLetter 0 -> A, 25 -> Z, 26 -> AA
func ColumnIndexToLetter(index int) string {
	letters := make([]byte, 0, 3)
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		letters = append([]byte{byte('A' + (n-1)%26)}, letters...)
	}
	return string(letters)
}

func LetterToColumnIndex(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("empty column letters: %w", contracts.InvalidCoordinateError)
	}

	index := 0
	for i := 0; i < len(letters); i++ {
		char := letters[i]
		if char < 'A' || char > 'Z' {
			return 0, fmt.Errorf("column letters `%s`: %w", letters, contracts.InvalidCoordinateError)
		}
		index = index*26 + int(char-'A') + 1
	}

	return index - 1, nil
}

func CellRefToCoordinate(ref string) (coordinate contracts.Coordinate, err error) {
	matches := cellRefRegex.FindStringSubmatch(ref)
	if matches == nil {
		return coordinate, fmt.Errorf("cell `%s`: %w", ref, contracts.InvalidCoordinateError)
	}

	coordinate.ColumnIndex, err = LetterToColumnIndex(matches[1])
	if err != nil {
		return
	}

	coordinate.RowNumber, err = strconv.Atoi(matches[2])
	if err != nil || coordinate.RowNumber < 1 {
		return coordinate, fmt.Errorf("cell `%s` row number: %w", ref, contracts.InvalidCoordinateError)
	}

	return coordinate, nil
}

// CellLabel builds a cell name from 0-based row and column indexes: (6, 2) -> "C7"
func CellLabel(rowIndex int, columnIndex int) string {
	return ColumnIndexToLetter(columnIndex) + strconv.Itoa(rowIndex+1)
}
