package main

import (
	"testing"

	"github.com/Halukc1974/erp-sub000/contracts"
	"github.com/stretchr/testify/assert"
)

func TestColumnIndexToLetter(t *testing.T) {
	testCases := map[int]string{
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}

	for index, expected := range testCases {
		assert.Equal(t, expected, ColumnIndexToLetter(index), "index %d", index)
	}
}

func TestLetterToColumnIndex(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testCases := map[string]int{
			"A":   0,
			"Z":   25,
			"AA":  26,
			"ZZ":  701,
			"AAA": 702,
		}

		for letters, expected := range testCases {
			actual, err := LetterToColumnIndex(letters)
			assert.NoError(t, err)
			assert.Equal(t, expected, actual, "letters %s", letters)
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		for index := 0; index < 1000; index++ {
			actual, err := LetterToColumnIndex(ColumnIndexToLetter(index))
			assert.NoError(t, err)
			assert.Equal(t, index, actual)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, letters := range []string{"", "a", "A1", "Ä", " "} {
			_, err := LetterToColumnIndex(letters)
			assert.ErrorIs(t, err, contracts.InvalidCoordinateError, "letters %q", letters)
		}
	})
}

func TestCellRefToCoordinate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		coordinate, err := CellRefToCoordinate("C7")
		assert.NoError(t, err)
		assert.Equal(t, contracts.Coordinate{ColumnIndex: 2, RowNumber: 7}, coordinate)

		coordinate, err = CellRefToCoordinate("AA100")
		assert.NoError(t, err)
		assert.Equal(t, contracts.Coordinate{ColumnIndex: 26, RowNumber: 100}, coordinate)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, ref := range []string{"", "A", "7", "A0", "a1", "A-1", "1A", "A1B"} {
			_, err := CellRefToCoordinate(ref)
			assert.ErrorIs(t, err, contracts.InvalidCoordinateError, "ref %q", ref)
		}
	})
}

func TestCellLabel(t *testing.T) {
	assert.Equal(t, "A1", CellLabel(0, 0))
	assert.Equal(t, "C7", CellLabel(6, 2))
	assert.Equal(t, "AB10", CellLabel(9, 27))
}
