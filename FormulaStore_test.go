package main

import (
	"os"
	"testing"

	"github.com/Halukc1974/erp-sub000/contracts"
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
)

func TestFormulaStore_Upsert(t *testing.T) {
	db, dbClose := _createTmpDb()
	defer dbClose()

	store := NewFormulaStore(db, NewCellBinarySerializer())

	t.Run("insert", func(t *testing.T) {
		formula, err := store.Upsert(&contracts.Formula{
			TableId:         "table1",
			RowId:           "row1",
			ColumnName:      "total",
			Formula:         "=A1+B1",
			Dependencies:    []string{"A1", "B1"},
			CalculatedValue: _makeStringRef("10"),
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, formula.Id)
		assert.Equal(t, "table1", formula.TableId)
		assert.Equal(t, "=A1+B1", formula.Formula)
		assert.Nil(t, formula.Dependencies)
		assert.Equal(t, "10", *formula.CalculatedValue)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := store.Upsert(&contracts.Formula{
			TableId: "table1", RowId: "row2", ColumnName: "total",
			Formula: "=3*5", CalculatedValue: _makeStringRef("15"),
		})
		assert.NoError(t, err)

		second, err := store.Upsert(&contracts.Formula{
			TableId: "table1", RowId: "row2", ColumnName: "total",
			Formula: "=7+8", CalculatedValue: _makeStringRef("15"),
		})
		assert.NoError(t, err)

		assert.Equal(t, first.Id, second.Id)
		assert.Equal(t, "=7+8", second.Formula)

		formulas, err := store.GetTableFormulas("table1")
		assert.NoError(t, err)

		count := 0
		for _, formula := range formulas {
			if formula.RowId == "row2" && formula.ColumnName == "total" {
				count++
				assert.Equal(t, "=7+8", formula.Formula)
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("table_is_not_part_of_the_cell_key", func(t *testing.T) {
		first, err := store.Upsert(&contracts.Formula{TableId: "table1", RowId: "row3", ColumnName: "x", Formula: "=1"})
		assert.NoError(t, err)

		second, err := store.Upsert(&contracts.Formula{TableId: "table2", RowId: "row3", ColumnName: "x", Formula: "=2"})
		assert.NoError(t, err)

		assert.Equal(t, first.Id, second.Id)
		assert.Equal(t, "table1", second.TableId)
	})
}

func TestFormulaStore_GetTableFormulas(t *testing.T) {
	db, dbClose := _createTmpDb()
	defer dbClose()

	store := NewFormulaStore(db, NewCellBinarySerializer())

	t.Run("empty_database", func(t *testing.T) {
		formulas, err := store.GetTableFormulas("table1")
		assert.NoError(t, err)
		assert.Empty(t, formulas)
	})

	_, _ = store.Upsert(&contracts.Formula{TableId: "table1", RowId: "row1", ColumnName: "a", Formula: "=1"})
	_, _ = store.Upsert(&contracts.Formula{TableId: "table1", RowId: "row1", ColumnName: "b", Formula: "=2"})
	_, _ = store.Upsert(&contracts.Formula{TableId: "table10", RowId: "row9", ColumnName: "a", Formula: "=3"})

	t.Run("only_table_formulas", func(t *testing.T) {
		formulas, err := store.GetTableFormulas("table1")
		assert.NoError(t, err)
		assert.Len(t, formulas, 2)
		for _, formula := range formulas {
			assert.Equal(t, "table1", formula.TableId)
		}

		formulas, err = store.GetTableFormulas("table10")
		assert.NoError(t, err)
		assert.Len(t, formulas, 1)
		assert.Equal(t, "=3", formulas[0].Formula)
	})

	t.Run("unknown_table", func(t *testing.T) {
		formulas, err := store.GetTableFormulas("table2")
		assert.NoError(t, err)
		assert.Empty(t, formulas)
	})
}

func TestFormulaStore_GetCellFormula(t *testing.T) {
	db, dbClose := _createTmpDb()
	defer dbClose()

	store := NewFormulaStore(db, NewCellBinarySerializer())

	formula, err := store.GetCellFormula("row1", "a")
	assert.NoError(t, err)
	assert.Nil(t, formula)

	inserted, _ := store.Upsert(&contracts.Formula{TableId: "table1", RowId: "row1", ColumnName: "a", Formula: "=1"})

	formula, err = store.GetCellFormula("row1", "a")
	assert.NoError(t, err)
	assert.Equal(t, inserted, formula)

	formula, err = store.GetCellFormula("row1", "b")
	assert.NoError(t, err)
	assert.Nil(t, formula)
}

func TestFormulaStore_Update(t *testing.T) {
	db, dbClose := _createTmpDb()
	defer dbClose()

	store := NewFormulaStore(db, NewCellBinarySerializer())

	t.Run("not_found", func(t *testing.T) {
		_, err := store.Update("missing", contracts.FormulaPatch{})
		assert.ErrorIs(t, err, contracts.FormulaNotFoundError)
	})

	inserted, _ := store.Upsert(&contracts.Formula{
		TableId: "table1", RowId: "row1", ColumnName: "a",
		Formula: "=1+1", CalculatedValue: _makeStringRef("2"),
	})

	t.Run("calculated_value_only", func(t *testing.T) {
		updated, err := store.Update(inserted.Id, contracts.FormulaPatch{CalculatedValue: _makeStringRef("3")})
		assert.NoError(t, err)
		assert.Equal(t, "=1+1", updated.Formula)
		assert.Equal(t, "3", *updated.CalculatedValue)

		stored, err := store.GetCellFormula("row1", "a")
		assert.NoError(t, err)
		assert.Equal(t, "3", *stored.CalculatedValue)

		_, err = store.Update("missing", contracts.FormulaPatch{})
		assert.ErrorIs(t, err, contracts.FormulaNotFoundError)
	})

	t.Run("formula_only", func(t *testing.T) {
		updated, err := store.Update(inserted.Id, contracts.FormulaPatch{Formula: _makeStringRef("=2+2")})
		assert.NoError(t, err)
		assert.Equal(t, "=2+2", updated.Formula)
		assert.Equal(t, "3", *updated.CalculatedValue)
	})
}

func TestFormulaStore_Delete(t *testing.T) {
	db, dbClose := _createTmpDb()
	defer dbClose()

	store := NewFormulaStore(db, NewCellBinarySerializer())

	assert.ErrorIs(t, store.Delete("missing"), contracts.FormulaNotFoundError)

	inserted, _ := store.Upsert(&contracts.Formula{TableId: "table1", RowId: "row1", ColumnName: "a", Formula: "=1"})

	assert.NoError(t, store.Delete(inserted.Id))
	assert.ErrorIs(t, store.Delete(inserted.Id), contracts.FormulaNotFoundError)

	formula, err := store.GetCellFormula("row1", "a")
	assert.NoError(t, err)
	assert.Nil(t, formula)

	formulas, err := store.GetTableFormulas("table1")
	assert.NoError(t, err)
	assert.Empty(t, formulas)

	reinserted, err := store.Upsert(&contracts.Formula{TableId: "table1", RowId: "row1", ColumnName: "a", Formula: "=2"})
	assert.NoError(t, err)
	assert.NotEqual(t, inserted.Id, reinserted.Id)
}

func TestFormulaStore_DeleteRowFormulas(t *testing.T) {
	db, dbClose := _createTmpDb()
	defer dbClose()

	store := NewFormulaStore(db, NewCellBinarySerializer())

	assert.NoError(t, store.DeleteRowFormulas("row1"))

	_, _ = store.Upsert(&contracts.Formula{TableId: "table1", RowId: "row1", ColumnName: "a", Formula: "=1"})
	_, _ = store.Upsert(&contracts.Formula{TableId: "table1", RowId: "row1", ColumnName: "b", Formula: "=2"})
	_, _ = store.Upsert(&contracts.Formula{TableId: "table1", RowId: "row11", ColumnName: "a", Formula: "=3"})
	kept, _ := store.Upsert(&contracts.Formula{TableId: "table1", RowId: "row2", ColumnName: "a", Formula: "=4"})

	assert.NoError(t, store.DeleteRowFormulas("row1"))

	formulas, err := store.GetTableFormulas("table1")
	assert.NoError(t, err)
	assert.Len(t, formulas, 2)

	formula, err := store.GetCellFormula("row2", "a")
	assert.NoError(t, err)
	assert.Equal(t, kept.Id, formula.Id)

	formula, err = store.GetCellFormula("row11", "a")
	assert.NoError(t, err)
	assert.NotNil(t, formula)
}

func _createTmpDb() (*bbolt.DB, func()) {
	f, _ := os.CreateTemp("", "db_*.db")
	os.Remove(f.Name())

	db, dbErr := bbolt.Open(f.Name(), 0600, nil)
	if dbErr != nil {
		panic(dbErr)
	}

	return db, func() {
		db.Close()
		os.Remove(f.Name())
	}
}

func _makeStringRef(value string) *string {
	return &value
}
