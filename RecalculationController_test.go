package main

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Halukc1974/erp-sub000/contracts"
	"github.com/Halukc1974/erp-sub000/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type recalculationFixture struct {
	controller   *RecalculationController
	tables       *TableRepository
	formulas     *FormulaStore
	table        *contracts.Table
	row          *contracts.Row
	recalculated []contracts.RecalculatedCell
}

func _newRecalculationFixture(t *testing.T, columns ...contracts.Column) *recalculationFixture {
	db, dbClose := _createTmpDb()
	t.Cleanup(dbClose)

	fixture := &recalculationFixture{
		tables:   NewTableRepository(db),
		formulas: NewFormulaStore(db, NewCellBinarySerializer()),
	}

	fixture.controller = NewRecalculationController(
		fixture.tables, fixture.formulas, NewFormulaEvaluator(), NewTextualDependencyFinder(),
		func(cell contracts.RecalculatedCell) {
			fixture.recalculated = append(fixture.recalculated, cell)
		},
		_discardLogger(),
	)

	var err error
	fixture.table, err = fixture.tables.CreateTable("Orders")
	assert.NoError(t, err)

	for _, column := range columns {
		_, err = fixture.tables.AddColumn(fixture.table.Id, column)
		assert.NoError(t, err)
	}

	fixture.row, err = fixture.tables.InsertRow(fixture.table.Id, nil)
	assert.NoError(t, err)

	return fixture
}

func (f *recalculationFixture) cellValue(t *testing.T, columnName string) contracts.RawValue {
	row, err := f.tables.GetRow(f.table.Id, f.row.Id)
	assert.NoError(t, err)
	return row.Data[columnName]
}

func _discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecalculationController_EditCell(t *testing.T) {
	t.Run("formula_end_to_end", func(t *testing.T) {
		fixture := _newRecalculationFixture(t,
			contracts.Column{Name: "first", DataType: contracts.DataTypeNumber},
			contracts.Column{Name: "second", DataType: contracts.DataTypeNumber},
			contracts.Column{Name: "sum"},
		)
		tableId, rowId := fixture.table.Id, fixture.row.Id

		_, err := fixture.controller.EditCell(tableId, rowId, "first", "4")
		assert.NoError(t, err)
		_, err = fixture.controller.EditCell(tableId, rowId, "second", "6")
		assert.NoError(t, err)

		result, err := fixture.controller.EditCell(tableId, rowId, "sum", "=A1+B1")
		assert.NoError(t, err)
		assert.Equal(t, "10", result.Result)
		assert.Equal(t, "=A1+B1", result.Value)
		assert.False(t, result.Pending)
		assert.NotEmpty(t, result.FormulaId)

		assert.Equal(t, contracts.NewNumericValue(4), fixture.cellValue(t, "first"))
		assert.Equal(t, contracts.NewTextValue("10"), fixture.cellValue(t, "sum"))

		formula, err := fixture.formulas.GetCellFormula(rowId, "sum")
		assert.NoError(t, err)
		assert.Equal(t, result.FormulaId, formula.Id)
		assert.Equal(t, tableId, formula.TableId)
		assert.Equal(t, "=A1+B1", formula.Formula)
		assert.Equal(t, "10", *formula.CalculatedValue)

		t.Run("dependent_follows_literal_edit", func(t *testing.T) {
			result, err := fixture.controller.EditCell(tableId, rowId, "second", "16")
			assert.NoError(t, err)
			assert.Equal(t, "16", result.Result)
			assert.Len(t, result.Recalculated, 1)
			assert.Equal(t, contracts.RecalculatedCell{
				TableId: tableId, RowId: rowId, ColumnName: "sum", CalculatedValue: "20",
			}, *result.Recalculated[0])

			assert.Equal(t, contracts.NewTextValue("20"), fixture.cellValue(t, "sum"))
			assert.Equal(t, []contracts.RecalculatedCell{*result.Recalculated[0]}, fixture.recalculated)
		})

		t.Run("unchanged_value_not_notified", func(t *testing.T) {
			fixture.recalculated = nil

			result, err := fixture.controller.EditCell(tableId, rowId, "second", "16")
			assert.NoError(t, err)
			assert.Empty(t, result.Recalculated)
			assert.Empty(t, fixture.recalculated)
		})
	})

	t.Run("self_reference_reads_previous_value", func(t *testing.T) {
		fixture := _newRecalculationFixture(t,
			contracts.Column{Name: "first", DataType: contracts.DataTypeNumber},
			contracts.Column{Name: "second", DataType: contracts.DataTypeNumber},
			contracts.Column{Name: "counter"},
		)
		tableId, rowId := fixture.table.Id, fixture.row.Id

		result, err := fixture.controller.EditCell(tableId, rowId, "counter", "=C1+1")
		assert.NoError(t, err)
		assert.Equal(t, "1", result.Result)
		assert.Empty(t, result.Recalculated)

		result, err = fixture.controller.EditCell(tableId, rowId, "counter", "=C1+1")
		assert.NoError(t, err)
		assert.Equal(t, "2", result.Result)
		assert.Empty(t, result.Recalculated)
		assert.Empty(t, fixture.recalculated)
		assert.Equal(t, contracts.NewTextValue("2"), fixture.cellValue(t, "counter"))

		recalculated, err := fixture.controller.Recalculate(tableId, rowId, "counter")
		assert.NoError(t, err)
		assert.Empty(t, recalculated)

		formula, err := fixture.formulas.GetCellFormula(rowId, "counter")
		assert.NoError(t, err)
		assert.Equal(t, "2", *formula.CalculatedValue)
	})

	t.Run("single_pass", func(t *testing.T) {
		fixture := _newRecalculationFixture(t,
			contracts.Column{Name: "price", DataType: contracts.DataTypeNumber},
			contracts.Column{Name: "qty", DataType: contracts.DataTypeNumber},
			contracts.Column{Name: "total"},
		)
		tableId, rowId := fixture.table.Id, fixture.row.Id

		_, err := fixture.controller.EditCell(tableId, rowId, "price", "1")
		assert.NoError(t, err)

		result, err := fixture.controller.EditCell(tableId, rowId, "qty", "=A1*2")
		assert.NoError(t, err)
		assert.Equal(t, "2", result.Result)

		result, err = fixture.controller.EditCell(tableId, rowId, "total", "=B1+1")
		assert.NoError(t, err)
		assert.Equal(t, "3", result.Result)

		fixture.recalculated = nil
		result, err = fixture.controller.EditCell(tableId, rowId, "price", "5")
		assert.NoError(t, err)

		// qty depends on price directly, total only through qty
		assert.Len(t, result.Recalculated, 1)
		assert.Equal(t, "qty", result.Recalculated[0].ColumnName)
		assert.Equal(t, "10", result.Recalculated[0].CalculatedValue)
		assert.Len(t, fixture.recalculated, 1)

		assert.Equal(t, contracts.NewTextValue("10"), fixture.cellValue(t, "qty"))
		assert.Equal(t, contracts.NewTextValue("3"), fixture.cellValue(t, "total"))

		total, err := fixture.formulas.GetCellFormula(rowId, "total")
		assert.NoError(t, err)
		assert.Equal(t, "3", *total.CalculatedValue)
	})

	t.Run("literal_replaces_formula", func(t *testing.T) {
		fixture := _newRecalculationFixture(t,
			contracts.Column{Name: "price", DataType: contracts.DataTypeNumber},
			contracts.Column{Name: "qty", DataType: contracts.DataTypeNumber},
			contracts.Column{Name: "total"},
		)
		tableId, rowId := fixture.table.Id, fixture.row.Id

		_, err := fixture.controller.EditCell(tableId, rowId, "qty", "=3*5")
		assert.NoError(t, err)
		_, err = fixture.controller.EditCell(tableId, rowId, "total", "=B1+1")
		assert.NoError(t, err)
		assert.Equal(t, contracts.NewTextValue("16"), fixture.cellValue(t, "total"))

		result, err := fixture.controller.EditCell(tableId, rowId, "qty", "7")
		assert.NoError(t, err)
		assert.Empty(t, result.FormulaId)

		formula, err := fixture.formulas.GetCellFormula(rowId, "qty")
		assert.NoError(t, err)
		assert.Nil(t, formula)

		assert.Equal(t, contracts.NewNumericValue(7), fixture.cellValue(t, "qty"))
		assert.Equal(t, contracts.NewTextValue("8"), fixture.cellValue(t, "total"))
	})

	t.Run("pending_formula", func(t *testing.T) {
		fixture := _newRecalculationFixture(t, contracts.Column{Name: "price"})

		result, err := fixture.controller.EditCell(fixture.table.Id, fixture.row.Id, "price", "=")
		assert.NoError(t, err)
		assert.True(t, result.Pending)
		assert.Equal(t, PendingFormulaDisplayValue, result.Result)

		formulas, err := fixture.formulas.GetTableFormulas(fixture.table.Id)
		assert.NoError(t, err)
		assert.Empty(t, formulas)
		assert.True(t, fixture.cellValue(t, "price").IsNull())
	})

	t.Run("invalid_formula_is_stored_as_error", func(t *testing.T) {
		fixture := _newRecalculationFixture(t, contracts.Column{Name: "price"})

		result, err := fixture.controller.EditCell(fixture.table.Id, fixture.row.Id, "price", "=1/0")
		assert.NoError(t, err)
		assert.Equal(t, contracts.ErrorDisplayValue, result.Result)

		formula, err := fixture.formulas.GetCellFormula(fixture.row.Id, "price")
		assert.NoError(t, err)
		assert.Equal(t, contracts.ErrorDisplayValue, *formula.CalculatedValue)
		assert.Equal(t, contracts.NewTextValue(contracts.ErrorDisplayValue), fixture.cellValue(t, "price"))
	})

	t.Run("not_found", func(t *testing.T) {
		fixture := _newRecalculationFixture(t, contracts.Column{Name: "price"})

		_, err := fixture.controller.EditCell("missing", fixture.row.Id, "price", "1")
		assert.ErrorIs(t, err, contracts.TableNotFoundError)

		_, err = fixture.controller.EditCell(fixture.table.Id, "missing", "price", "1")
		assert.ErrorIs(t, err, contracts.RowNotFoundError)

		_, err = fixture.controller.EditCell(fixture.table.Id, fixture.row.Id, "missing", "1")
		assert.ErrorIs(t, err, contracts.ColumnNotFoundError)
	})
}

func TestRecalculationController_EvaluateFormula(t *testing.T) {
	fixture := _newRecalculationFixture(t, contracts.Column{Name: "price", DataType: contracts.DataTypeNumber})

	_, err := fixture.controller.EditCell(fixture.table.Id, fixture.row.Id, "price", "21")
	assert.NoError(t, err)

	result, err := fixture.controller.EvaluateFormula(fixture.table.Id, "=A1*2")
	assert.NoError(t, err)
	assert.Equal(t, "42", result)

	formulas, err := fixture.formulas.GetTableFormulas(fixture.table.Id)
	assert.NoError(t, err)
	assert.Empty(t, formulas)

	result, err = fixture.controller.EvaluateFormula(fixture.table.Id, "=SUM(A1:B2)")
	assert.ErrorIs(t, err, contracts.UnsupportedRangeError)
	assert.Equal(t, contracts.ErrorDisplayValue, result)

	_, err = fixture.controller.EvaluateFormula("missing", "=1")
	assert.ErrorIs(t, err, contracts.TableNotFoundError)
}

func TestRecalculationController_Recalculate(t *testing.T) {
	table := _makeTableData([]string{"price", "qty", "total"}, "row1", "row2")
	formulas := []*contracts.Formula{
		{Id: "f2", TableId: "table1", RowId: "row2", ColumnName: "total", Formula: "=A2*3", CalculatedValue: _makeStringRef("0")},
		{Id: "f1", TableId: "table1", RowId: "row1", ColumnName: "total", Formula: "=A1*2", CalculatedValue: _makeStringRef("0")},
	}
	table.Rows[0].Data["price"] = contracts.NewNumericValue(2)
	table.Rows[1].Data["price"] = contracts.NewNumericValue(3)

	t.Run("continues_after_failure", func(t *testing.T) {
		tables := mocks.NewTableRepository(t)
		tables.On("LoadTableData", "table1").Return(table, nil)
		tables.On("UpdateRow", "table1", "row2", contracts.RowData{"total": contracts.NewTextValue("9")}).Return(table.Rows[1], nil)

		store := mocks.NewFormulaStore(t)
		store.On("GetTableFormulas", "table1").Return(formulas, nil)
		storeErr := errors.New("disk is full")
		store.On("Update", "f1", mock.Anything).Return(nil, storeErr).Once()
		store.On("Update", "f2", mock.MatchedBy(func(patch contracts.FormulaPatch) bool {
			return patch.Formula == nil && *patch.CalculatedValue == "9"
		})).Return(formulas[0], nil).Once()

		var notified []contracts.RecalculatedCell
		controller := NewRecalculationController(tables, store, NewFormulaEvaluator(), NewTextualDependencyFinder(),
			func(cell contracts.RecalculatedCell) { notified = append(notified, cell) }, _discardLogger())

		recalculated, err := controller.Recalculate("table1", "row1", "price")

		assert.ErrorIs(t, err, storeErr)
		assert.Len(t, recalculated, 1)
		assert.Equal(t, "row2", recalculated[0].RowId)
		assert.Equal(t, "9", recalculated[0].CalculatedValue)
		assert.Len(t, notified, 1)
	})

	t.Run("load_error", func(t *testing.T) {
		tables := mocks.NewTableRepository(t)
		tables.On("LoadTableData", "missing").Return(nil, contracts.TableNotFoundError)

		controller := NewRecalculationController(tables, mocks.NewFormulaStore(t), NewFormulaEvaluator(),
			mocks.NewDependencyFinder(t), nil, _discardLogger())

		recalculated, err := controller.Recalculate("missing", "row1", "price")
		assert.ErrorIs(t, err, contracts.TableNotFoundError)
		assert.Empty(t, recalculated)
	})
}
