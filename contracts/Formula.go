package contracts

import "errors"

type Formula struct {
	Id              string   `json:"id"`
	TableId         string   `json:"tableId"`
	RowId           string   `json:"rowId"`
	ColumnName      string   `json:"columnName"`
	Formula         string   `json:"formula"`
	Dependencies    []string `json:"dependencies"`
	CalculatedValue *string  `json:"calculatedValue"`
}

// FormulaPatch holds the fields to change; nil fields are left untouched.
type FormulaPatch struct {
	Formula         *string `json:"formula,omitempty"`
	CalculatedValue *string `json:"calculatedValue,omitempty"`
}

type FormulaStore interface {
	GetTableFormulas(tableId string) ([]*Formula, error)
	GetCellFormula(rowId string, columnName string) (*Formula, error)
	Upsert(formula *Formula) (*Formula, error)
	Update(id string, patch FormulaPatch) (*Formula, error)
	Delete(id string) error
	DeleteRowFormulas(rowId string) error
}

var FormulaNotFoundError = errors.New("formula not found")
