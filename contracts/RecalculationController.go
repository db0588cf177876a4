package contracts

type RecalculatedCell struct {
	TableId         string `json:"tableId"`
	RowId           string `json:"rowId"`
	ColumnName      string `json:"columnName"`
	CalculatedValue string `json:"calculatedValue"`
}

// CellRecalculatedCallback is called once per dependent cell whose value changed
type CellRecalculatedCallback func(cell RecalculatedCell)

type CellEditResult struct {
	TableId      string              `json:"tableId"`
	RowId        string              `json:"rowId"`
	ColumnName   string              `json:"columnName"`
	Value        string              `json:"value"`
	Result       string              `json:"result"`
	Pending      bool                `json:"pending"`
	FormulaId    string              `json:"formulaId,omitempty"`
	Recalculated []*RecalculatedCell `json:"recalculated"`
}

type RecalculationController interface {
	EditCell(tableId string, rowId string, columnName string, value string) (*CellEditResult, error)
	Recalculate(tableId string, rowId string, changedColumnName string) ([]*RecalculatedCell, error)
	EvaluateFormula(tableId string, formula string) (string, error)
}
