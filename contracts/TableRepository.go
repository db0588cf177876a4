package contracts

type TableRepository interface {
	CreateTable(name string) (*Table, error)
	GetTable(tableId string) (*Table, error)
	AddColumn(tableId string, column Column) (*Column, error)
	ListColumns(tableId string) ([]*Column, error)
	InsertRow(tableId string, data RowData) (*Row, error)
	GetRow(tableId string, rowId string) (*Row, error)
	ListRows(tableId string) ([]*Row, error)
	UpdateRow(tableId string, rowId string, data RowData) (*Row, error)
	DeleteRow(tableId string, rowId string) error
	LoadTableData(tableId string) (*TableData, error)
}
