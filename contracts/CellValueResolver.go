package contracts

// CellValueResolver returns the value of the row's cell and whether the resolver knows the cell at all
type CellValueResolver func(row *Row, columnName string) (RawValue, bool)
