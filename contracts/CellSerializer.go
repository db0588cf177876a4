package contracts

// CellKeySerializer builds the bbolt key of a cell. Keys of one row share RowPrefix(rowId).
type CellKeySerializer interface {
	Marshal(rowId string, columnName string) []byte
	Unmarshal([]byte) (rowId string, columnName string, err error)
	RowPrefix(rowId string) []byte
}
