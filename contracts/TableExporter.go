package contracts

import "io"

type TableExporter interface {
	Export(w io.Writer, table *TableData, formulas []*Formula) error
}
