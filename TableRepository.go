package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/Halukc1974/erp-sub000/contracts"
	json "github.com/bytedance/sonic"
	"go.etcd.io/bbolt"
)

// TableRepository keeps every table in its own bucket:
//
//	__t_<tableId>
//	    meta                    => table
//	    columns/<columnId>      => column
//	    rows/<sequence>         => row (sequence keeps creation order)
//	    row_positions/<rowId>   => sequence
type TableRepository struct {
	db *bbolt.DB
}

var tableBucketPrefix = [4]byte{'_', '_', 't', '_'}

var tableMetaKey = []byte("meta")
var columnsBucketId = []byte("columns")
var rowsBucketId = []byte("rows")
var rowPositionsBucketId = []byte("row_positions")

func NewTableRepository(db *bbolt.DB) *TableRepository {
	return &TableRepository{db: db}
}

func (r *TableRepository) CreateTable(name string) (*contracts.Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("table: %w", contracts.EmptyNameError)
	}

	table := &contracts.Table{Id: NewRecordId(), Name: name}

	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucket(r.makeBucketId(table.Id))
		if err != nil {
			return err
		}

		for _, nestedBucketId := range [][]byte{columnsBucketId, rowsBucketId, rowPositionsBucketId} {
			if _, err = bucket.CreateBucket(nestedBucketId); err != nil {
				return err
			}
		}

		return r.put(bucket, tableMetaKey, table)
	})

	if err != nil {
		return nil, err
	}
	return table, nil
}

func (r *TableRepository) GetTable(tableId string) (table *contracts.Table, err error) {
	err = r.db.View(func(tx *bbolt.Tx) error {
		bucket, err := r.tableBucket(tx, tableId)
		if err != nil {
			return err
		}

		table = &contracts.Table{}
		return r.decode(bucket.Get(tableMetaKey), table)
	})

	return
}

// AddColumn appends the column after the last one unless a sort position is given
func (r *TableRepository) AddColumn(tableId string, column contracts.Column) (*contracts.Column, error) {
	column.Name = strings.TrimSpace(column.Name)
	if column.Name == "" {
		return nil, fmt.Errorf("column: %w", contracts.EmptyNameError)
	}

	if column.DataType == "" {
		column.DataType = contracts.DataTypeText
	}
	if !column.DataType.IsValid() {
		return nil, fmt.Errorf("column %s data type `%s`: %w", column.Name, column.DataType, contracts.InvalidDataTypeError)
	}

	if column.Label == "" {
		column.Label = column.Name
	}

	column.Id = NewRecordId()
	column.TableId = tableId

	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := r.tableBucket(tx, tableId)
		if err != nil {
			return err
		}

		columns, err := r.readColumns(bucket)
		if err != nil {
			return err
		}

		for _, existing := range columns {
			if existing.Name == column.Name {
				return fmt.Errorf("%s: %w", column.Name, contracts.ColumnExistsError)
			}
		}

		if column.SortPosition == 0 && len(columns) > 0 {
			column.SortPosition = columns[len(columns)-1].SortPosition + 1
		}

		return r.put(bucket.Bucket(columnsBucketId), []byte(column.Id), &column)
	})

	if err != nil {
		return nil, err
	}
	return &column, nil
}

func (r *TableRepository) ListColumns(tableId string) (columns []*contracts.Column, err error) {
	err = r.db.View(func(tx *bbolt.Tx) error {
		bucket, err := r.tableBucket(tx, tableId)
		if err != nil {
			return err
		}

		columns, err = r.readColumns(bucket)
		return err
	})

	return
}

func (r *TableRepository) InsertRow(tableId string, data contracts.RowData) (*contracts.Row, error) {
	if data == nil {
		data = contracts.RowData{}
	}

	row := &contracts.Row{Id: NewRecordId(), TableId: tableId, Data: data}

	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := r.tableBucket(tx, tableId)
		if err != nil {
			return err
		}

		rows := bucket.Bucket(rowsBucketId)
		sequence, err := rows.NextSequence()
		if err != nil {
			return err
		}

		position := binary.BigEndian.AppendUint64(nil, sequence)
		if err = bucket.Bucket(rowPositionsBucketId).Put([]byte(row.Id), position); err != nil {
			return err
		}

		return r.put(rows, position, row)
	})

	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *TableRepository) GetRow(tableId string, rowId string) (row *contracts.Row, err error) {
	err = r.db.View(func(tx *bbolt.Tx) error {
		bucket, err := r.tableBucket(tx, tableId)
		if err != nil {
			return err
		}

		row, _, err = r.readRow(bucket, rowId)
		return err
	})

	return
}

func (r *TableRepository) ListRows(tableId string) (rows []*contracts.Row, err error) {
	err = r.db.View(func(tx *bbolt.Tx) error {
		bucket, err := r.tableBucket(tx, tableId)
		if err != nil {
			return err
		}

		rows, err = r.readRows(bucket)
		return err
	})

	return
}

// UpdateRow merges data into the stored row: listed columns are replaced, the others are kept
func (r *TableRepository) UpdateRow(tableId string, rowId string, data contracts.RowData) (row *contracts.Row, err error) {
	err = r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := r.tableBucket(tx, tableId)
		if err != nil {
			return err
		}

		var position []byte
		row, position, err = r.readRow(bucket, rowId)
		if err != nil {
			return err
		}

		if row.Data == nil {
			row.Data = contracts.RowData{}
		}
		for columnName, value := range data {
			row.Data[columnName] = value
		}

		return r.put(bucket.Bucket(rowsBucketId), position, row)
	})

	if err != nil {
		return nil, err
	}
	return
}

func (r *TableRepository) DeleteRow(tableId string, rowId string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := r.tableBucket(tx, tableId)
		if err != nil {
			return err
		}

		_, position, err := r.readRow(bucket, rowId)
		if err != nil {
			return err
		}

		if err = bucket.Bucket(rowPositionsBucketId).Delete([]byte(rowId)); err != nil {
			return err
		}
		return bucket.Bucket(rowsBucketId).Delete(position)
	})
}

// LoadTableData reads table, columns and rows in one transaction
func (r *TableRepository) LoadTableData(tableId string) (data *contracts.TableData, err error) {
	err = r.db.View(func(tx *bbolt.Tx) error {
		bucket, err := r.tableBucket(tx, tableId)
		if err != nil {
			return err
		}

		data = &contracts.TableData{Table: &contracts.Table{}}
		if err = r.decode(bucket.Get(tableMetaKey), data.Table); err != nil {
			return err
		}
		if data.Columns, err = r.readColumns(bucket); err != nil {
			return err
		}
		data.Rows, err = r.readRows(bucket)
		return err
	})

	if err != nil {
		return nil, err
	}
	return
}

func (r *TableRepository) tableBucket(tx *bbolt.Tx, tableId string) (*bbolt.Bucket, error) {
	bucket := tx.Bucket(r.makeBucketId(tableId))
	if bucket == nil {
		return nil, fmt.Errorf("%s: %w", tableId, contracts.TableNotFoundError)
	}
	return bucket, nil
}

func (r *TableRepository) readColumns(bucket *bbolt.Bucket) ([]*contracts.Column, error) {
	columns := make([]*contracts.Column, 0)

	err := bucket.Bucket(columnsBucketId).ForEach(func(k, v []byte) error {
		column := &contracts.Column{}
		if err := r.decode(v, column); err != nil {
			return err
		}
		columns = append(columns, column)
		return nil
	})

	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].SortPosition < columns[j].SortPosition
	})

	return columns, err
}

func (r *TableRepository) readRows(bucket *bbolt.Bucket) ([]*contracts.Row, error) {
	rows := make([]*contracts.Row, 0)

	err := bucket.Bucket(rowsBucketId).ForEach(func(k, v []byte) error {
		row := &contracts.Row{}
		if err := r.decode(v, row); err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	})

	return rows, err
}

func (r *TableRepository) readRow(bucket *bbolt.Bucket, rowId string) (*contracts.Row, []byte, error) {
	position := bucket.Bucket(rowPositionsBucketId).Get([]byte(rowId))
	if position == nil {
		return nil, nil, fmt.Errorf("%s: %w", rowId, contracts.RowNotFoundError)
	}
	position = bytes.Clone(position)

	row := &contracts.Row{}
	if err := r.decode(bucket.Bucket(rowsBucketId).Get(position), row); err != nil {
		return nil, nil, err
	}
	return row, position, nil
}

func (r *TableRepository) makeBucketId(tableId string) []byte {
	return append(tableBucketPrefix[:], []byte(tableId)...)
}

func (r *TableRepository) put(bucket *bbolt.Bucket, key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return bucket.Put(key, data)
}

func (r *TableRepository) decode(data []byte, target any) error {
	if data == nil {
		return fmt.Errorf("%w: empty record", SerializerError)
	}
	// bbolt memory is only valid inside the transaction
	return json.Unmarshal(bytes.Clone(data), target)
}
