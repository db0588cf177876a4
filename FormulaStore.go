package main

import (
	"bytes"
	"fmt"

	"github.com/Halukc1974/erp-sub000/contracts"
	json "github.com/bytedance/sonic"
	"go.etcd.io/bbolt"
)

type FormulaStore struct {
	db         *bbolt.DB
	serializer contracts.CellKeySerializer
}

const Delimiter = byte(0x00)

var formulasBucketId = []byte("__f_formulas")

// formulaCellsBucketId: serialized (rowId, columnName) => formula id
var formulaCellsBucketId = []byte("__f_cells")

// tableFormulasBucketId: tableId + Delimiter + formula id => empty
var tableFormulasBucketId = []byte("__f_tables")

func NewFormulaStore(db *bbolt.DB, serializer contracts.CellKeySerializer) *FormulaStore {
	return &FormulaStore{
		db:         db,
		serializer: serializer,
	}
}

func (s *FormulaStore) GetTableFormulas(tableId string) ([]*contracts.Formula, error) {
	formulas := make([]*contracts.Formula, 0)

	err := s.db.View(func(tx *bbolt.Tx) error {
		index := tx.Bucket(tableFormulasBucketId)
		records := tx.Bucket(formulasBucketId)
		if index == nil || records == nil {
			return nil
		}

		prefix := s.makeTablePrefixKey(tableId)
		prefixLength := len(prefix)
		c := index.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			formula, err := s.decode(records.Get(k[prefixLength:]))
			if err != nil {
				return err
			}
			if formula != nil {
				formulas = append(formulas, formula)
			}
		}
		return nil
	})

	return formulas, err
}

// GetCellFormula returns nil without error when the cell holds no formula
func (s *FormulaStore) GetCellFormula(rowId string, columnName string) (formula *contracts.Formula, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		cells := tx.Bucket(formulaCellsBucketId)
		records := tx.Bucket(formulasBucketId)
		if cells == nil || records == nil {
			return nil
		}

		id := cells.Get(s.serializer.Marshal(rowId, columnName))
		if id == nil {
			return nil
		}

		formula, err = s.decode(records.Get(id))
		return err
	})

	return
}

// Upsert
/**
 * One formula per cell: the (rowId, columnName) pair is the unique key, tableId is not part of it.
 * An existing record gets the new formula text and calculated value, otherwise a record is created.
 */
func (s *FormulaStore) Upsert(formula *contracts.Formula) (*contracts.Formula, error) {
	stored := *formula
	stored.Dependencies = nil

	err := s.db.Update(func(tx *bbolt.Tx) error {
		records, cells, index, err := s.createBuckets(tx)
		if err != nil {
			return err
		}

		cellKey := s.serializer.Marshal(formula.RowId, formula.ColumnName)
		if id := cells.Get(cellKey); id != nil {
			existing, err := s.decode(records.Get(id))
			if err != nil {
				return err
			}
			if existing != nil {
				existing.Formula = formula.Formula
				existing.CalculatedValue = formula.CalculatedValue
				stored = *existing
				return s.put(records, &stored)
			}
		}

		stored.Id = NewRecordId()
		if err = cells.Put(cellKey, []byte(stored.Id)); err != nil {
			return err
		}
		if err = index.Put(s.makeTableFormulaKey(stored.TableId, stored.Id), []byte{}); err != nil {
			return err
		}
		return s.put(records, &stored)
	})

	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *FormulaStore) Update(id string, patch contracts.FormulaPatch) (formula *contracts.Formula, err error) {
	err = s.db.Update(func(tx *bbolt.Tx) error {
		records := tx.Bucket(formulasBucketId)
		if records == nil {
			return fmt.Errorf("%s: %w", id, contracts.FormulaNotFoundError)
		}

		formula, err = s.decode(records.Get([]byte(id)))
		if err != nil {
			return err
		}
		if formula == nil {
			return fmt.Errorf("%s: %w", id, contracts.FormulaNotFoundError)
		}

		if patch.Formula != nil {
			formula.Formula = *patch.Formula
		}
		if patch.CalculatedValue != nil {
			formula.CalculatedValue = patch.CalculatedValue
		}

		return s.put(records, formula)
	})

	if err != nil {
		return nil, err
	}
	return
}

func (s *FormulaStore) Delete(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		records := tx.Bucket(formulasBucketId)
		if records == nil {
			return fmt.Errorf("%s: %w", id, contracts.FormulaNotFoundError)
		}

		formula, err := s.decode(records.Get([]byte(id)))
		if err != nil {
			return err
		}
		if formula == nil {
			return fmt.Errorf("%s: %w", id, contracts.FormulaNotFoundError)
		}

		return s.deleteRecord(tx, formula)
	})
}

// DeleteRowFormulas removes the formulas of a deleted row, so they do not stay orphaned
func (s *FormulaStore) DeleteRowFormulas(rowId string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		cells := tx.Bucket(formulaCellsBucketId)
		records := tx.Bucket(formulasBucketId)
		if cells == nil || records == nil {
			return nil
		}

		ids := make([][]byte, 0, 5)
		prefix := s.serializer.RowPrefix(rowId)
		c := cells.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			keyRowId, _, err := s.serializer.Unmarshal(k)
			if err == nil && keyRowId == rowId {
				ids = append(ids, bytes.Clone(v))
			}
		}

		for _, id := range ids {
			formula, err := s.decode(records.Get(id))
			if err != nil {
				return err
			}
			if formula != nil {
				if err = s.deleteRecord(tx, formula); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *FormulaStore) deleteRecord(tx *bbolt.Tx, formula *contracts.Formula) error {
	records, cells, index, err := s.createBuckets(tx)
	if err != nil {
		return err
	}

	if err = cells.Delete(s.serializer.Marshal(formula.RowId, formula.ColumnName)); err != nil {
		return err
	}
	if err = index.Delete(s.makeTableFormulaKey(formula.TableId, formula.Id)); err != nil {
		return err
	}
	return records.Delete([]byte(formula.Id))
}

func (s *FormulaStore) createBuckets(tx *bbolt.Tx) (records *bbolt.Bucket, cells *bbolt.Bucket, index *bbolt.Bucket, err error) {
	if records, err = tx.CreateBucketIfNotExists(formulasBucketId); err != nil {
		return
	}
	if cells, err = tx.CreateBucketIfNotExists(formulaCellsBucketId); err != nil {
		return
	}
	index, err = tx.CreateBucketIfNotExists(tableFormulasBucketId)
	return
}

func (s *FormulaStore) put(records *bbolt.Bucket, formula *contracts.Formula) error {
	data, err := json.Marshal(formula)
	if err != nil {
		return err
	}
	return records.Put([]byte(formula.Id), data)
}

func (s *FormulaStore) decode(data []byte) (*contracts.Formula, error) {
	if data == nil {
		return nil, nil
	}

	// bbolt memory is only valid inside the transaction, decoded strings must not point to it
	formula := &contracts.Formula{}
	if err := json.Unmarshal(bytes.Clone(data), formula); err != nil {
		return nil, err
	}
	return formula, nil
}

func (s *FormulaStore) makeTablePrefixKey(tableId string) []byte {
	return append([]byte(tableId), Delimiter)
}

func (s *FormulaStore) makeTableFormulaKey(tableId string, formulaId string) []byte {
	return append(s.makeTablePrefixKey(tableId), []byte(formulaId)...)
}
