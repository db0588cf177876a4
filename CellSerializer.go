package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

var SerializerError = errors.New("invalid serialized cell key")

// CellBinarySerializer
/**
 * Key layout: uvarint(len(rowId)) | rowId | columnName
 * The length goes first so "row1" and "row11" never share a row prefix,
 * and a cursor Seek on RowPrefix walks exactly the cells of one row.
 */
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) RowPrefix(rowId string) []byte {
	key := make([]byte, 0, binary.MaxVarintLen64+len(rowId))
	key = binary.AppendUvarint(key, uint64(len(rowId)))
	return append(key, rowId...)
}

func (s *CellBinarySerializer) Marshal(rowId string, columnName string) []byte {
	return append(s.RowPrefix(rowId), columnName...)
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (rowId string, columnName string, err error) {
	rowIdLength, headerLength := binary.Uvarint(data)
	if headerLength <= 0 {
		return "", "", fmt.Errorf("%w: missing row id length (key: %q)", SerializerError, data)
	}

	rest := data[headerLength:]
	if uint64(len(rest)) < rowIdLength {
		return "", "", fmt.Errorf("%w: row id needs %d bytes, %d left (key: %q)", SerializerError, rowIdLength, len(rest), data)
	}

	columnBytes := rest[rowIdLength:]
	if !utf8.Valid(columnBytes) {
		return "", "", fmt.Errorf("%w: column name is not utf-8 (key: %q)", SerializerError, data)
	}

	return string(rest[:rowIdLength]), string(columnBytes), nil
}
