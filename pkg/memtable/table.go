// Package memtable provides a minimal in-memory relation and its sequential
// scan iterator. It stands in for the heap-file storage layer in tests,
// examples, and anywhere a fully materialized relation is good enough.
package memtable

import (
	"fmt"

	"rowdb/pkg/primitives"
	"rowdb/pkg/tuple"
	"rowdb/pkg/types"
)

// MemTable is an in-memory relation: a schema plus an ordered slice of rows.
// Not safe for concurrent mutation; the execution model is single-threaded
// caller-driven pull.
type MemTable struct {
	name      string
	tupleDesc *tuple.TupleDescription
	rows      []*tuple.Tuple
}

// NewMemTable creates an empty table with the given name and schema.
func NewMemTable(name string, td *tuple.TupleDescription) (*MemTable, error) {
	if td == nil {
		return nil, fmt.Errorf("tuple descriptor cannot be nil")
	}
	return &MemTable{
		name:      name,
		tupleDesc: td,
	}, nil
}

// Insert appends a row after validating it against the table schema.
func (mt *MemTable) Insert(t *tuple.Tuple) error {
	if t == nil {
		return fmt.Errorf("cannot insert nil tuple")
	}
	if !mt.tupleDesc.Equals(t.TupleDesc) {
		return fmt.Errorf("tuple schema %s does not match table schema %s",
			t.TupleDesc.String(), mt.tupleDesc.String())
	}
	mt.rows = append(mt.rows, t)
	return nil
}

// InsertValues builds a tuple from field values given in schema order and
// inserts it. Convenience for loading test and example data.
func (mt *MemTable) InsertValues(fields ...types.Field) error {
	if len(fields) != mt.tupleDesc.NumFields() {
		return fmt.Errorf("expected %d fields, got %d", mt.tupleDesc.NumFields(), len(fields))
	}

	t := tuple.NewTuple(mt.tupleDesc)
	for i, field := range fields {
		if err := t.SetField(primitives.ColumnID(i), field); err != nil {
			return err
		}
	}
	return mt.Insert(t)
}

// NumRows returns the number of rows currently stored.
func (mt *MemTable) NumRows() primitives.RowID {
	return primitives.RowID(len(mt.rows))
}

// Name returns the table name.
func (mt *MemTable) Name() string {
	return mt.name
}

// GetTupleDesc returns the table schema.
func (mt *MemTable) GetTupleDesc() *tuple.TupleDescription {
	return mt.tupleDesc
}
