package memtable

import (
	"fmt"

	"rowdb/pkg/iterator"
	"rowdb/pkg/tuple"
)

// Scan is a sequential scan over a MemTable, implementing the DbIterator
// pull contract. Open snapshots the table's current rows, so rows inserted
// mid-scan do not appear until the next Open; Rewind replays the same
// snapshot from the beginning.
type Scan struct {
	table    *MemTable
	base     *iterator.BaseIterator
	snapshot *iterator.SliceIterator[*tuple.Tuple]
}

// NewScan creates a sequential scan over the given table.
func NewScan(table *MemTable) (*Scan, error) {
	if table == nil {
		return nil, fmt.Errorf("table cannot be nil")
	}

	s := &Scan{table: table}
	s.base = iterator.NewBaseIterator(s.readNext)
	return s, nil
}

// Open snapshots the table rows and prepares the scan. Opening an already
// open scan is a no-op.
func (s *Scan) Open() error {
	if s.base.IsOpened() {
		return nil
	}

	rows := make([]*tuple.Tuple, len(s.table.rows))
	copy(rows, s.table.rows)
	s.snapshot = iterator.NewSliceIterator(rows)
	s.base.MarkOpened()
	return nil
}

// readNext returns the next snapshot row, or nil when exhausted.
func (s *Scan) readNext() (*tuple.Tuple, error) {
	if s.snapshot == nil || !s.snapshot.HasNext() {
		return nil, nil
	}
	return s.snapshot.Next()
}

// Rewind resets the cursor to the first row of the snapshot.
func (s *Scan) Rewind() error {
	if !s.base.IsOpened() {
		return fmt.Errorf("cannot rewind a closed scan")
	}
	s.snapshot.Rewind()
	s.base.ClearCache()
	return nil
}

// Close releases the snapshot and marks the scan closed.
func (s *Scan) Close() error {
	s.snapshot = nil
	return s.base.Close()
}

// HasNext checks if there are more rows available.
func (s *Scan) HasNext() (bool, error) {
	return s.base.HasNext()
}

// Next returns the next row from the scan.
func (s *Scan) Next() (*tuple.Tuple, error) {
	return s.base.Next()
}

// GetTupleDesc returns the table schema.
func (s *Scan) GetTupleDesc() *tuple.TupleDescription {
	return s.table.GetTupleDesc()
}
