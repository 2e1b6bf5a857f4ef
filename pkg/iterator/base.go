package iterator

import (
	"fmt"

	"rowdb/pkg/tuple"
)

// ReadNextFunc reads the next tuple from an operator's underlying source.
// It returns nil with no error when the source is exhausted.
type ReadNextFunc func() (*tuple.Tuple, error)

// BaseIterator implements the HasNext/Next lookahead ceremony shared by all
// operators. An operator supplies its readNext logic as a closure and
// delegates HasNext/Next here; the base caches one tuple so HasNext can be
// called repeatedly without advancing the stream.
type BaseIterator struct {
	nextTuple    *tuple.Tuple // Cached lookahead tuple
	opened       bool
	readNextFunc ReadNextFunc
}

// NewBaseIterator creates a base iterator around the given readNext
// function. The iterator starts closed; the owning operator calls
// MarkOpened once its own Open succeeds.
func NewBaseIterator(readNextFunc ReadNextFunc) *BaseIterator {
	return &BaseIterator{
		readNextFunc: readNextFunc,
	}
}

// HasNext reports whether a next tuple is available, caching it for the
// subsequent Next call.
func (it *BaseIterator) HasNext() (bool, error) {
	if !it.opened {
		return false, fmt.Errorf("iterator not opened")
	}

	if it.nextTuple == nil {
		var err error
		it.nextTuple, err = it.readNextFunc()
		if err != nil {
			return false, err
		}
	}
	return it.nextTuple != nil, nil
}

// Next returns the next tuple, consuming the cached lookahead if present.
func (it *BaseIterator) Next() (*tuple.Tuple, error) {
	if !it.opened {
		return nil, fmt.Errorf("iterator not opened")
	}

	if it.nextTuple == nil {
		var err error
		it.nextTuple, err = it.readNextFunc()
		if err != nil {
			return nil, err
		}
		if it.nextTuple == nil {
			return nil, fmt.Errorf("no more tuples")
		}
	}

	result := it.nextTuple
	it.nextTuple = nil
	return result, nil
}

// Close clears the cache and marks the iterator closed.
func (it *BaseIterator) Close() error {
	it.nextTuple = nil
	it.opened = false
	return nil
}

// MarkOpened marks the iterator as opened and drops any stale cache.
func (it *BaseIterator) MarkOpened() {
	it.opened = true
	it.nextTuple = nil
}

// ClearCache drops the cached lookahead tuple. Called on rewind so the next
// HasNext re-reads from the (reset) source.
func (it *BaseIterator) ClearCache() {
	it.nextTuple = nil
}

// IsOpened reports whether MarkOpened has been called without a matching
// Close.
func (it *BaseIterator) IsOpened() bool {
	return it.opened
}
