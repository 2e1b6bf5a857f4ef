package iterator

import "rowdb/pkg/tuple"

// DbIterator is the pull-iterator contract every operator in the execution
// engine implements: a lazy, finite, restartable sequence of tuples advanced
// only by caller-initiated calls.
type DbIterator interface {
	TupleIterator // Embeds HasNext() and Next()

	// Open initializes the iterator and prepares it for tuple retrieval.
	// This method must be called before any other iterator operations.
	// Multiple calls to Open() on an already opened iterator are idempotent.
	Open() error

	// Rewind resets the iterator position to the beginning of the data
	// sequence; logically equivalent to Close followed by Open. After
	// rewinding, a full drain reproduces the original sequence.
	Rewind() error

	// Close releases all resources associated with the iterator and marks it
	// as closed. Calling Close() on an already closed iterator is safe.
	Close() error

	// GetTupleDesc returns the schema of the tuples this iterator produces.
	// Callable regardless of iterator state.
	GetTupleDesc() *tuple.TupleDescription
}

// TupleIterator captures the minimal iteration surface shared by all
// iterator kinds, allowing generic helpers over any tuple source.
type TupleIterator interface {
	// HasNext checks if there are more tuples available without consuming
	// them. Errors raised while looking ahead propagate verbatim.
	HasNext() (bool, error)

	// Next retrieves and returns the next tuple, advancing the position.
	Next() (*tuple.Tuple, error)
}
