package query

import (
	"fmt"

	"rowdb/pkg/iterator"
	"rowdb/pkg/primitives"
	"rowdb/pkg/tuple"
)

// LimitOperator implements SQL LIMIT and OFFSET: it skips offset tuples and
// then returns at most limit tuples from its child.
//
// Example: SELECT * FROM users LIMIT 10 OFFSET 5
type LimitOperator struct {
	*iterator.UnaryOperator
	limit  primitives.RowID // Maximum number of tuples to return
	offset primitives.RowID // Number of tuples to skip from the beginning
	count  primitives.RowID // Number of tuples returned so far
}

// NewLimitOperator creates a LimitOperator over the given child.
func NewLimitOperator(child iterator.DbIterator, limit, offset primitives.RowID) (*LimitOperator, error) {
	if child == nil {
		return nil, fmt.Errorf("child operator cannot be nil")
	}

	lo := &LimitOperator{
		limit:  limit,
		offset: offset,
	}

	unaryOp, err := iterator.NewUnaryOperator(child, lo.readNext)
	if err != nil {
		return nil, err
	}
	lo.UnaryOperator = unaryOp
	return lo, nil
}

// Open opens the child and skips the offset tuples.
func (lo *LimitOperator) Open() error {
	if err := lo.UnaryOperator.Open(); err != nil {
		return err
	}

	lo.count = 0
	return lo.skipOffset()
}

// readNext returns the next tuple within the limit range, or nil once the
// limit is reached.
func (lo *LimitOperator) readNext() (*tuple.Tuple, error) {
	if lo.count >= lo.limit {
		return nil, nil
	}

	t, err := lo.FetchNext()
	if err != nil || t == nil {
		return t, err
	}

	lo.count++
	return t, nil
}

// Rewind resets the operator so it skips the offset again and returns
// tuples from the beginning.
func (lo *LimitOperator) Rewind() error {
	lo.count = 0

	if err := lo.UnaryOperator.Rewind(); err != nil {
		return err
	}
	return lo.skipOffset()
}

// skipOffset discards offset tuples from the child, stopping early if the
// child has fewer tuples.
func (lo *LimitOperator) skipOffset() error {
	for i := primitives.RowID(0); i < lo.offset; i++ {
		t, err := lo.FetchNext()
		if err != nil {
			return err
		}
		if t == nil {
			break
		}
	}
	return nil
}
