package query

import (
	"fmt"

	"rowdb/pkg/iterator"
	"rowdb/pkg/tuple"
)

// Filter passes through only the tuples from its child that satisfy a
// predicate. The tuple structure is unchanged, so the output schema is the
// child's schema.
type Filter struct {
	*iterator.UnaryOperator
	predicate *Predicate
}

// NewFilter creates a Filter over the given child with the given predicate.
func NewFilter(predicate *Predicate, child iterator.DbIterator) (*Filter, error) {
	if predicate == nil {
		return nil, fmt.Errorf("predicate cannot be nil")
	}

	f := &Filter{predicate: predicate}
	unaryOp, err := iterator.NewUnaryOperator(child, f.readNext)
	if err != nil {
		return nil, err
	}
	f.UnaryOperator = unaryOp
	return f, nil
}

// readNext reads child tuples until one satisfies the predicate or the
// child is exhausted.
func (f *Filter) readNext() (*tuple.Tuple, error) {
	for {
		t, err := f.FetchNext()
		if err != nil || t == nil {
			return t, err
		}

		passes, err := f.predicate.Filter(t)
		if err != nil {
			return nil, fmt.Errorf("predicate evaluation failed: %w", err)
		}
		if passes {
			return t, nil
		}
	}
}

// Predicate returns the filter condition for plan inspection.
func (f *Filter) Predicate() *Predicate {
	return f.predicate
}
