package iterator

import (
	"fmt"

	"rowdb/pkg/tuple"
)

// UnaryOperator provides the base implementation for operators with a single
// child: child lifecycle management plus BaseIterator delegation. Operators
// embedding it only implement their readNext logic.
type UnaryOperator struct {
	base  *BaseIterator
	child DbIterator
}

// NewUnaryOperator creates a unary operator base with the given child and
// read function.
func NewUnaryOperator(child DbIterator, readNextFunc ReadNextFunc) (*UnaryOperator, error) {
	if child == nil {
		return nil, fmt.Errorf("child operator cannot be nil")
	}

	u := &UnaryOperator{child: child}
	u.base = NewBaseIterator(readNextFunc)
	return u, nil
}

// FetchNext retrieves the next tuple from the child operator, handling the
// HasNext/Next ceremony. Returns nil when the child is exhausted.
func (u *UnaryOperator) FetchNext() (*tuple.Tuple, error) {
	hasNext, err := u.child.HasNext()
	if err != nil {
		return nil, fmt.Errorf("error checking if child has next: %w", err)
	}
	if !hasNext {
		return nil, nil
	}

	childTuple, err := u.child.Next()
	if err != nil {
		return nil, fmt.Errorf("error getting next tuple from child: %w", err)
	}
	return childTuple, nil
}

// Open opens the child operator and marks this operator as ready.
func (u *UnaryOperator) Open() error {
	if err := u.child.Open(); err != nil {
		return fmt.Errorf("failed to open child operator: %w", err)
	}
	u.base.MarkOpened()
	return nil
}

// Close closes the child operator and releases resources.
func (u *UnaryOperator) Close() error {
	if err := u.child.Close(); err != nil {
		return err
	}
	return u.base.Close()
}

// Rewind resets both the child operator and the lookahead cache.
func (u *UnaryOperator) Rewind() error {
	if err := u.child.Rewind(); err != nil {
		return fmt.Errorf("failed to rewind child operator: %w", err)
	}
	u.base.ClearCache()
	return nil
}

// GetTupleDesc returns the child's schema. Operators that transform the
// schema override this method.
func (u *UnaryOperator) GetTupleDesc() *tuple.TupleDescription {
	return u.child.GetTupleDesc()
}

// HasNext checks if there are more tuples available.
func (u *UnaryOperator) HasNext() (bool, error) {
	return u.base.HasNext()
}

// Next returns the next tuple from the operator.
func (u *UnaryOperator) Next() (*tuple.Tuple, error) {
	return u.base.Next()
}

// GetChild returns the child operator for plan inspection.
func (u *UnaryOperator) GetChild() DbIterator {
	return u.child
}
