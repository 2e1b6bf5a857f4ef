package join

import (
	"fmt"

	"rowdb/pkg/primitives"
	"rowdb/pkg/tuple"
)

// JoinPredicate compares one designated field from each side of a join using
// a comparison operation. The Join operator applies it to every candidate
// (left, right) pair to decide which pairs appear in the output.
type JoinPredicate struct {
	field1 primitives.ColumnID  // Field index in the left (outer) tuple
	field2 primitives.ColumnID  // Field index in the right (inner) tuple
	op     primitives.Predicate // The comparison operation to apply
}

// NewJoinPredicate creates a predicate joining left field1 against right
// field2 under op. Index validity against each side's schema is checked
// lazily by the tuple layer at evaluation time.
func NewJoinPredicate(field1, field2 primitives.ColumnID, op primitives.Predicate) (*JoinPredicate, error) {
	if field1 == primitives.InvalidColumnID {
		return nil, fmt.Errorf("field1 index is invalid")
	}
	if field2 == primitives.InvalidColumnID {
		return nil, fmt.Errorf("field2 index is invalid")
	}

	return &JoinPredicate{
		field1: field1,
		field2: field2,
		op:     op,
	}, nil
}

// Filter evaluates the join predicate against a (left, right) tuple pair.
// Null fields on either side never match.
func (jp *JoinPredicate) Filter(t1, t2 *tuple.Tuple) (bool, error) {
	if t1 == nil || t2 == nil {
		return false, fmt.Errorf("tuples cannot be nil")
	}

	field1, err := t1.GetField(jp.field1)
	if err != nil {
		return false, fmt.Errorf("failed to get field %d from left tuple: %w", jp.field1, err)
	}

	field2, err := t2.GetField(jp.field2)
	if err != nil {
		return false, fmt.Errorf("failed to get field %d from right tuple: %w", jp.field2, err)
	}

	if field1 == nil || field2 == nil {
		return false, nil
	}

	return field1.Compare(jp.op, field2)
}

// String returns a string representation of the join predicate for debugging.
func (jp *JoinPredicate) String() string {
	return fmt.Sprintf("JoinPredicate(field1=%d %s field2=%d)",
		jp.field1, jp.op.String(), jp.field2)
}

// Operation returns the comparison operation of the join predicate.
func (jp *JoinPredicate) Operation() primitives.Predicate {
	return jp.op
}

// Field1 returns the left-side field index used by the predicate.
func (jp *JoinPredicate) Field1() primitives.ColumnID {
	return jp.field1
}

// Field2 returns the right-side field index used by the predicate.
func (jp *JoinPredicate) Field2() primitives.ColumnID {
	return jp.field2
}
