package query

import (
	"fmt"

	"rowdb/pkg/primitives"
	"rowdb/pkg/tuple"
	"rowdb/pkg/types"
)

// Predicate compares a tuple field to a constant value using a specified
// operation. It is the reusable filter condition behind the Filter operator
// (WHERE col op constant).
type Predicate struct {
	fieldIndex primitives.ColumnID  // Which field in the tuple to compare
	op         primitives.Predicate // The comparison operation to perform
	operand    types.Field          // The constant value to compare against
}

func NewPredicate(fieldIndex primitives.ColumnID, op primitives.Predicate, operand types.Field) (*Predicate, error) {
	if operand == nil {
		return nil, fmt.Errorf("operand cannot be nil")
	}
	return &Predicate{
		fieldIndex: fieldIndex,
		op:         op,
		operand:    operand,
	}, nil
}

// Filter evaluates the predicate against a tuple. Null fields never match.
func (p *Predicate) Filter(t *tuple.Tuple) (bool, error) {
	field, err := t.GetField(p.fieldIndex)
	if err != nil {
		return false, err
	}
	if field == nil {
		return false, nil
	}
	return field.Compare(p.op, p.operand)
}

func (p *Predicate) String() string {
	return fmt.Sprintf("field[%d] %s %s", p.fieldIndex, p.op.String(), p.operand.String())
}

// FieldIndex returns the index of the field this predicate evaluates.
func (p *Predicate) FieldIndex() primitives.ColumnID {
	return p.fieldIndex
}

// Operation returns the comparison operation applied by this predicate.
func (p *Predicate) Operation() primitives.Predicate {
	return p.op
}

// Value returns the constant operand the field is compared against.
func (p *Predicate) Value() types.Field {
	return p.operand
}
