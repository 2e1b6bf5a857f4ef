package tuple

import (
	"fmt"
	"strings"

	"rowdb/pkg/primitives"
	"rowdb/pkg/types"
)

// Tuple represents a row of data: ordered field values plus a reference to
// the schema describing them.
type Tuple struct {
	TupleDesc *TupleDescription // Schema of this tuple
	fields    []types.Field     // The actual field values
}

// NewTuple creates an empty tuple with the given schema. Fields start nil
// and are populated with SetField.
func NewTuple(td *TupleDescription) *Tuple {
	return &Tuple{
		TupleDesc: td,
		fields:    make([]types.Field, td.NumFields()),
	}
}

// SetField stores a field value at index i, enforcing the schema's type.
func (t *Tuple) SetField(i primitives.ColumnID, field types.Field) error {
	if int(i) >= len(t.fields) {
		return fmt.Errorf("field index %d out of bounds [0, %d)", i, len(t.fields))
	}

	expectedType, _ := t.TupleDesc.TypeAtIndex(i)
	if field.Type() != expectedType {
		return fmt.Errorf("field type mismatch at index %d: expected %v, got %v",
			i, expectedType, field.Type())
	}

	t.fields[i] = field
	return nil
}

// GetField returns the value of the ith field.
func (t *Tuple) GetField(i primitives.ColumnID) (types.Field, error) {
	if int(i) >= len(t.fields) {
		return nil, fmt.Errorf("field index %d out of bounds [0, %d)", i, len(t.fields))
	}
	return t.fields[i], nil
}

// NumFields returns the number of fields the tuple holds.
func (t *Tuple) NumFields() int {
	return len(t.fields)
}

// String returns a tab-separated representation of the tuple's values.
func (t *Tuple) String() string {
	parts := make([]string, 0, len(t.fields))
	for _, field := range t.fields {
		if field != nil {
			parts = append(parts, field.String())
		} else {
			parts = append(parts, "null")
		}
	}
	return strings.Join(parts, "\t")
}

// Clone creates a copy of this tuple sharing the same (immutable) field
// handles and schema.
func (t *Tuple) Clone() *Tuple {
	newTup := NewTuple(t.TupleDesc)
	copy(newTup.fields, t.fields)
	return newTup
}

// CombineTuples concatenates two tuples into one, left fields first. Used by
// joins: the result schema is Combine(t1.TupleDesc, t2.TupleDesc).
func CombineTuples(t1, t2 *Tuple) (*Tuple, error) {
	if t1 == nil || t2 == nil {
		return nil, fmt.Errorf("cannot combine nil tuples")
	}
	return ConcatInto(Combine(t1.TupleDesc, t2.TupleDesc), t1, t2)
}

// ConcatInto builds a tuple against a precomputed combined schema, copying
// t1's fields into positions [0, t1 width) and t2's into the remainder.
// Field values are copied as opaque handles. Operators that emit many
// concatenated tuples use this to avoid re-deriving the schema per row.
func ConcatInto(combined *TupleDescription, t1, t2 *Tuple) (*Tuple, error) {
	if combined == nil {
		return nil, fmt.Errorf("combined schema cannot be nil")
	}
	if combined.NumFields() != t1.NumFields()+t2.NumFields() {
		return nil, fmt.Errorf("combined schema has %d fields, inputs have %d+%d",
			combined.NumFields(), t1.NumFields(), t2.NumFields())
	}

	result := NewTuple(combined)
	if err := t1.copyFieldsTo(result, 0); err != nil {
		return nil, err
	}
	if err := t2.copyFieldsTo(result, primitives.ColumnID(t1.NumFields())); err != nil {
		return nil, err
	}
	return result, nil
}

// copyFieldsTo copies all non-nil fields from this tuple to target starting
// at startIndex.
func (t *Tuple) copyFieldsTo(target *Tuple, startIndex primitives.ColumnID) error {
	for i := 0; i < t.NumFields(); i++ {
		field, err := t.GetField(primitives.ColumnID(i))
		if err != nil {
			return err
		}
		if field == nil {
			continue
		}
		if err := target.SetField(startIndex+primitives.ColumnID(i), field); err != nil {
			return err
		}
	}
	return nil
}

// Hash combines the hashes of all fields into a single tuple hash. Nil
// fields contribute a fixed marker so tuples differing only in null
// positions hash differently.
func (t *Tuple) Hash() (primitives.HashCode, error) {
	var hash primitives.HashCode
	for i, field := range t.fields {
		var fieldHash primitives.HashCode
		if field != nil {
			var err error
			fieldHash, err = field.Hash()
			if err != nil {
				return 0, fmt.Errorf("failed to hash field %d: %w", i, err)
			}
		}
		hash = hash*31 + fieldHash
	}
	return hash, nil
}
