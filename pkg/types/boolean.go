package types

import (
	"fmt"
	"io"
	"strconv"

	"rowdb/pkg/primitives"

	"github.com/spaolacci/murmur3"
)

// BoolField represents a boolean field
type BoolField struct {
	Value bool
}

func NewBoolField(value bool) *BoolField {
	return &BoolField{Value: value}
}

func (f *BoolField) Serialize(w io.Writer) error {
	b := []byte{0}
	if f.Value {
		b[0] = 1
	}
	_, err := w.Write(b)
	return err
}

// Compare supports equality operations only; booleans have no ordering.
func (f *BoolField) Compare(op primitives.Predicate, other Field) (bool, error) {
	otherField, ok := other.(*BoolField)
	if !ok {
		return false, nil
	}

	switch op {
	case primitives.Equals, primitives.Like:
		return f.Value == otherField.Value, nil
	case primitives.NotEqual:
		return f.Value != otherField.Value, nil
	default:
		return false, fmt.Errorf("operation %v not supported for boolean fields", op)
	}
}

func (f *BoolField) Type() Type {
	return BoolType
}

func (f *BoolField) String() string {
	return strconv.FormatBool(f.Value)
}

func (f *BoolField) Equals(other Field) bool {
	otherField, ok := other.(*BoolField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *BoolField) Hash() (primitives.HashCode, error) {
	b := []byte{0}
	if f.Value {
		b[0] = 1
	}
	return primitives.HashCode(murmur3.Sum64(b)), nil
}
