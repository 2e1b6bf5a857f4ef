package types

import (
	"encoding/binary"
	"io"
	"strings"

	"rowdb/pkg/primitives"

	"github.com/spaolacci/murmur3"
)

// StringField represents a variable-length string field with a fixed
// maximum size. Values longer than the maximum are truncated at
// construction, mirroring CHAR(n) storage semantics.
type StringField struct {
	Value   string
	maxSize int
}

func NewStringField(value string, maxSize int) *StringField {
	if len(value) > maxSize {
		value = value[:maxSize]
	}
	return &StringField{Value: value, maxSize: maxSize}
}

// Serialize writes the string as a 4-byte big-endian length prefix
// followed by the raw bytes.
func (f *StringField) Serialize(w io.Writer) error {
	lengthBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(lengthBytes, uint32(len(f.Value)))
	if _, err := w.Write(lengthBytes); err != nil {
		return err
	}
	_, err := w.Write([]byte(f.Value))
	return err
}

func (f *StringField) Compare(op primitives.Predicate, other Field) (bool, error) {
	otherField, ok := other.(*StringField)
	if !ok {
		return false, nil
	}

	if op == primitives.Like {
		return strings.Contains(f.Value, otherField.Value), nil
	}
	return compareOrdered(f.Value, otherField.Value, op)
}

func (f *StringField) Type() Type {
	return StringType
}

func (f *StringField) String() string {
	return f.Value
}

func (f *StringField) Equals(other Field) bool {
	otherField, ok := other.(*StringField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *StringField) Hash() (primitives.HashCode, error) {
	return primitives.HashCode(murmur3.Sum64([]byte(f.Value))), nil
}

// MaxSize returns the maximum number of bytes this field may hold.
func (f *StringField) MaxSize() int {
	return f.maxSize
}
