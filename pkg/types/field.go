package types

import (
	"io"

	"rowdb/pkg/primitives"
)

// Field is a single typed value inside a tuple. Implementations are
// immutable; operators pass fields around as opaque handles and never
// interpret their contents beyond Compare.
type Field interface {
	// Serialize writes the canonical binary form of the value.
	Serialize(w io.Writer) error

	// Compare evaluates this field against other under the given operation.
	// Comparing against a field of a different type is not an error: it
	// reports false, matching SQL's no-match semantics for mixed types.
	Compare(op primitives.Predicate, other Field) (bool, error)

	// Type returns the field's type tag.
	Type() Type

	String() string

	// Equals reports exact value equality (same type, same value).
	Equals(other Field) bool

	// Hash returns a hash of the canonical binary form.
	Hash() (primitives.HashCode, error)
}
