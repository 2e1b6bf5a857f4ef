package primitives

import "math"

// HashCode represents a hash value computed over a field or tuple,
// used for fast equality pre-checks and set membership.
type HashCode uint64

// ColumnID identifies a column within a schema (zero-based).
type ColumnID uint32

// RowID counts or identifies rows within a relation.
type RowID uint64

// InvalidColumnID represents an invalid or unset column reference.
const InvalidColumnID ColumnID = math.MaxUint32
