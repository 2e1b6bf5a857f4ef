package types

import (
	"fmt"

	"rowdb/pkg/primitives"
)

// ordered covers the value types that support the full comparison set.
type ordered interface {
	~int64 | ~string
}

// compareOrdered evaluates op for two values of the same ordered type.
// Like falls back to equality here; StringField overrides it with
// substring semantics before delegating.
func compareOrdered[T ordered](a, b T, op primitives.Predicate) (bool, error) {
	switch op {
	case primitives.Equals, primitives.Like:
		return a == b, nil
	case primitives.NotEqual:
		return a != b, nil
	case primitives.LessThan:
		return a < b, nil
	case primitives.LessThanOrEqual:
		return a <= b, nil
	case primitives.GreaterThan:
		return a > b, nil
	case primitives.GreaterThanOrEqual:
		return a >= b, nil
	default:
		return false, fmt.Errorf("unsupported comparison operation: %v", op)
	}
}
