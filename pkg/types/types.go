package types

// Type enumerates the field types a tuple may carry.
type Type int

const (
	IntType Type = iota
	StringType
	BoolType
)

// StringMaxSize is the maximum number of bytes a StringField may hold.
const StringMaxSize = 128

// String returns a string representation of the type
func (t Type) String() string {
	switch t {
	case IntType:
		return "INT_TYPE"
	case StringType:
		return "STRING_TYPE"
	case BoolType:
		return "BOOL_TYPE"
	default:
		return "UNKNOWN_TYPE"
	}
}
