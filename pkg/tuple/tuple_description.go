package tuple

import (
	"fmt"
	"strings"

	"rowdb/pkg/primitives"
	"rowdb/pkg/types"
)

// TupleDescription describes the schema of a tuple: the type and name of
// each field, in order. Field names are optional.
type TupleDescription struct {
	// Types contains the data type of each field in order
	Types []types.Type
	// FieldNames contains the name of each field (optional, may be nil)
	FieldNames []string
}

// NewTupleDesc creates a new TupleDescription given field types and optional
// field names. If fieldNames is nil, fields have no names.
func NewTupleDesc(fieldTypes []types.Type, fieldNames []string) (*TupleDescription, error) {
	if len(fieldTypes) < 1 {
		return nil, fmt.Errorf("must provide at least one field type")
	}

	typesCopy := make([]types.Type, len(fieldTypes))
	copy(typesCopy, fieldTypes)

	var namesCopy []string
	if fieldNames != nil {
		if len(fieldNames) != len(fieldTypes) {
			return nil, fmt.Errorf("field names length (%d) must match field types length (%d)",
				len(fieldNames), len(fieldTypes))
		}
		namesCopy = make([]string, len(fieldNames))
		copy(namesCopy, fieldNames)
	}

	return &TupleDescription{
		Types:      typesCopy,
		FieldNames: namesCopy,
	}, nil
}

// NumFields returns the number of fields in this tuple descriptor.
func (td *TupleDescription) NumFields() int {
	return len(td.Types)
}

// GetFieldName returns the name of the ith field, or the empty string if no
// names were provided.
func (td *TupleDescription) GetFieldName(i primitives.ColumnID) (string, error) {
	if int(i) >= len(td.Types) {
		return "", fmt.Errorf("field index %d out of bounds [0, %d)", i, len(td.Types))
	}

	if td.FieldNames == nil {
		return "", nil
	}

	return td.FieldNames[i], nil
}

// TypeAtIndex returns the type of the ith field.
func (td *TupleDescription) TypeAtIndex(i primitives.ColumnID) (types.Type, error) {
	if int(i) >= len(td.Types) {
		return 0, fmt.Errorf("field index %d out of bounds [0, %d)", i, len(td.Types))
	}
	return td.Types[i], nil
}

// FindFieldIndex locates a field by name using a case-sensitive linear
// search through the schema definition.
func (td *TupleDescription) FindFieldIndex(fieldName string) (primitives.ColumnID, error) {
	for i := 0; i < td.NumFields(); i++ {
		name, _ := td.GetFieldName(primitives.ColumnID(i))
		if name == fieldName {
			return primitives.ColumnID(i), nil
		}
	}
	return primitives.InvalidColumnID, fmt.Errorf("column %s not found", fieldName)
}

// Equals checks if two TupleDescriptions have the same field types in the
// same order. Field names are not compared.
func (td *TupleDescription) Equals(other *TupleDescription) bool {
	if other == nil {
		return false
	}

	if len(td.Types) != len(other.Types) {
		return false
	}

	for i, fieldType := range td.Types {
		if fieldType != other.Types[i] {
			return false
		}
	}
	return true
}

// String returns a string representation of this TupleDescription.
// Format: "Type1(fieldName1),Type2(fieldName2),..."
func (td *TupleDescription) String() string {
	var parts []string

	for i, fieldType := range td.Types {
		fieldName := "null"
		if td.FieldNames != nil && i < len(td.FieldNames) {
			fieldName = td.FieldNames[i]
		}
		parts = append(parts, fmt.Sprintf("%s(%s)", fieldType.String(), fieldName))
	}

	return strings.Join(parts, ",")
}

// Combine merges two TupleDescriptions into one: all fields from td1
// followed by all fields from td2, order preserved. The result's field
// count is always the sum of the inputs'. If either descriptor is nil the
// other is returned unchanged.
func Combine(td1, td2 *TupleDescription) *TupleDescription {
	if td1 == nil && td2 == nil {
		return nil
	}
	if td1 == nil {
		return td2
	}
	if td2 == nil {
		return td1
	}

	newTypes := make([]types.Type, 0, len(td1.Types)+len(td2.Types))
	newTypes = append(newTypes, td1.Types...)
	newTypes = append(newTypes, td2.Types...)

	var newFieldNames []string
	if td1.FieldNames != nil || td2.FieldNames != nil {
		newFieldNames = make([]string, 0, len(newTypes))
		newFieldNames = appendNames(newFieldNames, td1)
		newFieldNames = appendNames(newFieldNames, td2)
	}

	combined, _ := NewTupleDesc(newTypes, newFieldNames)
	return combined
}

// appendNames appends td's field names, padding with empty strings when a
// descriptor carries no names.
func appendNames(names []string, td *TupleDescription) []string {
	if td.FieldNames != nil {
		return append(names, td.FieldNames...)
	}
	for range td.Types {
		names = append(names, "")
	}
	return names
}
