package query

import (
	"fmt"

	"rowdb/pkg/iterator"
	"rowdb/pkg/primitives"
	"rowdb/pkg/tuple"
	"rowdb/pkg/types"
)

// Project implements column selection: it emits, for each input tuple, a
// tuple containing only the chosen columns, in the chosen order.
// Conceptually: SELECT col1, col3 FROM table.
type Project struct {
	*iterator.UnaryOperator
	projectedCols []primitives.ColumnID
	tupleDesc     *tuple.TupleDescription
}

// NewProject creates a Project operator selecting the given columns from the
// child's output. The output schema is derived from the child schema at
// construction time.
func NewProject(projectedCols []primitives.ColumnID, child iterator.DbIterator) (*Project, error) {
	if child == nil {
		return nil, fmt.Errorf("child operator cannot be nil")
	}
	if len(projectedCols) == 0 {
		return nil, fmt.Errorf("must project at least one field")
	}

	childDesc := child.GetTupleDesc()
	if childDesc == nil {
		return nil, fmt.Errorf("child operator has nil tuple descriptor")
	}

	outDesc, err := projectedDesc(projectedCols, childDesc)
	if err != nil {
		return nil, err
	}

	p := &Project{
		projectedCols: projectedCols,
		tupleDesc:     outDesc,
	}
	unaryOp, err := iterator.NewUnaryOperator(child, p.readNext)
	if err != nil {
		return nil, err
	}
	p.UnaryOperator = unaryOp
	return p, nil
}

// projectedDesc builds the output schema from the chosen columns of the
// child schema, validating each index.
func projectedDesc(cols []primitives.ColumnID, childDesc *tuple.TupleDescription) (*tuple.TupleDescription, error) {
	outTypes := make([]types.Type, 0, len(cols))
	outNames := make([]string, 0, len(cols))

	for _, col := range cols {
		fieldType, err := childDesc.TypeAtIndex(col)
		if err != nil {
			return nil, fmt.Errorf("invalid projected column %d: %w", col, err)
		}
		name, err := childDesc.GetFieldName(col)
		if err != nil {
			return nil, fmt.Errorf("invalid projected column %d: %w", col, err)
		}
		outTypes = append(outTypes, fieldType)
		outNames = append(outNames, name)
	}

	return tuple.NewTupleDesc(outTypes, outNames)
}

// readNext builds the projected tuple for the next child tuple.
func (p *Project) readNext() (*tuple.Tuple, error) {
	t, err := p.FetchNext()
	if err != nil || t == nil {
		return t, err
	}

	out := tuple.NewTuple(p.tupleDesc)
	for i, col := range p.projectedCols {
		field, err := t.GetField(col)
		if err != nil {
			return nil, fmt.Errorf("failed to read projected column %d: %w", col, err)
		}
		if field == nil {
			continue
		}
		if err := out.SetField(primitives.ColumnID(i), field); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// GetTupleDesc returns the projected output schema.
func (p *Project) GetTupleDesc() *tuple.TupleDescription {
	return p.tupleDesc
}
