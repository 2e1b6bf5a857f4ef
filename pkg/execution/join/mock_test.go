package join

import (
	"fmt"

	"rowdb/pkg/iterator"
	"rowdb/pkg/primitives"
	"rowdb/pkg/tuple"
	"rowdb/pkg/types"
)

// mockIterator is a controllable DbIterator over a fixed tuple slice, with
// switches to inject failures into each lifecycle call.
type mockIterator struct {
	tuples    []*tuple.Tuple
	tupleDesc *tuple.TupleDescription
	index     int
	isOpen    bool

	failOpen   bool
	failNext   bool
	failRewind bool
	failClose  bool

	openCalls   int
	closeCalls  int
	rewindCalls int
}

func newMockIterator(tuples []*tuple.Tuple, tupleDesc *tuple.TupleDescription) *mockIterator {
	return &mockIterator{
		tuples:    tuples,
		tupleDesc: tupleDesc,
		index:     -1,
	}
}

func (m *mockIterator) Open() error {
	m.openCalls++
	if m.failOpen {
		return fmt.Errorf("mock open error")
	}
	m.isOpen = true
	m.index = -1
	return nil
}

func (m *mockIterator) HasNext() (bool, error) {
	if !m.isOpen {
		return false, fmt.Errorf("iterator not open")
	}
	if m.failNext {
		return false, fmt.Errorf("mock iteration error")
	}
	return m.index+1 < len(m.tuples), nil
}

func (m *mockIterator) Next() (*tuple.Tuple, error) {
	if !m.isOpen {
		return nil, fmt.Errorf("iterator not open")
	}
	if m.failNext {
		return nil, fmt.Errorf("mock iteration error")
	}
	m.index++
	if m.index >= len(m.tuples) {
		return nil, fmt.Errorf("no more tuples")
	}
	return m.tuples[m.index], nil
}

func (m *mockIterator) Rewind() error {
	m.rewindCalls++
	if !m.isOpen {
		return fmt.Errorf("iterator not open")
	}
	if m.failRewind {
		return fmt.Errorf("mock rewind error")
	}
	m.index = -1
	return nil
}

func (m *mockIterator) Close() error {
	m.closeCalls++
	m.isOpen = false
	if m.failClose {
		return fmt.Errorf("mock close error")
	}
	return nil
}

func (m *mockIterator) GetTupleDesc() *tuple.TupleDescription {
	return m.tupleDesc
}

var _ iterator.DbIterator = (*mockIterator)(nil)

// Test data helpers

func makeDesc(fieldTypes []types.Type, fieldNames []string) *tuple.TupleDescription {
	td, err := tuple.NewTupleDesc(fieldTypes, fieldNames)
	if err != nil {
		panic(err)
	}
	return td
}

func makeTuple(td *tuple.TupleDescription, values ...any) *tuple.Tuple {
	t := tuple.NewTuple(td)
	for i, val := range values {
		var field types.Field
		switch v := val.(type) {
		case int:
			field = types.NewIntField(int64(v))
		case int64:
			field = types.NewIntField(v)
		case string:
			field = types.NewStringField(v, types.StringMaxSize)
		case bool:
			field = types.NewBoolField(v)
		default:
			panic(fmt.Sprintf("unsupported test value type %T", val))
		}
		if err := t.SetField(primitives.ColumnID(i), field); err != nil {
			panic(err)
		}
	}
	return t
}

// tupleStrings renders tuples for order-sensitive comparisons.
func tupleStrings(tuples []*tuple.Tuple) []string {
	out := make([]string, len(tuples))
	for i, t := range tuples {
		out[i] = t.String()
	}
	return out
}
