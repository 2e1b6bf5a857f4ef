package memtable

import (
	"testing"

	"rowdb/pkg/iterator"
	"rowdb/pkg/tuple"
	"rowdb/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) *MemTable {
	t.Helper()

	td, err := tuple.NewTupleDesc(
		[]types.Type{types.IntType, types.StringType},
		[]string{"id", "name"},
	)
	require.NoError(t, err)

	table, err := NewMemTable("users", td)
	require.NoError(t, err)
	return table
}

func TestMemTableInsert(t *testing.T) {
	table := newTestTable(t)

	require.NoError(t, table.InsertValues(
		types.NewIntField(1),
		types.NewStringField("ann", types.StringMaxSize),
	))
	assert.EqualValues(t, 1, table.NumRows())

	t.Run("arity mismatch", func(t *testing.T) {
		err := table.InsertValues(types.NewIntField(2))
		assert.Error(t, err)
	})

	t.Run("type mismatch", func(t *testing.T) {
		err := table.InsertValues(
			types.NewStringField("oops", types.StringMaxSize),
			types.NewStringField("ann", types.StringMaxSize),
		)
		assert.Error(t, err)
	})

	t.Run("schema mismatch on Insert", func(t *testing.T) {
		otherDesc, err := tuple.NewTupleDesc([]types.Type{types.BoolType}, []string{"flag"})
		require.NoError(t, err)
		err = table.Insert(tuple.NewTuple(otherDesc))
		assert.Error(t, err)
	})

	t.Run("nil tuple", func(t *testing.T) {
		assert.Error(t, table.Insert(nil))
	})
}

func TestScan(t *testing.T) {
	table := newTestTable(t)
	for i, name := range []string{"ann", "bob", "cat"} {
		require.NoError(t, table.InsertValues(
			types.NewIntField(int64(i+1)),
			types.NewStringField(name, types.StringMaxSize),
		))
	}

	scan, err := NewScan(table)
	require.NoError(t, err)
	require.NoError(t, scan.Open())
	defer scan.Close()

	t.Run("full drain in insertion order", func(t *testing.T) {
		tuples, err := iterator.Collect(scan)
		require.NoError(t, err)
		require.Len(t, tuples, 3)
		assert.Equal(t, "1\tann", tuples[0].String())
		assert.Equal(t, "3\tcat", tuples[2].String())
	})

	t.Run("rewind replays the snapshot", func(t *testing.T) {
		require.NoError(t, scan.Rewind())
		count, err := iterator.Count(scan)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("inserts after open are not visible until reopen", func(t *testing.T) {
		require.NoError(t, table.InsertValues(
			types.NewIntField(4),
			types.NewStringField("dan", types.StringMaxSize),
		))

		require.NoError(t, scan.Rewind())
		count, err := iterator.Count(scan)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		require.NoError(t, scan.Close())
		require.NoError(t, scan.Open())
		count, err = iterator.Count(scan)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})
}

func TestScanLifecycle(t *testing.T) {
	table := newTestTable(t)
	scan, err := NewScan(table)
	require.NoError(t, err)

	t.Run("fetch before open fails", func(t *testing.T) {
		_, err := scan.HasNext()
		assert.Error(t, err)
	})

	t.Run("rewind before open fails", func(t *testing.T) {
		assert.Error(t, scan.Rewind())
	})

	t.Run("double open is a no-op", func(t *testing.T) {
		require.NoError(t, scan.Open())
		require.NoError(t, scan.Open())
		require.NoError(t, scan.Close())
	})

	t.Run("double close is safe", func(t *testing.T) {
		require.NoError(t, scan.Close())
	})

	t.Run("nil table rejected", func(t *testing.T) {
		_, err := NewScan(nil)
		assert.Error(t, err)
	})
}
