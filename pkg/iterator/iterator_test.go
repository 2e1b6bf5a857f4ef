package iterator

import (
	"fmt"
	"testing"

	"rowdb/pkg/primitives"
	"rowdb/pkg/tuple"
	"rowdb/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTuples(t *testing.T, n int) []*tuple.Tuple {
	t.Helper()

	td, err := tuple.NewTupleDesc([]types.Type{types.IntType}, []string{"id"})
	require.NoError(t, err)

	tuples := make([]*tuple.Tuple, n)
	for i := range tuples {
		tup := tuple.NewTuple(td)
		require.NoError(t, tup.SetField(primitives.ColumnID(0), types.NewIntField(int64(i))))
		tuples[i] = tup
	}
	return tuples
}

// sliceSource adapts a SliceIterator into a ReadNextFunc.
func sliceSource(tuples []*tuple.Tuple) (*SliceIterator[*tuple.Tuple], ReadNextFunc) {
	it := NewSliceIterator(tuples)
	return it, func() (*tuple.Tuple, error) {
		if !it.HasNext() {
			return nil, nil
		}
		return it.Next()
	}
}

func TestBaseIterator(t *testing.T) {
	t.Run("fetch before open fails", func(t *testing.T) {
		_, src := sliceSource(testTuples(t, 1))
		base := NewBaseIterator(src)

		_, err := base.HasNext()
		assert.Error(t, err)
		_, err = base.Next()
		assert.Error(t, err)
	})

	t.Run("lookahead does not consume", func(t *testing.T) {
		tuples := testTuples(t, 2)
		_, src := sliceSource(tuples)
		base := NewBaseIterator(src)
		base.MarkOpened()

		for i := 0; i < 3; i++ {
			hasNext, err := base.HasNext()
			require.NoError(t, err)
			assert.True(t, hasNext)
		}

		got, err := base.Next()
		require.NoError(t, err)
		assert.Same(t, tuples[0], got)
	})

	t.Run("next past end fails", func(t *testing.T) {
		_, src := sliceSource(nil)
		base := NewBaseIterator(src)
		base.MarkOpened()

		hasNext, err := base.HasNext()
		require.NoError(t, err)
		assert.False(t, hasNext)

		_, err = base.Next()
		assert.Error(t, err)
	})

	t.Run("source error propagates", func(t *testing.T) {
		base := NewBaseIterator(func() (*tuple.Tuple, error) {
			return nil, fmt.Errorf("source failure")
		})
		base.MarkOpened()

		_, err := base.HasNext()
		assert.ErrorContains(t, err, "source failure")
	})

	t.Run("close resets state", func(t *testing.T) {
		_, src := sliceSource(testTuples(t, 1))
		base := NewBaseIterator(src)
		base.MarkOpened()
		require.True(t, base.IsOpened())

		require.NoError(t, base.Close())
		assert.False(t, base.IsOpened())
		_, err := base.HasNext()
		assert.Error(t, err)
	})

	t.Run("clear cache forces reread", func(t *testing.T) {
		slice, src := sliceSource(testTuples(t, 2))
		base := NewBaseIterator(src)
		base.MarkOpened()

		hasNext, err := base.HasNext()
		require.NoError(t, err)
		require.True(t, hasNext)

		slice.Rewind()
		base.ClearCache()

		got, err := base.Next()
		require.NoError(t, err)
		assert.Equal(t, "0", got.String())
	})
}

func TestSliceIterator(t *testing.T) {
	it := NewSliceIterator([]int{10, 20, 30})

	assert.Equal(t, 3, it.Len())
	assert.Equal(t, 3, it.Remaining())

	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, it.Remaining())

	it.Rewind()
	assert.Equal(t, 3, it.Remaining())

	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
	}
	_, err = it.Next()
	assert.Error(t, err)
	assert.Equal(t, 0, it.Remaining())
}

func TestIterationHelpers(t *testing.T) {
	tuples := testTuples(t, 5)

	newIter := func() TupleIterator {
		_, src := sliceSource(tuples)
		base := NewBaseIterator(src)
		base.MarkOpened()
		return base
	}

	t.Run("Collect", func(t *testing.T) {
		got, err := Collect(newIter())
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})

	t.Run("Count", func(t *testing.T) {
		count, err := Count(newIter())
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("Take", func(t *testing.T) {
		got, err := Take(newIter(), 3)
		require.NoError(t, err)
		assert.Len(t, got, 3)

		got, err = Take(newIter(), 10)
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})

	t.Run("ForEach stops on error", func(t *testing.T) {
		calls := 0
		err := ForEach(newIter(), func(*tuple.Tuple) error {
			calls++
			if calls == 2 {
				return fmt.Errorf("stop here")
			}
			return nil
		})
		assert.ErrorContains(t, err, "stop here")
		assert.Equal(t, 2, calls)
	})

	t.Run("Iterate early stop", func(t *testing.T) {
		seen := 0
		err := Iterate(newIter(), func(*tuple.Tuple) (bool, error) {
			seen++
			return seen < 3, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, seen)
	})
}
