package iterator

import "fmt"

// SliceIterator provides a generic iterator over a slice of any type T.
// It encapsulates the slice+index pattern used by operators that materialize
// data in memory before streaming it out. No lifecycle management: it is
// ready to use after construction and cheap enough to recreate instead of
// resetting.
type SliceIterator[T any] struct {
	data         []T
	currentIndex int
}

// NewSliceIterator creates a new iterator over the given slice, positioned
// at the beginning.
func NewSliceIterator[T any](data []T) *SliceIterator[T] {
	return &SliceIterator[T]{data: data}
}

// HasNext checks if there are more elements available.
func (it *SliceIterator[T]) HasNext() bool {
	return it.currentIndex < len(it.data)
}

// Next returns the next element and advances the position.
func (it *SliceIterator[T]) Next() (T, error) {
	var zero T
	if it.currentIndex >= len(it.data) {
		return zero, fmt.Errorf("no more elements in slice iterator")
	}

	element := it.data[it.currentIndex]
	it.currentIndex++
	return element, nil
}

// Rewind resets the read position to the beginning of the slice.
func (it *SliceIterator[T]) Rewind() {
	it.currentIndex = 0
}

// Len returns the total number of elements in the slice.
func (it *SliceIterator[T]) Len() int {
	return len(it.data)
}

// Remaining returns the number of elements left to iterate.
func (it *SliceIterator[T]) Remaining() int {
	if it.currentIndex >= len(it.data) {
		return 0
	}
	return len(it.data) - it.currentIndex
}
