package iterator

import "rowdb/pkg/tuple"

// Iterate encapsulates the common HasNext/Next loop, skipping nil tuples.
// The processFunc controls iteration flow:
//   - return (false, nil) to stop early
//   - return (true, nil) to continue
//   - return (_, error) to stop with error
func Iterate(iter TupleIterator, processFunc func(*tuple.Tuple) (continueLooping bool, err error)) error {
	for {
		hasNext, err := iter.HasNext()
		if err != nil {
			return err
		}
		if !hasNext {
			break
		}

		tup, err := iter.Next()
		if err != nil {
			return err
		}
		if tup == nil {
			continue
		}

		shouldContinue, err := processFunc(tup)
		if err != nil {
			return err
		}
		if !shouldContinue {
			break
		}
	}

	return nil
}

// ForEach applies a processing function to each tuple in the iterator,
// stopping early if processFunc returns an error.
func ForEach(iter TupleIterator, processFunc func(*tuple.Tuple) error) error {
	return Iterate(iter, func(tup *tuple.Tuple) (bool, error) {
		return true, processFunc(tup)
	})
}

// Collect returns all tuples from the iterator as a slice. This consumes
// the entire iterator and loads all tuples into memory.
func Collect(iter TupleIterator) ([]*tuple.Tuple, error) {
	var results []*tuple.Tuple

	err := Iterate(iter, func(tup *tuple.Tuple) (bool, error) {
		results = append(results, tup)
		return true, nil
	})

	return results, err
}

// Take returns up to n tuples from the iterator.
func Take(iter TupleIterator, n int) ([]*tuple.Tuple, error) {
	tuples := make([]*tuple.Tuple, 0, n)

	err := Iterate(iter, func(tup *tuple.Tuple) (bool, error) {
		tuples = append(tuples, tup)
		return len(tuples) < n, nil
	})

	return tuples, err
}

// Count returns the total number of tuples in the iterator, consuming it.
func Count(iter TupleIterator) (int, error) {
	count := 0
	err := Iterate(iter, func(*tuple.Tuple) (bool, error) {
		count++
		return true, nil
	})
	return count, err
}
