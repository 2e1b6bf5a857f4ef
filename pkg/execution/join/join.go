package join

import (
	"errors"
	"fmt"

	"rowdb/pkg/iterator"
	"rowdb/pkg/tuple"
)

// Join implements the relational join as a tuple-at-a-time nested loop over
// two child iterators: for each tuple of the outer (left) child, the inner
// (right) child is scanned for tuples satisfying the join predicate, and
// each match is emitted as the concatenation of the two tuples.
//
// The scan is resumable across calls. When a match is found, the current
// outer tuple is kept in a pending slot so the next call resumes the inner
// scan for that same outer tuple instead of re-pulling the outer child.
// Together the pending slot and the inner cursor exactly determine progress:
// one outer tuple matching k inner tuples yields exactly k consecutive
// output tuples, in inner-iteration order, before the next outer tuple is
// considered.
//
// Join is single-threaded; the inner child's cursor is exclusively owned by
// the operator during an open session. A child failure propagates verbatim
// from the call that triggered it, after which the operator's state is
// undefined: close it, do not reuse it.
type Join struct {
	base      *iterator.BaseIterator
	predicate *JoinPredicate

	outer iterator.DbIterator // children[0], the left relation
	inner iterator.DbIterator // children[1], the right relation

	tupleDesc *tuple.TupleDescription // Merged output schema
	pending   *tuple.Tuple            // Outer tuple whose inner scan is mid-flight
}

// NewJoin creates a join of outer (left) against inner (right) under the
// given predicate. The merged output schema, outer fields followed by inner
// fields, is computed once here.
func NewJoin(predicate *JoinPredicate, outer, inner iterator.DbIterator) (*Join, error) {
	if predicate == nil {
		return nil, fmt.Errorf("join predicate cannot be nil")
	}
	tupleDesc, err := mergedDesc(outer, inner)
	if err != nil {
		return nil, err
	}

	j := &Join{
		predicate: predicate,
		outer:     outer,
		inner:     inner,
		tupleDesc: tupleDesc,
	}
	j.base = iterator.NewBaseIterator(j.fetchNext)
	return j, nil
}

// mergedDesc computes the concatenated output schema from the children.
func mergedDesc(outer, inner iterator.DbIterator) (*tuple.TupleDescription, error) {
	if outer == nil {
		return nil, fmt.Errorf("outer child operator cannot be nil")
	}
	if inner == nil {
		return nil, fmt.Errorf("inner child operator cannot be nil")
	}

	outerDesc := outer.GetTupleDesc()
	innerDesc := inner.GetTupleDesc()
	if outerDesc == nil || innerDesc == nil {
		return nil, fmt.Errorf("child operators must have valid tuple descriptors")
	}

	merged := tuple.Combine(outerDesc, innerDesc)
	if merged == nil {
		return nil, fmt.Errorf("failed to combine tuple descriptors")
	}
	return merged, nil
}

// Open opens the outer child then the inner child, propagating the first
// failure. Opening an already open join is a no-op.
func (j *Join) Open() error {
	if j.base.IsOpened() {
		return nil
	}

	if err := j.outer.Open(); err != nil {
		return fmt.Errorf("failed to open outer child: %w", err)
	}
	if err := j.inner.Open(); err != nil {
		return fmt.Errorf("failed to open inner child: %w", err)
	}

	j.base.MarkOpened()
	return nil
}

// Close closes both children unconditionally: a failure closing the outer
// child does not prevent the inner close. The pending slot is emptied.
func (j *Join) Close() error {
	j.pending = nil

	var errs []error
	if err := j.outer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("outer child close: %w", err))
	}
	if err := j.inner.Close(); err != nil {
		errs = append(errs, fmt.Errorf("inner child close: %w", err))
	}
	if err := j.base.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Rewind restarts the join from the beginning: close followed by open. The
// pending slot is emptied, so a subsequent drain reproduces the original
// full sequence.
func (j *Join) Rewind() error {
	if err := j.Close(); err != nil {
		return fmt.Errorf("failed to close during rewind: %w", err)
	}
	return j.Open()
}

// fetchNext produces the next matching concatenated tuple, or nil when the
// join is exhausted. At most one tuple is produced per call.
//
// Each call first determines the current outer tuple: the pending tuple if
// an inner scan is mid-flight, otherwise the outer child's next tuple. It
// then advances the inner child until the predicate matches, emitting the
// concatenation and parking the outer tuple in the pending slot. When the
// inner child is exhausted without a match, the pending slot is cleared,
// only the inner child is rewound, and the loop pulls a fresh outer tuple.
// The join is exhausted when the outer child is exhausted and no inner scan
// is pending.
func (j *Join) fetchNext() (*tuple.Tuple, error) {
	for {
		outerTuple := j.pending
		if outerTuple == nil {
			hasOuter, err := j.outer.HasNext()
			if err != nil {
				return nil, err
			}
			if !hasOuter {
				return nil, nil
			}
			outerTuple, err = j.outer.Next()
			if err != nil {
				return nil, err
			}
		}

		for {
			hasInner, err := j.inner.HasNext()
			if err != nil {
				return nil, err
			}
			if !hasInner {
				break
			}

			innerTuple, err := j.inner.Next()
			if err != nil {
				return nil, err
			}

			matches, err := j.predicate.Filter(outerTuple, innerTuple)
			if err != nil {
				return nil, err
			}
			if matches {
				j.pending = outerTuple
				return tuple.ConcatInto(j.tupleDesc, outerTuple, innerTuple)
			}
		}

		j.pending = nil
		if err := j.inner.Rewind(); err != nil {
			return nil, err
		}
	}
}

// HasNext checks if more joined tuples are available.
func (j *Join) HasNext() (bool, error) {
	return j.base.HasNext()
}

// Next returns the next joined tuple.
func (j *Join) Next() (*tuple.Tuple, error) {
	return j.base.Next()
}

// GetTupleDesc returns the merged output schema, outer fields then inner
// fields.
func (j *Join) GetTupleDesc() *tuple.TupleDescription {
	return j.tupleDesc
}

// Predicate returns the join condition for plan inspection.
func (j *Join) Predicate() *JoinPredicate {
	return j.predicate
}

// JoinField1Name returns the name of the outer-side join field, resolved
// against the outer child's schema.
func (j *Join) JoinField1Name() (string, error) {
	return j.outer.GetTupleDesc().GetFieldName(j.predicate.Field1())
}

// JoinField2Name returns the name of the inner-side join field, resolved
// against the inner child's schema.
func (j *Join) JoinField2Name() (string, error) {
	return j.inner.GetTupleDesc().GetFieldName(j.predicate.Field2())
}

// GetChildren returns the two child iterators, outer first. Exposed for
// plan-rewriting frameworks.
func (j *Join) GetChildren() []iterator.DbIterator {
	return []iterator.DbIterator{j.outer, j.inner}
}

// SetChildren replaces the child iterators (outer first) and recomputes the
// merged schema from the new children, so the schema can never disagree with
// the data the children produce. Children cannot be swapped while the join
// is open: the pending slot and inner cursor would no longer describe the
// new children's progress.
func (j *Join) SetChildren(outer, inner iterator.DbIterator) error {
	if j.base.IsOpened() {
		return fmt.Errorf("cannot replace children of an open join")
	}

	tupleDesc, err := mergedDesc(outer, inner)
	if err != nil {
		return err
	}

	j.outer = outer
	j.inner = inner
	j.tupleDesc = tupleDesc
	j.pending = nil
	return nil
}
