package query

import (
	"fmt"
	"strconv"
	"strings"

	"rowdb/pkg/iterator"
	"rowdb/pkg/primitives"
	"rowdb/pkg/tuple"

	mapset "github.com/deckarep/golang-set/v2"
)

// Distinct eliminates duplicate tuples from its child's output, streaming
// the first occurrence of each distinct tuple as it is seen. The seen-set is
// held in memory for the duration of a drain and cleared on Rewind.
type Distinct struct {
	*iterator.UnaryOperator
	seen mapset.Set[string]
}

// NewDistinct creates a Distinct operator over the given child.
func NewDistinct(child iterator.DbIterator) (*Distinct, error) {
	if child == nil {
		return nil, fmt.Errorf("child operator cannot be nil")
	}

	d := &Distinct{
		seen: mapset.NewThreadUnsafeSet[string](),
	}
	unaryOp, err := iterator.NewUnaryOperator(child, d.readNext)
	if err != nil {
		return nil, err
	}
	d.UnaryOperator = unaryOp
	return d, nil
}

// readNext reads child tuples until it finds one not yet emitted.
func (d *Distinct) readNext() (*tuple.Tuple, error) {
	for {
		t, err := d.FetchNext()
		if err != nil || t == nil {
			return t, err
		}

		key, err := tupleKey(t)
		if err != nil {
			return nil, err
		}
		if d.seen.Add(key) {
			return t, nil
		}
	}
}

// Open opens the child and starts with an empty seen-set.
func (d *Distinct) Open() error {
	if err := d.UnaryOperator.Open(); err != nil {
		return err
	}
	d.seen.Clear()
	return nil
}

// Rewind resets the child and clears the seen-set so the drain reproduces
// the original sequence.
func (d *Distinct) Rewind() error {
	if err := d.UnaryOperator.Rewind(); err != nil {
		return err
	}
	d.seen.Clear()
	return nil
}

// Close releases the seen-set along with the child.
func (d *Distinct) Close() error {
	d.seen.Clear()
	return d.UnaryOperator.Close()
}

// tupleKey derives a set key from a tuple: its hash plus the rendered
// values, so hash collisions cannot conflate distinct tuples.
func tupleKey(t *tuple.Tuple) (string, error) {
	hash, err := t.Hash()
	if err != nil {
		return "", fmt.Errorf("failed to hash tuple: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(hash), 16))
	for i := 0; i < t.NumFields(); i++ {
		field, _ := t.GetField(primitives.ColumnID(i))
		sb.WriteByte(0x1f)
		if field != nil {
			sb.WriteString(field.String())
		}
	}
	return sb.String(), nil
}
