package block

import (
	"fmt"

	"github.com/npillmayer/snarkmr"
	"github.com/npillmayer/snarkmr/record"
	"github.com/npillmayer/snarkmr/space"
)

// WriteRecord writes the block vector as a record: its space, the block
// coordinate and every element, using the element codec.
func (v *Vector[T]) WriteRecord(w *record.Writer) error {
	if err := v.space.WriteRecord(w); err != nil {
		return err
	}
	if err := w.Uint(v.block); err != nil {
		return err
	}
	for _, x := range v.values {
		if err := v.alg.WriteElement(w, x); err != nil {
			return err
		}
	}
	return w.Err()
}

// ReadRecord reads a block vector record written by WriteRecord.
//
// Start and stop indices are recomputed from the space and block read, never
// taken from the stream. A failed read returns no vector at all.
func ReadRecord[T any](r *record.Reader, alg snarkmr.Algebra[T]) (*Vector[T], error) {
	sp, err := space.ReadRecord(r, 1)
	if err != nil {
		return nil, err
	}
	blk, err := r.Uint()
	if err != nil {
		return nil, err
	}
	v, err := newVector(alg, sp, blk)
	if err != nil {
		return nil, err
	}
	n := v.stop - v.start
	v.values = make([]T, 0, record.CapHint(n))
	for i := uint64(0); i < n; i++ {
		x, err := alg.ReadElement(r)
		if err != nil {
			return nil, fmt.Errorf("block: element %d: %w", v.start+i, err)
		}
		v.values = append(v.values, x)
	}
	return v, nil
}
