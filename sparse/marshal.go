package sparse

import (
	"fmt"

	"github.com/npillmayer/snarkmr"
	"github.com/npillmayer/snarkmr/record"
)

// WriteRecord writes the vector as a record: the number of entries, all
// indices, then all values, using the element codec.
func (v *Vector[T]) WriteRecord(w *record.Writer) error {
	w.Uint(uint64(len(v.indices)))
	w.Uints(v.indices...)
	for _, x := range v.values {
		if err := v.alg.WriteElement(w, x); err != nil {
			return err
		}
	}
	return w.Err()
}

// ReadRecord reads a sparse vector record written by WriteRecord. Indices in
// the record have to be strictly ascending. A failed read returns no vector.
func ReadRecord[T any](r *record.Reader, alg snarkmr.Algebra[T]) (*Vector[T], error) {
	if alg == nil {
		return nil, ErrNoAlgebra
	}
	n, err := r.Uint()
	if err != nil {
		return nil, err
	}
	v := New(alg)
	if v.indices, err = r.Uints(n); err != nil {
		return nil, err
	}
	for i := 1; i < len(v.indices); i++ {
		if v.indices[i] <= v.indices[i-1] {
			return nil, fmt.Errorf("%w: record lists %d after %d", ErrNotAscending,
				v.indices[i], v.indices[i-1])
		}
	}
	v.values = make([]T, 0, len(v.indices))
	for i := uint64(0); i < n; i++ {
		x, err := alg.ReadElement(r)
		if err != nil {
			return nil, fmt.Errorf("sparse: value for index %d: %w", v.indices[i], err)
		}
		v.values = append(v.values, x)
	}
	return v, nil
}
