package space

import (
	"fmt"

	"github.com/npillmayer/snarkmr/record"
)

// WriteRecord writes the space as a record: the dimension N, N global extents,
// N block counts, the number of parameters and the parameters.
func (sp Space) WriteRecord(w *record.Writer) error {
	w.Uint(uint64(sp.N())) // dimension N is for error checking only
	w.Uints(sp.global...)
	w.Uints(sp.blocks...)
	w.Uint(uint64(len(sp.params)))
	return w.Uints(sp.params...)
}

// ReadRecord reads a space record written by WriteRecord. n is the expected dimension;
// a record for a different dimension is rejected.
//
// On error the returned space is the zero value.
func ReadRecord(r *record.Reader, n int) (Space, error) {
	dim, err := r.Uint()
	if err != nil {
		return Space{}, err
	}
	if dim != uint64(n) {
		tracer().Errorf("space: record has dimension %d, expected %d", dim, n)
		return Space{}, fmt.Errorf("%w: record has %d dimensions, expected %d", ErrDimension, dim, n)
	}
	global, err := r.Uints(dim)
	if err != nil {
		return Space{}, err
	}
	blocks, err := r.Uints(dim)
	if err != nil {
		return Space{}, err
	}
	sp := Space{global: global}
	if err := sp.SetBlockPartition(blocks...); err != nil {
		return Space{}, err
	}
	plen, err := r.Uint()
	if err != nil {
		return Space{}, err
	}
	if sp.params, err = r.Uints(plen); err != nil {
		return Space{}, err
	}
	if plen == 0 {
		sp.params = nil
	}
	return sp, nil
}
