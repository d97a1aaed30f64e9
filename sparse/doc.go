/*
Package sparse implements sparse vectors of group elements.

A sparse vector stores (index, value) pairs with strictly ascending indices
and omits identity elements. Looking up an index which has not been stored
yields the identity, so arithmetic code may treat absent entries as neutral
contributions.

Sparse vectors are built append-only, typically one per block of a
space.Space partition. Concatenating the vectors of successive blocks in
ascending block order preserves global index order without re-sorting.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sparse

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

var (
	// ErrNotAscending signals an append which would break ascending index order.
	ErrNotAscending = errors.New("sparse: indices must be strictly ascending")
	// ErrNoAlgebra signals a missing element algebra.
	ErrNoAlgebra = errors.New("sparse: algebra is required")
)

// tracer writes to trace with key 'snarkmr'
func tracer() tracing.Trace {
	return tracing.Select("snarkmr")
}

func mustHold(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
