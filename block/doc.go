/*
Package block implements block vectors: the slice of a one-dimensional vector
which belongs to a single block of a space.Space partition.

A block vector is either created zero-filled, to accumulate contributions
computed for its block, or copied out of a full-length vector. When the work
on a block is done, it is written back into a full-length vector with
EmplaceInto. Elements are addressed by their global index.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package block

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

var (
	// ErrDimension signals that a space is not one-dimensional.
	ErrDimension = errors.New("block: space must be one-dimensional")
	// ErrBlockOutOfRange signals a block coordinate outside of the partition.
	ErrBlockOutOfRange = errors.New("block: block out of range")
	// ErrLengthMismatch signals a full vector not matching the global extent.
	ErrLengthMismatch = errors.New("block: vector length does not match global extent")
	// ErrSpaceMismatch signals an operation on block vectors of different spaces.
	ErrSpaceMismatch = errors.New("block: index spaces differ")
	// ErrBlockMismatch signals an operation on block vectors of different blocks.
	ErrBlockMismatch = errors.New("block: blocks differ")
	// ErrNoAlgebra signals a missing element algebra.
	ErrNoAlgebra = errors.New("block: algebra is required")
)

// tracer writes to trace with key 'snarkmr'
func tracer() tracing.Trace {
	return tracing.Select("snarkmr")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
