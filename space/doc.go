/*
Package space partitions an N-dimensional grid of work units into blocks.

A Space describes a global extent per dimension and a number of blocks per
dimension. Blocks are as even as possible: if a dimension does not divide
evenly, blocks get the ceiling size, and the first few blocks (those with the
lowest coordinates) are one unit shorter, so that block sizes always sum up to
the global extent exactly. Dimensions are partitioned independently.

	sp := space.New(10)
	err := sp.SetBlockPartition(3)   // block sizes 3, 3, 4 at offsets 0, 3, 6

Blocks never overlap, which makes them suitable units of work for goroutines,
processes or machines which do not share memory.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package space

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

var (
	// ErrZeroBlockCount signals a partition request with zero blocks in a dimension.
	ErrZeroBlockCount = errors.New("space: block count must be positive")
	// ErrDimension signals a mismatch between expected and actual dimensionality.
	ErrDimension = errors.New("space: dimension mismatch")
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
