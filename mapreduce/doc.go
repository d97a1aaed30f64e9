/*
Package mapreduce drives the computation of large vectors block by block.

A 1-D space.Space is partitioned into blocks, and a client supplied mapper
computes the contribution of one block at a time. Blocks never overlap, so
mappers run concurrently without synchronization. Results are reduced in
ascending block order: dense block vectors are emplaced into a full vector,
sparse vectors are concatenated.

A Runner bounds the number of mappers in flight and broadcasts an Event
for every finished block to any number of subscribers, e.g. progress
displays.

	r := mapreduce.NewRunner(8)
	defer r.Close()
	full, err := mapreduce.Dense(ctx, r, sp, mapper)

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package mapreduce

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

var (
	// ErrDimension signals a space which is not 1-dimensional.
	ErrDimension = errors.New("mapreduce: space must be 1-dimensional")
	// ErrForeignBlock signals a mapper result which does not belong to the
	// block it has been requested for.
	ErrForeignBlock = errors.New("mapreduce: result does not belong to block")
	// ErrNothingToReduce signals a reduction without inputs.
	ErrNothingToReduce = errors.New("mapreduce: no vectors to reduce")
)

// tracer writes to trace with key 'snarkmr'
func tracer() tracing.Trace {
	return tracing.Select("snarkmr")
}
