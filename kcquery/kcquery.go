/*
Package kcquery builds knowledge-commitment queries of a proving key.

A query is the sparse vector of commitments (s·G, αs·H) for a sequence of
scalars s, with G and H the generators of bn256 groups G1 and G2. Zero
scalars commit to the identity and are left out.

Queries are built block-wise: Mapper hands the computation of one block to
package mapreduce, and Build runs all blocks of a partitioned query.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package kcquery

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/snarkmr/curve/bn256g"
	"github.com/npillmayer/snarkmr/mapreduce"
	"github.com/npillmayer/snarkmr/record"
	"github.com/npillmayer/snarkmr/space"
	"github.com/npillmayer/snarkmr/sparse"
	"golang.org/x/crypto/bn256"
)

// ErrRange signals a block range outside the scalar sequence.
var ErrRange = errors.New("kcquery: block range exceeds scalars")

// tracer writes to trace with key 'snarkmr'
func tracer() tracing.Trace {
	return tracing.Select("snarkmr")
}

// checkInterval is the number of scalars between two checks for cancellation.
const checkInterval = 64

// Block commits to the scalars in [start, stop) and returns the non-zero
// commitments, indexed by scalar position.
func Block(ctx context.Context, scalars []*big.Int, alpha *big.Int, start, stop uint64) (*sparse.Vector[bn256g.KC], error) {
	if start > stop || stop > uint64(len(scalars)) {
		return nil, fmt.Errorf("%w: [%d,%d) of %d", ErrRange, start, stop, len(scalars))
	}
	q := sparse.New[bn256g.KC](bn256g.KCs)
	s := new(big.Int)
	for i := start; i < stop; i++ {
		if (i-start)%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if s.Mod(scalars[i], bn256.Order).Sign() == 0 {
			continue
		}
		if err := q.PushBack(i, bn256g.Commit(s, alpha)); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// Mapper returns a mapper computing blocks of the query for scalars.
func Mapper(scalars []*big.Int, alpha *big.Int) mapreduce.SparseMapper[bn256g.KC] {
	return func(ctx context.Context, blk, start, stop uint64) (*sparse.Vector[bn256g.KC], error) {
		tracer().Debugf("kcquery: block %d covers [%d,%d)", blk, start, stop)
		return Block(ctx, scalars, alpha, start, stop)
	}
}

// Build computes the query for scalars, split into the given number of
// blocks.
func Build(ctx context.Context, r *mapreduce.Runner, scalars []*big.Int, alpha *big.Int,
	blocks uint64) (*sparse.Vector[bn256g.KC], error) {
	//
	sp := space.New(uint64(len(scalars)))
	if err := sp.SetBlockPartition(blocks); err != nil {
		return nil, err
	}
	return mapreduce.Sparse(ctx, r, bn256g.KCs, sp, Mapper(scalars, alpha))
}

// WriteScalars writes a scalar record: the number of scalars, followed by
// one decimal per line.
func WriteScalars(w *record.Writer, scalars []*big.Int) error {
	w.Uint(uint64(len(scalars)))
	for _, s := range scalars {
		w.Line(s.String())
	}
	return w.Err()
}

// ReadScalars reads a record written by WriteScalars. Negative scalars are
// accepted and reduced when committed.
func ReadScalars(r *record.Reader) ([]*big.Int, error) {
	n, err := r.Uint()
	if err != nil {
		return nil, err
	}
	scalars := make([]*big.Int, 0, record.CapHint(n))
	for range n {
		tok, err := r.Token()
		if err != nil {
			return nil, err
		}
		s, ok := new(big.Int).SetString(tok, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a decimal scalar", record.ErrMalformed, tok)
		}
		scalars = append(scalars, s)
	}
	return scalars, nil
}
