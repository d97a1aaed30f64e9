package mapreduce

import (
	"context"
	"fmt"

	"github.com/npillmayer/snarkmr"
	"github.com/npillmayer/snarkmr/block"
	"github.com/npillmayer/snarkmr/sparse"
	"github.com/npillmayer/snarkmr/space"
)

// DenseMapper computes the block vector for block blk.
type DenseMapper[T any] func(ctx context.Context, blk uint64) (*block.Vector[T], error)

// SparseMapper computes the non-identity entries of block blk, which covers
// the global index range [start, stop).
type SparseMapper[T any] func(ctx context.Context, blk, start, stop uint64) (*sparse.Vector[T], error)

// Dense maps every block of sp and assembles the results into a full vector
// of sp's global extent. Every result has to be the vector of the block it
// has been requested for.
func Dense[T any](ctx context.Context, r *Runner, sp space.Space, fn DenseMapper[T]) ([]T, error) {
	if sp.N() != 1 {
		return nil, fmt.Errorf("%w: have %d dimensions", ErrDimension, sp.N())
	}
	full := make([]T, sp.GlobalExtent()[0])
	err := r.run(ctx, sp, func(ctx context.Context, blk uint64) error {
		v, err := fn(ctx, blk)
		if err != nil {
			return err
		}
		if v == nil || !v.Space().Equal(sp) || v.Block() != blk {
			return ErrForeignBlock
		}
		// blocks are disjoint, so concurrent writes never overlap
		return v.EmplaceInto(full)
	})
	if err != nil {
		return nil, err
	}
	return full, nil
}

// Sparse maps every block of sp and concatenates the results in ascending
// block order. All indices a mapper returns have to lie within the index
// range of its block.
func Sparse[T any](ctx context.Context, r *Runner, alg snarkmr.Algebra[T], sp space.Space,
	fn SparseMapper[T]) (*sparse.Vector[T], error) {
	//
	if sp.N() != 1 {
		return nil, fmt.Errorf("%w: have %d dimensions", ErrDimension, sp.N())
	}
	parts := make([]*sparse.Vector[T], sp.NumBlocks())
	err := r.run(ctx, sp, func(ctx context.Context, blk uint64) error {
		start, stop := sp.Range(blk)
		v, err := fn(ctx, blk, start, stop)
		if err != nil {
			return err
		}
		if v == nil {
			return ErrForeignBlock
		}
		if v.Len() > 0 {
			if first, last := v.IndexAt(0), v.IndexAt(v.Len()-1); first < start || last >= stop {
				return fmt.Errorf("%w: indices [%d,%d] outside [%d,%d)", ErrForeignBlock,
					first, last, start, stop)
			}
		}
		parts[blk] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	result := sparse.New(alg)
	size := 0
	for _, v := range parts {
		size += v.Len()
	}
	result.Reserve(size)
	for _, v := range parts {
		if err := result.Concat(v); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("mapreduce: reduced %d blocks to %d entries", len(parts), result.Len())
	return result, nil
}

// AccumulateAll adds up block vectors of the same block. The inputs are left
// unchanged.
func AccumulateAll[T any](alg snarkmr.Algebra[T], parts ...*block.Vector[T]) (*block.Vector[T], error) {
	if len(parts) == 0 {
		return nil, ErrNothingToReduce
	}
	sum, err := block.Zero(alg, parts[0].Space(), parts[0].Block())
	if err != nil {
		return nil, err
	}
	for _, v := range parts {
		if err := sum.Accumulate(v); err != nil {
			return nil, err
		}
	}
	return sum, nil
}
