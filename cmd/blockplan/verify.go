package main

import (
	"context"
	"fmt"
	"io"

	"github.com/npillmayer/snarkmr"
	"github.com/npillmayer/snarkmr/block"
	"github.com/npillmayer/snarkmr/mapreduce"
	"github.com/npillmayer/snarkmr/space"
)

// verify runs a dry map-reduce over every dimension of sp: each block fills
// in its own global indices, and the assembled vector has to be the
// identity permutation.
func verify(ctx context.Context, sp space.Space, workers int, out io.Writer) error {
	alg := snarkmr.Zq{}
	r := mapreduce.NewRunner(workers)
	defer r.Close()
	for d := range sp.N() {
		proj := sp.Projection(d)
		sctx, unsubscribe := context.WithCancel(ctx)
		progress := r.Subscribe(sctx, uint(proj.NumBlocks()))
		full, err := mapreduce.Dense(ctx, r, proj, func(ctx context.Context, blk uint64) (*block.Vector[uint64], error) {
			v, err := block.Zero[uint64](alg, proj, blk)
			if err != nil {
				return nil, err
			}
			for i := v.StartIndex(); i < v.StopIndex(); i++ {
				v.Set(i, i)
			}
			return v, nil
		})
		if err != nil {
			unsubscribe()
			return fmt.Errorf("dimension %d: %w", d, err)
		}
		done := 0
		for range proj.NumBlocks() {
			if e := <-progress; e.Err == nil {
				done++
			}
		}
		unsubscribe() // a stale subscription would stall the next dimension
		for i, x := range full {
			if x != uint64(i) {
				return fmt.Errorf("dimension %d: index %d assembled as %d", d, i, x)
			}
		}
		fmt.Fprintf(out, "dimension %d: %d of %d blocks verified\n", d, done, proj.NumBlocks())
	}
	return nil
}
