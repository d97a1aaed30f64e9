package main

import (
	"context"
	"math/big"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/snarkmr/curve/bn256g"
	"github.com/npillmayer/snarkmr/internal/cli"
	"github.com/npillmayer/snarkmr/kcquery"
	"github.com/npillmayer/snarkmr/mapreduce"
	"github.com/npillmayer/snarkmr/sparse"
)

// build runs the query in blocks and reports progress to the tracer.
func build(ctx context.Context, conf *koanfadapter.KConf, scalars []*big.Int,
	alpha *big.Int) (*sparse.Vector[bn256g.KC], error) {
	//
	blocks := max(1, min(cli.Uint(conf, "blocks", 16), uint64(len(scalars))))
	r := mapreduce.NewRunner(conf.GetInt("workers"))
	defer r.Close()
	progress := r.Subscribe(ctx, uint(blocks))
	go func() {
		done := 0
		for e := range progress {
			done++
			if e.Err != nil {
				tracer().Errorf("block %d failed: %v", e.Block, e.Err)
				continue
			}
			tracer().Infof("block %d done (%d/%d)", e.Block, done, blocks)
		}
	}()
	return kcquery.Build(ctx, r, scalars, alpha, blocks)
}
