package main

import (
	"bytes"
	"context"
	"flag"
	"math/big"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/snarkmr/curve/bn256g"
	"github.com/npillmayer/snarkmr/internal/cli"
	"github.com/npillmayer/snarkmr/kcquery"
	"github.com/npillmayer/snarkmr/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDensity(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	ss := generate(rnd, 200, 0.25)
	require.Len(t, ss, 200)
	nonzero := 0
	for _, s := range ss {
		if s.Sign() != 0 {
			nonzero++
		}
	}
	assert.InDelta(t, 50, nonzero, 25)
}

func TestBuildQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Int("blocks", 16, "")
	fs.Int("workers", 0, "")
	require.NoError(t, fs.Parse([]string{"-blocks", "100", "-workers", "2"}))
	conf := cli.LoadConfig(fs)
	//
	rnd := rand.New(rand.NewSource(3))
	scalars := generate(rnd, 12, 0.5)
	var buf bytes.Buffer
	w := record.NewWriter(&buf)
	require.NoError(t, kcquery.WriteScalars(w, scalars))
	require.NoError(t, w.Flush())
	scalars, err := kcquery.ReadScalars(record.NewReader(&buf))
	require.NoError(t, err)
	//
	alpha := big.NewInt(99)
	q, err := build(context.Background(), conf, scalars, alpha)
	require.NoError(t, err)
	for i, s := range scalars {
		expected := bn256g.KCs.Zero()
		if s.Sign() != 0 {
			expected = bn256g.Commit(s, alpha)
		}
		assert.True(t, bn256g.KCs.Equal(expected, q.Get(uint64(i))), "scalar %d", i)
	}
}
