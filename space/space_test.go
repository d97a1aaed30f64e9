package space

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/snarkmr/record"
)

func TestDefaultPartitionIsOneBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	for _, g := range []uint64{0, 1, 7, 1000} {
		sp := New(g)
		if sp.NumBlocks() != 1 {
			t.Fatalf("expected 1 block for extent %d, have %d", g, sp.NumBlocks())
		}
		if size := sp.IndexSize(0)[0]; size != g {
			t.Errorf("extent %d: expected single block of size %d, have %d", g, g, size)
		}
		if off := sp.IndexOffset(0)[0]; off != 0 {
			t.Errorf("extent %d: expected offset 0, have %d", g, off)
		}
	}
}

func TestTenIntoThreeBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	sp := New(10)
	if err := sp.SetBlockPartition(3); err != nil {
		t.Fatal(err)
	}
	if sp.BlockSize()[0] != 4 {
		t.Errorf("expected ceiling block size 4, have %d", sp.BlockSize()[0])
	}
	sizes := []uint64{3, 3, 4}
	offsets := []uint64{0, 3, 6}
	for b := uint64(0); b < 3; b++ {
		if s := sp.IndexSize(b)[0]; s != sizes[b] {
			t.Errorf("block %d: expected size %d, have %d", b, sizes[b], s)
		}
		if o := sp.IndexOffset(b)[0]; o != offsets[b] {
			t.Errorf("block %d: expected offset %d, have %d", b, offsets[b], o)
		}
	}
	start, stop := sp.Range(2)
	if start != 6 || stop != 10 {
		t.Errorf("expected range [6,10) for last block, have [%d,%d)", start, stop)
	}
}

func TestPartitionSumsUpExactly(t *testing.T) {
	for g := uint64(0); g <= 40; g++ {
		for k := uint64(1); k <= 45; k++ {
			sp := New(g)
			if err := sp.SetBlockPartition(k); err != nil {
				t.Fatal(err)
			}
			var sum uint64
			for b := uint64(0); b < k; b++ {
				// derive offsets as prefix sums instead of trusting the closed form
				if off := sp.IndexOffset(b)[0]; off != sum {
					t.Fatalf("G=%d K=%d block %d: offset %d, prefix sum %d", g, k, b, off, sum)
				}
				size := sp.IndexSize(b)[0]
				if size > sp.BlockSize()[0] || size+1 < sp.BlockSize()[0] {
					t.Fatalf("G=%d K=%d block %d: size %d not within one of %d",
						g, k, b, size, sp.BlockSize()[0])
				}
				if b > 0 && size < sp.IndexSize(b-1)[0] {
					t.Fatalf("G=%d K=%d: short blocks must come first", g, k)
				}
				sum += size
			}
			if sum != g {
				t.Fatalf("G=%d K=%d: sizes sum up to %d", g, k, sum)
			}
		}
	}
}

func TestZeroBlockCountFails(t *testing.T) {
	sp := New(10, 20)
	err := sp.SetBlockPartition(2, 0)
	if !errors.Is(err, ErrZeroBlockCount) {
		t.Fatalf("expected ErrZeroBlockCount, have %v", err)
	}
	if !slices.Equal(sp.BlockCount(), []uint64{1, 1}) {
		t.Errorf("failed partition must leave space unchanged, have %v", sp.BlockCount())
	}
	if err = sp.SetBlockPartition(2); !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension for wrong number of block counts, have %v", err)
	}
}

func TestMultiDimensionalPartition(t *testing.T) {
	sp := New(10, 6)
	if err := sp.SetBlockPartition(3, 2); err != nil {
		t.Fatal(err)
	}
	if sp.NumBlocks() != 6 {
		t.Fatalf("expected 6 blocks, have %d", sp.NumBlocks())
	}
	if got := sp.IndexSize(1, 1); !slices.Equal(got, []uint64{3, 3}) {
		t.Errorf("expected size [3 3] for block (1,1), have %v", got)
	}
	if got := sp.IndexOffset(2, 1); !slices.Equal(got, []uint64{6, 3}) {
		t.Errorf("expected offset [6 3] for block (2,1), have %v", got)
	}
	var blocks [][]uint64
	for b := range sp.Blocks() {
		blocks = append(blocks, b)
	}
	expected := [][]uint64{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	if !slices.EqualFunc(blocks, expected, slices.Equal[[]uint64]) {
		t.Errorf("unexpected block enumeration %v", blocks)
	}
}

func TestProjection(t *testing.T) {
	sp := New(10, 6)
	_ = sp.SetBlockPartition(3, 2)
	p := sp.Projection(0)
	q := New(10)
	_ = q.SetBlockPartition(3)
	if !p.Equal(q) {
		t.Errorf("expected projection %v, have %v", q, p)
	}
	if p.Projection(0).N() != 1 || sp.Projection(1).GlobalExtent()[0] != 6 {
		t.Errorf("unexpected projection of dimension 1")
	}
}

func TestInvalidBlockPanics(t *testing.T) {
	sp := New(10)
	_ = sp.SetBlockPartition(3)
	if sp.ValidBlock(3) || !sp.ValidBlock(2) || sp.ValidBlock(0, 0) {
		t.Errorf("ValidBlock reports wrong result")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected IndexSize to panic for block 3")
		}
	}()
	sp.IndexSize(3)
}

func TestCopiesDoNotShareState(t *testing.T) {
	a := New(10)
	a.AddParam(1)
	b := a
	_ = b.SetBlockPartition(5)
	b.AddParam(2)
	a.AddParam(3)
	if a.BlockCount()[0] != 1 {
		t.Errorf("partitioning a copy changed the original")
	}
	if !slices.Equal(a.Params(), []uint64{1, 3}) || !slices.Equal(b.Params(), []uint64{1, 2}) {
		t.Errorf("parameters shared between copies: %v / %v", a.Params(), b.Params())
	}
	if a.Equal(b) {
		t.Errorf("spaces with different partitions must not be equal")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	sp := New(1000, 7)
	_ = sp.SetBlockPartition(9, 2)
	sp.AddParam(42)
	sp.AddParam(7)
	var buf bytes.Buffer
	w := record.NewWriter(&buf)
	if err := sp.WriteRecord(w); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "2\n1000\n7\n9\n2\n2\n42\n7\n" {
		t.Errorf("unexpected record layout %q", buf.String())
	}
	q, err := ReadRecord(record.NewReader(&buf), 2)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Equal(sp) || !slices.Equal(q.Params(), sp.Params()) ||
		!slices.Equal(q.BlockSize(), sp.BlockSize()) {
		t.Errorf("round trip changed space: %v → %v", sp, q)
	}
}

func TestReadRecordFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	cases := []struct {
		input string
		err   error
	}{
		{"2\n10\n10\n1\n1\n0\n", ErrDimension},
		{"1\n10\n0\n0\n", ErrZeroBlockCount},
		{"1\n10\n", record.ErrShortRead},
		{"1\n10\n2\n3\n1\n", record.ErrShortRead},
		{"1\nten\n2\n0\n", record.ErrMalformed},
	}
	for _, c := range cases {
		_, err := ReadRecord(record.NewReader(strings.NewReader(c.input)), 1)
		if !errors.Is(err, c.err) {
			t.Errorf("input %q: expected %v, have %v", c.input, c.err, err)
		}
	}
}
