package snarkmr

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/snarkmr/record"
)

func TestZqAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	z := Zq{Q: 97}
	for _, c := range []struct{ a, b, sum uint64 }{
		{0, 0, 0},
		{1, 2, 3},
		{50, 47, 0},
		{96, 96, 95},
	} {
		if s := z.Add(c.a, c.b); s != c.sum {
			t.Errorf("%d + %d: expected %d, have %d", c.a, c.b, c.sum, s)
		}
	}
	big := Zq{Q: math.MaxUint64 - 58} // largest 64-bit prime
	a := big.Q - 1
	if s := big.Add(a, a); s != big.Q-2 {
		t.Errorf("expected carry to be reduced, have %d", s)
	}
	if s := (Zq{}).Add(math.MaxUint64, 2); s != 1 {
		t.Errorf("expected wrap-around modulo 2^64, have %d", s)
	}
}

func TestZqIdentity(t *testing.T) {
	z := Zq{Q: 13}
	for x := range uint64(13) {
		if z.Add(z.Zero(), x) != x || z.Add(x, z.Zero()) != x {
			t.Errorf("zero is not neutral for %d", x)
		}
	}
	if z.Reduce(27) != 1 || (Zq{}).Reduce(27) != 27 {
		t.Errorf("unexpected reduction")
	}
}

func TestZqCodec(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	z := Zq{Q: 97}
	var buf bytes.Buffer
	w := record.NewWriter(&buf)
	if err := z.WriteElement(w, 42); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "42\n" {
		t.Errorf("expected record '42', have %q", buf.String())
	}
	x, err := z.ReadElement(record.NewReader(&buf))
	if err != nil || x != 42 {
		t.Errorf("expected 42, have %d (%v)", x, err)
	}
	_, err = z.ReadElement(record.NewReader(strings.NewReader("97")))
	if !errors.Is(err, ErrNotInGroup) {
		t.Errorf("expected ErrNotInGroup, have %v", err)
	}
}
