package snarkmr

import (
	"fmt"
	"math/bits"

	"github.com/npillmayer/snarkmr/record"
)

// Zq is the additive group of integers modulo Q. Q == 0 denotes arithmetic
// modulo 2⁶⁴.
//
// Zq is a cheap stand-in for curve groups; it is used for examples, tests and
// dry runs of partitionings.
type Zq struct {
	Q uint64
}

// Zero returns 0.
func (z Zq) Zero() uint64 { return 0 }

// Add returns (left + right) mod Q.
func (z Zq) Add(left, right uint64) uint64 {
	sum, carry := bits.Add64(left, right, 0)
	if z.Q == 0 {
		return sum
	}
	if carry != 0 || sum >= z.Q {
		sum -= z.Q // operands are reduced, one subtraction suffices
	}
	return sum
}

// Equal compares two residues.
func (z Zq) Equal(a, b uint64) bool { return a == b }

// Reduce maps an arbitrary integer to its residue.
func (z Zq) Reduce(x uint64) uint64 {
	if z.Q == 0 {
		return x
	}
	return x % z.Q
}

// WriteElement writes x as a decimal.
func (z Zq) WriteElement(w *record.Writer, x uint64) error {
	return w.Uint(x)
}

// ReadElement reads a decimal and checks that it is a reduced residue.
func (z Zq) ReadElement(r *record.Reader) (uint64, error) {
	x, err := r.Uint()
	if err != nil {
		return 0, err
	}
	if z.Q != 0 && x >= z.Q {
		T().Errorf("zq: element %d not reduced modulo %d", x, z.Q)
		return 0, fmt.Errorf("%w: %d ≥ modulus %d", ErrNotInGroup, x, z.Q)
	}
	return x, nil
}

var _ Algebra[uint64] = Zq{}
