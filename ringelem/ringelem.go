/*
Package ringelem provides an element algebra for polynomials of a residue
number system ring R_Q = Z_Q[X]/(X^N+1), as implemented by lattigo.

Vectors of ring elements arise in lattice-based commitments and can be
partitioned and reduced exactly like vectors of curve points.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ringelem

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/snarkmr"
	"github.com/npillmayer/snarkmr/record"
	"github.com/tuneinsight/lattigo/v4/ring"
)

// tracer writes to trace with key 'snarkmr'
func tracer() tracing.Trace {
	return tracing.Select("snarkmr")
}

// Algebra is the additive group of polynomials of a fixed ring.
type Algebra struct {
	r      *ring.Ring
	degree int
}

// New creates the algebra of a ring of degree n over the given moduli.
// Degree and moduli have to be NTT-friendly.
func New(n int, moduli ...uint64) (*Algebra, error) {
	r, err := ring.NewRing(n, moduli)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", snarkmr.ErrIllegalArguments, err)
	}
	return FromRing(r), nil
}

// FromRing wraps an existing ring.
func FromRing(r *ring.Ring) *Algebra {
	if r == nil {
		panic("ringelem.FromRing: ring is nil")
	}
	return &Algebra{r: r, degree: r.NewPoly().N()}
}

// Ring returns the underlying ring.
func (a *Algebra) Ring() *ring.Ring {
	return a.r
}

// Degree returns the number of coefficients per modulus.
func (a *Algebra) Degree() int {
	return a.degree
}

// Zero returns a fresh zero polynomial.
func (a *Algebra) Zero() *ring.Poly {
	return a.r.NewPoly()
}

// Add returns a new polynomial left+right.
func (a *Algebra) Add(left, right *ring.Poly) *ring.Poly {
	sum := a.r.NewPoly()
	a.r.Add(left, right, sum)
	return sum
}

// Equal compares all coefficients of p and q.
func (a *Algebra) Equal(p, q *ring.Poly) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for l := range p.Coeffs {
		if len(p.Coeffs[l]) != len(q.Coeffs[l]) {
			return false
		}
		for i, c := range p.Coeffs[l] {
			if c != q.Coeffs[l][i] {
				return false
			}
		}
	}
	return true
}

// Monomial returns c·X^k, with c reduced per modulus.
func (a *Algebra) Monomial(c uint64, k int) *ring.Poly {
	p := a.r.NewPoly()
	for l, q := range a.r.Modulus {
		p.Coeffs[l][k] = c % q
	}
	return p
}

// WriteElement writes all coefficients of x on a single line, modulus by
// modulus.
func (a *Algebra) WriteElement(w *record.Writer, x *ring.Poly) error {
	tokens := make([]string, 0, len(x.Coeffs)*x.N())
	for _, limb := range x.Coeffs {
		for _, c := range limb {
			tokens = append(tokens, strconv.FormatUint(c, 10))
		}
	}
	return w.Line(tokens...)
}

// ReadElement reads a polynomial written by WriteElement. Every coefficient
// has to be reduced by its modulus.
func (a *Algebra) ReadElement(r *record.Reader) (*ring.Poly, error) {
	p := a.r.NewPoly()
	for l, q := range a.r.Modulus {
		for i := range p.Coeffs[l] {
			c, err := r.Uint()
			if err != nil {
				return nil, err
			}
			if c >= q {
				tracer().Errorf("ringelem: coefficient %d not reduced mod %d", c, q)
				return nil, fmt.Errorf("%w: coefficient %d ≥ modulus %d", snarkmr.ErrNotInGroup, c, q)
			}
			p.Coeffs[l][i] = c
		}
	}
	return p, nil
}

var _ snarkmr.Algebra[*ring.Poly] = (*Algebra)(nil)
