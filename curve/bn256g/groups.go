package bn256g

import (
	"bytes"
	"encoding/hex"
	"math/big"

	"github.com/npillmayer/snarkmr"
	"github.com/npillmayer/snarkmr/record"
	"golang.org/x/crypto/bn256"
)

const (
	g1Size = 64  // bytes of a marshaled G1 point
	g2Size = 128 // bytes of a marshaled G2 point
)

// G1Algebra is the algebra of the group G1.
type G1Algebra struct{}

// G1 is the algebra instance for G1 points.
var G1 G1Algebra

// Zero returns a fresh point at infinity.
func (G1Algebra) Zero() *bn256.G1 {
	return new(bn256.G1).ScalarBaseMult(new(big.Int))
}

// Add returns a new point left+right.
func (G1Algebra) Add(left, right *bn256.G1) *bn256.G1 {
	return new(bn256.G1).Add(left, right)
}

// Equal compares the affine forms of a and b.
func (G1Algebra) Equal(a, b *bn256.G1) bool {
	return bytes.Equal(a.Marshal(), b.Marshal())
}

// Base returns k times the generator of G1.
func (G1Algebra) Base(k *big.Int) *bn256.G1 {
	return new(bn256.G1).ScalarBaseMult(k)
}

// WriteElement writes x as a single hex token.
func (G1Algebra) WriteElement(w *record.Writer, x *bn256.G1) error {
	return w.Line(hex.EncodeToString(x.Marshal()))
}

// ReadElement reads a hex token and checks that it denotes a point of G1.
func (G1Algebra) ReadElement(r *record.Reader) (*bn256.G1, error) {
	b, err := readHex(r, g1Size)
	if err != nil {
		return nil, err
	}
	x, ok := new(bn256.G1).Unmarshal(b)
	if !ok {
		return nil, notOnCurve("G1")
	}
	return x, nil
}

// G2Algebra is the algebra of the group G2.
type G2Algebra struct{}

// G2 is the algebra instance for G2 points.
var G2 G2Algebra

// Zero returns a fresh point at infinity.
func (G2Algebra) Zero() *bn256.G2 {
	return new(bn256.G2).ScalarBaseMult(new(big.Int))
}

// Add returns a new point left+right.
func (G2Algebra) Add(left, right *bn256.G2) *bn256.G2 {
	return new(bn256.G2).Add(left, right)
}

// Equal compares the affine forms of a and b.
func (G2Algebra) Equal(a, b *bn256.G2) bool {
	return bytes.Equal(a.Marshal(), b.Marshal())
}

// Base returns k times the generator of G2.
func (G2Algebra) Base(k *big.Int) *bn256.G2 {
	return new(bn256.G2).ScalarBaseMult(k)
}

// WriteElement writes x as a single hex token.
func (G2Algebra) WriteElement(w *record.Writer, x *bn256.G2) error {
	return w.Line(hex.EncodeToString(x.Marshal()))
}

// ReadElement reads a hex token and checks that it denotes a point of G2.
func (G2Algebra) ReadElement(r *record.Reader) (*bn256.G2, error) {
	b, err := readHex(r, g2Size)
	if err != nil {
		return nil, err
	}
	x, ok := new(bn256.G2).Unmarshal(b)
	if !ok {
		return nil, notOnCurve("G2")
	}
	return x, nil
}

var (
	_ snarkmr.Algebra[*bn256.G1] = G1
	_ snarkmr.Algebra[*bn256.G2] = G2
)
