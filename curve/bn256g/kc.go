package bn256g

import (
	"encoding/hex"
	"math/big"

	"github.com/npillmayer/snarkmr"
	"github.com/npillmayer/snarkmr/record"
	"golang.org/x/crypto/bn256"
)

// KC is a knowledge commitment: a value committed in G1 together with its
// α-shifted copy in G2.
type KC struct {
	G *bn256.G1
	H *bn256.G2
}

// Commit returns (s·G, αs·H) for generators G of G1 and H of G2.
func Commit(s, alpha *big.Int) KC {
	as := new(big.Int).Mul(alpha, s)
	as.Mod(as, bn256.Order)
	return KC{G: G1.Base(s), H: G2.Base(as)}
}

// KCAlgebra is the algebra of knowledge commitments. Addition is
// component-wise.
type KCAlgebra struct{}

// KCs is the algebra instance for knowledge commitments.
var KCs KCAlgebra

// Zero returns a pair of points at infinity.
func (KCAlgebra) Zero() KC {
	return KC{G: G1.Zero(), H: G2.Zero()}
}

// Add adds left and right component-wise into a new pair.
func (KCAlgebra) Add(left, right KC) KC {
	return KC{G: G1.Add(left.G, right.G), H: G2.Add(left.H, right.H)}
}

// Equal compares both components.
func (KCAlgebra) Equal(a, b KC) bool {
	return G1.Equal(a.G, b.G) && G2.Equal(a.H, b.H)
}

// WriteElement writes both components as two tokens on a single line.
func (KCAlgebra) WriteElement(w *record.Writer, x KC) error {
	return w.Line(hex.EncodeToString(x.G.Marshal()), hex.EncodeToString(x.H.Marshal()))
}

// ReadElement reads a pair written by WriteElement.
func (KCAlgebra) ReadElement(r *record.Reader) (KC, error) {
	g, err := G1.ReadElement(r)
	if err != nil {
		return KC{}, err
	}
	h, err := G2.ReadElement(r)
	if err != nil {
		return KC{}, err
	}
	return KC{G: g, H: h}, nil
}

var _ snarkmr.Algebra[KC] = KCs
