/*
Package bn256g provides element algebras for the groups of the bn256 pairing
curve, as implemented by golang.org/x/crypto/bn256.

G1 and G2 are the two source groups of the pairing. KC is a knowledge
commitment, a pair of a G1 and a G2 element which is added component-wise.
Elements are written to records as the hex encoding of their affine
marshaling; the point at infinity marshals to all zeros.

Points of package bn256 normalize themselves when marshaled. Elements shared
between goroutines must therefore not be marshaled concurrently.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bn256g

import (
	"encoding/hex"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/snarkmr"
	"github.com/npillmayer/snarkmr/record"
)

// tracer writes to trace with key 'snarkmr'
func tracer() tracing.Trace {
	return tracing.Select("snarkmr")
}

func readHex(r *record.Reader, size int) ([]byte, error) {
	tok, err := r.Token()
	if err != nil {
		return nil, err
	}
	if len(tok) != 2*size {
		return nil, fmt.Errorf("%w: point encoding has %d hex digits, expected %d",
			record.ErrMalformed, len(tok), 2*size)
	}
	b, err := hex.DecodeString(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", record.ErrMalformed, err)
	}
	return b, nil
}

func notOnCurve(group string) error {
	tracer().Errorf("bn256g: decoded %s point is not on the curve", group)
	return fmt.Errorf("%w: %s point not on curve", snarkmr.ErrNotInGroup, group)
}
