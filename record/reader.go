package record

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// maxToken limits the length of a single token. Serialized group elements are
// hex strings of a few hundred bytes; polynomials are written coefficient by
// coefficient.
const maxToken = 64 * 1024

// preallocLimit caps allocations driven by counts read from a stream.
const preallocLimit = 1 << 16

// Reader consumes whitespace-delimited tokens of a record stream.
type Reader struct {
	sc  *bufio.Scanner
	err error
}

// NewReader creates a record reader for r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxToken)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

// Token returns the next raw token.
func (r *Reader) Token() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			r.err = fmt.Errorf("%w: %v", ErrShortRead, err)
		} else {
			r.err = fmt.Errorf("%w (%w)", ErrShortRead, io.ErrUnexpectedEOF)
		}
		return "", r.err
	}
	return r.sc.Text(), nil
}

// Uint reads the next token as an unsigned decimal.
func (r *Reader) Uint() (uint64, error) {
	tok, err := r.Token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		r.err = fmt.Errorf("%w: %q is not an unsigned integer", ErrMalformed, tok)
		return 0, r.err
	}
	return v, nil
}

// Uints reads n unsigned decimals.
//
// n usually stems from the stream itself, therefore storage grows with the
// values actually read instead of being allocated up front.
func (r *Reader) Uints(n uint64) ([]uint64, error) {
	vs := make([]uint64, 0, CapHint(n))
	for i := uint64(0); i < n; i++ {
		v, err := r.Uint()
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}

// CapHint returns a safe initial capacity for n values announced by a stream.
func CapHint(n uint64) int {
	return int(min(n, preallocLimit))
}
