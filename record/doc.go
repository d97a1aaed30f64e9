/*
Package record reads and writes the line-oriented text records used to move
index spaces, block vectors and sparse vectors between processes.

Every logical value goes on its own line. A line may hold more than one
whitespace-delimited scalar when a single element needs several of them
(for example, both coordinates of a curve point). Readers do not care about
line structure and consume whitespace-separated tokens.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package record

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

var (
	// ErrShortRead signals that a record ended before all values were read.
	ErrShortRead = errors.New("record: unexpected end of record")
	// ErrMalformed signals a token which cannot be parsed as the requested type.
	ErrMalformed = errors.New("record: malformed value")
)

// tracer writes to trace with key 'snarkmr'
func tracer() tracing.Trace {
	return tracing.Select("snarkmr")
}
