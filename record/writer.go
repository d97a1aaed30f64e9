package record

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Writer emits records, one value per line.
//
// Write errors are sticky: after the first failure all further calls are
// no-ops and Flush reports the error.
type Writer struct {
	bw  *bufio.Writer
	err error
}

// NewWriter creates a record writer on top of w.
func NewWriter(w io.Writer) *Writer {
	if bw, ok := w.(*bufio.Writer); ok {
		return &Writer{bw: bw}
	}
	return &Writer{bw: bufio.NewWriter(w)}
}

// Uint writes a single unsigned value on its own line.
func (w *Writer) Uint(v uint64) error {
	return w.Line(strconv.FormatUint(v, 10))
}

// Uints writes each value on its own line.
func (w *Writer) Uints(vs ...uint64) error {
	for _, v := range vs {
		if err := w.Uint(v); err != nil {
			return err
		}
	}
	return w.err
}

// Line writes tokens separated by a single blank, terminated by a newline.
// Tokens must not contain whitespace.
func (w *Writer) Line(tokens ...string) error {
	if w.err != nil {
		return w.err
	}
	for i, tok := range tokens {
		mustHold(tok != "" && strings.IndexFunc(tok, isSpace) < 0,
			"record token must be non-empty and free of whitespace")
		if i > 0 {
			if w.err = w.bw.WriteByte(' '); w.err != nil {
				return w.err
			}
		}
		if _, w.err = w.bw.WriteString(tok); w.err != nil {
			return w.err
		}
	}
	w.err = w.bw.WriteByte('\n')
	return w.err
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		tracer().Errorf("record writer: %v", w.err)
		return w.err
	}
	w.err = w.bw.Flush()
	return w.err
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func mustHold(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
