package snarkmr

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/snarkmr/record"
)

// T traces to the tracer with key 'snarkmr'.
func T() tracing.Trace {
	return tracing.Select("snarkmr")
}

// Error is an error type for the snarkmr module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")

// ErrNotInGroup is flagged when a decoded value is not a group element.
const ErrNotInGroup = Error("value is not a group element")

// Group describes the additive group containers store elements of.
//
// For elements a, b, c, Add should be associative and commutative, and Zero
// should be the neutral element:
//
//	Add(Zero(), a) == a == Add(a, Zero())
//
// Zero must return a fresh value on every call, and Add must not modify or
// retain its arguments. Containers rely on this to hand out values without
// aliasing internal storage.
type Group[T any] interface {
	Zero() T
	Add(left, right T) T
	Equal(a, b T) bool
}

// Codec converts group elements to and from the line-oriented record format.
// An element is written as a single record line.
type Codec[T any] interface {
	WriteElement(w *record.Writer, x T) error
	ReadElement(r *record.Reader) (T, error)
}

// Algebra bundles everything a container needs to know about its elements.
type Algebra[T any] interface {
	Group[T]
	Codec[T]
}
