package block

import (
	"fmt"

	"github.com/npillmayer/snarkmr"
	"github.com/npillmayer/snarkmr/space"
)

// Vector is the portion of a one-dimensional vector covered by one block of a
// partition. It holds elements for global indices [StartIndex, StopIndex).
//
// A Vector is owned by a single goroutine at a time; it is not safe for
// concurrent mutation.
type Vector[T any] struct {
	alg    snarkmr.Algebra[T]
	space  space.Space
	block  uint64
	start  uint64
	stop   uint64
	values []T
}

// SpaceOf returns the one-dimensional single-block space for a full vector.
func SpaceOf[T any](full []T) space.Space {
	return space.New(uint64(len(full)))
}

// Zero creates a block vector for block blk of space sp, with all elements set
// to the identity of alg.
func Zero[T any](alg snarkmr.Algebra[T], sp space.Space, blk uint64) (*Vector[T], error) {
	v, err := newVector(alg, sp, blk)
	if err != nil {
		return nil, err
	}
	v.values = make([]T, v.stop-v.start)
	for i := range v.values {
		v.values[i] = alg.Zero()
	}
	return v, nil
}

// FromFull creates a block vector for block blk of space sp, copying its
// elements from a full-length vector. full must be of the global extent of sp.
//
// Elements are copied by assignment; element types with reference semantics
// (pointers) will share their referents with full.
func FromFull[T any](alg snarkmr.Algebra[T], sp space.Space, blk uint64, full []T) (*Vector[T], error) {
	v, err := newVector(alg, sp, blk)
	if err != nil {
		return nil, err
	}
	if uint64(len(full)) != v.GlobalSize() {
		return nil, fmt.Errorf("%w: length %d, extent %d", ErrLengthMismatch, len(full), v.GlobalSize())
	}
	v.values = make([]T, v.stop-v.start)
	copy(v.values, full[v.start:v.stop])
	return v, nil
}

// newVector validates the shape of a block vector and computes its bounds.
// It does not allocate element storage.
func newVector[T any](alg snarkmr.Algebra[T], sp space.Space, blk uint64) (*Vector[T], error) {
	if alg == nil {
		return nil, ErrNoAlgebra
	}
	if sp.N() != 1 {
		return nil, fmt.Errorf("%w: space has %d dimensions", ErrDimension, sp.N())
	}
	if !sp.ValidBlock(blk) {
		tracer().Errorf("block: block %d of %v requested", blk, sp)
		return nil, fmt.Errorf("%w: block %d of %d", ErrBlockOutOfRange, blk, sp.BlockCount()[0])
	}
	v := &Vector[T]{alg: alg, space: sp, block: blk}
	v.start, v.stop = sp.Range(blk)
	return v, nil
}

// Space returns the index space the vector is a block of.
func (v *Vector[T]) Space() space.Space { return v.space }

// Block returns the block coordinate.
func (v *Vector[T]) Block() uint64 { return v.block }

// GlobalSize returns the length of the full vector.
func (v *Vector[T]) GlobalSize() uint64 { return v.space.GlobalExtent()[0] }

// Len returns the number of elements held by the block.
func (v *Vector[T]) Len() int { return len(v.values) }

// StartIndex returns the global index of the first element.
func (v *Vector[T]) StartIndex() uint64 { return v.start }

// StopIndex returns the global index one past the last element.
func (v *Vector[T]) StopIndex() uint64 { return v.stop }

// Contains reports whether global index i belongs to the block.
func (v *Vector[T]) Contains(i uint64) bool {
	return i >= v.start && i < v.stop
}

// At returns the element at global index i. Accessing an index outside of
// [StartIndex, StopIndex) is a programming error and panics.
func (v *Vector[T]) At(i uint64) T {
	assert(v.Contains(i), "block.At: index outside of block")
	return v.values[i-v.start]
}

// Set replaces the element at global index i. Accessing an index outside of
// [StartIndex, StopIndex) is a programming error and panics.
func (v *Vector[T]) Set(i uint64, x T) {
	assert(v.Contains(i), "block.Set: index outside of block")
	v.values[i-v.start] = x
}

// Values returns the elements of the block, local index 0 corresponding to
// StartIndex. The slice is shared with v.
func (v *Vector[T]) Values() []T {
	return v.values
}

// Accumulate adds other element-wise to v. Both vectors must be the same block
// of the same space; otherwise v is left untouched and an error is returned.
func (v *Vector[T]) Accumulate(other *Vector[T]) error {
	if !v.space.Equal(other.space) {
		tracer().Errorf("block: cannot accumulate %v into %v", other.space, v.space)
		return fmt.Errorf("%w: %v and %v", ErrSpaceMismatch, v.space, other.space)
	}
	if v.block != other.block {
		return fmt.Errorf("%w: %d and %d", ErrBlockMismatch, v.block, other.block)
	}
	for i := range v.values {
		v.values[i] = v.alg.Add(v.values[i], other.values[i])
	}
	return nil
}

// EmplaceInto writes the elements of the block back into a full-length vector,
// at positions [StartIndex, StopIndex). Other positions of full are not
// touched.
func (v *Vector[T]) EmplaceInto(full []T) error {
	if uint64(len(full)) != v.GlobalSize() {
		return fmt.Errorf("%w: length %d, extent %d", ErrLengthMismatch, len(full), v.GlobalSize())
	}
	copy(full[v.start:v.stop], v.values)
	return nil
}

// Equal reports whether two block vectors cover the same block of the same
// space and hold equal elements.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if !v.space.Equal(other.space) || v.block != other.block || len(v.values) != len(other.values) {
		return false
	}
	for i := range v.values {
		if !v.alg.Equal(v.values[i], other.values[i]) {
			return false
		}
	}
	return true
}
