package sparse

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/snarkmr"
)

// Vector is a sparse vector with strictly ascending indices.
type Vector[T any] struct {
	alg     snarkmr.Algebra[T]
	indices []uint64
	values  []T
}

// New creates an empty sparse vector over algebra alg.
func New[T any](alg snarkmr.Algebra[T]) *Vector[T] {
	mustHold(alg != nil, "sparse.New: algebra is nil")
	return &Vector[T]{alg: alg}
}

// Len returns the number of stored entries.
func (v *Vector[T]) Len() int { return len(v.indices) }

// IsEmpty reports whether no entries are stored.
func (v *Vector[T]) IsEmpty() bool { return len(v.indices) == 0 }

// Reserve makes room for n more entries without reallocation.
func (v *Vector[T]) Reserve(n int) {
	v.indices = slices.Grow(v.indices, n)
	v.values = slices.Grow(v.values, n)
}

// Clear removes all entries, keeping allocated storage.
func (v *Vector[T]) Clear() {
	v.indices = v.indices[:0]
	clear(v.values)
	v.values = v.values[:0]
}

// LastIndex returns the largest stored index; ok is false for an empty vector.
func (v *Vector[T]) LastIndex() (index uint64, ok bool) {
	if len(v.indices) == 0 {
		return 0, false
	}
	return v.indices[len(v.indices)-1], true
}

// PushBack appends an entry. index must exceed every index stored so far.
func (v *Vector[T]) PushBack(index uint64, value T) error {
	if last, ok := v.LastIndex(); ok && index <= last {
		return fmt.Errorf("%w: %d after %d", ErrNotAscending, index, last)
	}
	v.indices = append(v.indices, index)
	v.values = append(v.values, value)
	return nil
}

// Get returns the value stored for index, or the identity if index has no
// entry.
func (v *Vector[T]) Get(index uint64) T {
	if i, found := slices.BinarySearch(v.indices, index); found {
		return v.values[i]
	}
	return v.alg.Zero()
}

// Set overwrites the value stored for an existing index. It never inserts new
// entries and reports whether index was found.
func (v *Vector[T]) Set(index uint64, value T) bool {
	i, found := slices.BinarySearch(v.indices, index)
	if found {
		v.values[i] = value
	}
	return found
}

// IndexAt returns the index of the i-th entry.
func (v *Vector[T]) IndexAt(i int) uint64 { return v.indices[i] }

// ValueAt returns the value of the i-th entry.
func (v *Vector[T]) ValueAt(i int) T { return v.values[i] }

// SetValueAt overwrites the value of the i-th entry.
func (v *Vector[T]) SetValueAt(i int, value T) { v.values[i] = value }

// All returns an iterator over all (index, value) entries in ascending order.
func (v *Vector[T]) All() iter.Seq2[uint64, T] {
	return func(yield func(uint64, T) bool) {
		for i, index := range v.indices {
			if !yield(index, v.values[i]) {
				return
			}
		}
	}
}

// Concat appends all entries of other, unchanged and in order. Every index of
// other has to exceed every index of v, which holds for vectors of successive
// blocks of a partition concatenated in ascending block order. Only the
// boundary between v and other is checked; on error v is unchanged.
func (v *Vector[T]) Concat(other *Vector[T]) error {
	if other.IsEmpty() {
		return nil
	}
	if last, ok := v.LastIndex(); ok && other.indices[0] <= last {
		tracer().Errorf("sparse: concat of index %d after %d", other.indices[0], last)
		return fmt.Errorf("%w: concatenating %d after %d", ErrNotAscending, other.indices[0], last)
	}
	v.indices = append(v.indices, other.indices...)
	v.values = append(v.values, other.values...)
	return nil
}

// Equal reports whether two sparse vectors hold the same entries.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if !slices.Equal(v.indices, other.indices) {
		return false
	}
	for i := range v.values {
		if !v.alg.Equal(v.values[i], other.values[i]) {
			return false
		}
	}
	return true
}
