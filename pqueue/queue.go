package pqueue

import (
	"cmp"
	"slices"
)

// Queue is a max-priority queue. The element x with no other element y such
// that less(x, y) holds is popped first. Ties are broken arbitrarily.
//
// Queue is not safe for concurrent use.
type Queue[T any] struct {
	less func(a, b T) bool
	heap []T
}

// New creates an empty queue ordered by less, with room for capacity
// elements.
func New[T any](less func(a, b T) bool, capacity int) *Queue[T] {
	if less == nil {
		panic("pqueue.New: less function is nil")
	}
	return &Queue[T]{less: less, heap: make([]T, 0, max(capacity, 0))}
}

// NewOrdered creates a queue of ordered values.
func NewOrdered[T cmp.Ordered](capacity int) *Queue[T] {
	return New(cmp.Less[T], capacity)
}

// NewPairs creates a queue of pairs ordered by their keys.
func NewPairs[K cmp.Ordered, V any](capacity int) *Queue[Pair[K, V]] {
	return New(func(a, b Pair[K, V]) bool {
		return cmp.Less(a.Key, b.Key)
	}, capacity)
}

// NewPairsFunc creates a queue of pairs ordered by a comparison function on
// keys, returning a negative number for a < b, zero for a == b and a positive
// number for a > b.
func NewPairsFunc[K, V any](compare func(a, b K) int, capacity int) *Queue[Pair[K, V]] {
	return New(func(a, b Pair[K, V]) bool {
		return compare(a.Key, b.Key) < 0
	}, capacity)
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.heap) }

// IsEmpty is true for a queue without elements.
func (q *Queue[T]) IsEmpty() bool { return len(q.heap) == 0 }

// Capacity returns the number of elements the queue can hold without growing.
func (q *Queue[T]) Capacity() int { return cap(q.heap) }

// Reserve makes sure the queue can hold n more elements without growing.
func (q *Queue[T]) Reserve(n int) {
	q.heap = slices.Grow(q.heap, n)
}

// Clear removes all elements, keeping the storage.
func (q *Queue[T]) Clear() {
	clear(q.heap)
	q.heap = q.heap[:0]
}

// Push inserts x.
func (q *Queue[T]) Push(x T) {
	q.heap = append(q.heap, x)
	q.up(len(q.heap) - 1)
}

// PeekMax returns the maximum element without removing it. ok is false for
// an empty queue.
func (q *Queue[T]) PeekMax() (x T, ok bool) {
	if len(q.heap) == 0 {
		return x, false
	}
	return q.heap[0], true
}

// PopMax removes and returns the maximum element. ok is false for an empty
// queue.
func (q *Queue[T]) PopMax() (x T, ok bool) {
	n := len(q.heap) - 1
	if n < 0 {
		return x, false
	}
	x = q.heap[0]
	q.heap[0] = q.heap[n]
	var zero T
	q.heap[n] = zero
	q.heap = q.heap[:n]
	if n > 0 {
		q.down(0)
	}
	return x, true
}

func (q *Queue[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.heap[parent], q.heap[i]) {
			break
		}
		q.heap[parent], q.heap[i] = q.heap[i], q.heap[parent]
		i = parent
	}
}

func (q *Queue[T]) down(i int) {
	n := len(q.heap)
	for {
		largest := i
		if l := 2*i + 1; l < n && q.less(q.heap[largest], q.heap[l]) {
			largest = l
		}
		if r := 2*i + 2; r < n && q.less(q.heap[largest], q.heap[r]) {
			largest = r
		}
		if largest == i {
			return
		}
		q.heap[largest], q.heap[i] = q.heap[i], q.heap[largest]
		i = largest
	}
}
