package pqueue

import (
	"cmp"
	"fmt"
)

// Pair couples a key with a value. Comparisons look at the key only.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MakePair creates a pair.
func MakePair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// ComparePairs orders pairs by their keys.
func ComparePairs[K cmp.Ordered, V any](a, b Pair[K, V]) int {
	return cmp.Compare(a.Key, b.Key)
}
