package ordered

import "fmt"

// Pair is the element type of a Map: a key together with its mapped value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MakePair creates a pair from a key and a value.
func MakePair[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

func keyOfPair[K, V any](p Pair[K, V]) K {
	return p.Key
}
