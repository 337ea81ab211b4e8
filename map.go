package ordered

import (
	"fmt"
	"iter"

	"github.com/npillmayer/ordered/rbtree"
	"golang.org/x/exp/constraints"
)

// MapIterator is a bidirectional position within a Map. Its value is the
// key/value pair; clients may modify the mapped value through Ptr, but never
// the key.
type MapIterator[K, V any] = rbtree.Iterator[Pair[K, V]]

// MapReverseIterator walks a Map from back to front.
type MapReverseIterator[K, V any] = rbtree.ReverseIterator[Pair[K, V]]

// Map is an ordered map with unique keys.
//
// A Map has to be created by one of the constructors and must not be copied
// by value; use Clone for deep copies.
type Map[K, V any] struct {
	tree *rbtree.Tree[K, Pair[K, V]]
}

// NewMap creates an empty map ordered by less, which has to be a strict weak
// order.
func NewMap[K, V any](less func(a, b K) bool) (*Map[K, V], error) {
	return NewMapWithAllocator[K, V](less, nil)
}

// NewMapWithAllocator creates an empty map ordered by less, allocating its
// nodes through alloc. A nil allocator selects the default heap allocation.
func NewMapWithAllocator[K, V any](less func(a, b K) bool, alloc rbtree.Allocator[Pair[K, V]]) (*Map[K, V], error) {
	if less == nil {
		return nil, fmt.Errorf("%w: map needs a comparator", ErrIllegalArguments)
	}
	tree, err := rbtree.New(rbtree.Config[K, Pair[K, V]]{
		KeyOf:     keyOfPair[K, V],
		Less:      less,
		Allocator: alloc,
	})
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// NewOrderedMap creates an empty map for keys with a natural order.
func NewOrderedMap[K constraints.Ordered, V any]() *Map[K, V] {
	m, err := NewMap[K, V](naturalLess[K])
	if err != nil {
		panic(err) // cannot happen: comparator is set
	}
	return m
}

func naturalLess[K constraints.Ordered](a, b K) bool {
	return a < b
}

// Len returns the number of elements.
func (m *Map[K, V]) Len() int { return m.tree.Len() }

// IsEmpty reports whether the map has no elements.
func (m *Map[K, V]) IsEmpty() bool { return m.tree.IsEmpty() }

// MaxLen returns the theoretical upper bound of the number of elements.
func (m *Map[K, V]) MaxLen() int { return m.tree.MaxLen() }

// Begin returns the position of the element with the smallest key.
func (m *Map[K, V]) Begin() MapIterator[K, V] { return m.tree.Begin() }

// End returns the past-the-end position.
func (m *Map[K, V]) End() MapIterator[K, V] { return m.tree.End() }

// RBegin returns a reverse iterator at the element with the largest key.
func (m *Map[K, V]) RBegin() MapReverseIterator[K, V] { return m.tree.RBegin() }

// REnd returns the reverse past-the-end position.
func (m *Map[K, V]) REnd() MapReverseIterator[K, V] { return m.tree.REnd() }

// Insert inserts the mapping k → v if k is not present yet. It returns the
// position of the element with key k and whether the mapping was inserted.
func (m *Map[K, V]) Insert(k K, v V) (MapIterator[K, V], bool, error) {
	return m.tree.Insert(MakePair(k, v))
}

// InsertPair inserts a key/value pair if its key is not present yet.
func (m *Map[K, V]) InsertPair(p Pair[K, V]) (MapIterator[K, V], bool, error) {
	return m.tree.Insert(p)
}

// InsertHint inserts the mapping k → v, using hint as a suggestion for the
// position. It returns the position of the element with key k.
func (m *Map[K, V]) InsertHint(hint MapIterator[K, V], k K, v V) (MapIterator[K, V], error) {
	return m.tree.InsertHint(hint, MakePair(k, v))
}

// InsertAll inserts all pairs whose keys are not present yet.
func (m *Map[K, V]) InsertAll(pairs ...Pair[K, V]) error {
	return m.tree.InsertAll(pairs...)
}

// Index returns a pointer to the value mapped to k. If k is not present, a
// mapping to the zero value of V is inserted first. The error is non-nil only
// if the allocation strategy fails.
func (m *Map[K, V]) Index(k K) (*V, error) {
	it := m.tree.LowerBound(k)
	if it.IsEnd() || m.tree.Less()(k, it.Value().Key) {
		var zero V
		var err error
		if it, err = m.tree.InsertHint(it, MakePair(k, zero)); err != nil {
			T().Errorf("ordered: cannot insert key %v: %v", k, err)
			return nil, err
		}
	}
	return &it.Ptr().Value, nil
}

// At returns the value mapped to k, or ErrKeyNotFound.
func (m *Map[K, V]) At(k K) (V, error) {
	it := m.tree.Find(k)
	if it.IsEnd() {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return it.Value().Value, nil
}

// Get returns the value mapped to k and whether k is present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	it := m.tree.Find(k)
	if it.IsEnd() {
		var zero V
		return zero, false
	}
	return it.Value().Value, true
}

// Erase removes the element at it and returns the following position.
func (m *Map[K, V]) Erase(it MapIterator[K, V]) MapIterator[K, V] {
	return m.tree.Erase(it)
}

// EraseKey removes the element with key k and returns the number of elements
// removed.
func (m *Map[K, V]) EraseKey(k K) int {
	return m.tree.EraseKey(k)
}

// EraseRange removes all elements in [first, last).
func (m *Map[K, V]) EraseRange(first, last MapIterator[K, V]) MapIterator[K, V] {
	return m.tree.EraseRange(first, last)
}

// Clear removes all elements.
func (m *Map[K, V]) Clear() { m.tree.Clear() }

// Find returns the position of the element with key k, or End.
func (m *Map[K, V]) Find(k K) MapIterator[K, V] { return m.tree.Find(k) }

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool { return m.tree.Contains(k) }

// Count returns the number of elements with key k (0 or 1).
func (m *Map[K, V]) Count(k K) int { return m.tree.Count(k) }

// LowerBound returns the position of the first element with a key not less than k.
func (m *Map[K, V]) LowerBound(k K) MapIterator[K, V] { return m.tree.LowerBound(k) }

// UpperBound returns the position of the first element with a key greater than k.
func (m *Map[K, V]) UpperBound(k K) MapIterator[K, V] { return m.tree.UpperBound(k) }

// EqualRange returns the range of elements with key k.
func (m *Map[K, V]) EqualRange(k K) (MapIterator[K, V], MapIterator[K, V]) {
	return m.tree.EqualRange(k)
}

// Clone returns a deep copy of the map. If copying fails, no map is returned
// and all partially copied elements are released.
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	tree, err := m.tree.Clone()
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// Assign replaces the contents and the ordering of m by a copy of other.
func (m *Map[K, V]) Assign(other *Map[K, V]) error {
	return m.tree.Assign(other.tree)
}

// Swap exchanges the contents of two maps in constant time.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree.Swap(other.tree)
}

// KeyComp returns the key ordering.
func (m *Map[K, V]) KeyComp() func(a, b K) bool {
	return m.tree.Less()
}

// ValueComp returns an ordering of key/value pairs by their keys.
func (m *Map[K, V]) ValueComp() func(a, b Pair[K, V]) bool {
	less := m.tree.Less()
	return func(a, b Pair[K, V]) bool {
		return less(a.Key, b.Key)
	}
}

// All returns an iterator over all mappings in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over all mappings in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.Backward() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Values returns an iterator over all mapped values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// Equal reports whether two maps hold equivalent keys, in the same order,
// mapped to values which are equal according to eq.
func (m *Map[K, V]) Equal(other *Map[K, V], eq func(a, b V) bool) bool {
	less := m.tree.Less()
	return rbtree.Equal(m.tree, other.tree, func(a, b Pair[K, V]) bool {
		return !less(a.Key, b.Key) && !less(b.Key, a.Key) && eq(a.Value, b.Value)
	})
}

// Less reports whether m is lexicographically less than other. Mappings are
// compared by key first, and by value with less for equivalent keys.
func (m *Map[K, V]) Less(other *Map[K, V], less func(a, b V) bool) bool {
	kless := m.tree.Less()
	return rbtree.LexicographicalLess(m.tree, other.tree, func(a, b Pair[K, V]) bool {
		if kless(a.Key, b.Key) {
			return true
		}
		if kless(b.Key, a.Key) {
			return false
		}
		return less(a.Value, b.Value)
	})
}

// Check validates the internal invariants of the map (for testing and
// debugging purposes).
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}
