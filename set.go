package ordered

import (
	"fmt"
	"iter"

	"github.com/npillmayer/ordered/rbtree"
	"golang.org/x/exp/constraints"
)

// SetIterator is a bidirectional position within a Set. Set elements are
// read-only, as modifying them in place could break the ordering.
type SetIterator[K any] struct {
	it rbtree.Iterator[K]
}

// Next returns the following position.
func (si SetIterator[K]) Next() SetIterator[K] { return SetIterator[K]{it: si.it.Next()} }

// Prev returns the preceding position.
func (si SetIterator[K]) Prev() SetIterator[K] { return SetIterator[K]{it: si.it.Prev()} }

// Value returns the element at the iterator's position.
func (si SetIterator[K]) Value() K { return si.it.Value() }

// Equal reports whether two iterators denote the same position.
func (si SetIterator[K]) Equal(other SetIterator[K]) bool { return si.it.Equal(other.it) }

// IsEnd reports whether the iterator is a past-the-end position.
func (si SetIterator[K]) IsEnd() bool { return si.it.IsEnd() }

// SetReverseIterator walks a Set from back to front.
type SetReverseIterator[K any] struct {
	rit rbtree.ReverseIterator[K]
}

// Next moves towards the front of the set.
func (sr SetReverseIterator[K]) Next() SetReverseIterator[K] {
	return SetReverseIterator[K]{rit: sr.rit.Next()}
}

// Prev moves towards the back of the set.
func (sr SetReverseIterator[K]) Prev() SetReverseIterator[K] {
	return SetReverseIterator[K]{rit: sr.rit.Prev()}
}

// Value returns the element at the iterator's position.
func (sr SetReverseIterator[K]) Value() K { return sr.rit.Value() }

// Equal reports whether two reverse iterators denote the same position.
func (sr SetReverseIterator[K]) Equal(other SetReverseIterator[K]) bool {
	return sr.rit.Equal(other.rit)
}

// Base returns the underlying forward position.
func (sr SetReverseIterator[K]) Base() SetIterator[K] {
	return SetIterator[K]{it: sr.rit.Base()}
}

// Set is an ordered set of unique keys.
//
// A Set has to be created by one of the constructors and must not be copied
// by value; use Clone for deep copies.
type Set[K any] struct {
	tree *rbtree.Tree[K, K]
}

// NewSet creates an empty set ordered by less, which has to be a strict weak
// order.
func NewSet[K any](less func(a, b K) bool) (*Set[K], error) {
	return NewSetWithAllocator[K](less, nil)
}

// NewSetWithAllocator creates an empty set ordered by less, allocating its
// nodes through alloc. A nil allocator selects the default heap allocation.
func NewSetWithAllocator[K any](less func(a, b K) bool, alloc rbtree.Allocator[K]) (*Set[K], error) {
	if less == nil {
		return nil, fmt.Errorf("%w: set needs a comparator", ErrIllegalArguments)
	}
	tree, err := rbtree.New(rbtree.Config[K, K]{
		KeyOf:     rbtree.Identity[K],
		Less:      less,
		Allocator: alloc,
	})
	if err != nil {
		return nil, err
	}
	return &Set[K]{tree: tree}, nil
}

// NewOrderedSet creates an empty set for keys with a natural order, filled
// with keys.
func NewOrderedSet[K constraints.Ordered](keys ...K) *Set[K] {
	s, err := NewSet[K](naturalLess[K])
	if err != nil {
		panic(err) // cannot happen: comparator is set
	}
	if err = s.InsertAll(keys...); err != nil {
		panic(err) // cannot happen: heap allocation does not fail
	}
	return s
}

// Len returns the number of elements.
func (s *Set[K]) Len() int { return s.tree.Len() }

// IsEmpty reports whether the set has no elements.
func (s *Set[K]) IsEmpty() bool { return s.tree.IsEmpty() }

// MaxLen returns the theoretical upper bound of the number of elements.
func (s *Set[K]) MaxLen() int { return s.tree.MaxLen() }

// Begin returns the position of the smallest element.
func (s *Set[K]) Begin() SetIterator[K] { return SetIterator[K]{it: s.tree.Begin()} }

// End returns the past-the-end position.
func (s *Set[K]) End() SetIterator[K] { return SetIterator[K]{it: s.tree.End()} }

// RBegin returns a reverse iterator at the largest element.
func (s *Set[K]) RBegin() SetReverseIterator[K] { return SetReverseIterator[K]{rit: s.tree.RBegin()} }

// REnd returns the reverse past-the-end position.
func (s *Set[K]) REnd() SetReverseIterator[K] { return SetReverseIterator[K]{rit: s.tree.REnd()} }

// Insert inserts k if it is not present yet. It returns the position of the
// element equivalent to k and whether k was inserted.
func (s *Set[K]) Insert(k K) (SetIterator[K], bool, error) {
	it, ok, err := s.tree.Insert(k)
	return SetIterator[K]{it: it}, ok, err
}

// InsertHint inserts k, using hint as a suggestion for the position.
func (s *Set[K]) InsertHint(hint SetIterator[K], k K) (SetIterator[K], error) {
	it, err := s.tree.InsertHint(hint.it, k)
	return SetIterator[K]{it: it}, err
}

// InsertAll inserts all keys not present yet.
func (s *Set[K]) InsertAll(keys ...K) error {
	return s.tree.InsertAll(keys...)
}

// Erase removes the element at it and returns the following position.
func (s *Set[K]) Erase(it SetIterator[K]) SetIterator[K] {
	return SetIterator[K]{it: s.tree.Erase(it.it)}
}

// EraseKey removes k and returns the number of elements removed.
func (s *Set[K]) EraseKey(k K) int { return s.tree.EraseKey(k) }

// EraseRange removes all elements in [first, last).
func (s *Set[K]) EraseRange(first, last SetIterator[K]) SetIterator[K] {
	return SetIterator[K]{it: s.tree.EraseRange(first.it, last.it)}
}

// Clear removes all elements.
func (s *Set[K]) Clear() { s.tree.Clear() }

// Find returns the position of the element equivalent to k, or End.
func (s *Set[K]) Find(k K) SetIterator[K] { return SetIterator[K]{it: s.tree.Find(k)} }

// Contains reports whether an element equivalent to k is present.
func (s *Set[K]) Contains(k K) bool { return s.tree.Contains(k) }

// Count returns the number of elements equivalent to k (0 or 1).
func (s *Set[K]) Count(k K) int { return s.tree.Count(k) }

// LowerBound returns the position of the first element not less than k.
func (s *Set[K]) LowerBound(k K) SetIterator[K] { return SetIterator[K]{it: s.tree.LowerBound(k)} }

// UpperBound returns the position of the first element greater than k.
func (s *Set[K]) UpperBound(k K) SetIterator[K] { return SetIterator[K]{it: s.tree.UpperBound(k)} }

// EqualRange returns the range of elements equivalent to k.
func (s *Set[K]) EqualRange(k K) (SetIterator[K], SetIterator[K]) {
	return s.LowerBound(k), s.UpperBound(k)
}

// Clone returns a deep copy of the set.
func (s *Set[K]) Clone() (*Set[K], error) {
	tree, err := s.tree.Clone()
	if err != nil {
		return nil, err
	}
	return &Set[K]{tree: tree}, nil
}

// Assign replaces the contents and the ordering of s by a copy of other.
func (s *Set[K]) Assign(other *Set[K]) error {
	return s.tree.Assign(other.tree)
}

// Swap exchanges the contents of two sets in constant time.
func (s *Set[K]) Swap(other *Set[K]) { s.tree.Swap(other.tree) }

// KeyComp returns the ordering of the set.
func (s *Set[K]) KeyComp() func(a, b K) bool { return s.tree.Less() }

// ValueComp returns the ordering of the set; for sets it is the same as KeyComp.
func (s *Set[K]) ValueComp() func(a, b K) bool { return s.tree.Less() }

// All returns an iterator over all elements in ascending order.
func (s *Set[K]) All() iter.Seq[K] { return s.tree.All() }

// Backward returns an iterator over all elements in descending order.
func (s *Set[K]) Backward() iter.Seq[K] { return s.tree.Backward() }

// Equal reports whether two sets hold equivalent elements.
func (s *Set[K]) Equal(other *Set[K]) bool {
	less := s.tree.Less()
	return rbtree.Equal(s.tree, other.tree, func(a, b K) bool {
		return !less(a, b) && !less(b, a)
	})
}

// Less reports whether s is lexicographically less than other.
func (s *Set[K]) Less(other *Set[K]) bool {
	return rbtree.LexicographicalLess(s.tree, other.tree, s.tree.Less())
}

// Check validates the internal invariants of the set (for testing and
// debugging purposes).
func (s *Set[K]) Check() error {
	return s.tree.Check()
}
