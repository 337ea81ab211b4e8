package rbtree

// Iterator is a bidirectional position within a tree.
//
// Iterators are values; moving them returns the new position:
//
//	for it := tree.Begin(); !it.Equal(tree.End()); it = it.Next() {
//	    fmt.Println(it.Value())
//	}
//
// An iterator stays valid as long as its node is part of the tree. Moving
// before Begin or past End is not checked. Dereferencing End yields the zero
// value of V.
type Iterator[V any] struct {
	node *Node[V]
}

func iteratorAt[V any](n *Node[V]) Iterator[V] {
	return Iterator[V]{node: n}
}

// Next returns the position of the in-order successor.
func (it Iterator[V]) Next() Iterator[V] {
	return Iterator[V]{node: successor(it.node)}
}

// Prev returns the position of the in-order predecessor. Prev of End is the
// last element.
func (it Iterator[V]) Prev() Iterator[V] {
	return Iterator[V]{node: predecessor(it.node)}
}

// Value returns the value at the iterator's position.
func (it Iterator[V]) Value() V {
	return it.node.value
}

// Ptr returns a pointer to the stored value. Clients must not modify the parts
// of the value the key is projected from.
func (it Iterator[V]) Ptr() *V {
	return &it.node.value
}

// Equal reports whether two iterators denote the same position.
func (it Iterator[V]) Equal(other Iterator[V]) bool {
	return it.node == other.node
}

// IsEnd reports whether the iterator is a past-the-end position.
func (it Iterator[V]) IsEnd() bool {
	return it.node == nil || isHeader(it.node)
}

// IsValid reports whether the iterator has been obtained from a tree at all.
// The zero Iterator is not valid.
func (it Iterator[V]) IsValid() bool {
	return it.node != nil
}

// ReverseIterator walks a tree from back to front.
//
// Like its STL namesake it wraps a base iterator and denotes the element
// before the base position: RBegin wraps End, REnd wraps Begin.
type ReverseIterator[V any] struct {
	base Iterator[V]
}

// Reverse creates a reverse iterator from a base position.
func Reverse[V any](it Iterator[V]) ReverseIterator[V] {
	return ReverseIterator[V]{base: it}
}

// Base returns the underlying forward position.
func (rit ReverseIterator[V]) Base() Iterator[V] {
	return rit.base
}

// Next moves towards the front of the tree.
func (rit ReverseIterator[V]) Next() ReverseIterator[V] {
	return ReverseIterator[V]{base: rit.base.Prev()}
}

// Prev moves towards the back of the tree.
func (rit ReverseIterator[V]) Prev() ReverseIterator[V] {
	return ReverseIterator[V]{base: rit.base.Next()}
}

// Value returns the value before the base position.
func (rit ReverseIterator[V]) Value() V {
	return rit.base.Prev().Value()
}

// Ptr returns a pointer to the value before the base position.
func (rit ReverseIterator[V]) Ptr() *V {
	return rit.base.Prev().Ptr()
}

// Equal reports whether two reverse iterators denote the same position.
func (rit ReverseIterator[V]) Equal(other ReverseIterator[V]) bool {
	return rit.base.Equal(other.base)
}
