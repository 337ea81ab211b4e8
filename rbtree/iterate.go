package rbtree

import "iter"

// ForEach walks values in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K, V]) ForEach(fn func(v V) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for n := t.hdr.leftmost(); n != t.hdr.end(); n = successor(n) {
		if !fn(n.value) {
			return
		}
	}
}

// All returns an iterator over all values in ascending key order.
func (t *Tree[K, V]) All() iter.Seq[V] {
	return t.ForEach
}

// Backward returns an iterator over all values in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		if t.IsEmpty() {
			return
		}
		for n := t.hdr.rightmost(); ; n = predecessor(n) {
			if !yield(n.value) || n == t.hdr.leftmost() {
				return
			}
		}
	}
}

// Ascend returns an iterator over all values with keys not less than from, in
// ascending key order.
func (t *Tree[K, V]) Ascend(from K) iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := t.lowerBound(from); n != t.hdr.end(); n = successor(n) {
			if !yield(n.value) {
				return
			}
		}
	}
}
