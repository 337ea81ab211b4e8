/*
Package rbtree provides the red-black tree engine behind the ordered containers.

The tree is a header-based red-black tree in the tradition of the classic STL
implementation: a header cell, embedded into every tree value, anchors the root
and caches the leftmost and rightmost nodes. The header's own node doubles as the
past-the-end position, so Begin, End and Len are O(1), and iterators walk the tree
through parent links without auxiliary storage.

The engine is layered:
  - navigation primitives (subtree minimum/maximum, in-order successor and
    predecessor), pure pointer chasing,
  - rotation primitives,
  - insertion rebalancing (recolor/rotate after linking a new red leaf),
  - deletion rebalancing (splice plus double-black fixup), which hands back the
    node the caller has to destroy,
  - the Tree façade, which owns header, comparator and allocation strategy and
    offers key-ordered insert, erase, find and bound queries.

Keys are unique. Ordering is decided by a strict weak order only: a precedes b
iff Less(a, b), and a and b are equivalent iff neither Less(a, b) nor Less(b, a).

Trees are not safe for concurrent use. Iterators stay valid across rotations and
across insertion/erasure of other elements; they are invalidated when their own
node is erased.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ordered'.
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
