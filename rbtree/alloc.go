package rbtree

import "fmt"

// Allocator is the allocation strategy of a tree.
//
// The tree calls Allocate and then Construct to create a node for a value, and
// Destroy followed by Deallocate to dispose of it. Construct produces the copy
// of a value which will be stored in the tree; it may fail, in which case the
// freshly allocated node is handed back through Deallocate. Rebalancing never
// calls into the allocator.
type Allocator[V any] interface {
	Allocate() (*Node[V], error)
	Construct(v V) (V, error)
	Destroy(v V)
	Deallocate(n *Node[V])
}

// HeapAllocator allocates every node from the Go heap. It never fails.
type HeapAllocator[V any] struct{}

var _ Allocator[int] = HeapAllocator[int]{}

// Allocate returns a new node.
func (HeapAllocator[V]) Allocate() (*Node[V], error) {
	return &Node[V]{}, nil
}

// Construct stores v as is.
func (HeapAllocator[V]) Construct(v V) (V, error) {
	return v, nil
}

// Destroy is a no-op.
func (HeapAllocator[V]) Destroy(V) {}

// Deallocate is a no-op; the node is left to the garbage collector.
func (HeapAllocator[V]) Deallocate(*Node[V]) {}

// PoolAllocator recycles deallocated nodes through a free list.
//
// An optional limit caps the number of nodes which may be live at the same
// time; Allocate reports ErrAllocation once the limit is reached. A
// PoolAllocator may be shared between trees which are used from a single
// goroutine.
type PoolAllocator[V any] struct {
	free  *Node[V] // free list, chained through right links
	nfree int
	live  int
	limit int
}

var _ Allocator[int] = (*PoolAllocator[int])(nil)

// NewPoolAllocator creates a pool allocator. A limit of 0 means no limit.
func NewPoolAllocator[V any](limit int) *PoolAllocator[V] {
	if limit < 0 {
		limit = 0
	}
	return &PoolAllocator[V]{limit: limit}
}

// Allocate hands out a node, preferring recycled ones.
func (pa *PoolAllocator[V]) Allocate() (*Node[V], error) {
	if pa.limit > 0 && pa.live >= pa.limit {
		return nil, fmt.Errorf("%w: pool limit of %d nodes reached", ErrAllocation, pa.limit)
	}
	pa.live++
	if pa.free == nil {
		return &Node[V]{}, nil
	}
	n := pa.free
	pa.free = n.right
	n.right = nil
	pa.nfree--
	return n, nil
}

// Construct stores v as is.
func (pa *PoolAllocator[V]) Construct(v V) (V, error) {
	return v, nil
}

// Destroy is a no-op.
func (pa *PoolAllocator[V]) Destroy(V) {}

// Deallocate puts n on the free list. The node's value is cleared so the pool
// does not keep payloads reachable.
func (pa *PoolAllocator[V]) Deallocate(n *Node[V]) {
	*n = Node[V]{right: pa.free}
	pa.free = n
	pa.nfree++
	pa.live--
}

// Live returns the number of nodes currently handed out.
func (pa *PoolAllocator[V]) Live() int {
	return pa.live
}

// Free returns the number of nodes waiting for reuse.
func (pa *PoolAllocator[V]) Free() int {
	return pa.nfree
}
