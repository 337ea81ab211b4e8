package rbtree

import (
	"fmt"
	"math"
	"unsafe"
)

// Tree is a red-black tree of values V, ordered by keys K projected out of the
// values. Keys are unique.
//
// A Tree must be created with New and must not be copied by value; use Clone
// or Assign for deep copies.
type Tree[K, V any] struct {
	cfg Config[K, V]
	hdr header[V]
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[K, V]{cfg: cfg.normalized()}
	t.hdr.init()
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K, V] {
	return t.cfg
}

// Less returns the key comparator of the tree.
func (t *Tree[K, V]) Less() func(a, b K) bool {
	return t.cfg.Less
}

// Len returns the number of values in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.hdr.count
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.hdr.count == 0
}

// MaxLen returns the theoretical upper bound of the number of values a tree
// can hold.
func (t *Tree[K, V]) MaxLen() int {
	return math.MaxInt / int(unsafe.Sizeof(Node[V]{}))
}

// Begin returns the position of the smallest value, or End for an empty tree.
func (t *Tree[K, V]) Begin() Iterator[V] {
	return iteratorAt(t.hdr.leftmost())
}

// End returns the past-the-end position.
func (t *Tree[K, V]) End() Iterator[V] {
	return iteratorAt(t.hdr.end())
}

// RBegin returns a reverse iterator at the largest value.
func (t *Tree[K, V]) RBegin() ReverseIterator[V] {
	return Reverse(t.End())
}

// REnd returns the reverse past-the-end position.
func (t *Tree[K, V]) REnd() ReverseIterator[V] {
	return Reverse(t.Begin())
}

// Min returns the smallest value, if any.
func (t *Tree[K, V]) Min() (V, bool) {
	if t.IsEmpty() {
		var zero V
		return zero, false
	}
	return t.hdr.leftmost().value, true
}

// Max returns the largest value, if any.
func (t *Tree[K, V]) Max() (V, bool) {
	if t.IsEmpty() {
		var zero V
		return zero, false
	}
	return t.hdr.rightmost().value, true
}

// --- Insertion -------------------------------------------------------------

// Insert inserts v if no value with an equivalent key is present.
//
// It returns the position of the value with v's key and whether v has been
// inserted. If the allocation strategy fails, the error is returned and the
// tree is unchanged.
func (t *Tree[K, V]) Insert(v V) (Iterator[V], bool, error) {
	parent, dup := t.insertPos(t.cfg.KeyOf(v))
	if dup != nil {
		return iteratorAt(dup), false, nil
	}
	n, err := t.link(parent, false, v)
	if err != nil {
		return t.End(), false, err
	}
	return iteratorAt(n), true, nil
}

// InsertHint inserts v, using hint as a suggestion where v belongs.
//
// If v belongs directly before or after hint, insertion takes amortized
// constant time, otherwise it falls back to a regular search. It returns the
// position of the value with v's key, which may be a value already present.
func (t *Tree[K, V]) InsertHint(hint Iterator[V], v V) (Iterator[V], error) {
	parent, left, dup := t.hintPos(hint.node, t.cfg.KeyOf(v))
	if dup != nil {
		return iteratorAt(dup), nil
	}
	n, err := t.link(parent, left, v)
	if err != nil {
		return t.End(), err
	}
	return iteratorAt(n), nil
}

// InsertAll inserts all values with unique keys. Values arriving in ascending
// order are appended in amortized constant time each.
func (t *Tree[K, V]) InsertAll(values ...V) error {
	end := t.End()
	for _, v := range values {
		if _, err := t.InsertHint(end, v); err != nil {
			return err
		}
	}
	return nil
}

// insertPos locates the parent below which key k has to be linked. If a value
// with an equivalent key exists, its node is returned as dup instead.
//
// A single descent records the insertion point; the only extra comparison
// checks the in-order predecessor of the insertion point for equivalence.
func (t *Tree[K, V]) insertPos(k K) (parent, dup *Node[V]) {
	x := t.hdr.root()
	y := t.hdr.end()
	less := true
	for x != nil {
		y = x
		less = t.cfg.Less(k, t.keyOf(x))
		if less {
			x = x.left
		} else {
			x = x.right
		}
	}
	pred := y
	if less {
		if y == t.hdr.leftmost() {
			return y, nil
		}
		pred = predecessor(y)
	}
	if t.cfg.Less(t.keyOf(pred), k) {
		return y, nil
	}
	return nil, pred
}

// hintPos locates the insertion point for key k, starting at hint. With left
// set, the new node has to become the left child of parent.
func (t *Tree[K, V]) hintPos(hint *Node[V], k K) (parent *Node[V], left bool, dup *Node[V]) {
	if hint == nil || isHeader(hint) {
		if t.hdr.count > 0 && t.cfg.Less(t.keyOf(t.hdr.rightmost()), k) {
			return t.hdr.rightmost(), false, nil
		}
		parent, dup = t.insertPos(k)
		return parent, false, dup
	}
	switch {
	case t.cfg.Less(k, t.keyOf(hint)):
		if hint == t.hdr.leftmost() {
			return hint, true, nil
		}
		before := predecessor(hint)
		if t.cfg.Less(t.keyOf(before), k) {
			if before.right == nil {
				return before, false, nil
			}
			return hint, true, nil
		}
	case t.cfg.Less(t.keyOf(hint), k):
		if hint == t.hdr.rightmost() {
			return hint, false, nil
		}
		after := successor(hint)
		if t.cfg.Less(k, t.keyOf(after)) {
			if hint.right == nil {
				return hint, false, nil
			}
			return after, true, nil
		}
	default:
		return nil, false, hint
	}
	tracer().Debugf("rbtree: insertion hint not adjacent, searching from root")
	parent, dup = t.insertPos(k)
	return parent, false, dup
}

// link creates a node for v and links it below parent.
func (t *Tree[K, V]) link(parent *Node[V], left bool, v V) (*Node[V], error) {
	left = left || parent == t.hdr.end() || t.cfg.Less(t.cfg.KeyOf(v), t.keyOf(parent))
	n, err := t.createNode(v)
	if err != nil {
		return nil, err
	}
	insertRebalance(left, n, parent, &t.hdr)
	t.hdr.count++
	return n, nil
}

// --- Erasure ---------------------------------------------------------------

// Erase removes the value at it, which must be a valid, dereferenceable
// position, and returns the position following it.
func (t *Tree[K, V]) Erase(it Iterator[V]) Iterator[V] {
	next := it.Next()
	t.erase(it.node)
	return next
}

// EraseKey removes the value with key k and returns the number of values
// removed (0 or 1).
func (t *Tree[K, V]) EraseKey(k K) int {
	first, last := t.EqualRange(k)
	count := 0
	for !first.Equal(last) {
		first = t.Erase(first)
		count++
	}
	return count
}

// EraseRange removes all values in [first, last) and returns last.
func (t *Tree[K, V]) EraseRange(first, last Iterator[V]) Iterator[V] {
	if first.Equal(t.Begin()) && last.Equal(t.End()) {
		t.Clear()
		return t.End()
	}
	for !first.Equal(last) {
		first = t.Erase(first)
	}
	return last
}

func (t *Tree[K, V]) erase(z *Node[V]) {
	assert(!isHeader(z), "rbtree: erase called with end position")
	y := rebalanceForErase(z, &t.hdr)
	t.destroyNode(y)
	t.hdr.count--
}

// Clear removes all values. Calling Clear on an empty tree is a no-op.
func (t *Tree[K, V]) Clear() {
	t.eraseAll(t.hdr.root())
	t.hdr.reset()
}

// eraseAll destroys the subtree rooted at n without rebalancing.
func (t *Tree[K, V]) eraseAll(n *Node[V]) {
	for n != nil {
		t.eraseAll(n.right)
		left := n.left
		t.destroyNode(n)
		n = left
	}
}

// --- Lookup ----------------------------------------------------------------

// Find returns the position of the value with key k, or End.
func (t *Tree[K, V]) Find(k K) Iterator[V] {
	gte := t.lowerBound(k)
	if gte == t.hdr.end() || t.cfg.Less(k, t.keyOf(gte)) {
		return t.End()
	}
	return iteratorAt(gte)
}

// Contains reports whether a value with key k is present.
func (t *Tree[K, V]) Contains(k K) bool {
	return !t.Find(k).Equal(t.End())
}

// Count returns the number of values with key k (0 or 1).
func (t *Tree[K, V]) Count(k K) int {
	first, last := t.EqualRange(k)
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}

// LowerBound returns the position of the first value whose key is not less
// than k, or End.
func (t *Tree[K, V]) LowerBound(k K) Iterator[V] {
	return iteratorAt(t.lowerBound(k))
}

// UpperBound returns the position of the first value whose key is greater
// than k, or End.
func (t *Tree[K, V]) UpperBound(k K) Iterator[V] {
	return iteratorAt(t.upperBound(k))
}

// EqualRange returns the range [LowerBound(k), UpperBound(k)).
func (t *Tree[K, V]) EqualRange(k K) (Iterator[V], Iterator[V]) {
	return t.LowerBound(k), t.UpperBound(k)
}

func (t *Tree[K, V]) lowerBound(k K) *Node[V] {
	x := t.hdr.root()
	y := t.hdr.end()
	for x != nil {
		if !t.cfg.Less(t.keyOf(x), k) {
			y = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return y
}

func (t *Tree[K, V]) upperBound(k K) *Node[V] {
	x := t.hdr.root()
	y := t.hdr.end()
	for x != nil {
		if t.cfg.Less(k, t.keyOf(x)) {
			y = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return y
}

func (t *Tree[K, V]) keyOf(n *Node[V]) K {
	return t.cfg.KeyOf(n.value)
}

// --- Copy and swap ---------------------------------------------------------

// Clone returns a deep copy of the tree, sharing the tree's configuration.
//
// If the allocation strategy fails while copying, all nodes copied so far are
// destroyed and the error is returned.
func (t *Tree[K, V]) Clone() (*Tree[K, V], error) {
	c := &Tree[K, V]{cfg: t.cfg}
	c.hdr.init()
	if t.hdr.root() != nil {
		if err := c.copyTree(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Assign replaces the contents and the comparator of t by a deep copy of
// from. If copying fails, t is left empty and the error is returned.
func (t *Tree[K, V]) Assign(from *Tree[K, V]) error {
	if t == from {
		return nil
	}
	t.Clear()
	t.cfg.Less = from.cfg.Less
	if from.hdr.root() != nil {
		return t.copyTree(from)
	}
	return nil
}

func (t *Tree[K, V]) copyTree(from *Tree[K, V]) error {
	assert(t.hdr.root() == nil, "rbtree: copy into non-empty tree")
	root, err := t.copyNodes(from.hdr.root(), t.hdr.end())
	if err != nil {
		tracer().Errorf("rbtree: copy of %d values rolled back: %v", from.hdr.count, err)
		return err
	}
	t.hdr.node.parent = root
	t.hdr.node.left = subtreeMin(root)
	t.hdr.node.right = subtreeMax(root)
	t.hdr.count = from.hdr.count
	return nil
}

// copyNodes clones the subtree rooted at x, attaching it to parent p. The tree
// is copied structurally: colors are kept, no rebalancing is needed. Right
// subtrees are copied recursively, left spines iteratively.
//
// On failure, the partial copy is destroyed before the error is returned.
func (t *Tree[K, V]) copyNodes(x, p *Node[V]) (*Node[V], error) {
	top, err := t.cloneNode(x)
	if err != nil {
		return nil, err
	}
	top.parent = p
	if err = t.copySpine(top, x); err != nil {
		t.eraseAll(top)
		return nil, err
	}
	return top, nil
}

func (t *Tree[K, V]) copySpine(top, x *Node[V]) error {
	if x.right != nil {
		r, err := t.copyNodes(x.right, top)
		if err != nil {
			return err
		}
		top.right = r
	}
	p := top
	for x = x.left; x != nil; x = x.left {
		y, err := t.cloneNode(x)
		if err != nil {
			return err
		}
		p.left = y
		y.parent = p
		if x.right != nil {
			r, err := t.copyNodes(x.right, y)
			if err != nil {
				return err
			}
			y.right = r
		}
		p = y
	}
	return nil
}

// Swap exchanges the contents and the configuration of two trees in constant
// time. Nodes stay where they are; only the headers are exchanged.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	if t == other {
		return
	}
	switch {
	case t.hdr.root() == nil && other.hdr.root() == nil:
	case t.hdr.root() == nil:
		tracer().Debugf("rbtree: swap moves %d values into empty tree", other.hdr.count)
		t.hdr.moveData(&other.hdr)
	case other.hdr.root() == nil:
		tracer().Debugf("rbtree: swap moves %d values out of tree", t.hdr.count)
		other.hdr.moveData(&t.hdr)
	default:
		t.hdr.node.parent, other.hdr.node.parent = other.hdr.node.parent, t.hdr.node.parent
		t.hdr.node.left, other.hdr.node.left = other.hdr.node.left, t.hdr.node.left
		t.hdr.node.right, other.hdr.node.right = other.hdr.node.right, t.hdr.node.right
		t.hdr.root().parent = t.hdr.end()
		other.hdr.root().parent = other.hdr.end()
		t.hdr.count, other.hdr.count = other.hdr.count, t.hdr.count
	}
	t.cfg, other.cfg = other.cfg, t.cfg
}

// --- Node memory -----------------------------------------------------------

func (t *Tree[K, V]) createNode(v V) (*Node[V], error) {
	n, err := t.cfg.Allocator.Allocate()
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("%w: allocator returned no node", ErrAllocation)
	}
	val, err := t.cfg.Allocator.Construct(v)
	if err != nil {
		t.cfg.Allocator.Deallocate(n)
		return nil, err
	}
	n.value = val
	return n, nil
}

func (t *Tree[K, V]) cloneNode(x *Node[V]) (*Node[V], error) {
	n, err := t.createNode(x.value)
	if err != nil {
		return nil, err
	}
	n.color = x.color
	n.left = nil
	n.right = nil
	return n, nil
}

func (t *Tree[K, V]) destroyNode(n *Node[V]) {
	t.cfg.Allocator.Destroy(n.value)
	t.cfg.Allocator.Deallocate(n)
}

// --- Comparison ------------------------------------------------------------

// Equal reports whether two trees hold the same number of values and the
// values compare equal pairwise, in order.
func Equal[K, V any](a, b *Tree[K, V], eq func(x, y V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for x, y := a.Begin(), b.Begin(); !x.Equal(a.End()); x, y = x.Next(), y.Next() {
		if !eq(x.Value(), y.Value()) {
			return false
		}
	}
	return true
}

// LexicographicalLess reports whether the value sequence of a is
// lexicographically less than that of b.
func LexicographicalLess[K, V any](a, b *Tree[K, V], less func(x, y V) bool) bool {
	x, y := a.Begin(), b.Begin()
	for ; !x.Equal(a.End()) && !y.Equal(b.End()); x, y = x.Next(), y.Next() {
		if less(x.Value(), y.Value()) {
			return true
		}
		if less(y.Value(), x.Value()) {
			return false
		}
	}
	return x.Equal(a.End()) && !y.Equal(b.End())
}
