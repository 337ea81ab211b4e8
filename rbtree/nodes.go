package rbtree

// Color is the color of a tree node.
type Color uint8

const (
	// Red nodes never have a red parent.
	Red Color = iota
	// Black nodes count towards the black height.
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is a tree node holding one stored value.
//
// Nodes are handed out by an Allocator and are owned by exactly one tree while
// linked. A node's identity (its address) is stable across rotations.
type Node[V any] struct {
	color  Color
	parent *Node[V]
	left   *Node[V]
	right  *Node[V]
	value  V
}

// init prepares a freshly constructed node for linking below p.
func (n *Node[V]) init(p *Node[V]) {
	n.color = Red
	n.parent = p
	n.left = nil
	n.right = nil
}

// header anchors a tree.
//
// Its node is never a value-bearing node: node.parent is the root, node.left
// caches the leftmost node and node.right the rightmost node. The address of
// node is the past-the-end position. For an empty tree, root is nil and both
// leftmost and rightmost point back to the header node itself.
type header[V any] struct {
	node  Node[V]
	count int
}

func (h *header[V]) init() {
	h.node.color = Red
	h.reset()
}

// reset puts the header into the empty state. It does not touch any nodes.
func (h *header[V]) reset() {
	h.node.parent = nil
	h.node.left = &h.node
	h.node.right = &h.node
	h.count = 0
}

// moveData takes over the node graph of from, which has to be non-empty, and
// leaves from empty. h is expected to be empty.
func (h *header[V]) moveData(from *header[V]) {
	h.node.parent = from.node.parent
	h.node.left = from.node.left
	h.node.right = from.node.right
	h.node.parent.parent = &h.node
	h.count = from.count
	from.reset()
}

func (h *header[V]) root() *Node[V]      { return h.node.parent }
func (h *header[V]) leftmost() *Node[V]  { return h.node.left }
func (h *header[V]) rightmost() *Node[V] { return h.node.right }
func (h *header[V]) end() *Node[V]       { return &h.node }

// isHeader identifies the header node of a tree. Only the header is red and
// at the same time the parent of its own parent (header.parent is the root,
// root.parent is the header). The header of an empty tree has no root and
// points to itself as leftmost.
func isHeader[V any](x *Node[V]) bool {
	if x.color != Red {
		return false
	}
	if x.parent == nil {
		return x.left == x
	}
	return x.parent.parent == x
}
