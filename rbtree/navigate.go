package rbtree

// subtreeMin returns the leftmost node of the subtree rooted at x.
func subtreeMin[V any](x *Node[V]) *Node[V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// subtreeMax returns the rightmost node of the subtree rooted at x.
func subtreeMax[V any](x *Node[V]) *Node[V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// successor returns the in-order successor of x. The successor of the
// rightmost node is the header.
//
// When climbing from the rightmost node we reach the root, step over to the
// header and, as header.parent is the root, climb once more back to the root
// (its right child being the rightmost chain). The final check catches this
// case: x.right == xp only holds for x being the header and xp being a root
// without right subtree.
func successor[V any](x *Node[V]) *Node[V] {
	if x.right != nil {
		return subtreeMin(x.right)
	}
	xp := x.parent
	for x == xp.right {
		x = xp
		xp = xp.parent
	}
	if x.right != xp {
		x = xp
	}
	return x
}

// predecessor returns the in-order predecessor of x. The predecessor of the
// header is the rightmost node.
func predecessor[V any](x *Node[V]) *Node[V] {
	if isHeader(x) {
		return x.right
	}
	if x.left != nil {
		return subtreeMax(x.left)
	}
	xp := x.parent
	for x == xp.left {
		x = xp
		xp = xp.parent
	}
	return xp
}
