package rbtree

// rotateLeft rotates the subtree at x to the left. x.right takes the place of x.
// root is the header's root slot and is updated if x was the root.
func rotateLeft[V any](x *Node[V], root **Node[V]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x == *root:
		*root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight mirrors rotateLeft: x.left takes the place of x.
func rotateRight[V any](x *Node[V], root **Node[V]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x == *root:
		*root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}
