package rbtree

// insertRebalance links the fresh node x below p and restores the red-black
// invariants. With left set, x becomes the left child of p, otherwise the
// right child. p is the header when inserting into an empty tree.
//
// The header's root, leftmost and rightmost slots are updated here, together
// with the shape change.
func insertRebalance[V any](left bool, x, p *Node[V], h *header[V]) {
	root := &h.node.parent
	x.init(p)

	if left {
		p.left = x // sets leftmost as well if p is the header
		if p == &h.node {
			h.node.parent = x
			h.node.right = x
		} else if p == h.node.left {
			h.node.left = x
		}
	} else {
		p.right = x
		if p == h.node.right {
			h.node.right = x
		}
	}

	for x != *root && x.parent.color == Red {
		xpp := x.parent.parent
		if x.parent == xpp.left {
			uncle := xpp.right
			if uncle != nil && uncle.color == Red {
				x.parent.color = Black
				uncle.color = Black
				xpp.color = Red
				x = xpp
				continue
			}
			if x == x.parent.right {
				x = x.parent
				rotateLeft(x, root)
			}
			x.parent.color = Black
			xpp.color = Red
			rotateRight(xpp, root)
		} else {
			uncle := xpp.left
			if uncle != nil && uncle.color == Red {
				x.parent.color = Black
				uncle.color = Black
				xpp.color = Red
				x = xpp
				continue
			}
			if x == x.parent.left {
				x = x.parent
				rotateRight(x, root)
			}
			x.parent.color = Black
			xpp.color = Red
			rotateLeft(xpp, root)
		}
	}
	(*root).color = Black
}

// rebalanceForErase unlinks z from the tree and restores the red-black
// invariants. It returns the node which has been spliced out and which the
// caller has to destroy. This is always z itself: if z has two children, its
// in-order successor is relinked into z's position and takes over z's color.
//
// The header's root, leftmost and rightmost slots are updated here.
func rebalanceForErase[V any](z *Node[V], h *header[V]) *Node[V] {
	root := &h.node.parent
	leftmost := &h.node.left
	rightmost := &h.node.right

	y := z
	var x, xp *Node[V]

	switch {
	case y.left == nil:
		x = y.right // may be nil
	case y.right == nil:
		x = y.left
	default:
		y = subtreeMin(z.right)
		x = y.right
	}

	if y != z {
		// relink the successor y in place of z
		z.left.parent = y
		y.left = z.left
		if y != z.right {
			xp = y.parent
			if x != nil {
				x.parent = y.parent
			}
			y.parent.left = x
			y.right = z.right
			z.right.parent = y
		} else {
			xp = y
		}
		switch {
		case *root == z:
			*root = y
		case z.parent.left == z:
			z.parent.left = y
		default:
			z.parent.right = y
		}
		y.parent = z.parent
		y.color, z.color = z.color, y.color
		y = z // y is the node to destroy
	} else {
		xp = y.parent
		if x != nil {
			x.parent = y.parent
		}
		switch {
		case *root == z:
			*root = x
		case z.parent.left == z:
			z.parent.left = x
		default:
			z.parent.right = x
		}
		if *leftmost == z {
			if z.right == nil {
				*leftmost = z.parent // the header if z was the root
			} else {
				*leftmost = subtreeMin(x)
			}
		}
		if *rightmost == z {
			if z.left == nil {
				*rightmost = z.parent
			} else {
				*rightmost = subtreeMax(x)
			}
		}
	}

	if y.color == Red {
		return y
	}
	// double-black fixup; x may be nil, therefore its parent is tracked in xp
	for x != *root && (x == nil || x.color == Black) {
		if x == xp.left {
			w := xp.right
			if w.color == Red {
				w.color = Black
				xp.color = Red
				rotateLeft(xp, root)
				w = xp.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = Red
				x = xp
				xp = xp.parent
				continue
			}
			if isBlack(w.right) {
				w.left.color = Black
				w.color = Red
				rotateRight(w, root)
				w = xp.right
			}
			w.color = xp.color
			xp.color = Black
			if w.right != nil {
				w.right.color = Black
			}
			rotateLeft(xp, root)
			break
		}
		w := xp.left
		if w.color == Red {
			w.color = Black
			xp.color = Red
			rotateRight(xp, root)
			w = xp.left
		}
		if isBlack(w.right) && isBlack(w.left) {
			w.color = Red
			x = xp
			xp = xp.parent
			continue
		}
		if isBlack(w.left) {
			w.right.color = Black
			w.color = Red
			rotateLeft(w, root)
			w = xp.left
		}
		w.color = xp.color
		xp.color = Black
		if w.left != nil {
			w.left.color = Black
		}
		rotateRight(xp, root)
		break
	}
	if x != nil {
		x.color = Black
	}
	return y
}

// isBlack treats NIL children as black.
func isBlack[V any](x *Node[V]) bool {
	return x == nil || x.color == Black
}
