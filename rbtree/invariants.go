package rbtree

import "fmt"

// Check validates the structural and red-black invariants of the tree.
//
// It checks parent links, the header's root/leftmost/rightmost slots and the
// element count, strict key ordering, the root being black, the absence of
// red-red edges and a uniform black height. Check is intended for tests and
// debugging; it visits every node.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	end := t.hdr.end()
	root := t.hdr.root()
	if end.color != Red {
		return fmt.Errorf("%w: header must be red", ErrInvariant)
	}
	if root == nil {
		if t.hdr.count != 0 {
			return fmt.Errorf("%w: empty tree with count %d", ErrInvariant, t.hdr.count)
		}
		if t.hdr.leftmost() != end || t.hdr.rightmost() != end {
			return fmt.Errorf("%w: empty tree must have leftmost = rightmost = header", ErrInvariant)
		}
		return nil
	}
	if root.parent != end {
		return fmt.Errorf("%w: root is not linked to header", ErrInvariant)
	}
	if root.color != Black {
		return fmt.Errorf("%w: root must be black", ErrInvariant)
	}
	if t.hdr.leftmost() != subtreeMin(root) {
		return fmt.Errorf("%w: leftmost cache is stale", ErrInvariant)
	}
	if t.hdr.rightmost() != subtreeMax(root) {
		return fmt.Errorf("%w: rightmost cache is stale", ErrInvariant)
	}
	count, _, err := t.checkNode(root)
	if err != nil {
		return err
	}
	if count != t.hdr.count {
		return fmt.Errorf("%w: count mismatch (%d != %d)", ErrInvariant, count, t.hdr.count)
	}
	var prev *Node[V]
	for n := t.hdr.leftmost(); n != end; n = successor(n) {
		if prev != nil && !t.cfg.Less(t.keyOf(prev), t.keyOf(n)) {
			return fmt.Errorf("%w: keys out of order", ErrInvariant)
		}
		prev = n
	}
	return nil
}

// checkNode returns the number of nodes and the black height of the subtree
// at n. NIL leaves have black height 1.
func (t *Tree[K, V]) checkNode(n *Node[V]) (count int, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if n.color == Red && (!isBlack(n.left) || !isBlack(n.right)) {
		return 0, 0, fmt.Errorf("%w: red node with red child", ErrInvariant)
	}
	if n.left != nil && n.left.parent != n {
		return 0, 0, fmt.Errorf("%w: broken parent link of left child", ErrInvariant)
	}
	if n.right != nil && n.right.parent != n {
		return 0, 0, fmt.Errorf("%w: broken parent link of right child", ErrInvariant)
	}
	lc, lh, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, fmt.Errorf("%w: non-uniform black height (%d != %d)", ErrInvariant, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lc + rc + 1, lh, nil
}

// BlackHeight returns the number of black nodes on every path from the root
// down to a NIL leaf, NIL leaves not counted. It returns 0 for an empty tree.
func (t *Tree[K, V]) BlackHeight() int {
	h := 0
	for n := t.hdr.root(); n != nil; n = n.left {
		if n.color == Black {
			h++
		}
	}
	return h
}
