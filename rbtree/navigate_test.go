package rbtree

import "testing"

func TestHeaderIdentification(t *testing.T) {
	tree := makeIntTree(t)
	if !isHeader(tree.hdr.end()) {
		t.Fatalf("header of empty tree not identified")
	}
	insertInts(t, tree, 2, 1, 3)
	if !isHeader(tree.hdr.end()) {
		t.Fatalf("header of non-empty tree not identified")
	}
	for n := tree.hdr.leftmost(); n != tree.hdr.end(); n = successor(n) {
		if isHeader(n) {
			t.Fatalf("node %d taken for the header", n.value)
		}
	}
}

func TestSuccessorAndPredecessorAtBoundaries(t *testing.T) {
	tree := makeIntTree(t)
	insertInts(t, tree, 1) // root is leftmost and rightmost
	root := tree.hdr.root()
	if successor(root) != tree.hdr.end() {
		t.Fatalf("successor of single root must be the header")
	}
	if predecessor(tree.hdr.end()) != root {
		t.Fatalf("predecessor of header must be the rightmost node")
	}
	insertInts(t, tree, 2, 3, 4, 5)
	if successor(tree.hdr.rightmost()) != tree.hdr.end() {
		t.Fatalf("successor of rightmost must be the header")
	}
	if predecessor(tree.hdr.end()).value != 5 {
		t.Fatalf("predecessor of header must be 5")
	}
	if subtreeMin(tree.hdr.root()).value != 1 || subtreeMax(tree.hdr.root()).value != 5 {
		t.Fatalf("subtree extrema wrong")
	}
}

func TestRotationsUpdateRoot(t *testing.T) {
	tree := makeIntTree(t)
	insertInts(t, tree, 2, 1, 3) // root 2 with children 1 and 3
	root := &tree.hdr.node.parent
	rotateLeft(tree.hdr.root(), root)
	if tree.hdr.root().value != 3 || tree.hdr.root().left.value != 2 || tree.hdr.root().left.left.value != 1 {
		t.Fatalf("left rotation produced wrong shape")
	}
	if tree.hdr.root().parent != tree.hdr.end() || tree.hdr.root().left.parent != tree.hdr.root() {
		t.Fatalf("left rotation left stale parent links")
	}
	rotateRight(tree.hdr.root(), root)
	if tree.hdr.root().value != 2 || tree.hdr.root().left.value != 1 || tree.hdr.root().right.value != 3 {
		t.Fatalf("right rotation did not restore the shape")
	}
	if got := collectInts(tree); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("rotations changed in-order sequence: %v", got)
	}
}
