package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrAllocation signals that the allocation strategy could not provide a node.
	ErrAllocation = errors.New("rbtree: node allocation failed")
	// ErrInvariant signals a violated structural or red-black invariant.
	ErrInvariant = errors.New("rbtree: invariant violated")
)
