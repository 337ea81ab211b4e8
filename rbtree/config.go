package rbtree

import "fmt"

// Config configures a red-black tree.
//
// K is the key type, V the stored value type. For set-like containers V and K are
// the same type and KeyOf is the identity; map-like containers project the key
// out of a key/value pair.
type Config[K, V any] struct {
	// KeyOf projects the ordering key out of a stored value.
	KeyOf func(V) K
	// Less is a strict weak order over keys.
	Less func(a, b K) bool
	// Allocator is the allocation strategy for nodes. Defaults to HeapAllocator.
	Allocator Allocator[V]
}

// Identity is the key projection for containers storing bare keys.
func Identity[K any](k K) K {
	return k
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.Allocator == nil {
		cfg.Allocator = HeapAllocator[V]{}
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	if cfg.KeyOf == nil {
		return fmt.Errorf("%w: key projection is required", ErrInvalidConfig)
	}
	if cfg.Less == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}
