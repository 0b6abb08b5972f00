package bptree

import "fmt"

const (
	// MinOrder is the smallest fanout that can still satisfy the occupancy
	// bounds after a split.
	MinOrder = 3
	// DefaultOrder is the fanout used when a configuration leaves Order at
	// zero.
	DefaultOrder = 32
)

// CompareFunc is a three-way comparison over keys. It must return a value
// < 0 if a orders before b, 0 if a equals b, and > 0 otherwise.
//
// The comparison must be a strict total order and must behave consistently
// for the whole lifetime of a tree. Changing comparison behavior after keys
// have been inserted is undefined.
type CompareFunc[K any] func(a, b K) int

// Config configures a keyed B+ tree.
type Config[K any] struct {
	// Order is the maximum number of children per internal node (the
	// fanout M). Leaves hold at most Order-1 entries.
	Order int
	// Compare establishes the total order over keys.
	Compare CompareFunc[K]
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Order == 0 {
		cfg.Order = DefaultOrder
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Order < MinOrder {
		return fmt.Errorf("%w: order %d is below minimum %d", ErrInvalidConfig, cfg.Order, MinOrder)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
