package bptree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant primarily for tests: key
// ordering against routing bounds, uniform leaf depth, occupancy bounds,
// leaf chain consistency and size agreement.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 || t.length != 0 || t.first != nil {
			return fmt.Errorf("%w: empty tree must have height=0, length=0 and no leaf chain", ErrInvalidConfig)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvalidConfig)
	}
	var leaves []*leafNode[K, V]
	items, height, _, _, err := t.checkNode(t.root, true, &leaves)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvalidConfig, height, t.height)
	}
	if items != t.length {
		return fmt.Errorf("%w: size mismatch (%d entries, length %d)", ErrInvalidConfig, items, t.length)
	}
	return t.checkLeafChain(leaves)
}

// checkNode validates subtree n and reports its entry count, height and key
// bounds. Leaves are collected left to right for chain validation.
func (t *Tree[K, V]) checkNode(n treeNode[K, V], isRoot bool, leaves *[]*leafNode[K, V]) (items, height int, minKey, maxKey K, err error) {
	if normalizeNode[K, V](n) == nil {
		err = fmt.Errorf("%w: nil node", ErrInvalidConfig)
		return
	}
	if n.isLeaf() {
		leaf := n.(*leafNode[K, V])
		if len(leaf.keys) != len(leaf.values) {
			err = fmt.Errorf("%w: leaf has %d keys but %d values", ErrInvalidConfig, len(leaf.keys), len(leaf.values))
			return
		}
		if len(leaf.keys) == 0 {
			err = fmt.Errorf("%w: leaf node has no entries", ErrInvalidConfig)
			return
		}
		if len(leaf.keys) > t.maxKeys() {
			err = fmt.Errorf("%w: leaf entry count %d exceeds maximum %d", ErrInvalidConfig, len(leaf.keys), t.maxKeys())
			return
		}
		if !isRoot && len(leaf.keys) < t.minKeys() {
			err = fmt.Errorf("%w: leaf entry count %d below minimum %d", ErrInvalidConfig, len(leaf.keys), t.minKeys())
			return
		}
		for i := 1; i < len(leaf.keys); i++ {
			if t.cfg.Compare(leaf.keys[i-1], leaf.keys[i]) >= 0 {
				err = fmt.Errorf("%w: leaf keys not strictly increasing", ErrInvalidConfig)
				return
			}
		}
		*leaves = append(*leaves, leaf)
		return len(leaf.keys), 1, leaf.keys[0], leaf.keys[len(leaf.keys)-1], nil
	}
	inner := n.(*innerNode[K, V])
	if len(inner.children) != len(inner.keys)+1 {
		err = fmt.Errorf("%w: internal node has %d children for %d routing keys", ErrInvalidConfig, len(inner.children), len(inner.keys))
		return
	}
	if len(inner.children) > t.cfg.Order {
		err = fmt.Errorf("%w: child count %d exceeds order %d", ErrInvalidConfig, len(inner.children), t.cfg.Order)
		return
	}
	lowChildren := t.minChildren()
	if isRoot {
		lowChildren = 2
	}
	if len(inner.children) < lowChildren {
		err = fmt.Errorf("%w: child count %d below minimum %d", ErrInvalidConfig, len(inner.children), lowChildren)
		return
	}
	for i := 1; i < len(inner.keys); i++ {
		if t.cfg.Compare(inner.keys[i-1], inner.keys[i]) >= 0 {
			err = fmt.Errorf("%w: routing keys not strictly increasing", ErrInvalidConfig)
			return
		}
	}
	var childHeight int
	for i, child := range inner.children {
		cItems, cHeight, cMin, cMax, cErr := t.checkNode(child, false, leaves)
		if cErr != nil {
			err = cErr
			return
		}
		if i == 0 {
			childHeight = cHeight
			minKey = cMin
		} else if cHeight != childHeight {
			err = fmt.Errorf("%w: non-uniform subtree heights", ErrInvalidConfig)
			return
		}
		// Child i covers the half-open interval [keys[i-1], keys[i]).
		if i > 0 && t.cfg.Compare(cMin, inner.keys[i-1]) < 0 {
			err = fmt.Errorf("%w: child %d holds key below its routing bound", ErrInvalidConfig, i)
			return
		}
		if i < len(inner.keys) && t.cfg.Compare(cMax, inner.keys[i]) >= 0 {
			err = fmt.Errorf("%w: child %d holds key above its routing bound", ErrInvalidConfig, i)
			return
		}
		items += cItems
		maxKey = cMax
	}
	return items, childHeight + 1, minKey, maxKey, nil
}

// checkLeafChain verifies that the next links reproduce the left-to-right
// leaf order and that the chain yields strictly increasing keys.
func (t *Tree[K, V]) checkLeafChain(leaves []*leafNode[K, V]) error {
	if len(leaves) == 0 {
		return fmt.Errorf("%w: non-empty tree has no leaves", ErrInvalidConfig)
	}
	if t.first != leaves[0] {
		return fmt.Errorf("%w: leftmost leaf link is stale", ErrInvalidConfig)
	}
	for i, leaf := range leaves {
		var want *leafNode[K, V]
		if i+1 < len(leaves) {
			want = leaves[i+1]
		}
		if leaf.next != want {
			return fmt.Errorf("%w: leaf chain broken after leaf %d", ErrInvalidConfig, i)
		}
	}
	first := true
	var prev K
	for _, leaf := range leaves {
		for _, key := range leaf.keys {
			if !first && t.cfg.Compare(prev, key) >= 0 {
				return fmt.Errorf("%w: leaf chain keys not strictly increasing", ErrInvalidConfig)
			}
			prev, first = key, false
		}
	}
	return nil
}
