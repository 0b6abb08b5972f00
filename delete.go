package bptree

// Delete removes key and returns the value that was stored for it. Deleting
// a missing key (or deleting from an empty tree) is a no-op reported via the
// second return value, not a failure.
func (t *Tree[K, V]) Delete(key K) (removed V, ok bool) {
	if t == nil || t.root == nil {
		return removed, false
	}
	removed, ok, _ = t.deleteNode(t.root, key)
	if !ok {
		return removed, false
	}
	t.length--
	t.collapseRoot()
	return removed, true
}

// deleteNode removes key from subtree n. underflow reports whether n fell
// below its minimum occupancy and needs repair at the parent level; the root
// itself has no minimum and is repaired by collapseRoot instead.
func (t *Tree[K, V]) deleteNode(n treeNode[K, V], key K) (removed V, ok bool, underflow bool) {
	if n.isLeaf() {
		leaf := n.(*leafNode[K, V])
		idx, found := t.searchKeys(leaf.keys, key)
		if !found {
			return removed, false, false
		}
		removed = leaf.values[idx]
		leaf.keys = removeRange(leaf.keys, idx, idx+1)
		leaf.values = removeRange(leaf.values, idx, idx+1)
		return removed, true, len(leaf.keys) < t.minKeys()
	}
	inner := n.(*innerNode[K, V])
	slot := t.childSlot(inner, key)
	removed, ok, childUnderflow := t.deleteNode(inner.children[slot], key)
	if !ok {
		return removed, false, false
	}
	if childUnderflow {
		t.rebalanceChild(inner, slot)
	}
	return removed, true, len(inner.keys) < t.minKeys()
}

// rebalanceChild repairs occupancy for inner.children[slot] after a delete.
func (t *Tree[K, V]) rebalanceChild(parent *innerNode[K, V], slot int) {
	assert(slot >= 0 && slot < len(parent.children), "rebalanceChild slot out of range")
	if parent.children[slot].isLeaf() {
		t.rebalanceLeafChild(parent, slot)
		return
	}
	t.rebalanceInnerChild(parent, slot)
}

// applyRebalancePolicy centralizes sibling operation order after delete:
// borrow-left, borrow-right, merge-left, merge-right.
//
// Borrowing may decline when the sibling sits at minimum occupancy; merging
// with an existing sibling always succeeds, so for any non-root node one of
// the four operations applies.
func (t *Tree[K, V]) applyRebalancePolicy(
	parent *innerNode[K, V], slot int,
	borrowLeft func() bool,
	borrowRight func() bool,
	mergeLeft func() bool,
	mergeRight func() bool,
) {
	assert(parent != nil, "applyRebalancePolicy called with nil parent")
	assert(slot >= 0 && slot < len(parent.children), "applyRebalancePolicy slot out of range")
	hasLeft := slot > 0
	hasRight := slot+1 < len(parent.children)
	if hasLeft && borrowLeft() {
		return
	}
	if hasRight && borrowRight() {
		return
	}
	if hasLeft && mergeLeft() {
		return
	}
	if hasRight && mergeRight() {
		return
	}
	assert(false, "rebalance policy found no applicable sibling operation")
}

func (t *Tree[K, V]) rebalanceLeafChild(parent *innerNode[K, V], slot int) {
	child, ok := parent.children[slot].(*leafNode[K, V])
	assert(ok, "rebalanceLeafChild expected leaf child")
	if len(child.keys) >= t.minKeys() {
		return
	}
	t.applyRebalancePolicy(
		parent, slot,
		func() bool { // borrow the largest entry from the left sibling
			left, lok := parent.children[slot-1].(*leafNode[K, V])
			assert(lok, "rebalanceLeafChild expected leaf left sibling")
			if len(left.keys) <= t.minKeys() {
				return false
			}
			last := len(left.keys) - 1
			child.keys = insertAt(child.keys, 0, left.keys[last])
			child.values = insertAt(child.values, 0, left.values[last])
			left.keys = removeRange(left.keys, last, last+1)
			left.values = removeRange(left.values, last, last+1)
			parent.keys[slot-1] = child.keys[0]
			return true
		},
		func() bool { // borrow the smallest entry from the right sibling
			right, rok := parent.children[slot+1].(*leafNode[K, V])
			assert(rok, "rebalanceLeafChild expected leaf right sibling")
			if len(right.keys) <= t.minKeys() {
				return false
			}
			child.keys = insertAt(child.keys, len(child.keys), right.keys[0])
			child.values = insertAt(child.values, len(child.values), right.values[0])
			right.keys = removeRange(right.keys, 0, 1)
			right.values = removeRange(right.values, 0, 1)
			parent.keys[slot] = right.keys[0]
			return true
		},
		func() bool { // merge into the left sibling, unlinking child from the chain
			left, lok := parent.children[slot-1].(*leafNode[K, V])
			assert(lok, "rebalanceLeafChild expected leaf left sibling for merge")
			left.keys = append(left.keys, child.keys...)
			left.values = append(left.values, child.values...)
			left.next = child.next
			parent.keys = removeRange(parent.keys, slot-1, slot)
			parent.children = removeRange(parent.children, slot, slot+1)
			T().Debugf("bptree: merged leaf into left sibling")
			return true
		},
		func() bool { // absorb the right sibling, unlinking it from the chain
			right, rok := parent.children[slot+1].(*leafNode[K, V])
			assert(rok, "rebalanceLeafChild expected leaf right sibling for merge")
			child.keys = append(child.keys, right.keys...)
			child.values = append(child.values, right.values...)
			child.next = right.next
			parent.keys = removeRange(parent.keys, slot, slot+1)
			parent.children = removeRange(parent.children, slot+1, slot+2)
			T().Debugf("bptree: merged right sibling into leaf")
			return true
		},
	)
}

// rebalanceInnerChild applies borrow/merge to an underfull internal child.
//
// Borrowing rotates through the parent: the child receives the separating
// routing key while the parent receives the sibling's edge key, keeping
// invariant key bounds intact. Merging pulls the separator down between the
// two merged halves.
func (t *Tree[K, V]) rebalanceInnerChild(parent *innerNode[K, V], slot int) {
	child, ok := parent.children[slot].(*innerNode[K, V])
	assert(ok, "rebalanceInnerChild expected internal child")
	if len(child.children) >= t.minChildren() {
		return
	}
	t.applyRebalancePolicy(
		parent, slot,
		func() bool { // rotate the separator down, the left edge key up
			left, lok := parent.children[slot-1].(*innerNode[K, V])
			assert(lok, "rebalanceInnerChild expected internal left sibling")
			if len(left.children) <= t.minChildren() {
				return false
			}
			last := len(left.keys) - 1
			child.keys = insertAt(child.keys, 0, parent.keys[slot-1])
			child.children = insertAt(child.children, 0, left.children[len(left.children)-1])
			parent.keys[slot-1] = left.keys[last]
			left.keys = removeRange(left.keys, last, last+1)
			left.children = removeRange(left.children, len(left.children)-1, len(left.children))
			return true
		},
		func() bool { // rotate the separator down, the right edge key up
			right, rok := parent.children[slot+1].(*innerNode[K, V])
			assert(rok, "rebalanceInnerChild expected internal right sibling")
			if len(right.children) <= t.minChildren() {
				return false
			}
			child.keys = insertAt(child.keys, len(child.keys), parent.keys[slot])
			child.children = insertAt(child.children, len(child.children), right.children[0])
			parent.keys[slot] = right.keys[0]
			right.keys = removeRange(right.keys, 0, 1)
			right.children = removeRange(right.children, 0, 1)
			return true
		},
		func() bool { // merge into the left sibling, pulling the separator down
			left, lok := parent.children[slot-1].(*innerNode[K, V])
			assert(lok, "rebalanceInnerChild expected internal left sibling for merge")
			left.keys = append(left.keys, parent.keys[slot-1])
			left.keys = append(left.keys, child.keys...)
			left.children = append(left.children, child.children...)
			parent.keys = removeRange(parent.keys, slot-1, slot)
			parent.children = removeRange(parent.children, slot, slot+1)
			T().Debugf("bptree: merged internal node into left sibling")
			return true
		},
		func() bool { // absorb the right sibling, pulling the separator down
			right, rok := parent.children[slot+1].(*innerNode[K, V])
			assert(rok, "rebalanceInnerChild expected internal right sibling for merge")
			child.keys = append(child.keys, parent.keys[slot])
			child.keys = append(child.keys, right.keys...)
			child.children = append(child.children, right.children...)
			parent.keys = removeRange(parent.keys, slot, slot+1)
			parent.children = removeRange(parent.children, slot+1, slot+2)
			T().Debugf("bptree: merged right sibling into internal node")
			return true
		},
	)
}
