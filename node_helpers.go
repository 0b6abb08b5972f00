package bptree

// insertAt inserts values into a slice at idx and returns a new slice.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	if len(values) == 0 {
		return append([]T(nil), src...)
	}
	out := make([]T, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	out = append(out, src[idx:]...)
	return out
}

// removeRange removes the half-open interval [from,to) from a slice.
func removeRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	out := make([]T, 0, len(src)-(to-from))
	out = append(out, src[:from]...)
	out = append(out, src[to:]...)
	return out
}

// Occupancy bounds for order M: leaves and internal nodes hold at most M-1
// keys and at least ceil(M/2)-1, except for the root.

func (t *Tree[K, V]) maxKeys() int { return t.cfg.Order - 1 }

func (t *Tree[K, V]) minKeys() int { return (t.cfg.Order+1)/2 - 1 }

func (t *Tree[K, V]) minChildren() int { return (t.cfg.Order + 1) / 2 }

func (t *Tree[K, V]) leafOverflow(leaf *leafNode[K, V]) bool {
	return leaf != nil && len(leaf.keys) > t.maxKeys()
}

func (t *Tree[K, V]) innerOverflow(inner *innerNode[K, V]) bool {
	return inner != nil && len(inner.children) > t.cfg.Order
}

// searchKeys returns the first index i with keys[i] >= key, and whether that
// position is an exact match.
func (t *Tree[K, V]) searchKeys(keys []K, key K) (int, bool) {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if t.cfg.Compare(keys[mid], key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(keys) && t.cfg.Compare(keys[lo], key) == 0
}

// childSlot returns the child index whose key range contains key: the index
// of the first routing key strictly greater than key. Keys equal to a
// routing key route into the right child, since a leaf split copies the
// right sibling's smallest key upward.
func (t *Tree[K, V]) childSlot(inner *innerNode[K, V], key K) int {
	lo, hi := 0, len(inner.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if t.cfg.Compare(inner.keys[mid], key) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// descendToLeaf walks from the root to the leaf owning key.
func (t *Tree[K, V]) descendToLeaf(key K) *leafNode[K, V] {
	assert(t.root != nil, "descendToLeaf called on empty tree")
	n := t.root
	for !n.isLeaf() {
		inner := n.(*innerNode[K, V])
		n = inner.children[t.childSlot(inner, key)]
	}
	return n.(*leafNode[K, V])
}
