package bptree

// Insert stores value under key and returns the previously stored value if
// key was already present. Duplicate keys are never created; inserting an
// existing key replaces its value in place and leaves the tree shape
// untouched.
func (t *Tree[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if t.root == nil {
		leaf := &leafNode[K, V]{keys: []K{key}, values: []V{value}}
		t.root = leaf
		t.first = leaf
		t.height = 1
		t.length = 1
		return previous, false
	}
	previous, replaced, promoted, sibling := t.insertNode(t.root, key, value)
	if sibling != nil {
		t.root = &innerNode[K, V]{
			keys:     []K{promoted},
			children: []treeNode[K, V]{t.root, sibling},
		}
		t.height++
		T().Debugf("bptree: root split, height now %d", t.height)
	}
	if !replaced {
		t.length++
	}
	return previous, replaced
}

// insertNode inserts one entry into subtree n and propagates split results.
//
// The returned sibling is non-nil only when n split; promoted is then the
// routing key separating n from its new right sibling.
func (t *Tree[K, V]) insertNode(n treeNode[K, V], key K, value V) (previous V, replaced bool, promoted K, sibling treeNode[K, V]) {
	if n.isLeaf() {
		return t.insertIntoLeaf(n.(*leafNode[K, V]), key, value)
	}
	inner := n.(*innerNode[K, V])
	slot := t.childSlot(inner, key)
	previous, replaced, childKey, childSibling := t.insertNode(inner.children[slot], key, value)
	if childSibling == nil {
		return previous, replaced, promoted, nil
	}
	inner.keys = insertAt(inner.keys, slot, childKey)
	inner.children = insertAt(inner.children, slot+1, childSibling)
	if !t.innerOverflow(inner) {
		return previous, replaced, promoted, nil
	}
	promoted, sibling = t.splitInner(inner)
	return previous, replaced, promoted, sibling
}

func (t *Tree[K, V]) insertIntoLeaf(leaf *leafNode[K, V], key K, value V) (previous V, replaced bool, promoted K, sibling treeNode[K, V]) {
	idx, found := t.searchKeys(leaf.keys, key)
	if found {
		previous = leaf.values[idx]
		leaf.values[idx] = value
		return previous, true, promoted, nil
	}
	leaf.keys = insertAt(leaf.keys, idx, key)
	leaf.values = insertAt(leaf.values, idx, value)
	if !t.leafOverflow(leaf) {
		return previous, false, promoted, nil
	}
	promoted, sibling = t.splitLeaf(leaf)
	return previous, false, promoted, sibling
}

// splitLeaf splits an overfull leaf. The leaf keeps its first ceil(M/2)
// entries, the rest move to a new right sibling, and the sibling's smallest
// key is copied upward as the separating routing key. The sibling is spliced
// into the leaf chain behind the split leaf.
func (t *Tree[K, V]) splitLeaf(leaf *leafNode[K, V]) (K, treeNode[K, V]) {
	assert(len(leaf.keys) == t.cfg.Order, "splitLeaf expects exactly one entry of overflow")
	mid := (t.cfg.Order + 1) / 2
	right := &leafNode[K, V]{
		keys:   append([]K(nil), leaf.keys[mid:]...),
		values: append([]V(nil), leaf.values[mid:]...),
		next:   leaf.next,
	}
	leaf.keys = removeRange(leaf.keys, mid, len(leaf.keys))
	leaf.values = removeRange(leaf.values, mid, len(leaf.values))
	leaf.next = right
	T().Debugf("bptree: leaf split at key %v", right.keys[0])
	return right.keys[0], right
}

// splitInner splits an overfull internal node. Unlike a leaf split, the
// middle routing key is pushed upward and removed from both halves, since
// internal routing keys are not also leaf data.
func (t *Tree[K, V]) splitInner(inner *innerNode[K, V]) (K, treeNode[K, V]) {
	assert(len(inner.children) == t.cfg.Order+1, "splitInner expects exactly one child of overflow")
	mid := len(inner.keys) / 2
	promoted := inner.keys[mid]
	right := &innerNode[K, V]{
		keys:     append([]K(nil), inner.keys[mid+1:]...),
		children: append([]treeNode[K, V](nil), inner.children[mid+1:]...),
	}
	inner.keys = removeRange(inner.keys, mid, len(inner.keys))
	inner.children = removeRange(inner.children, mid+1, len(inner.children))
	return promoted, right
}
