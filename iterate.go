package bptree

import "iter"

// All returns an iterator over every entry in ascending key order.
//
// Iteration walks the leaf chain starting at the leftmost leaf; internal
// nodes are not revisited. The sequence is lazy and single-use; a fresh call
// starts over.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		for leaf := t.first; leaf != nil; leaf = leaf.next {
			for i, key := range leaf.keys {
				if !yield(key, leaf.values[i]) {
					return
				}
			}
		}
	}
}

// Range returns an iterator over entries with low <= key < high, in
// ascending key order. An empty interval yields nothing.
func (t *Tree[K, V]) Range(low, high K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.scanFrom(low, func(key K, value V) bool {
			if t.cfg.Compare(key, high) >= 0 {
				return false
			}
			return yield(key, value)
		})
	}
}

// From returns an iterator over entries with key >= low, unbounded above.
func (t *Tree[K, V]) From(low K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.scanFrom(low, yield)
	}
}

// Below returns an iterator over entries with key < high, starting at the
// smallest key.
func (t *Tree[K, V]) Below(high K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		for leaf := t.first; leaf != nil; leaf = leaf.next {
			for i, key := range leaf.keys {
				if t.cfg.Compare(key, high) >= 0 {
					return
				}
				if !yield(key, leaf.values[i]) {
					return
				}
			}
		}
	}
}

// ForEach visits all entries in ascending key order.
//
// Iteration stops early if the callback returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t == nil || fn == nil {
		return
	}
	for key, value := range t.All() {
		if !fn(key, value) {
			return
		}
	}
}

// scanFrom descends once to the leaf owning low, then follows the leaf
// chain, yielding entries with key >= low.
func (t *Tree[K, V]) scanFrom(low K, yield func(K, V) bool) {
	if t == nil || t.root == nil {
		return
	}
	leaf := t.descendToLeaf(low)
	start, _ := t.searchKeys(leaf.keys, low)
	for leaf != nil {
		for i := start; i < len(leaf.keys); i++ {
			if !yield(leaf.keys[i], leaf.values[i]) {
				return
			}
		}
		leaf = leaf.next
		start = 0
	}
}
