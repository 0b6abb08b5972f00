package bptree

import "cmp"

// Tree is an in-memory ordered map backed by a B+ tree.
//
// Key/value pairs live in the leaves; internal nodes hold routing keys only.
// Leaves are linked in ascending key order so that range scans walk the leaf
// chain instead of re-descending the tree.
//
// A Tree is not safe for concurrent mutation; see the package documentation
// for the single-owner contract.
type Tree[K, V any] struct {
	cfg    Config[K]
	root   treeNode[K, V]
	first  *leafNode[K, V] // leftmost leaf, start of the leaf chain
	length int
	height int // 0 means empty tree
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree over a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any](order int) (*Tree[K, V], error) {
	return New[K, V](Config[K]{Order: order, Compare: cmp.Compare[K]})
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Len returns the number of key/value pairs in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a leaf
// root. All leaves sit at the same depth.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Get returns the value stored for key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	var zero V
	if t == nil || t.root == nil {
		return zero, false
	}
	leaf := t.descendToLeaf(key)
	idx, found := t.searchKeys(leaf.keys, key)
	if !found {
		return zero, false
	}
	return leaf.values[idx], true
}

// Has reports whether key is present.
func (t *Tree[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, bool) {
	var zk K
	var zv V
	if t == nil || t.first == nil {
		return zk, zv, false
	}
	assert(len(t.first.keys) > 0, "leftmost leaf of non-empty tree has no entries")
	return t.first.keys[0], t.first.values[0], true
}

// Max returns the largest key and its value, following the right spine.
func (t *Tree[K, V]) Max() (K, V, bool) {
	var zk K
	var zv V
	if t == nil || t.root == nil {
		return zk, zv, false
	}
	n := t.root
	for !n.isLeaf() {
		inner := n.(*innerNode[K, V])
		n = inner.children[len(inner.children)-1]
	}
	leaf := n.(*leafNode[K, V])
	assert(len(leaf.keys) > 0, "rightmost leaf of non-empty tree has no entries")
	last := len(leaf.keys) - 1
	return leaf.keys[last], leaf.values[last], true
}

// collapseRoot re-establishes the root rules after a delete: an internal
// root left with a single child is replaced by that child, an empty root
// leaf empties the tree.
func (t *Tree[K, V]) collapseRoot() {
	for {
		switch root := t.root.(type) {
		case *leafNode[K, V]:
			if len(root.keys) == 0 {
				t.root = nil
				t.first = nil
				t.height = 0
			}
			return
		case *innerNode[K, V]:
			if len(root.children) > 1 {
				return
			}
			t.root = normalizeNode[K, V](root.children[0])
			t.height--
			T().Debugf("bptree: root collapsed, height now %d", t.height)
		default:
			return
		}
	}
}
