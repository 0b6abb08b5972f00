package bptree

type treeNode[K, V any] interface {
	isLeaf() bool
}

// leafNode holds the actual key/value pairs; keys[i] pairs with values[i].
type leafNode[K, V any] struct {
	keys   []K
	values []V
	// next links leaves in ascending key order. The link is non-owning;
	// ownership of every node lies with its parent (or the tree for the
	// root).
	next *leafNode[K, V]
}

func (l *leafNode[K, V]) isLeaf() bool { return true }

// innerNode holds routing keys and child ownership; the invariant
// len(children) == len(keys)+1 holds at call boundaries. All keys in
// children[i] are >= keys[i-1] and < keys[i].
type innerNode[K, V any] struct {
	keys     []K
	children []treeNode[K, V]
}

func (n *innerNode[K, V]) isLeaf() bool { return false }

// normalizeNode removes typed-nil interface wrappers.
//
// It prevents accidental non-nil interface values that wrap nil pointers.
func normalizeNode[K, V any](n treeNode[K, V]) treeNode[K, V] {
	switch v := n.(type) {
	case nil:
		return nil
	case *leafNode[K, V]:
		if v == nil {
			return nil
		}
	case *innerNode[K, V]:
		if v == nil {
			return nil
		}
	}
	return n
}
