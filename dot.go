package bptree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V any] struct {
	idTable map[treeNode[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[treeNode[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(node treeNode[K, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, V]) alloc(node treeNode[K, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Internal nodes are drawn as boxes of routing keys, leaves as records of
// their keys; the leaf chain is drawn with dashed edges.
func (t *Tree[K, V]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t == nil || t.root == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable[K, V]()
	var walk func(n treeNode[K, V])
	walk = func(n treeNode[K, V]) {
		id := ids.alloc(n)
		if n.isLeaf() {
			leaf := n.(*leafNode[K, V])
			fmt.Fprintf(w, "\t\"%d\" [label=\"%s\" shape=record];\n", id, keyLabel(leaf.keys))
			return
		}
		inner := n.(*innerNode[K, V])
		fmt.Fprintf(w, "\t\"%d\" [label=\"%s\" shape=box];\n", id, keyLabel(inner.keys))
		for _, child := range inner.children {
			walk(child)
			fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, ids.find(child))
		}
	}
	walk(t.root)
	for leaf := t.first; leaf != nil && leaf.next != nil; leaf = leaf.next {
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\" [style=dashed,constraint=false];\n",
			ids.find(leaf), ids.find(leaf.next))
	}
	io.WriteString(w, "}\n")
}

func keyLabel[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprintf("%v", key)
	}
	return strings.Join(parts, "|")
}
