package bptree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes a level-order rendering of the tree, one line per level, each
// node as a bracketed list of its keys:
//
//	[5]
//	[3][7]
//	[1,2][3,4][5,6][7,8]
//
// The bottom line shows the leaf entries in chain order.
func (t *Tree[K, V]) Dump(w io.Writer) {
	t.dump(w, nil, 0)
}

// String renders the tree in the Dump format.
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	t.Dump(&sb)
	return sb.String()
}

type nodeKind int

const (
	kindInner nodeKind = iota
	kindLeaf
)

func makeDefaultPalette() map[nodeKind]*color.Color {
	return map[nodeKind]*color.Color{
		kindInner: color.New(color.FgBlue),
		kindLeaf:  color.New(color.FgGreen),
	}
}

// DumpConsole writes the level dump to stdout. If stdout is an interactive
// terminal, node brackets are colorized by kind and overly long level lines
// are elided at the terminal width.
func (t *Tree[K, V]) DumpConsole() {
	if term.IsTerminal(0) {
		width, _, err := term.GetSize(0)
		if err != nil || width < 10 {
			width = 65
		}
		t.dump(os.Stdout, makeDefaultPalette(), width)
		return
	}
	t.dump(os.Stdout, nil, 0)
}

// dump renders one line per tree level. A nil palette renders plain text; a
// positive linewidth elides lines beyond that width.
func (t *Tree[K, V]) dump(w io.Writer, palette map[nodeKind]*color.Color, linewidth int) {
	if t == nil || t.root == nil {
		return
	}
	level := []treeNode[K, V]{t.root}
	for len(level) > 0 {
		var next []treeNode[K, V]
		written := 0
		for _, n := range level {
			var label string
			kind := kindLeaf
			if n.isLeaf() {
				label = bracketLabel(n.(*leafNode[K, V]).keys)
			} else {
				inner := n.(*innerNode[K, V])
				label = bracketLabel(inner.keys)
				kind = kindInner
				next = append(next, inner.children...)
			}
			if linewidth > 0 && written+len(label) > linewidth-1 {
				io.WriteString(w, "…")
				break
			}
			if c, ok := palette[kind]; ok {
				c.Fprint(w, label)
			} else {
				io.WriteString(w, label)
			}
			written += len(label)
		}
		io.WriteString(w, "\n")
		level = next
	}
}

func bracketLabel[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprintf("%v", key)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
