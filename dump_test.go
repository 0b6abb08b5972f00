package bptree

import (
	"fmt"
	"strings"
	"testing"
)

func TestDumpRendersLevels(t *testing.T) {
	tree := newIntTree(t, 3)
	for k := 1; k <= 7; k++ {
		tree.Insert(k, fmt.Sprintf("v%d", k))
	}
	want := "[5]\n[3][7]\n[1,2][3,4][5,6][7]\n"
	var sb strings.Builder
	tree.Dump(&sb)
	if sb.String() != want {
		t.Fatalf("unexpected dump:\ngot:\n%swant:\n%s", sb.String(), want)
	}
}

func TestDumpEmptyTree(t *testing.T) {
	tree := newIntTree(t, 3)
	if s := tree.String(); s != "" {
		t.Fatalf("empty tree dump = %q", s)
	}
}

func TestDotOutput(t *testing.T) {
	tree := newIntTree(t, 3)
	for k := 1; k <= 7; k++ {
		tree.Insert(k, fmt.Sprintf("v%d", k))
	}
	var sb strings.Builder
	tree.Dot(&sb)
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Fatalf("dot output does not start a digraph: %q", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Fatalf("dot output is not closed: %q", out)
	}
	if !strings.Contains(out, "shape=box") || !strings.Contains(out, "shape=record") {
		t.Fatalf("dot output misses node shapes:\n%s", out)
	}
	// three dashed edges chain the four leaves
	if got := strings.Count(out, "style=dashed"); got != 3 {
		t.Fatalf("expected 3 leaf chain edges, found %d:\n%s", got, out)
	}
}

func TestDotEmptyTree(t *testing.T) {
	tree := newIntTree(t, 3)
	var sb strings.Builder
	tree.Dot(&sb)
	if !strings.Contains(sb.String(), "strict digraph {") {
		t.Fatalf("empty dot output malformed: %q", sb.String())
	}
}
