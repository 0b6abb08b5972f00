package bptree

import (
	"fmt"
	"testing"
)

// seqTree builds the canonical order-3 tree over keys 1..7:
//
//	[5]
//	[3][7]
//	[1,2][3,4][5,6][7]
func seqTree(t *testing.T) *Tree[int, string] {
	t.Helper()
	tree := newIntTree(t, 3)
	for k := 1; k <= 7; k++ {
		tree.Insert(k, fmt.Sprintf("v%d", k))
	}
	return tree
}

func assertShape[K, V any](t *testing.T, tree *Tree[K, V], want string) {
	t.Helper()
	checkTree(t, tree)
	if got := tree.String(); got != want {
		t.Fatalf("unexpected tree shape:\ngot:\n%swant:\n%s", got, want)
	}
}

func TestDeleteBorrowsFromLeftSibling(t *testing.T) {
	tree := seqTree(t)
	if v, ok := tree.Delete(7); !ok || v != "v7" {
		t.Fatalf("Delete(7) = (%q, %v)", v, ok)
	}
	assertShape(t, tree, "[5]\n[3][6]\n[1,2][3,4][5][6]\n")
}

func TestDeleteBorrowsFromRightSibling(t *testing.T) {
	tree := seqTree(t)
	tree.Delete(1)
	if v, ok := tree.Delete(2); !ok || v != "v2" {
		t.Fatalf("Delete(2) = (%q, %v)", v, ok)
	}
	assertShape(t, tree, "[5]\n[4][7]\n[3][4][5,6][7]\n")
}

func TestDeleteMergesIntoLeftSibling(t *testing.T) {
	tree := seqTree(t)
	tree.Delete(7)
	// the underflow propagates: leaf merge, then internal merge, then root collapse
	if v, ok := tree.Delete(6); !ok || v != "v6" {
		t.Fatalf("Delete(6) = (%q, %v)", v, ok)
	}
	assertShape(t, tree, "[3,5]\n[1,2][3,4][5]\n")
	if tree.Height() != 2 {
		t.Fatalf("expected root collapse to height 2, got %d", tree.Height())
	}
}

func TestDeleteMergesRightSibling(t *testing.T) {
	tree := seqTree(t)
	tree.Delete(1)
	tree.Delete(2)
	if v, ok := tree.Delete(3); !ok || v != "v3" {
		t.Fatalf("Delete(3) = (%q, %v)", v, ok)
	}
	assertShape(t, tree, "[5,7]\n[4][5,6][7]\n")
	if tree.Height() != 2 {
		t.Fatalf("expected root collapse to height 2, got %d", tree.Height())
	}
}

func TestDeleteKeepsLeafChainIntact(t *testing.T) {
	tree := newIntTree(t, 3)
	for k := 1; k <= 16; k++ {
		tree.Insert(k, fmt.Sprintf("v%d", k))
	}
	for _, k := range []int{2, 4, 6, 8, 10, 12, 14, 16} {
		if _, ok := tree.Delete(k); !ok {
			t.Fatalf("Delete(%d) did not find the key", k)
		}
		checkTree(t, tree)
	}
	want := []int{1, 3, 5, 7, 9, 11, 13, 15}
	got := collectKeys(tree)
	if len(got) != len(want) {
		t.Fatalf("scan has %d keys, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("scan[%d] = %d, want %d", i, got[i], k)
		}
	}
}

func TestDeleteMissingKeyIsNoOp(t *testing.T) {
	tree := seqTree(t)
	before := tree.Len()
	if _, ok := tree.Delete(42); ok {
		t.Fatalf("Delete(42) removed a value that was never inserted")
	}
	if tree.Len() != before {
		t.Fatalf("no-op delete changed size from %d to %d", before, tree.Len())
	}
	checkTree(t, tree)
}

func TestDeleteThenAbsent(t *testing.T) {
	tree := seqTree(t)
	if _, ok := tree.Delete(4); !ok {
		t.Fatalf("Delete(4) did not find the key")
	}
	if _, ok := tree.Get(4); ok {
		t.Fatalf("Get(4) found a deleted key")
	}
	if _, ok := tree.Delete(4); ok {
		t.Fatalf("second Delete(4) removed something")
	}
	checkTree(t, tree)
}
