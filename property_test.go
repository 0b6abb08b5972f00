package bptree

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"

	gbtree "github.com/google/btree"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedOperations -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzRandomizedOperations -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test . -run 'FuzzRandomizedOperations/<id>'

type kvItem struct {
	key, val int
}

func kvLess(a, b kvItem) bool { return a.key < b.key }

// assertTreeMatchesModel compares a full scan against the model map and an
// independent google/btree oracle holding the same pairs.
func assertTreeMatchesModel(t *testing.T, tree *Tree[int, int], model map[int]int, oracle *gbtree.BTreeG[kvItem]) {
	t.Helper()
	if tree.Len() != len(model) {
		t.Fatalf("length mismatch: tree=%d model=%d", tree.Len(), len(model))
	}
	if tree.Len() != oracle.Len() {
		t.Fatalf("length mismatch: tree=%d oracle=%d", tree.Len(), oracle.Len())
	}
	wantKeys := make([]int, 0, len(model))
	for k := range model {
		wantKeys = append(wantKeys, k)
	}
	sort.Ints(wantKeys)
	var scanned []kvItem
	for k, v := range tree.All() {
		scanned = append(scanned, kvItem{key: k, val: v})
	}
	if len(scanned) != len(wantKeys) {
		t.Fatalf("scan yields %d entries, model has %d", len(scanned), len(wantKeys))
	}
	for i, k := range wantKeys {
		if scanned[i].key != k {
			t.Fatalf("scan[%d].key = %d, model says %d", i, scanned[i].key, k)
		}
		if scanned[i].val != model[k] {
			t.Fatalf("scan[%d].val = %d, model says %d", i, scanned[i].val, model[k])
		}
	}
	i := 0
	oracle.Ascend(func(item kvItem) bool {
		if scanned[i] != item {
			t.Fatalf("oracle disagreement at %d: tree=%v oracle=%v", i, scanned[i], item)
		}
		i++
		return true
	})
}

func runRandomOperationSequence(t *testing.T, order int, seed uint64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	tree, err := NewOrdered[int, int](order)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	model := make(map[int]int, 64)
	oracle := gbtree.NewG(8, kvLess)
	keyspace := 1 + r.Intn(200)

	for i := 0; i < steps; i++ {
		key := r.Intn(keyspace)
		switch r.Intn(5) {
		case 0, 1: // insert or replace
			val := r.Int()
			prev, replaced := tree.Insert(key, val)
			old, existed := model[key]
			if replaced != existed {
				t.Fatalf("Insert(%d) replaced=%v, model existed=%v", key, replaced, existed)
			}
			if replaced && prev != old {
				t.Fatalf("Insert(%d) previous=%d, model had %d", key, prev, old)
			}
			model[key] = val
			oracle.ReplaceOrInsert(kvItem{key: key, val: val})
		case 2: // delete, possibly of a missing key
			removed, ok := tree.Delete(key)
			old, existed := model[key]
			if ok != existed {
				t.Fatalf("Delete(%d) ok=%v, model existed=%v", key, ok, existed)
			}
			if ok && removed != old {
				t.Fatalf("Delete(%d) removed=%d, model had %d", key, removed, old)
			}
			delete(model, key)
			oracle.Delete(kvItem{key: key})
		case 3: // point lookup
			got, ok := tree.Get(key)
			want, existed := model[key]
			if ok != existed || (ok && got != want) {
				t.Fatalf("Get(%d) = (%d, %v), model = (%d, %v)", key, got, ok, want, existed)
			}
		case 4: // bounded range scan
			low := r.Intn(keyspace)
			high := low + r.Intn(keyspace-low+1)
			var got []int
			for k := range tree.Range(low, high) {
				got = append(got, k)
			}
			var want []int
			for k := range model {
				if k >= low && k < high {
					want = append(want, k)
				}
			}
			sort.Ints(want)
			if len(got) != len(want) {
				t.Fatalf("Range(%d, %d) yields %v, model %v", low, high, got, want)
			}
			for j := range want {
				if got[j] != want[j] {
					t.Fatalf("Range(%d, %d) yields %v, model %v", low, high, got, want)
				}
			}
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants violated after step %d: %v", i, err)
		}
	}
	assertTreeMatchesModel(t, tree, model, oracle)
}

func TestRandomizedOperations(t *testing.T) {
	orders := []int{3, 4, 5, 8, 32}
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, order := range orders {
		for _, seed := range seeds {
			name := "order_" + strconv.Itoa(order) + "_seed_" + strconv.FormatUint(seed, 10)
			t.Run(name, func(t *testing.T) {
				runRandomOperationSequence(t, order, seed, 200)
			})
		}
	}
}

func FuzzRandomizedOperations(f *testing.F) {
	f.Add(uint64(1), uint8(3), uint8(64))
	f.Add(uint64(7), uint8(4), uint8(96))
	f.Add(uint64(42), uint8(16), uint8(128))
	f.Fuzz(func(t *testing.T, seed uint64, order uint8, steps uint8) {
		m := int(order%64) + MinOrder
		runRandomOperationSequence(t, m, seed, int(steps%200)+1)
	})
}
