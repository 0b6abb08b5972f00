/*
Package bptree implements an in-memory ordered map, organized as a B+ tree.

B+ Trees

A B+ tree is a balanced multi-way search tree. In contrast to a plain B-tree,
key/value pairs live exclusively in the leaves; internal nodes hold routing
keys only. All leaves sit at the same depth and are additionally linked in
ascending key order, which makes in-order range scans a simple walk along the
leaf chain, without re-descending through internal nodes.

The tree is parameterized by its order M, the maximum number of children an
internal node may hold (equivalently, one more than the maximum number of
entries per leaf). Nodes that overflow during insertion are split, with a
routing key promoted to the parent; nodes that underflow during deletion
first try to borrow an entry from a sibling and merge with one otherwise.
Both adjustments propagate toward the root, which is allowed to shrink below
the minimum occupancy and is replaced by its single remaining child when a
merge empties it.

All operations run in time proportional to the tree height, i.e. O(log n)
for Insert, Get and Delete, and O(log n + result size) for range scans.

Concurrency

A tree has no internal synchronization. One logical owner performs one
operation at a time; invariants hold between public calls, not during them.
Callers that share a tree across goroutines must serialize all mutating
calls themselves. Read-only calls may run concurrently with each other as
long as no mutation is in flight, since range scans hold live references
into the leaf chain.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bptree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
