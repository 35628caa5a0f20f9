//go:build go1.21

package rbtree

import (
	"iter"

	"github.com/flier/rbtree/pkg/rbtree/node"
)

// All returns an in-order iterator over every (key, value) pair in the
// tree. Iteration is O(1) amortized per step via [node.Node.Next]; it does
// not observe a snapshot, so mutating the tree during iteration (beyond
// what the callback contract in pkg/rbtree/core already forbids from
// inside augmentation hooks) is undefined.
func (t *Unmanaged[K, V, A, Context]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.root.LeftmostInSubtree(); n != nil; n = n.Next() {
			if !yield(n.Key, n.Value) {
				return
			}
		}
	}
}

// AllFrom returns an in-order iterator starting at the lower bound of key
// (the smallest stored key greater than or equal to key) and continuing to
// the end of the tree. This is the expressible substitute spec.md §1 calls
// for in place of first-class range queries: combine FindLowerBound with
// next.
func (t *Unmanaged[K, V, A, Context]) AllFrom(ctx Context, key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		start := t.FindLowerBound(ctx, key)
		if start.IsNone() {
			return
		}

		for n := start.Unwrap(); n != nil; n = n.Next() {
			if !yield(n.Key, n.Value) {
				return
			}
		}
	}
}

// Nodes returns an in-order iterator over the tree's node pointers
// directly, for callers that need the node (e.g. to call RemoveNode or
// read an augmentation payload) rather than a detached copy.
func (t *Unmanaged[K, V, A, Context]) Nodes() iter.Seq[*node.Node[K, V, A]] {
	return func(yield func(*node.Node[K, V, A]) bool) {
		for n := t.root.LeftmostInSubtree(); n != nil; n = n.Next() {
			if !yield(n) {
				return
			}
		}
	}
}
