//go:build go1.21

package rbtree

import (
	"github.com/flier/rbtree/internal/debug"
	"github.com/flier/rbtree/pkg/arena"
	"github.com/flier/rbtree/pkg/opt"
	"github.com/flier/rbtree/pkg/rbtree/core"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// RemoveNode detaches n, rebalances, and frees it back to alloc. n must be
// a node currently held by t; passing a node from another tree is a
// contract violation (spec.md §7's misuse category), asserted against only
// in debug builds.
func (t *Unmanaged[K, V, A, Context]) RemoveNode(alloc arena.Allocator, n *node.Node[K, V, A]) {
	if debug.Enabled {
		top := n
		for top.Parent() != nil {
			top = top.Parent()
		}

		debug.Assert(top == t.root, "remove: node does not belong to this tree")
	}

	core.RemoveNode(&t.root, t.cfg, n)

	if !t.cfg.TrackSize {
		t.count--
	}

	arena.Free(alloc, n)
}

// RemoveNodeGetNext removes n and returns what was n's in-order successor.
// The successor is computed before removal, since removing n invalidates
// n's own links.
func (t *Unmanaged[K, V, A, Context]) RemoveNodeGetNext(alloc arena.Allocator, n *node.Node[K, V, A]) *node.Node[K, V, A] {
	next := n.Next()
	t.RemoveNode(alloc, n)

	return next
}

// RemoveNodeGetPrev removes n and returns what was n's in-order
// predecessor, computed before removal.
func (t *Unmanaged[K, V, A, Context]) RemoveNodeGetPrev(alloc arena.Allocator, n *node.Node[K, V, A]) *node.Node[K, V, A] {
	prev := n.Prev()
	t.RemoveNode(alloc, n)

	return prev
}

// Remove deletes key, if present, and reports whether it was present.
func (t *Unmanaged[K, V, A, Context]) Remove(alloc arena.Allocator, ctx Context, key K) bool {
	located := core.FindNodeOrLocation(t.root, ctx, key, t.cmp)
	if !located.HasLeft() {
		return false
	}

	t.RemoveNode(alloc, located.UnwrapLeft())

	return true
}

// FetchRemove deletes key, if present, returning a copy of its prior
// key/value.
func (t *Unmanaged[K, V, A, Context]) FetchRemove(alloc arena.Allocator, ctx Context, key K) opt.Option[KV[K, V]] {
	located := core.FindNodeOrLocation(t.root, ctx, key, t.cmp)
	if !located.HasLeft() {
		return opt.None[KV[K, V]]()
	}

	n := located.UnwrapLeft()
	kv := KV[K, V]{Key: n.Key, Value: n.Value}

	t.RemoveNode(alloc, n)

	return opt.Some(kv)
}
