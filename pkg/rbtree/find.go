//go:build go1.21

package rbtree

import (
	"github.com/flier/rbtree/pkg/opt"
	"github.com/flier/rbtree/pkg/rbtree/core"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// Find returns the node storing key, if any.
func (t *Unmanaged[K, V, A, Context]) Find(ctx Context, key K) opt.Option[*node.Node[K, V, A]] {
	located := core.FindNodeOrLocation(t.root, ctx, key, t.cmp)
	if located.HasLeft() {
		return opt.Some(located.UnwrapLeft())
	}

	return opt.None[*node.Node[K, V, A]]()
}

// Contains reports whether key is present.
func (t *Unmanaged[K, V, A, Context]) Contains(ctx Context, key K) bool {
	return t.Find(ctx, key).IsSome()
}

// Get returns a copy of the value stored for key.
func (t *Unmanaged[K, V, A, Context]) Get(ctx Context, key K) opt.Option[V] {
	found := t.Find(ctx, key)
	if found.IsNone() {
		return opt.None[V]()
	}

	return opt.Some(found.Unwrap().Value)
}

// GetKey returns a copy of the canonical key stored in the tree that
// compares Equal to key — useful when K's comparator does not imply
// identity (e.g. case-insensitive string keys).
func (t *Unmanaged[K, V, A, Context]) GetKey(ctx Context, key K) opt.Option[K] {
	found := t.Find(ctx, key)
	if found.IsNone() {
		return opt.None[K]()
	}

	return opt.Some(found.Unwrap().Key)
}

// GetEntry returns a copy of both the stored key and value for key.
func (t *Unmanaged[K, V, A, Context]) GetEntry(ctx Context, key K) opt.Option[KV[K, V]] {
	found := t.Find(ctx, key)
	if found.IsNone() {
		return opt.None[KV[K, V]]()
	}

	n := found.Unwrap()

	return opt.Some(KV[K, V]{Key: n.Key, Value: n.Value})
}

// Fetch is an alias for Get, named to match spec.md's operation list.
func (t *Unmanaged[K, V, A, Context]) Fetch(ctx Context, key K) opt.Option[V] {
	return t.Get(ctx, key)
}

// GetPtr returns a pointer into the stored value for key, letting the
// caller mutate it in place. The pointer is invalidated by removing that
// node or destroying the tree.
func (t *Unmanaged[K, V, A, Context]) GetPtr(ctx Context, key K) opt.Option[*V] {
	found := t.Find(ctx, key)
	if found.IsNone() {
		return opt.None[*V]()
	}

	return opt.Some(&found.Unwrap().Value)
}

// GetKeyPtr returns a pointer into the stored key for key.
func (t *Unmanaged[K, V, A, Context]) GetKeyPtr(ctx Context, key K) opt.Option[*K] {
	found := t.Find(ctx, key)
	if found.IsNone() {
		return opt.None[*K]()
	}

	return opt.Some(&found.Unwrap().Key)
}

// someNode returns Some(n), or None if n is nil.
func someNode[K, V, A any](n *node.Node[K, V, A]) opt.Option[*node.Node[K, V, A]] {
	if n == nil {
		return opt.None[*node.Node[K, V, A]]()
	}

	return opt.Some(n)
}

// FindMin returns the node with the smallest key, if the tree is non-empty.
func (t *Unmanaged[K, V, A, Context]) FindMin() opt.Option[*node.Node[K, V, A]] {
	return someNode(t.root.LeftmostInSubtree())
}

// FindMax returns the node with the largest key, if the tree is non-empty.
func (t *Unmanaged[K, V, A, Context]) FindMax() opt.Option[*node.Node[K, V, A]] {
	return someNode(t.root.RightmostInSubtree())
}

// FindLowerBound returns the node with the smallest key that is greater
// than or equal to key (the "ceiling"), or None if every stored key is
// less than key.
func (t *Unmanaged[K, V, A, Context]) FindLowerBound(ctx Context, key K) opt.Option[*node.Node[K, V, A]] {
	var candidate *node.Node[K, V, A]

	for n := t.root; n != nil; {
		switch t.cmp(ctx, key, n.Key) {
		case core.Equal:
			return opt.Some(n)
		case core.Less:
			candidate = n
			n = n.Child(node.Left)
		default:
			n = n.Child(node.Right)
		}
	}

	return someNode(candidate)
}

// FindUpperBound returns the node with the largest key that is less than
// or equal to key (the "floor"), or None if every stored key is greater
// than key.
func (t *Unmanaged[K, V, A, Context]) FindUpperBound(ctx Context, key K) opt.Option[*node.Node[K, V, A]] {
	var candidate *node.Node[K, V, A]

	for n := t.root; n != nil; {
		switch t.cmp(ctx, key, n.Key) {
		case core.Equal:
			return opt.Some(n)
		case core.Greater:
			candidate = n
			n = n.Child(node.Right)
		default:
			n = n.Child(node.Left)
		}
	}

	return someNode(candidate)
}
