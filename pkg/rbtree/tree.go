//go:build go1.21

package rbtree

import (
	"github.com/flier/rbtree/pkg/arena"
	"github.com/flier/rbtree/pkg/opt"
	"github.com/flier/rbtree/pkg/rbtree/core"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// Tree pairs an [Unmanaged] with a fixed allocator and context, so callers
// who always use the same pair don't have to repeat them at every call.
// It has no algorithmic content of its own; every method is a direct
// delegation to the matching Unmanaged method.
type Tree[K, V, A, Context any] struct {
	Unmanaged Unmanaged[K, V, A, Context]
	Alloc     arena.Allocator
	Ctx       Context
}

// NewTree constructs an empty Tree over alloc and ctx, ordered by cmp.
func NewTree[K, V, A, Context any](alloc arena.Allocator, ctx Context, cmp core.Compare[K, Context], opts ...Option[K, V, A, Context]) *Tree[K, V, A, Context] {
	return &Tree[K, V, A, Context]{
		Unmanaged: *New[K, V, A, Context](cmp, opts...),
		Alloc:     alloc,
		Ctx:       ctx,
	}
}

func (t *Tree[K, V, A, Context]) Insert(key K, value V, policy ClobberPolicy) (bool, bool, *node.Node[K, V, A], error) {
	return t.Unmanaged.Insert(t.Alloc, t.Ctx, key, value, policy)
}

func (t *Tree[K, V, A, Context]) GetOrPut(key K, value V) (*K, *V, bool, error) {
	return t.Unmanaged.GetOrPut(t.Alloc, t.Ctx, key, value)
}

func (t *Tree[K, V, A, Context]) FetchPut(key K, value V) (opt.Option[V], error) {
	return t.Unmanaged.FetchPut(t.Alloc, t.Ctx, key, value)
}

func (t *Tree[K, V, A, Context]) Put(key K, value V) error {
	return t.Unmanaged.Put(t.Alloc, t.Ctx, key, value)
}

func (t *Tree[K, V, A, Context]) PutNoClobber(key K, value V) (bool, error) {
	return t.Unmanaged.PutNoClobber(t.Alloc, t.Ctx, key, value)
}

func (t *Tree[K, V, A, Context]) Add(key K, value V) (bool, error) {
	return t.Unmanaged.Add(t.Alloc, t.Ctx, key, value)
}

func (t *Tree[K, V, A, Context]) Find(key K) opt.Option[*node.Node[K, V, A]] {
	return t.Unmanaged.Find(t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) Contains(key K) bool {
	return t.Unmanaged.Contains(t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) Get(key K) opt.Option[V] {
	return t.Unmanaged.Get(t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) GetKey(key K) opt.Option[K] {
	return t.Unmanaged.GetKey(t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) GetEntry(key K) opt.Option[KV[K, V]] {
	return t.Unmanaged.GetEntry(t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) Fetch(key K) opt.Option[V] {
	return t.Unmanaged.Fetch(t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) GetPtr(key K) opt.Option[*V] {
	return t.Unmanaged.GetPtr(t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) GetKeyPtr(key K) opt.Option[*K] {
	return t.Unmanaged.GetKeyPtr(t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) FindLowerBound(key K) opt.Option[*node.Node[K, V, A]] {
	return t.Unmanaged.FindLowerBound(t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) FindUpperBound(key K) opt.Option[*node.Node[K, V, A]] {
	return t.Unmanaged.FindUpperBound(t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) FindMin() opt.Option[*node.Node[K, V, A]] {
	return t.Unmanaged.FindMin()
}

func (t *Tree[K, V, A, Context]) FindMax() opt.Option[*node.Node[K, V, A]] {
	return t.Unmanaged.FindMax()
}

func (t *Tree[K, V, A, Context]) Remove(key K) bool {
	return t.Unmanaged.Remove(t.Alloc, t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) FetchRemove(key K) opt.Option[KV[K, V]] {
	return t.Unmanaged.FetchRemove(t.Alloc, t.Ctx, key)
}

func (t *Tree[K, V, A, Context]) RemoveNode(n *node.Node[K, V, A]) {
	t.Unmanaged.RemoveNode(t.Alloc, n)
}

func (t *Tree[K, V, A, Context]) RemoveNodeGetNext(n *node.Node[K, V, A]) *node.Node[K, V, A] {
	return t.Unmanaged.RemoveNodeGetNext(t.Alloc, n)
}

func (t *Tree[K, V, A, Context]) RemoveNodeGetPrev(n *node.Node[K, V, A]) *node.Node[K, V, A] {
	return t.Unmanaged.RemoveNodeGetPrev(t.Alloc, n)
}

func (t *Tree[K, V, A, Context]) Count() int { return t.Unmanaged.Count() }

func (t *Tree[K, V, A, Context]) Empty() bool { return t.Unmanaged.Empty() }

func (t *Tree[K, V, A, Context]) Clone() (Tree[K, V, A, Context], error) {
	cloned, err := t.Unmanaged.Clone(t.Alloc)
	if err != nil {
		return Tree[K, V, A, Context]{}, err
	}

	return Tree[K, V, A, Context]{Unmanaged: cloned, Alloc: t.Alloc, Ctx: t.Ctx}, nil
}

func (t *Tree[K, V, A, Context]) Deinit() {
	t.Unmanaged.Deinit(t.Alloc)
}

func (t *Tree[K, V, A, Context]) Check() error {
	return t.Unmanaged.Check(t.Ctx)
}
