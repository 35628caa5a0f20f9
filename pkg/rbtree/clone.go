//go:build go1.21

package rbtree

import (
	"fmt"

	"github.com/flier/rbtree/pkg/arena"
	"github.com/flier/rbtree/pkg/rbtree/core"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// Clone allocates a structurally identical tree by preorder duplication:
// every node's key, value, augmentation payload, color and subtree size
// are copied bit-for-bit, not recomputed. If alloc fails partway through,
// every node already cloned is released before the error is returned.
func (t *Unmanaged[K, V, A, Context]) Clone(alloc arena.Allocator) (out Unmanaged[K, V, A, Context], err error) {
	return t.cloneWith(alloc, t.cmp)
}

// CloneWithContext is Clone, but gives the clone a different (but
// compatible) comparator than the original tree's. The clone's structure is
// still a bit-for-bit copy; cmp is not consulted during cloning itself, only
// stored for the clone's subsequent operations.
func (t *Unmanaged[K, V, A, Context]) CloneWithContext(alloc arena.Allocator, cmp core.Compare[K, Context]) (out Unmanaged[K, V, A, Context], err error) {
	return t.cloneWith(alloc, cmp)
}

func (t *Unmanaged[K, V, A, Context]) cloneWith(alloc arena.Allocator, cmp core.Compare[K, Context]) (out Unmanaged[K, V, A, Context], err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		out = Unmanaged[K, V, A, Context]{cmp: cmp, cfg: t.cfg}

		if e, ok := r.(error); ok {
			err = fmt.Errorf("%w: %w", ErrAllocation, e)
		} else {
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()

	out = Unmanaged[K, V, A, Context]{cmp: cmp, cfg: t.cfg, count: t.count}
	out.root = cloneTree[K, V, A](alloc, t.root)

	return out, nil
}

// cloneFrame is a unit of pending work for the iterative preorder walk in
// cloneTree: duplicate src and attach it as parent's dir child.
type cloneFrame[K, V, A any] struct {
	src    *node.Node[K, V, A]
	parent *node.Node[K, V, A]
	dir    node.Direction
}

// cloneTree duplicates every node reachable from root using an explicit
// stack rather than recursion, so the depth of the tree being cloned never
// bounds Go's call stack. If alloc panics partway through, every node
// cloned so far (all of which are reachable from the partially-built
// clonedRoot by construction) is released before the panic propagates, so
// a failed clone never leaks allocator-owned memory.
func cloneTree[K, V, A any](alloc arena.Allocator, root *node.Node[K, V, A]) (clonedRoot *node.Node[K, V, A]) {
	if root == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			if clonedRoot != nil {
				freeSubtree(alloc, clonedRoot)
				clonedRoot = nil
			}

			panic(r)
		}
	}()

	clonedRoot = arena.New(alloc, *root)
	clonedRoot.SetParent(nil)
	clonedRoot.SetChild(node.Left, nil)
	clonedRoot.SetChild(node.Right, nil)

	stack := []cloneFrame[K, V, A]{
		{src: root.Child(node.Right), parent: clonedRoot, dir: node.Right},
		{src: root.Child(node.Left), parent: clonedRoot, dir: node.Left},
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.src == nil {
			continue
		}

		c := arena.New(alloc, *f.src)
		c.SetParent(f.parent)
		c.SetChild(node.Left, nil)
		c.SetChild(node.Right, nil)
		f.parent.SetChild(f.dir, c)

		stack = append(stack,
			cloneFrame[K, V, A]{src: f.src.Child(node.Right), parent: c, dir: node.Right},
			cloneFrame[K, V, A]{src: f.src.Child(node.Left), parent: c, dir: node.Left},
		)
	}

	return clonedRoot
}

// Deinit frees every node in the tree, using an iterative postorder-style
// descent (leftmost chain, then right child, then ascend) so that tearing
// down a very tall tree never recurses. After Deinit returns, t is empty.
func (t *Unmanaged[K, V, A, Context]) Deinit(alloc arena.Allocator) {
	freeSubtree(alloc, t.root)

	t.root = nil
	t.count = 0
}

// freeSubtree frees every node reachable from root (root included),
// iteratively: descend the leftmost chain, then the right child, then
// ascend, matching spec.md §4.3's deinit description.
func freeSubtree[K, V, A any](alloc arena.Allocator, root *node.Node[K, V, A]) {
	n := root

	for n != nil {
		if l := n.Child(node.Left); l != nil {
			n = l

			continue
		}

		if r := n.Child(node.Right); r != nil {
			n = r

			continue
		}

		parent := n.Parent()

		if dir, ok := n.Direction(); ok {
			parent.SetChild(dir, nil)
		}

		arena.Free(alloc, n)

		n = parent
	}
}
