//go:build go1.21

// Invariant verification used by this package's own tests (P1-P5 in
// spec.md §8; the P6 height bound is not checked here). Not part of the core operation set; recursive, since it
// exists to validate trees built by tests, not to run in production on
// trees with untrusted depth.
package rbtree

import (
	"fmt"

	"github.com/flier/rbtree/pkg/rbtree/core"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// Check walks the whole tree and returns the first invariant violation it
// finds, or nil if I1-I6 all hold. It is grounded on the same kind of
// recursive structural check used across the red-black tree examples this
// package draws on, generalized to the packed node representation and
// optional size tracking used here.
func (t *Unmanaged[K, V, A, Context]) Check(ctx Context) error {
	if t.root == nil {
		return nil
	}

	if node.IsRed(t.root) {
		return fmt.Errorf("rbtree: I2 violated: root is red")
	}

	if _, err := checkSubtree[K, V, A, Context](t.root, ctx, t.cmp, t.cfg.TrackSize); err != nil {
		return err
	}

	// checkSubtree only compares each node with its direct children; the
	// in-order walk covers I1 across whole subtrees.
	prev := t.root.LeftmostInSubtree()
	for n := prev.Next(); n != nil; prev, n = n, n.Next() {
		if t.cmp(ctx, prev.Key, n.Key) != core.Less {
			return fmt.Errorf("rbtree: I1 violated: in-order keys are not strictly increasing")
		}
	}

	return nil
}

// checkSubtree returns the black height of n's subtree (counting n itself
// if black) or the first invariant violation found within it.
func checkSubtree[K, V, A, Context any](n *node.Node[K, V, A], ctx Context, cmp core.Compare[K, Context], trackSize bool) (blackHeight int, err error) {
	if n == nil {
		return 1, nil
	}

	if l := n.Child(node.Left); l != nil {
		if cmp(ctx, l.Key, n.Key) != core.Less {
			return 0, fmt.Errorf("rbtree: I1 violated: left child key does not compare less than parent")
		}

		if p := l.Parent(); p != n {
			return 0, fmt.Errorf("rbtree: I5 violated: left child's parent pointer is wrong")
		}
	}

	if r := n.Child(node.Right); r != nil {
		if cmp(ctx, r.Key, n.Key) != core.Greater {
			return 0, fmt.Errorf("rbtree: I1 violated: right child key does not compare greater than parent")
		}

		if p := r.Parent(); p != n {
			return 0, fmt.Errorf("rbtree: I5 violated: right child's parent pointer is wrong")
		}
	}

	if node.IsRed(n) {
		if node.IsRed(n.Child(node.Left)) || node.IsRed(n.Child(node.Right)) {
			return 0, fmt.Errorf("rbtree: I3 violated: red node has a red child")
		}
	}

	leftHeight, err := checkSubtree[K, V, A, Context](n.Child(node.Left), ctx, cmp, trackSize)
	if err != nil {
		return 0, err
	}

	rightHeight, err := checkSubtree[K, V, A, Context](n.Child(node.Right), ctx, cmp, trackSize)
	if err != nil {
		return 0, err
	}

	if leftHeight != rightHeight {
		return 0, fmt.Errorf("rbtree: I4 violated: unequal black height (%d vs %d) at a node", leftHeight, rightHeight)
	}

	if trackSize {
		want := 1 + n.Child(node.Left).Size() + n.Child(node.Right).Size()
		if n.Size() != want {
			return 0, fmt.Errorf("rbtree: I6 violated: subtree size %d, want %d", n.Size(), want)
		}
	}

	height := leftHeight
	if node.IsBlack(n) {
		height++
	}

	return height, nil
}
