//go:build go1.21

// Package augment provides example augmentation callback bundles
// demonstrating the contract pkg/rbtree/core's [core.Hooks] documents:
// subtree-max (the maximum key anywhere in a node's subtree) and
// subtree-size (the node count of a node's subtree, independent of the
// container's own optional built-in size tracking). Both are exercised by
// this module's randomized property tests (spec.md §8 P10).
package augment

import (
	"cmp"

	"github.com/flier/rbtree/pkg/rbtree/core"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// Max is the augmentation payload for subtree-max tracking.
type Max[K any] struct {
	Key K
}

// SubtreeMax returns a [core.Hooks] bundle that keeps every node's Aug
// field equal to the maximum key in that node's own subtree, recomputed
// bottom-up at each structural mutation point spec.md §4.4 documents.
func SubtreeMax[K cmp.Ordered, V any]() core.Hooks[K, V, Max[K]] {
	recompute := func(n *node.Node[K, V, Max[K]]) {
		best := n.Key

		if l := n.Child(node.Left); l != nil && l.Aug.Key > best {
			best = l.Aug.Key
		}

		if r := n.Child(node.Right); r != nil && r.Aug.Key > best {
			best = r.Aug.Key
		}

		n.Aug = Max[K]{Key: best}
	}

	propagate := func(n *node.Node[K, V, Max[K]]) {
		for ; n != nil; n = n.Parent() {
			before := n.Aug
			recompute(n)

			if n.Aug == before {
				return
			}
		}
	}

	return core.Hooks[K, V, Max[K]]{
		AfterLink: func(n *node.Node[K, V, Max[K]]) {
			// n's Aug holds no earlier value to compare against, so n is
			// recomputed unconditionally before walking up from its parent.
			recompute(n)
			propagate(n.Parent())
		},

		AfterRotate: func(oldRoot, newRoot *node.Node[K, V, Max[K]], _ node.Direction) {
			recompute(oldRoot)
			propagate(newRoot)
		},

		AfterSwap: func(deep, _ *node.Node[K, V, Max[K]]) {
			// deep is now the deeper of the two swapped nodes; walking up
			// from it visits every node (including the other swapped node)
			// whose child set changed, in the order their Aug depends on.
			for n := deep; n != nil; n = n.Parent() {
				recompute(n)
			}
		},

		BeforeUnlink: func(n *node.Node[K, V, Max[K]]) {
			p := n.Parent()
			if p == nil {
				return
			}

			dir, _ := n.Direction()
			other := p.Child(dir.Invert())

			best := p.Key
			if other != nil && other.Aug.Key > best {
				best = other.Aug.Key
			}

			p.Aug = Max[K]{Key: best}

			propagate(p.Parent())
		},
	}
}
