//go:build go1.21

package augment

import (
	"github.com/flier/rbtree/pkg/rbtree/core"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// Size is the augmentation payload for subtree-size tracking: the node
// count of a node's own subtree. This duplicates what [core.Config]'s
// built-in TrackSize option already offers; it exists as the second worked
// example of the hook contract, independent of that built-in feature.
type Size struct {
	Count int
}

// SubtreeSize returns a [core.Hooks] bundle that keeps every node's Aug
// field equal to the number of nodes in that node's own subtree.
func SubtreeSize[K, V any]() core.Hooks[K, V, Size] {
	recompute := func(n *node.Node[K, V, Size]) {
		count := 1

		if l := n.Child(node.Left); l != nil {
			count += l.Aug.Count
		}

		if r := n.Child(node.Right); r != nil {
			count += r.Aug.Count
		}

		n.Aug = Size{Count: count}
	}

	propagate := func(n *node.Node[K, V, Size]) {
		for ; n != nil; n = n.Parent() {
			recompute(n)
		}
	}

	return core.Hooks[K, V, Size]{
		AfterLink: func(n *node.Node[K, V, Size]) {
			propagate(n)
		},

		AfterRotate: func(oldRoot, newRoot *node.Node[K, V, Size], _ node.Direction) {
			recompute(oldRoot)
			propagate(newRoot)
		},

		AfterSwap: func(deep, _ *node.Node[K, V, Size]) {
			propagate(deep)
		},

		BeforeUnlink: func(n *node.Node[K, V, Size]) {
			p := n.Parent()
			if p == nil {
				return
			}

			dir, _ := n.Direction()
			other := p.Child(dir.Invert())

			count := 1
			if other != nil {
				count += other.Aug.Count
			}

			p.Aug = Size{Count: count}

			propagate(p.Parent())
		},
	}
}
