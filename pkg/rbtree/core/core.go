//go:build go1.21

// Package core implements the red-black tree algorithms: locate-or-insert,
// attach+rebalance, rotate, swap-node-positions, and detach+rebalance.
//
// Every function here is stateless and allocation-free: callers own the
// root pointer and every node; this package only rewires pointers and
// colors. The mutating entry points [MakeRoot], [InsertNode] and
// [RemoveNode] invoke the augmentation [Hooks] at the points spec.md §4.4
// documents, always after the structural mutation the hook refers to is
// complete; [Rotate], [SwapPositions] and [FindNodeOrLocation] emit none.
package core

import (
	"github.com/flier/rbtree/pkg/either"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// Ordering is the three-valued result of a comparison.
type Ordering int

const (
	Less Ordering = -1
	Equal Ordering = 0
	Greater Ordering = 1
)

// Compare is a caller-supplied total order over K, threaded through an
// opaque Context value.
type Compare[K, Context any] func(ctx Context, a, b K) Ordering

// Hooks is the augmentation callback bundle. Every field is optional; a nil
// field is simply not called.
//
// See spec.md §4.4 for the exact pre/post state each hook observes.
type Hooks[K, V, A any] struct {
	// AfterRotate fires after a rotation completed by [Rotate]'s caller.
	AfterRotate func(oldRoot, newRoot *node.Node[K, V, A], dir node.Direction)

	// AfterSwap fires after [SwapPositions], used only by deletion.
	AfterSwap func(deep, shallow *node.Node[K, V, A])

	// AfterLink fires after a node is attached, as root or as a leaf.
	AfterLink func(n *node.Node[K, V, A])

	// AfterRecolor fires after one or more nodes' colors are overwritten
	// during fixup (never for the initial link).
	AfterRecolor func(affected ...*node.Node[K, V, A])

	// BeforeUnlink fires immediately before a leaf node is detached.
	BeforeUnlink func(n *node.Node[K, V, A])

	// AfterUnlink fires after a node has been detached; it is no longer
	// reachable from the tree.
	AfterUnlink func(n *node.Node[K, V, A])
}

func (h Hooks[K, V, A]) rotate(old, new *node.Node[K, V, A], dir node.Direction) {
	if h.AfterRotate != nil {
		h.AfterRotate(old, new, dir)
	}
}

func (h Hooks[K, V, A]) recolor(affected ...*node.Node[K, V, A]) {
	if h.AfterRecolor != nil {
		h.AfterRecolor(affected...)
	}
}

func (h Hooks[K, V, A]) swap(deep, shallow *node.Node[K, V, A]) {
	if h.AfterSwap != nil {
		h.AfterSwap(deep, shallow)
	}
}

func (h Hooks[K, V, A]) link(n *node.Node[K, V, A]) {
	if h.AfterLink != nil {
		h.AfterLink(n)
	}
}

func (h Hooks[K, V, A]) beforeUnlink(n *node.Node[K, V, A]) {
	if h.BeforeUnlink != nil {
		h.BeforeUnlink(n)
	}
}

func (h Hooks[K, V, A]) afterUnlink(n *node.Node[K, V, A]) {
	if h.AfterUnlink != nil {
		h.AfterUnlink(n)
	}
}

// Config bundles the per-instantiation choices every core operation needs:
// the augmentation hooks and whether subtree sizes are tracked.
type Config[K, V, A any] struct {
	Hooks     Hooks[K, V, A]
	TrackSize bool
}

// Location names a null child slot: the output of a failed key search, and
// the input to [InsertNode]. A zero-value Location (Parent == nil) means
// "the tree is empty; the new node becomes the root".
type Location[K, V, A any] struct {
	Parent *node.Node[K, V, A]
	Dir    node.Direction
}

// FindNodeOrLocation descends once from root looking for key. It returns
// either the matching node (Left) or the insertion location a node with
// that key would occupy to preserve BST order (Right).
func FindNodeOrLocation[K, V, A, Context any](
	root *node.Node[K, V, A],
	ctx Context,
	key K,
	cmp Compare[K, Context],
) either.Either[*node.Node[K, V, A], Location[K, V, A]] {
	if root == nil {
		return either.Right[*node.Node[K, V, A]](Location[K, V, A]{})
	}

	n := root
	for {
		switch cmp(ctx, key, n.Key) {
		case Equal:
			return either.Left[*node.Node[K, V, A], Location[K, V, A]](n)
		case Less:
			if c := n.Child(node.Left); c != nil {
				n = c
				continue
			}

			return either.Right[*node.Node[K, V, A]](Location[K, V, A]{Parent: n, Dir: node.Left})
		default:
			if c := n.Child(node.Right); c != nil {
				n = c
				continue
			}

			return either.Right[*node.Node[K, V, A]](Location[K, V, A]{Parent: n, Dir: node.Right})
		}
	}
}

// MakeRoot attaches n as the sole node of an empty tree: black, childless,
// parentless, subtree size 1. Emits AfterLink.
func MakeRoot[K, V, A any](root **node.Node[K, V, A], cfg Config[K, V, A], n *node.Node[K, V, A]) {
	n.SetColor(node.Black)
	n.SetParent(nil)
	n.SetChild(node.Left, nil)
	n.SetChild(node.Right, nil)
	n.SetSize(1)

	*root = n

	cfg.Hooks.link(n)
}
