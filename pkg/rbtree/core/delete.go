//go:build go1.21

package core

import (
	"github.com/flier/rbtree/internal/debug"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// RemoveNode detaches n from the tree and restores the red-black
// invariants. n must currently be linked into *root.
//
// If n has two children, n is first swapped down to its in-order
// successor's position (and again with that successor's one possible red
// child, if any) so the actual unlink always happens at a leaf or
// near-leaf. Every pointer other than n stays valid across the call;
// n itself must be treated as removed once RemoveNode returns.
func RemoveNode[K, V, A any](root **node.Node[K, V, A], cfg Config[K, V, A], n *node.Node[K, V, A]) {
	if r := n.Child(node.Right); r != nil {
		succ := r.LeftmostInSubtree()
		SwapPositions(root, n, succ)
		cfg.Hooks.swap(n, succ)

		if r2 := n.Child(node.Right); r2 != nil {
			SwapPositions(root, n, r2)
			cfg.Hooks.swap(n, r2)
		}
	} else if l := n.Child(node.Left); l != nil {
		SwapPositions(root, n, l)
		cfg.Hooks.swap(n, l)
	}

	debug.Assert(n.Child(node.Left) == nil && n.Child(node.Right) == nil, "remove: node is not a leaf after swap-down")

	cfg.Hooks.beforeUnlink(n)

	parent := n.Parent()
	dir, hasParent := n.Direction()

	if !hasParent {
		*root = nil
		cfg.Hooks.afterUnlink(n)

		return
	}

	wasRed := node.IsRed(n)

	parent.SetChild(dir, nil)
	n.SetParent(nil)

	if cfg.TrackSize {
		for p := parent; p != nil; p = p.Parent() {
			p.SetSize(p.Size() - 1)
		}
	}

	if !wasRed {
		deleteFixup(root, cfg, parent, dir)
	}

	cfg.Hooks.afterUnlink(n)
}

// deleteFixup restores the red-black invariants after a black leaf was
// detached from parent's dir child slot. See spec.md §4.2.6 for the four
// cases implemented here.
func deleteFixup[K, V, A any](root **node.Node[K, V, A], cfg Config[K, V, A], parent *node.Node[K, V, A], dir node.Direction) {
	for {
		p, d := parent, dir

		s := p.Child(d.Invert())
		debug.Assert(s != nil, "delete fixup: deficit side's sibling is nil")

		if node.IsRed(s) {
			// Case 1: red sibling. Rotate it out of the way so a black
			// sibling (one of its former children) takes its place, then
			// fall through to re-evaluate cases 2-4 against the new sibling.
			Rotate(root, p, d, cfg.TrackSize)
			cfg.Hooks.rotate(p, s, d)

			s.SetColor(node.Black)
			p.SetColor(node.Red)
			cfg.Hooks.recolor(s, p)

			s = p.Child(d.Invert())
		}

		closeNephew := s.Child(d)
		distant := s.Child(d.Invert())

		if node.IsBlack(closeNephew) && node.IsBlack(distant) {
			// Case 2: both nephews black. Recolor the sibling red, which
			// balances p's two subtrees at the cost of pushing the deficit
			// up to p itself.
			s.SetColor(node.Red)

			if node.IsRed(p) {
				p.SetColor(node.Black)
				cfg.Hooks.recolor(s, p)

				return
			}

			cfg.Hooks.recolor(s)

			newDir, ok := p.Direction()
			if !ok {
				// p is the root: the whole tree's black height dropped by
				// one, uniformly, which needs no further fixup.
				return
			}

			parent, dir = p.Parent(), newDir

			continue
		}

		if node.IsBlack(distant) {
			// Case 3: close nephew red, distant nephew black. Rotate the
			// sibling so the red nephew becomes the new distant nephew,
			// then fall through to case 4.
			Rotate(root, s, d.Invert(), cfg.TrackSize)
			cfg.Hooks.rotate(s, closeNephew, d.Invert())

			closeNephew.SetColor(node.Black)
			s.SetColor(node.Red)
			cfg.Hooks.recolor(closeNephew, s)

			s = closeNephew
			distant = s.Child(d.Invert())
		}

		// Case 4: distant nephew red. Rotate p toward dir; the new subtree
		// root inherits p's color, and both p and the distant nephew end up
		// black. Terminates.
		Rotate(root, p, d, cfg.TrackSize)
		cfg.Hooks.rotate(p, s, d)

		s.SetColor(p.Color())
		p.SetColor(node.Black)
		distant.SetColor(node.Black)
		cfg.Hooks.recolor(s, p, distant)

		return
	}
}
