//go:build go1.21

package core

import (
	"github.com/flier/rbtree/internal/debug"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// InsertNode links n into the tree at loc as a red leaf, then restores the
// red-black invariants. n's Key and Value must already be set; InsertNode
// only touches n's structural fields (color, parent, children, size).
//
// Emits AfterLink once, then zero or more AfterRotate/AfterRecolor pairs as
// insertFixup walks back up toward the root.
func InsertNode[K, V, A any](root **node.Node[K, V, A], cfg Config[K, V, A], n *node.Node[K, V, A], loc Location[K, V, A]) {
	if loc.Parent == nil {
		MakeRoot(root, cfg, n)
		return
	}

	n.SetColor(node.Red)
	n.SetParent(loc.Parent)
	n.SetChild(node.Left, nil)
	n.SetChild(node.Right, nil)
	n.SetSize(1)

	loc.Parent.SetChild(loc.Dir, n)

	if cfg.TrackSize {
		for p := loc.Parent; p != nil; p = p.Parent() {
			p.SetSize(p.Size() + 1)
		}
	}

	cfg.Hooks.link(n)

	insertFixup(root, cfg, n)
}

// insertFixup restores I2/I3 after a red leaf was linked at n. See spec.md
// §4.2.3 for the three cases implemented here (named A, B, C there).
func insertFixup[K, V, A any](root **node.Node[K, V, A], cfg Config[K, V, A], n *node.Node[K, V, A]) {
	for {
		p := n.Parent()
		if !node.IsRed(p) {
			break
		}

		g := p.Parent()
		debug.Assert(g != nil, "insert fixup: red node %v has no grandparent", p)

		pDir, _ := p.Direction()
		u := g.Child(pDir.Invert())

		if node.IsRed(u) {
			// Case A: red uncle. Push blackness down from g, promote g to
			// red, and continue the walk from g.
			p.SetColor(node.Black)
			u.SetColor(node.Black)
			g.SetColor(node.Red)
			cfg.Hooks.recolor(p, u, g)

			n = g

			continue
		}

		nDir, _ := n.Direction()

		if nDir != pDir {
			// Case B: n is p's "inner" child. Rotate p out of the way so the
			// tree resembles Case C's shape, relabeling as we go.
			Rotate(root, p, pDir, cfg.TrackSize)
			cfg.Hooks.rotate(p, n, pDir)

			n, p = p, n
		}

		// Case C: rotate g toward the opposite of p's direction, then swap
		// p and g's colors. This terminates the walk.
		Rotate(root, g, pDir.Invert(), cfg.TrackSize)
		cfg.Hooks.rotate(g, p, pDir.Invert())

		p.SetColor(node.Black)
		g.SetColor(node.Red)
		cfg.Hooks.recolor(p, g)

		break
	}

	if node.IsRed(*root) {
		(*root).SetColor(node.Black)
		cfg.Hooks.recolor(*root)
	}
}
