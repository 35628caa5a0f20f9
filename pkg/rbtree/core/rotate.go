//go:build go1.21

package core

import (
	"github.com/flier/rbtree/internal/debug"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// Rotate rotates the subtree rooted at n, bringing n's child on the
// opposite side of dir up to take n's place; n becomes that child's dir
// child. Returns the new subtree root.
//
// Rotate does not touch color or emit any hook; callers combine it with
// whatever recoloring and AfterRotate emission the algorithm calls for.
func Rotate[K, V, A any](root **node.Node[K, V, A], n *node.Node[K, V, A], dir node.Direction, trackSize bool) *node.Node[K, V, A] {
	r := n.Child(dir.Invert())
	debug.Assert(r != nil, "rotate: subtree root has no child on the far side of %v", dir.Invert())

	s := r.Child(dir)
	n.SetChild(dir.Invert(), s)

	if s != nil {
		s.SetParent(n)
	}

	p := n.Parent()
	nDir, hasParent := n.Direction()

	r.SetParent(p)

	if !hasParent {
		*root = r
	} else {
		p.SetChild(nDir, r)
	}

	r.SetChild(dir, n)
	n.SetParent(r)

	if trackSize {
		n.RecomputeSize()
		r.RecomputeSize()
	}

	return r
}
