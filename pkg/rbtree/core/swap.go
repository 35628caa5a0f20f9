//go:build go1.21

package core

import "github.com/flier/rbtree/pkg/rbtree/node"

// SwapPositions exchanges the tree positions of two distinct nodes: color,
// children, parent, and subtree size. Keys, values, and augmentation
// payloads stay exactly where they are; only the structural slot each node
// occupies moves.
//
// Deletion is the only caller: it swaps the node being removed down into a
// leaf position (trading places with its in-order successor, or its one
// child) so that the actual unlink always happens at a leaf. Every node
// pointer other than the one ultimately removed stays valid across the
// call, even though its position in the tree has changed.
func SwapPositions[K, V, A any](root **node.Node[K, V, A], x, y *node.Node[K, V, A]) {
	if x == y {
		return
	}

	switch {
	case x.Parent() == y:
		swapAdjacent(root, y, x)
	case y.Parent() == x:
		swapAdjacent(root, x, y)
	default:
		swapIndependent(root, x, y)
	}
}

// swapAdjacent handles the case where p is c's direct parent.
func swapAdjacent[K, V, A any](root **node.Node[K, V, A], p, c *node.Node[K, V, A]) {
	pParent := p.Parent()
	pDir, pHasParent := p.Direction()
	cDir, _ := c.Direction()

	sibling := p.Child(cDir.Invert())
	cLeft, cRight := c.Child(node.Left), c.Child(node.Right)
	pColor, cColor := p.Color(), c.Color()
	pSize, cSize := p.Size(), c.Size()

	c.SetParent(pParent)

	if !pHasParent {
		*root = c
	} else {
		pParent.SetChild(pDir, c)
	}

	c.SetChild(cDir, p)
	p.SetParent(c)

	c.SetChild(cDir.Invert(), sibling)
	if sibling != nil {
		sibling.SetParent(c)
	}

	p.SetChild(node.Left, cLeft)
	if cLeft != nil {
		cLeft.SetParent(p)
	}

	p.SetChild(node.Right, cRight)
	if cRight != nil {
		cRight.SetParent(p)
	}

	p.SetColor(cColor)
	c.SetColor(pColor)
	p.SetSize(cSize)
	c.SetSize(pSize)
}

// swapIndependent handles the case where neither node is the other's
// parent.
func swapIndependent[K, V, A any](root **node.Node[K, V, A], a, b *node.Node[K, V, A]) {
	aParent, bParent := a.Parent(), b.Parent()
	aDir, aHasParent := a.Direction()
	bDir, bHasParent := b.Direction()
	aLeft, aRight := a.Child(node.Left), a.Child(node.Right)
	bLeft, bRight := b.Child(node.Left), b.Child(node.Right)
	aColor, bColor := a.Color(), b.Color()
	aSize, bSize := a.Size(), b.Size()

	a.SetParent(bParent)

	if !bHasParent {
		*root = a
	} else {
		bParent.SetChild(bDir, a)
	}

	b.SetParent(aParent)

	if !aHasParent {
		*root = b
	} else {
		aParent.SetChild(aDir, b)
	}

	a.SetChild(node.Left, bLeft)
	if bLeft != nil {
		bLeft.SetParent(a)
	}

	a.SetChild(node.Right, bRight)
	if bRight != nil {
		bRight.SetParent(a)
	}

	b.SetChild(node.Left, aLeft)
	if aLeft != nil {
		aLeft.SetParent(b)
	}

	b.SetChild(node.Right, aRight)
	if aRight != nil {
		aRight.SetParent(b)
	}

	a.SetColor(bColor)
	b.SetColor(aColor)
	a.SetSize(bSize)
	b.SetSize(aSize)
}
