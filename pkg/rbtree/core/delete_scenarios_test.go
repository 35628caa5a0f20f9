//go:build go1.21

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flier/rbtree/pkg/rbtree/core"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// TestDeleteCase4DistantRedNephew builds a shape where removing a black
// leaf immediately hits deleteFixup's case 4 (distant nephew red): a single
// rotation terminates the fixup without cascading further.
func TestDeleteCase4DistantRedNephew(t *testing.T) {
	root := leaf(10, node.Black)
	left := leaf(5, node.Black)
	right := leaf(20, node.Black)
	rightRight := leaf(25, node.Red)

	link(root, node.Left, left)
	link(root, node.Right, right)
	link(right, node.Right, rightRight)

	tr := &tree{root: root}

	tr.remove(5)

	checkTree(t, tr)
	assert.Equal(t, []int{10, 20, 25}, inorderKeys(tr.root))
	assert.Equal(t, node.Black, tr.root.Color())
}

// TestDeleteCase2AscendsToParent builds a shape where both nephews are
// black and the parent is also black, forcing the fixup to recolor the
// sibling and ascend rather than terminate at the first level: removing 20
// swaps it down to 25's leaf slot, case 2 recolors 15 red under the black
// 25, then applies again one level up, recoloring 5 red under the root.
func TestDeleteCase2AscendsToParent(t *testing.T) {
	root := leaf(10, node.Black)
	left := leaf(5, node.Black)
	right := leaf(20, node.Black)
	leftLeft := leaf(1, node.Black)
	leftRight := leaf(7, node.Black)
	rightLeft := leaf(15, node.Black)
	rightRight := leaf(25, node.Black)

	link(root, node.Left, left)
	link(root, node.Right, right)
	link(left, node.Left, leftLeft)
	link(left, node.Right, leftRight)
	link(right, node.Left, rightLeft)
	link(right, node.Right, rightRight)

	tr := &tree{root: root}

	tr.remove(20)

	checkTree(t, tr)
	assert.Equal(t, []int{1, 5, 7, 10, 15, 25}, inorderKeys(tr.root))
}

// TestSwapPositionsAdjacent checks the low-level pointer rewiring
// SwapPositions performs between a parent and its direct child, without
// going through deletion at all.
func TestSwapPositionsAdjacent(t *testing.T) {
	root := leaf(10, node.Black)
	left := leaf(5, node.Red)
	right := leaf(20, node.Red)
	leftLeft := leaf(1, node.Black)

	link(root, node.Left, left)
	link(root, node.Right, right)
	link(left, node.Left, leftLeft)

	r := root

	core.SwapPositions(&r, root, left)

	assert.Same(t, left, r, "left takes over as the subtree root")
	assert.Nil(t, left.Parent())
	assert.Same(t, right, left.Child(node.Right), "left keeps root's former sibling as its right child")
	assert.Same(t, root, left.Child(node.Left), "root becomes left's left child")
	assert.Same(t, left, root.Parent())
	assert.Same(t, leftLeft, root.Child(node.Left), "root takes over left's former children")
	assert.Nil(t, root.Child(node.Right))
	assert.Same(t, root, leftLeft.Parent())
	assert.Equal(t, node.Black, left.Color())
	assert.Equal(t, node.Red, root.Color())
}

// TestSwapPositionsIndependent checks the rewiring between two nodes
// neither of which is the other's parent.
func TestSwapPositionsIndependent(t *testing.T) {
	root := leaf(10, node.Black)
	left := leaf(5, node.Red)
	right := leaf(20, node.Black)
	leftLeft := leaf(1, node.Black)
	rightLeft := leaf(15, node.Black)

	link(root, node.Left, left)
	link(root, node.Right, right)
	link(left, node.Left, leftLeft)
	link(right, node.Left, rightLeft)

	r := root

	core.SwapPositions(&r, left, right)

	assert.Same(t, root, r)
	assert.Same(t, right, root.Child(node.Left), "right now occupies left's old slot")
	assert.Same(t, left, root.Child(node.Right), "left now occupies right's old slot")
	assert.Same(t, root, right.Parent())
	assert.Same(t, root, left.Parent())
	assert.Same(t, leftLeft, right.Child(node.Left), "right inherited left's former children")
	assert.Same(t, rightLeft, left.Child(node.Left), "left inherited right's former children")
	assert.Equal(t, node.Black, left.Color())
	assert.Equal(t, node.Red, right.Color())
}
