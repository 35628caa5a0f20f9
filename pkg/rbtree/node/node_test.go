//go:build go1.21

package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/rbtree/pkg/rbtree/node"
)

func TestCheckPacking(t *testing.T) {
	assert.NotPanics(t, func() { node.CheckPacking[int, string, struct{}]() })
}

func TestNewIsRedAndUnlinked(t *testing.T) {
	n := node.New[int, string, struct{}](1, "one")

	assert.Equal(t, node.Red, n.Color())
	assert.Nil(t, n.Parent())
	assert.Nil(t, n.Child(node.Left))
	assert.Nil(t, n.Child(node.Right))
}

func TestColorRoundTrip(t *testing.T) {
	n := node.New[int, string, struct{}](1, "one")

	n.SetColor(node.Black)
	assert.Equal(t, node.Black, n.Color())
	assert.True(t, node.IsBlack(&n))
	assert.False(t, node.IsRed(&n))

	n.SetColor(node.Red)
	assert.True(t, node.IsRed(&n))
}

func TestParentSurvivesColorChange(t *testing.T) {
	n := node.New[int, string, struct{}](1, "one")
	p := node.New[int, string, struct{}](2, "two")

	n.SetParent(&p)
	n.SetColor(node.Black)

	assert.Same(t, &p, n.Parent())
	assert.Equal(t, node.Black, n.Color())

	n.SetColor(node.Red)
	assert.Same(t, &p, n.Parent())
}

func TestNilNodeDefaults(t *testing.T) {
	var n *node.Node[int, string, struct{}]

	assert.Nil(t, n.Parent())
	assert.Nil(t, n.Child(node.Left))
	assert.Equal(t, node.Black, n.Color())
	assert.True(t, node.IsBlack[int, string, struct{}](n))
	assert.False(t, node.IsRed[int, string, struct{}](n))
	assert.Equal(t, 0, n.Size())

	_, ok := n.Direction()
	assert.False(t, ok)
}

func TestDirection(t *testing.T) {
	p := node.New[int, string, struct{}](2, "two")
	l := node.New[int, string, struct{}](1, "one")
	r := node.New[int, string, struct{}](3, "three")

	p.SetChild(node.Left, &l)
	l.SetParent(&p)
	p.SetChild(node.Right, &r)
	r.SetParent(&p)

	dir, ok := l.Direction()
	require.True(t, ok)
	assert.Equal(t, node.Left, dir)

	dir, ok = r.Direction()
	require.True(t, ok)
	assert.Equal(t, node.Right, dir)

	_, ok = p.Direction()
	assert.False(t, ok)
}

// buildChain builds a 5-node BST over keys 1..5 shaped as a perfect
// 3-node-root, 2-leaf tree: 3 is the root, 1 and 5 are the middle level,
// 2 and 4 hang off them. In-order traversal must yield 1,2,3,4,5.
func buildChain(t *testing.T) (root, n1, n2, n3, n4, n5 *node.Node[int, string, struct{}]) {
	t.Helper()

	n1 = newLeaf(1)
	n2 = newLeaf(2)
	n3 = newLeaf(3)
	n4 = newLeaf(4)
	n5 = newLeaf(5)

	n3.SetChild(node.Left, n1)
	n1.SetParent(n3)
	n3.SetChild(node.Right, n5)
	n5.SetParent(n3)

	n1.SetChild(node.Right, n2)
	n2.SetParent(n1)

	n5.SetChild(node.Left, n4)
	n4.SetParent(n5)

	return n3, n1, n2, n3, n4, n5
}

func newLeaf(key int) *node.Node[int, string, struct{}] {
	n := node.New[int, string, struct{}](key, "")
	return &n
}

func TestNextPrevInOrder(t *testing.T) {
	root, n1, n2, n3, n4, n5 := buildChain(t)

	assert.Same(t, root, n3)

	assert.Same(t, n2, n1.Next())
	assert.Same(t, n3, n2.Next())
	assert.Same(t, n4, n3.Next())
	assert.Same(t, n5, n4.Next())
	assert.Nil(t, n5.Next())

	assert.Nil(t, n1.Prev())
	assert.Same(t, n1, n2.Prev())
	assert.Same(t, n2, n3.Prev())
	assert.Same(t, n3, n4.Prev())
	assert.Same(t, n4, n5.Prev())
}

func TestLeftmostRightmost(t *testing.T) {
	root, n1, _, _, _, n5 := buildChain(t)

	assert.Same(t, n1, root.LeftmostInSubtree())
	assert.Same(t, n5, root.RightmostInSubtree())

	var nilNode *node.Node[int, string, struct{}]
	assert.Nil(t, nilNode.LeftmostInSubtree())
	assert.Nil(t, nilNode.RightmostInSubtree())
}

func TestSize(t *testing.T) {
	n := node.New[int, string, struct{}](1, "one")

	n.SetSize(3)
	assert.Equal(t, 3, n.Size())

	l := node.New[int, string, struct{}](0, "")
	r := node.New[int, string, struct{}](2, "")
	n.SetChild(node.Left, &l)
	n.SetChild(node.Right, &r)
	l.SetSize(1)
	r.SetSize(1)

	n.RecomputeSize()
	assert.Equal(t, 3, n.Size())
}

func TestDirectionInvert(t *testing.T) {
	assert.Equal(t, node.Right, node.Left.Invert())
	assert.Equal(t, node.Left, node.Right.Invert())
}
