//go:build go1.21

package augment_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/rbtree/pkg/arena"
	"github.com/flier/rbtree/pkg/rbtree"
	"github.com/flier/rbtree/pkg/rbtree/augment"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

func newSizeTree() *rbtree.Tree[int, struct{}, augment.Size, struct{}] {
	hooks := augment.SubtreeSize[int, struct{}]()

	return rbtree.NewTree[int, struct{}, augment.Size, struct{}](
		new(arena.Arena), struct{}{}, rbtree.Natural[int](), rbtree.WithHooks[int, struct{}, augment.Size, struct{}](hooks),
	)
}

func checkSize(t *testing.T, n *node.Node[int, struct{}, augment.Size]) int {
	t.Helper()

	if n == nil {
		return 0
	}

	want := 1 + checkSize(t, n.Child(node.Left)) + checkSize(t, n.Child(node.Right))

	require.Equal(t, want, n.Aug.Count, "subtree-size mismatch at node %d", n.Key)

	return want
}

func TestAugmentedSubtreeSizeStress(t *testing.T) {
	tr := newSizeTree()

	rng := rand.New(rand.NewSource(7))

	const n = 150

	insertOrder := rng.Perm(n)
	for _, k := range insertOrder {
		require.NoError(t, tr.Put(k, struct{}{}))
	}

	min := tr.FindMin()
	require.True(t, min.IsSome())

	root := min.Unwrap()
	for root.Parent() != nil {
		root = root.Parent()
	}

	checkSize(t, root)
	require.Equal(t, n, root.Aug.Count)

	removeOrder := rng.Perm(n)
	for _, k := range removeOrder[:n/2] {
		require.True(t, tr.Remove(k))
	}

	if !tr.Unmanaged.Empty() {
		min = tr.FindMin()
		root = min.Unwrap()

		for root.Parent() != nil {
			root = root.Parent()
		}

		checkSize(t, root)
		require.Equal(t, n-n/2, root.Aug.Count)
	}
}
