//go:build go1.21

package augment_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/rbtree/pkg/arena"
	"github.com/flier/rbtree/pkg/rbtree"
	"github.com/flier/rbtree/pkg/rbtree/augment"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

func newMaxTree() *rbtree.Tree[int, struct{}, augment.Max[int], struct{}] {
	hooks := augment.SubtreeMax[int, struct{}]()

	return rbtree.NewTree[int, struct{}, augment.Max[int], struct{}](
		new(arena.Arena), struct{}{}, rbtree.Natural[int](), rbtree.WithHooks[int, struct{}, augment.Max[int], struct{}](hooks),
	)
}

// checkMax independently recomputes, for every node, the maximum key in its
// subtree, and compares it against the Aug payload the hooks maintained.
func checkMax(t *testing.T, n *node.Node[int, struct{}, augment.Max[int]]) int {
	t.Helper()

	if n == nil {
		return minInt
	}

	want := n.Key
	if l := checkMax(t, n.Child(node.Left)); l > want {
		want = l
	}

	if r := checkMax(t, n.Child(node.Right)); r > want {
		want = r
	}

	require.Equal(t, want, n.Aug.Key, "subtree-max mismatch at node %d", n.Key)

	return want
}

const minInt = -1 << 62

// TestAugmentedSubtreeMaxStress is scenario S4, exercising property P10.
func TestAugmentedSubtreeMaxStress(t *testing.T) {
	tr := newMaxTree()

	rng := rand.New(rand.NewSource(42))

	keys := make([]int, 0, 201)
	for k := -100; k <= 100; k++ {
		keys = append(keys, k)
	}

	insertOrder := rng.Perm(len(keys))
	for _, i := range insertOrder {
		require.NoError(t, tr.Put(keys[i], struct{}{}))

		if tr.Unmanaged.Count() > 0 {
			checkMax(t, rootOf(tr))
		}
	}

	removeOrder := rng.Perm(len(keys))
	for _, i := range removeOrder {
		if keys[i] == 46 {
			continue
		}

		require.True(t, tr.Remove(keys[i]))

		if !tr.Unmanaged.Empty() {
			checkMax(t, rootOf(tr))
		}
	}

	assert.True(t, tr.Contains(46))
	assert.Equal(t, 1, tr.Unmanaged.Count())
}

func rootOf(tr *rbtree.Tree[int, struct{}, augment.Max[int], struct{}]) *node.Node[int, struct{}, augment.Max[int]] {
	n := tr.FindMin()
	if n.IsNone() {
		return nil
	}

	root := n.Unwrap()
	for root.Parent() != nil {
		root = root.Parent()
	}

	return root
}
