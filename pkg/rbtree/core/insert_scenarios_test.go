//go:build go1.21

package core_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/rbtree/pkg/rbtree/core"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

func leaf(key int, color node.Color) *kv {
	n := node.New[int, string, struct{}](key, "")
	n.SetColor(color)

	return &n
}

func link(parent *kv, dir node.Direction, child *kv) {
	parent.SetChild(dir, child)
	child.SetParent(parent)
}

func inorderKeys(n *kv) []int {
	if n == nil {
		return nil
	}

	out := inorderKeys(n.Child(node.Left))
	out = append(out, n.Key)
	out = append(out, inorderKeys(n.Child(node.Right))...)

	return out
}

// TestInsertRecolorOnly is scenario S2: a red uncle forces a pure
// recolor-and-ascend cascade with no rotation.
func TestInsertRecolorOnly(t *testing.T) {
	Convey("Given the S2 tree shape", t, func() {
		root := leaf(10, node.Black)
		n10 := leaf(-10, node.Red)
		n20neg := leaf(-20, node.Black)
		n6 := leaf(6, node.Black)
		n2 := leaf(2, node.Red)
		n8 := leaf(8, node.Red)
		n20 := leaf(20, node.Red)
		n15 := leaf(15, node.Black)
		n25 := leaf(25, node.Black)

		link(root, node.Left, n10)
		link(root, node.Right, n20)
		link(n10, node.Left, n20neg)
		link(n10, node.Right, n6)
		link(n6, node.Left, n2)
		link(n6, node.Right, n8)
		link(n20, node.Left, n15)
		link(n20, node.Right, n25)

		tr := &tree{root: root}

		Convey("When inserting 4", func() {
			tr.insert(4)

			Convey("Then the recolor cascade matches spec.md S2", func() {
				So(n2.Color(), ShouldEqual, node.Black)
				So(n8.Color(), ShouldEqual, node.Black)
				So(n6.Color(), ShouldEqual, node.Red)
				So(n10.Color(), ShouldEqual, node.Black)
				So(n20.Color(), ShouldEqual, node.Black)
				So(tr.root.Color(), ShouldEqual, node.Black)

				checkTree(t, tr)
			})
		})
	})
}

// TestInsertTwoStepRecolor is scenario S3: the red-uncle cascade runs twice
// before reaching the root, still without any rotation.
func TestInsertTwoStepRecolor(t *testing.T) {
	Convey("Given the S3 tree shape", t, func() {
		root := leaf(10, node.Black)
		n10 := leaf(-10, node.Red)
		n20neg := leaf(-20, node.Black)
		n6 := leaf(6, node.Black)
		n20 := leaf(20, node.Red)
		n15 := leaf(15, node.Black)
		n12 := leaf(12, node.Red)
		n17 := leaf(17, node.Red)
		n25 := leaf(25, node.Black)

		link(root, node.Left, n10)
		link(root, node.Right, n20)
		link(n10, node.Left, n20neg)
		link(n10, node.Right, n6)
		link(n20, node.Left, n15)
		link(n20, node.Right, n25)
		link(n15, node.Left, n12)
		link(n15, node.Right, n17)

		tr := &tree{root: root}

		Convey("When inserting 19", func() {
			tr.insert(19)

			Convey("Then the in-order sequence and colors match spec.md S3", func() {
				So(inorderKeys(tr.root), ShouldResemble, []int{-20, -10, 6, 10, 12, 15, 17, 19, 20, 25})

				So(n17.Color(), ShouldEqual, node.Black)
				So(n12.Color(), ShouldEqual, node.Black)
				So(n15.Color(), ShouldEqual, node.Red)
				So(n20.Color(), ShouldEqual, node.Black)
				So(n25.Color(), ShouldEqual, node.Black)
				So(n10.Color(), ShouldEqual, node.Black)

				nineteen := n17.Child(node.Right)
				So(nineteen, ShouldNotBeNil)
				So(nineteen.Key, ShouldEqual, 19)
				So(nineteen.Color(), ShouldEqual, node.Red)

				checkTree(t, tr)
			})
		})
	})
}

func TestFindNodeOrLocationReturnsExistingNode(t *testing.T) {
	Convey("Given a single-node tree", t, func() {
		root := leaf(5, node.Black)

		located := core.FindNodeOrLocation[int, string, struct{}, struct{}](root, struct{}{}, 5, natural)

		Convey("Looking up its key returns the node itself", func() {
			So(located.HasLeft(), ShouldBeTrue)
			So(located.UnwrapLeft(), ShouldEqual, root)
		})
	})
}
