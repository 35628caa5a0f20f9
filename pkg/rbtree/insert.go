//go:build go1.21

package rbtree

import (
	"github.com/flier/rbtree/pkg/arena"
	"github.com/flier/rbtree/pkg/opt"
	"github.com/flier/rbtree/pkg/rbtree/core"
	"github.com/flier/rbtree/pkg/rbtree/node"
)

// Insert locates key and, depending on policy, either leaves an existing
// entry alone or overwrites it; if key is absent it allocates a node from
// alloc and links it in.
//
// foundExisting reports whether key was already present; clobbered reports
// whether an existing entry's value (or key and value) was overwritten.
// The returned node is always the one now associated with key. err is
// non-nil if a panic was recovered during the call (see withAllocRecovery);
// when that panic came from alloc while allocating, the tree is unchanged.
func (t *Unmanaged[K, V, A, Context]) Insert(
	alloc arena.Allocator,
	ctx Context,
	key K,
	value V,
	policy ClobberPolicy,
) (foundExisting, clobbered bool, n *node.Node[K, V, A], err error) {
	defer withAllocRecovery(&err)

	located := core.FindNodeOrLocation(t.root, ctx, key, t.cmp)
	if located.HasLeft() {
		existing := located.UnwrapLeft()

		switch policy {
		case ClobberValueOnly:
			existing.Value = value

			return true, true, existing, nil
		case ClobberKeyAndValue:
			existing.Key = key
			existing.Value = value

			return true, true, existing, nil
		default:
			return true, false, existing, nil
		}
	}

	newNode := arena.New(alloc, node.New[K, V, A](key, value))
	core.InsertNode(&t.root, t.cfg, newNode, located.UnwrapRight())

	if !t.cfg.TrackSize {
		t.count++
	}

	return false, false, newNode, nil
}

// GetOrPut returns pointers to the stored key and value for key, inserting
// (key, value) first if it was absent. existed reports whether the entry
// was already present.
func (t *Unmanaged[K, V, A, Context]) GetOrPut(alloc arena.Allocator, ctx Context, key K, value V) (keyPtr *K, valuePtr *V, existed bool, err error) {
	existed, _, n, err := t.Insert(alloc, ctx, key, value, NoClobber)
	if err != nil {
		return nil, nil, false, err
	}

	return &n.Key, &n.Value, existed, nil
}

// FetchPut inserts or overwrites (key, value), returning the prior value if
// one existed.
func (t *Unmanaged[K, V, A, Context]) FetchPut(alloc arena.Allocator, ctx Context, key K, value V) (prior opt.Option[V], err error) {
	defer withAllocRecovery(&err)

	located := core.FindNodeOrLocation(t.root, ctx, key, t.cmp)
	if located.HasLeft() {
		existing := located.UnwrapLeft()
		old := existing.Value
		existing.Value = value

		return opt.Some(old), nil
	}

	newNode := arena.New(alloc, node.New[K, V, A](key, value))
	core.InsertNode(&t.root, t.cfg, newNode, located.UnwrapRight())

	if !t.cfg.TrackSize {
		t.count++
	}

	return opt.None[V](), nil
}

// Put inserts (key, value), overwriting any existing value for key.
func (t *Unmanaged[K, V, A, Context]) Put(alloc arena.Allocator, ctx Context, key K, value V) error {
	_, _, _, err := t.Insert(alloc, ctx, key, value, ClobberValueOnly)

	return err
}

// PutNoClobber inserts (key, value) only if key is absent. Returns true if
// the entry was inserted.
func (t *Unmanaged[K, V, A, Context]) PutNoClobber(alloc arena.Allocator, ctx Context, key K, value V) (inserted bool, err error) {
	found, _, _, err := t.Insert(alloc, ctx, key, value, NoClobber)
	if err != nil {
		return false, err
	}

	return !found, nil
}

// Add is an alias for PutNoClobber, named to match spec.md's operation list.
func (t *Unmanaged[K, V, A, Context]) Add(alloc arena.Allocator, ctx Context, key K, value V) (inserted bool, err error) {
	return t.PutNoClobber(alloc, ctx, key, value)
}
