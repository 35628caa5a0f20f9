//go:build go1.21

// Package rbtree implements a generic, augmentable, intrusive red-black
// tree: an ordered map from a caller-chosen key type to a caller-chosen
// value type, with O(log n) search, insertion and deletion.
//
// [Unmanaged] is the keyed container: it owns the tree's root pointer and
// node allocations but takes an allocator and (when non-empty) an ordering
// context as explicit arguments on every call, the way the rest of this
// module's arena-backed types do. [Tree] is a thin convenience wrapper
// that bundles an allocator and a context value alongside an Unmanaged so
// callers with a single fixed allocator/context don't have to repeat them.
//
// The hard part of this package is in pkg/rbtree/core: the node-level
// rebalancing algorithms and the augmentation callback bundle that lets a
// client maintain arbitrary per-subtree invariants (subtree size,
// subtree-max, interval endpoints, ...) through every mutation. This
// package is the thin, allocating, key-aware shell around that core.
package rbtree

import (
	"errors"
	"fmt"

	"github.com/flier/rbtree/pkg/rbtree/core"
	"github.com/flier/rbtree/pkg/rbtree/node"
	"github.com/flier/rbtree/pkg/xerrors"
)

// Ordering and Direction are re-exported so callers of this package don't
// need to import pkg/rbtree/core or pkg/rbtree/node for the common case.
// The generic types (comparators, hooks, nodes) are not re-exportable as
// aliases without generic alias support, so callers spell those out as
// core.Compare[K, Context], core.Hooks[K, V, A], and node.Node[K, V, A].
type (
	Ordering  = core.Ordering
	Direction = node.Direction
)

const (
	Less    = core.Less
	Equal   = core.Equal
	Greater = core.Greater
)

const (
	Left  = node.Left
	Right = node.Right
)

var (
	// ErrAllocation wraps any panic surfaced by the allocator during insert
	// or clone. The tree's invariants are left intact; the attempted
	// mutation did not happen.
	ErrAllocation = errors.New("rbtree: allocation failed")

	// ErrNotFound names a missing-key condition. No operation in this
	// package returns it: lookups and removals report a missing key through
	// opt.None or a false result.
	ErrNotFound = errors.New("rbtree: key not found")

	// ErrKeyMismatch names the misuse of ClobberKeyAndValue with a key that
	// does not compare Equal to the key already stored. Insert does not
	// check for this and never returns it.
	ErrKeyMismatch = errors.New("rbtree: clobber_key_and_value key does not match the stored key")
)

// ClobberPolicy controls what Insert does when the key already exists.
type ClobberPolicy int

const (
	// NoClobber leaves an existing entry untouched.
	NoClobber ClobberPolicy = iota
	// ClobberValueOnly overwrites the stored value, keeping the stored key.
	ClobberValueOnly
	// ClobberKeyAndValue overwrites both the key and the value. The caller
	// is responsible for ensuring the new key compares Equal to the old one;
	// the container does not verify this beyond what the comparator itself
	// reports during the lookup that found the entry.
	ClobberKeyAndValue
)

// KV is a detached key/value pair, returned by operations that hand back a
// copy rather than a live node pointer (e.g. FetchRemove).
type KV[K, V any] struct {
	Key   K
	Value V
}

// Unmanaged is the keyed, node-owning red-black tree container. The zero
// Unmanaged is an empty tree with the zero Compare, which is never
// callable; construct one with [New].
//
// Every method that can allocate or needs an ordering decision takes an
// explicit [arena.Allocator] and, when Context is non-empty, a Context
// value — Unmanaged never stores either. [Tree] is the wrapper for
// callers who'd rather not repeat them at every call site.
type Unmanaged[K, V, A, Context any] struct {
	root  *node.Node[K, V, A]
	count int

	cmp core.Compare[K, Context]
	cfg core.Config[K, V, A]
}

// Option configures an Unmanaged at construction time.
type Option[K, V, A, Context any] func(*Unmanaged[K, V, A, Context])

// WithSizeTracking enables subtree-size tracking (I6). When enabled, Count
// is O(1) via the root's subtree size instead of a separately maintained
// counter, and augmentation callbacks observe up-to-date sizes.
func WithSizeTracking[K, V, A, Context any]() Option[K, V, A, Context] {
	return func(t *Unmanaged[K, V, A, Context]) {
		t.cfg.TrackSize = true
	}
}

// WithHooks installs the augmentation callback bundle (spec.md §4.4).
func WithHooks[K, V, A, Context any](hooks core.Hooks[K, V, A]) Option[K, V, A, Context] {
	return func(t *Unmanaged[K, V, A, Context]) {
		t.cfg.Hooks = hooks
	}
}

// New constructs an empty Unmanaged ordered by cmp.
//
// New panics if Node[K, V, A]'s alignment cannot carry the packed
// parent+color bit (spec.md §3's static packing requirement); this is a
// property of K, V and A alone and is independent of any option passed
// here.
func New[K, V, A, Context any](cmp core.Compare[K, Context], opts ...Option[K, V, A, Context]) *Unmanaged[K, V, A, Context] {
	node.CheckPacking[K, V, A]()

	t := &Unmanaged[K, V, A, Context]{cmp: cmp}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Count returns the number of entries in the tree.
func (t *Unmanaged[K, V, A, Context]) Count() int {
	if t.cfg.TrackSize {
		return t.root.Size()
	}

	return t.count
}

// Empty reports whether the tree holds no entries.
func (t *Unmanaged[K, V, A, Context]) Empty() bool { return t.root == nil }

// Move returns *t and resets t to an empty tree with the same comparator
// and configuration, an O(1) steal. Node pointers obtained from t before
// Move remain valid, but now refer to the returned tree, not t.
func (t *Unmanaged[K, V, A, Context]) Move() Unmanaged[K, V, A, Context] {
	moved := *t
	*t = Unmanaged[K, V, A, Context]{cmp: t.cmp, cfg: t.cfg}

	return moved
}

// withAllocRecovery recovers a panic raised by an [arena.Allocator] and
// turns it into a returned error wrapping ErrAllocation, the closest Go
// analogue to a fallible allocator's error return. It does not tell
// allocator panics apart from others: any panic raised while the deferring
// call runs, including one from the comparator or a hook, is recovered and
// reported as ErrAllocation.
func withAllocRecovery(err *error) {
	r := recover()
	if r == nil {
		return
	}

	if e, ok := r.(error); ok {
		*err = fmt.Errorf("%w: %w", ErrAllocation, e)

		return
	}

	*err = fmt.Errorf("%w: %v", ErrAllocation, r)
}

// AllocationCause extracts the allocator-specific error type T from an
// error returned by Insert, FetchPut, or Clone, when the allocator's panic
// value was itself an error of that type. Returns ok=false if err does not
// wrap ErrAllocation, or the wrapped panic value was not a T.
func AllocationCause[T error](err error) (T, bool) {
	if !errors.Is(err, ErrAllocation) {
		var zero T

		return zero, false
	}

	return xerrors.AsA[T](err)
}
