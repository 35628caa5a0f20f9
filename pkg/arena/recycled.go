//go:build go1.21

package arena

import (
	"math/bits"

	"github.com/flier/rbtree/pkg/xunsafe"
)

// Recycled is an [Allocator] that reuses released blocks instead of only
// reclaiming them on [Arena.Reset].
//
// It embeds an [Arena] to satisfy allocations that miss in the free lists,
// and maintains one free list per size class (indexed by log2 of the
// request size rounded up to [Align]). Released blocks are threaded into a
// singly-linked list using the block's own first machine word as the "next"
// pointer, so the free lists cost no extra memory beyond the released
// blocks themselves.
//
// Recycled is the allocator pkg/rbtree.Unmanaged is expected to be used
// with in workloads with heavy insert/remove churn: a removed node's
// memory becomes available to the very next insert of a similarly-sized
// node, without waiting for the whole tree to be torn down.
type Recycled struct {
	Arena

	free []xunsafe.Addr[byte]
}

var _ Allocator = (*Recycled)(nil)

const freeListClasses = 32

// Release returns a previously allocated block to the free list for its
// size class. Blocks smaller than [Align] are ignored, since they cannot
// hold a next-pointer.
func (a *Recycled) Release(p *byte, size int) {
	if size < Align || p == nil {
		return
	}

	log := sizeClassIndex(alignUp(size))
	a.ensureFreeList()

	*xunsafe.Cast[uintptr](p) = uintptr(a.free[log])
	a.free[log] = xunsafe.AddrOf(p)
}

// Alloc returns size bytes, preferring a recycled block from the matching
// size class over growing the underlying arena. Before a recycled block is
// returned, its first 1<<class bytes (the size class's power of two, which
// is at most the block's size) are zeroed; any bytes past that are not.
func (a *Recycled) Alloc(size int) *byte {
	if size == 0 {
		return a.Arena.Alloc(size)
	}

	log := sizeClassIndex(alignUp(size))

	if a.free != nil {
		if p := a.free[log].AssertValid(); p != nil {
			a.free[log] = xunsafe.Addr[byte](*xunsafe.Cast[uintptr](p))
			xunsafe.Clear(p, 1<<log)

			return p
		}
	}

	return a.Arena.Alloc(size)
}

// Reset clears every free list and resets the embedded Arena.
func (a *Recycled) Reset() {
	for i := range a.free {
		a.free[i] = 0
	}

	a.Arena.Reset()
}

func (a *Recycled) ensureFreeList() {
	if a.free == nil {
		a.free = make([]xunsafe.Addr[byte], freeListClasses)
	}
}

// sizeClassIndex computes the size-class index (log2) for an already
// Align-rounded, positive size.
func sizeClassIndex(size int) int {
	log := bits.Len(uint(size) - 1)
	if sz := 1 << log; sz > size {
		log--
	}

	return log
}
