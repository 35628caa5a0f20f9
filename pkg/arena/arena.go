//go:build go1.21

// Package arena provides a low-level bump allocator used by pkg/rbtree as
// its node allocator.
//
// Arena allocation hands out memory from large, pre-allocated blocks rather
// than making one runtime allocation per node. All memory handed out by an
// Arena is freed together when the arena is reset; [Recycled] layers
// per-size-class free lists on top so that individual releases (e.g. from
// removing a tree node) can be reused by later allocations without waiting
// for a full Reset.
//
// # Memory safety
//
// Arena-allocated memory must not be accessed after the arena is reset.
// Blocks are held in an ordinary Go slice ([Arena.blocks]), which is what
// keeps them reachable to the garbage collector; addresses derived from
// them ([xunsafe.Addr]) are not themselves GC roots.
package arena

import (
	"unsafe"

	"github.com/flier/rbtree/internal/debug"
	"github.com/flier/rbtree/pkg/xunsafe"
	"github.com/flier/rbtree/pkg/xunsafe/layout"
)

// Allocator is the interface that wraps the basic memory allocation and
// release operations used by pkg/rbtree.
//
// Both [Arena] and [Recycled] implement Allocator, so callers can pick
// either strategy without changing any call site.
type Allocator interface {
	// Alloc allocates size bytes and returns a pointer to the start of the
	// block. Contents are undefined until initialized by the caller.
	Alloc(size int) *byte

	// Release returns a previously allocated block back to the allocator.
	// size must match the size originally passed to Alloc. The memory must
	// not be accessed again after Release.
	Release(p *byte, size int)
}

// Align is the alignment of every allocation made by an Arena.
const Align = int(unsafe.Sizeof(uintptr(0)))

// minBlockSize is the size of the first block an empty Arena grows to.
const minBlockSize = 4096

// Arena is a bump allocator for pointer-free-shaped, fixed-size node
// payloads. A zero Arena is empty and ready to use.
type Arena struct {
	_ xunsafe.NoCopy

	next, end xunsafe.Addr[byte]
	cap       int

	// blocks holds every chunk of memory this arena has grown to. Holding a
	// pointer derived from any block keeps that block's entry here alive,
	// and this slice is what keeps every block reachable to the GC.
	blocks [][]byte
}

var _ Allocator = (*Arena)(nil)

// New allocates a value of type T from a and initializes it to value.
func New[T any](a Allocator, value T) *T {
	l := layout.Of[T]()
	if l.Align > Align {
		panic("rbtree/arena: over-aligned object")
	}

	p := xunsafe.Cast[T](a.Alloc(l.Size))
	*p = value

	return p
}

// Free releases a value of type T previously allocated with [New] back to a.
func Free[T any](a Allocator, p *T) {
	size := layout.Of[T]().Size

	a.Release(xunsafe.Cast[byte](p), size)
}

// Alloc allocates size bytes, aligned to [Align].
func (a *Arena) Alloc(size int) *byte {
	aligned := alignUp(size)
	if aligned == 0 {
		aligned = Align
	}

	if a.next != 0 && a.next.Add(aligned) <= a.end {
		p := a.next.AssertValid()
		a.next = a.next.Add(aligned)
		debug.Log([]any{"%p", a}, "alloc", "%v, %d", p, aligned)

		return p
	}

	a.grow(max(aligned, a.cap*2))

	p := a.next.AssertValid()
	a.next = a.next.Add(aligned)
	debug.Log([]any{"%p", a}, "alloc", "%v, %d (grew)", p, aligned)

	return p
}

// Release is a no-op for Arena: memory is reclaimed in bulk by [Arena.Reset].
func (a *Arena) Release(p *byte, size int) {}

// Reserve ensures at least size bytes can be allocated without growing.
func (a *Arena) Reserve(size int) {
	if a.next == 0 || a.next.Add(size) > a.end {
		a.grow(size)
	}
}

// Reset discards every block but the most recently grown one, clears it,
// and makes it the
// arena's sole block. Every pointer into memory previously handed out by
// this arena becomes invalid.
func (a *Arena) Reset() {
	if len(a.blocks) == 0 {
		return
	}

	last := a.blocks[len(a.blocks)-1]
	clear(last)

	a.blocks = a.blocks[:1]
	a.blocks[0] = last
	a.next = xunsafe.AddrOf(&last[0])
	a.cap = len(last)
	a.end = a.next.Add(a.cap)

	debug.Log([]any{"%p", a}, "reset", "kept %d bytes", a.cap)
}

// grow allocates a fresh block of at least size bytes and makes it the
// arena's active block.
func (a *Arena) grow(size int) {
	n := max(size, minBlockSize)

	block := make([]byte, n)
	a.blocks = append(a.blocks, block)

	a.next = xunsafe.AddrOf(&block[0])
	a.end = a.next.Add(n)
	a.cap = n

	debug.Log([]any{"%p", a}, "grow", "%d", n)
}

// alignUp rounds size up to a multiple of Align.
func alignUp(size int) int {
	return layout.RoundUp(size, Align)
}
