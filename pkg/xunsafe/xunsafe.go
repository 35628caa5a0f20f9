//go:build go1.21

// Package xunsafe provides small, carefully scoped wrappers around
// unsafe.Pointer for code that needs raw address arithmetic: arena
// allocators and intrusive, pointer-tagged data structures.
//
// Every exported helper here keeps the same safety contract as the
// underlying unsafe.Pointer conversion it wraps: the caller is responsible
// for ensuring the referenced memory stays alive and correctly typed for as
// long as the resulting value is used.
package xunsafe

import "unsafe"

// Int is any integer type usable as an address offset.
type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Addr is a raw address of a value of type T, stored as a plain integer
// rather than a pointer.
//
// Holding a value only as an Addr issues no write barriers and is invisible
// to the garbage collector: something else (typically an [arena], which
// keeps its allocated blocks alive via an ordinary Go slice) must keep the
// referent reachable for as long as the Addr is in use.
type Addr[T any] uintptr

// AddrOf returns the address of p.
func AddrOf[T any](p *T) Addr[T] {
	return Addr[T](uintptr(unsafe.Pointer(p)))
}

// Valid reports whether this address is non-zero.
func (a Addr[T]) Valid() bool { return a != 0 }

// AssertValid converts this address back into a pointer.
//
// Returns nil if the address is zero.
func (a Addr[T]) AssertValid() *T {
	if a == 0 {
		return nil
	}

	return (*T)(unsafe.Pointer(uintptr(a)))
}

// Add returns a + n*sizeof(T), i.e. pointer arithmetic scaled by T's size.
func (a Addr[T]) Add(n int) Addr[T] {
	var z T
	return a + Addr[T](uintptr(n)*unsafe.Sizeof(z))
}

// Cast casts a pointer of one type to a pointer of another.
//
// The caller must ensure the pointee is large enough and aligned correctly
// for To.
func Cast[To, From any](p *From) *To {
	return (*To)(unsafe.Pointer(p))
}

// Clear zeros n elements of T starting at p.
func Clear[T any](p *T, n int) {
	if p == nil || n == 0 {
		return
	}

	clear(unsafe.Slice(p, n))
}

// Copy copies n elements of T from src to dst.
func Copy[T any](dst, src *T, n int) {
	if n == 0 {
		return
	}

	copy(unsafe.Slice(dst, n), unsafe.Slice(src, n))
}

// NoCopy is embedded in types that must not be copied after first use.
// `go vet`'s copylocks check flags any accidental copy because NoCopy
// implements sync.Locker via pointer receivers only.
type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}
