//go:build go1.21

package rbtree

import (
	"cmp"
	"slices"

	"github.com/flier/rbtree/pkg/rbtree/core"
)

// LiftComparator adapts a context-free comparator into the
// [core.Compare] shape every tree operation expects, for keys whose order
// never depends on anything outside the key itself.
func LiftComparator[K any](cmp func(a, b K) Ordering) core.Compare[K, struct{}] {
	return func(_ struct{}, a, b K) Ordering {
		return cmp(a, b)
	}
}

// Natural returns the default structural ordering for any key type with a
// built-in total order (integers, floats, strings), via the standard
// library's [cmp.Compare].
func Natural[K cmp.Ordered]() core.Compare[K, struct{}] {
	return func(_ struct{}, a, b K) Ordering {
		return Ordering(cmp.Compare(a, b))
	}
}

// NaturalSlice returns the default structural ordering for slice keys
// whose element type has a built-in total order: lexicographic comparison
// via the standard library's [slices.Compare], the "vector" case spec.md
// §6 calls for alongside primitive keys. Fixed-size array keys can reuse
// this by slicing (arr[:]) before comparing.
func NaturalSlice[E cmp.Ordered]() core.Compare[[]E, struct{}] {
	return func(_ struct{}, a, b []E) Ordering {
		return Ordering(slices.Compare(a, b))
	}
}
