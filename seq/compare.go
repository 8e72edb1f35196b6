package seq

import "golang.org/x/exp/constraints"

// Comparer compares items of a sorted slice against an implicit target.
//
// Compare returns a negative value if item sorts before the target, zero if
// item matches the target, and a positive value if item sorts after it.
type Comparer[T any] interface {
	Compare(item T) int
}

// CompareFunc is a plain three-way function usable as a Comparer.
type CompareFunc[T any] func(item T) int

// Compare calls f(item).
func (f CompareFunc[T]) Compare(item T) int {
	return f(item)
}

// Against creates a Comparer which compares items to target, using a
// two-argument comparison function. cmp(item, target) is called for each
// probe, i.e. the slice item is always the first argument.
func Against[T any](target T, cmp func(a, b T) int) Comparer[T] {
	return against[T]{target: target, cmp: cmp}
}

type against[T any] struct {
	target T
	cmp    func(a, b T) int
}

func (c against[T]) Compare(item T) int {
	return c.cmp(item, c.target)
}

// ByKey creates a Comparer which extracts a key from each item and compares
// it to target using cmp.
func ByKey[T, K any](target K, key func(T) K, cmp func(a, b K) int) Comparer[T] {
	return byKey[T, K]{target: target, key: key, cmp: cmp}
}

type byKey[T, K any] struct {
	target K
	key    func(T) K
	cmp    func(a, b K) int
}

func (c byKey[T, K]) Compare(item T) int {
	return c.cmp(c.key(item), c.target)
}

// ByOrderedKey creates a Comparer which extracts a key from each item and
// compares it to target by the natural order of K.
func ByOrderedKey[T any, K constraints.Ordered](target K, key func(T) K) Comparer[T] {
	return byKey[T, K]{target: target, key: key, cmp: compareOrdered[K]}
}

// Natural creates a Comparer for slices of ordered values.
func Natural[T constraints.Ordered](target T) Comparer[T] {
	return against[T]{target: target, cmp: compareOrdered[T]}
}

func compareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
