package seq

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// BinarySearch searches a sorted slice for an item for which c reports a
// match.
//
// It returns the index of a matching item, if any. Otherwise the bitwise
// complement of the index at which the target would have to be inserted
// is returned. For an empty slice this is ^0.
//
// If more than one item matches, no guarantee is made about which one of
// them is found.
func BinarySearch[T any](seq []T, c Comparer[T]) int {
	left, right := 0, len(seq)-1
	for left <= right {
		mid := left + (right-left)/2
		r := c.Compare(seq[mid])
		if r == 0 {
			return mid
		}
		if r < 0 {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return ^left
}

// InsertionPoint returns the index where a search result of BinarySearch
// points to: either the index of a match or the complemented insertion point.
func InsertionPoint(result int) int {
	if result < 0 {
		return ^result
	}
	return result
}

// SortedFind returns the item of a sorted slice for which c reports a match.
// If none is found, the zero value of T and false are returned.
func SortedFind[T any](seq []T, c Comparer[T]) (T, bool) {
	idx := BinarySearch(seq, c)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return seq[idx], true
}

// SortedInsert inserts item into a sorted slice, at the position located by
// c. Items matching c are not skipped, i.e. duplicates are inserted in front
// of the matching item the search happened to find.
//
// Returns the index at which item has been inserted.
func SortedInsert[T any](seq *[]T, item T, c Comparer[T]) int {
	idx := InsertionPoint(BinarySearch(*seq, c))
	*seq = slices.Insert(*seq, idx, item)
	tracer().Debugf("sorted insert at %d of %d", idx, len(*seq))
	return idx
}

// SortedInsertOrdered inserts item into a slice sorted by the natural order
// of T. Returns the index at which item has been inserted.
func SortedInsertOrdered[T constraints.Ordered](seq *[]T, item T) int {
	return SortedInsert(seq, item, Natural(item))
}

// AddUniqueSorted inserts item into a sorted slice, but only if c does not
// report a match for any item already present. It returns true if item has
// been inserted. Otherwise the slice is left untouched.
func AddUniqueSorted[T any](seq *[]T, item T, c Comparer[T]) bool {
	idx := BinarySearch(*seq, c)
	if idx >= 0 {
		return false
	}
	*seq = slices.Insert(*seq, ^idx, item)
	tracer().Debugf("unique sorted insert at %d of %d", ^idx, len(*seq))
	return true
}
