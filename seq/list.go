package seq

import (
	"fmt"

	"github.com/npillmayer/expanse"
)

// FirstIndex returns the index of the first item satisfying match, or -1.
func FirstIndex[T any](seq []T, match func(T) bool) int {
	for i, it := range seq {
		if match(it) {
			return i
		}
	}
	return -1
}

// Last returns the last item satisfying match. If no item matches,
// an error wrapping expanse.ErrNoMatch is returned.
func Last[T any](seq []T, match func(T) bool) (T, error) {
	for i := len(seq) - 1; i >= 0; i-- {
		if match(seq[i]) {
			return seq[i], nil
		}
	}
	var zero T
	tracer().Debugf("no match in sequence of length %d", len(seq))
	return zero, fmt.Errorf("%w: none of %d items", expanse.ErrNoMatch, len(seq))
}

// LastOr returns the last item satisfying match, or dflt if there is none.
func LastOr[T any](seq []T, match func(T) bool, dflt T) T {
	for i := len(seq) - 1; i >= 0; i-- {
		if match(seq[i]) {
			return seq[i]
		}
	}
	return dflt
}

// Contains reports whether eq holds for item and any item of seq.
func Contains[T any](seq []T, item T, eq func(a, b T) bool) bool {
	for _, it := range seq {
		if eq(it, item) {
			return true
		}
	}
	return false
}

// AddUnique appends item to an unsorted slice if no equal item is present.
// Returns true if item has been appended.
func AddUnique[T any](seq *[]T, item T, eq func(a, b T) bool) bool {
	if Contains(*seq, item, eq) {
		return false
	}
	*seq = append(*seq, item)
	return true
}

// Split splits seq into the runs of items between separators. Separators are
// not part of the result. If skipEmpty is set, empty runs (from adjacent
// separators, or a separator at either end) are dropped.
//
// The runs are sub-slices of seq and share its storage.
func Split[T any](seq []T, isSep func(T) bool, skipEmpty bool) [][]T {
	var runs [][]T
	start := 0
	for i, it := range seq {
		if !isSep(it) {
			continue
		}
		if !skipEmpty || i > start {
			runs = append(runs, seq[start:i:i])
		}
		start = i + 1
	}
	if !skipEmpty || start < len(seq) {
		runs = append(runs, seq[start:])
	}
	return runs
}
