/*
Package seq provides helpers for slices which are kept in sorted order
by their clients, together with a handful of plain list helpers.

Sorted operations

The sorted operations locate a target within a slice, or the position at which
the target would have to be inserted to keep the slice sorted. The ordering is
defined by the caller through a Comparer, which compares an item of the slice
against an implicit target:

	idx := seq.BinarySearch(items, seq.ByOrderedKey(42, func(it Item) int {
		return it.ID
	}))

A non-negative result is the index of a matching item. A negative result is
the bitwise complement of the insertion point, which may be recovered with
^idx (or with InsertionPoint). The slice is assumed to be sorted; this is
never verified.

Comparer adapters exist for the common calling conventions: a plain
three-way function, a two-argument comparison against a search value, a key
extractor with a key comparison, and a key extractor for keys with a natural
order. All of them result in the same search algorithm.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'expanse'
func tracer() tracing.Trace {
	return tracing.Select("expanse")
}
