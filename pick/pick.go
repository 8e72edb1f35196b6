/*
Package pick selects items from slices at random.

All functions take the random source as an explicit argument. A *rand.Rand is
not safe for concurrent use, thus clients should not share a source between
goroutines. NewSource creates deterministic sources, which is what tests
usually want.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package pick

import (
	"math/rand"

	"github.com/npillmayer/expanse"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'expanse'
func tracer() tracing.Trace {
	return tracing.Select("expanse")
}

// DefaultSeed is used by NewSource for a seed of 0.
const DefaultSeed int64 = 1

// NewSource returns a deterministic random source. Seed 0 is replaced by
// DefaultSeed.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Choose returns an item of items, selected with uniform probability.
// An empty slice results in expanse.ErrEmptySequence.
func Choose[T any](rnd *rand.Rand, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, expanse.ErrEmptySequence
	}
	return items[rnd.Intn(len(items))], nil
}

// ChooseWeighted returns an item of items, selected with a probability
// proportional to weight(item). Weights must not be negative.
//
// The second return value is false if no item could be selected, i.e. for an
// empty slice.
func ChooseWeighted[T any](rnd *rand.Rand, items []T, weight func(T) float64) (T, bool) {
	total := 0.0
	for _, it := range items {
		total += weight(it)
	}
	return ChooseWeightedTotal(rnd, items, weight, total)
}

// ChooseWeightedTotal is like ChooseWeighted, but takes the sum of all
// weights from the caller, saving one pass over items.
func ChooseWeightedTotal[T any](rnd *rand.Rand, items []T, weight func(T) float64, total float64) (T, bool) {
	threshold := rnd.Float64() * total
	acc := 0.0
	for _, it := range items {
		acc += weight(it)
		if acc >= threshold {
			return it, true
		}
	}
	var zero T
	if len(items) > 0 {
		tracer().Debugf("weighted choice: threshold %.3f beyond total weight %.3f", threshold, acc)
	}
	return zero, false
}
