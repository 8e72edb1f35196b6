/*
Package stats provides simple descriptive statistics on slices of numbers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package stats

import (
	"math"
	"slices"

	"github.com/npillmayer/expanse"
	"golang.org/x/exp/constraints"
)

// Number is the set of types statistics may be calculated for.
type Number interface {
	constraints.Integer | constraints.Float
}

// Median returns the median of values. If presorted is false, a sorted copy
// of values is used, leaving values untouched; otherwise values are assumed to
// be sorted in ascending order.
//
// For an even number of values the mean of the two middle values is returned.
// An empty slice results in expanse.ErrEmptySequence.
func Median[T Number](values []T, presorted bool) (float64, error) {
	if len(values) == 0 {
		return 0, expanse.ErrEmptySequence
	}
	sorted := values
	if !presorted {
		sorted = slices.Clone(values)
		slices.Sort(sorted)
	}
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2, nil
	}
	return float64(sorted[mid]), nil
}

// Percentile returns the value of the p-th percentile (0…100) of sortedData,
// which must be sorted in ascending order. Values between data points are
// linearly interpolated.
//
// An empty slice yields 0, a single value is returned as is, and for p ≥ 100
// the largest value is returned.
func Percentile(sortedData []float64, p float64) float64 {
	n := len(sortedData)
	switch {
	case n == 0:
		return 0
	case n == 1:
		return sortedData[0]
	case p >= 100:
		return sortedData[n-1]
	}
	// rank with 1-based positions, see Aczel, Complete Business Statistics
	position := float64(n+1) * p / 100
	rank := p/100*float64(n-1) + 1
	var left, right float64
	if position >= 1 {
		k := int(math.Floor(rank))
		left, right = sortedData[k-1], sortedData[k]
	} else {
		left, right = sortedData[0], sortedData[1]
	}
	if left == right {
		return left
	}
	return left + (rank-math.Floor(rank))*(right-left)
}
