package treenav

import "slices"

// Navigator navigates a tree through a parent accessor and a children
// accessor. The zero value of N is interpreted as "no node".
type Navigator[N comparable] struct {
	parentOf   func(N) N
	childrenOf func(N) []N
}

// New creates a navigator from a parent accessor and a children accessor.
// parentOf must return the zero value of N for a root node. childrenOf may be
// nil for clients which do not need any of the downward traversals.
func New[N comparable](parentOf func(N) N, childrenOf func(N) []N) *Navigator[N] {
	return &Navigator[N]{
		parentOf:   parentOf,
		childrenOf: childrenOf,
	}
}

// Ancestors returns the chain of ancestors of start, root first.
//
// The walk upwards stops at the root or at stopAt, whichever comes first.
// stopAt itself is included in the result. If includeStart is set, start will
// be the last entry of the result. If start is the zero value, nil is returned.
// A root with includeStart unset results in an empty, non-nil path.
func (nav *Navigator[N]) Ancestors(start, stopAt N, includeStart bool) []N {
	return nav.AncestorsWhere(start, stopAt, includeStart, nil)
}

// AncestorsWhere is like Ancestors, but requires cond to hold for every node
// visited, including start if includeStart is set. As soon as cond fails for
// a node, nil is returned. There is no partial result: a path is returned
// either completely or not at all.
//
// A nil cond is treated as a condition which always holds.
func (nav *Navigator[N]) AncestorsWhere(start, stopAt N, includeStart bool, cond func(N) bool) []N {
	var none N
	if start == none {
		return nil
	}
	path := make([]N, 0, 8)
	if includeStart {
		if cond != nil && !cond(start) {
			tracer().Debugf("ancestors: condition failed for start node")
			return nil
		}
		path = append(path, start)
	}
	for current := nav.parentOf(start); current != none; current = nav.parentOf(current) {
		if cond != nil && !cond(current) {
			tracer().Debugf("ancestors: condition failed at height %d", len(path))
			return nil
		}
		path = append(path, current)
		if current == stopAt {
			break
		}
	}
	slices.Reverse(path)
	return path
}

// IsDescendantOf reports whether possibleAncestor is a proper ancestor of node.
func (nav *Navigator[N]) IsDescendantOf(node, possibleAncestor N) bool {
	var none N
	if node == none || possibleAncestor == none {
		return false
	}
	for current := nav.parentOf(node); current != none; current = nav.parentOf(current) {
		if current == possibleAncestor {
			return true
		}
	}
	return false
}

// DeepestCommonAncestorIndex returns the index of the last node of the common
// prefix of two root-first paths, or -1 if the paths do not start with the
// same root.
//
// Only the common prefix is considered: after the paths diverge, nodes
// occurring in both paths are ignored.
func (nav *Navigator[N]) DeepestCommonAncestorIndex(path1, path2 []N) int {
	n := min(len(path1), len(path2))
	idx := -1
	for i := 0; i < n; i++ {
		if path1[i] != path2[i] {
			break
		}
		idx = i
	}
	return idx
}

// DeepestCommonAncestor returns the last node of the common prefix of two
// root-first paths, or the zero value if the paths do not share a root.
func (nav *Navigator[N]) DeepestCommonAncestor(path1, path2 []N) N {
	if idx := nav.DeepestCommonAncestorIndex(path1, path2); idx >= 0 {
		return path1[idx]
	}
	var none N
	return none
}

// Root returns the root of the tree node belongs to.
func (nav *Navigator[N]) Root(node N) N {
	var none N
	if node == none {
		return none
	}
	for p := nav.parentOf(node); p != none; p = nav.parentOf(node) {
		node = p
	}
	return node
}

// Depth returns the number of proper ancestors of node, i.e. 0 for a root.
// For the zero value, -1 is returned.
func (nav *Navigator[N]) Depth(node N) int {
	var none N
	if node == none {
		return -1
	}
	d := 0
	for p := nav.parentOf(node); p != none; p = nav.parentOf(p) {
		d++
	}
	return d
}
