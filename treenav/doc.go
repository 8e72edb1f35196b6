/*
Package treenav navigates trees which are owned by clients and reachable only
through accessor functions.

A Navigator never builds or owns a tree structure. It is created from two
accessors, one returning the parent of a node and one returning its children.
Node identity is determined by Go's == operator; nodes will therefore
usually be pointers or handles, with the zero value (nil) standing for
"no node":

	nav := treenav.New(
		func(n *Node) *Node { return n.parent },
		func(n *Node) []*Node { return n.children },
	)
	path := nav.Ancestors(leaf, nil, true) // root first, leaf last

Paths returned by a navigator are root-first, i.e. index 0 holds the root of
the tree and the last entry holds the queried node. Paths are freshly
allocated per call.

A Navigator does not hold any state besides its accessors, and it is safe to
use it from multiple goroutines, as long as the accessors are and the tree is
not modified concurrently.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treenav

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'expanse'
func tracer() tracing.Trace {
	return tracing.Select("expanse")
}
