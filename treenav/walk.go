package treenav

import (
	"errors"
	"fmt"

	"github.com/golang-collections/collections/stack"
	"github.com/npillmayer/expanse"
)

// SkipChildren may be returned by a visitor of Walk to signal that the
// children of the current node should not be visited.
var SkipChildren = errors.New("treenav: skip children")

type frame[N comparable] struct {
	node  N
	depth int
}

// Walk visits the tree below root (including root) in pre-order, children in
// the order returned by the children accessor. depth is relative to root.
//
// If visit returns SkipChildren, the children of the current node are skipped.
// Any other non-nil error aborts the walk and is returned.
func (nav *Navigator[N]) Walk(root N, visit func(node N, depth int) error) error {
	if nav.childrenOf == nil {
		return fmt.Errorf("%w: navigator has no children accessor", expanse.ErrIllegalArguments)
	}
	var none N
	if root == none {
		return nil
	}
	pending := stack.New()
	pending.Push(frame[N]{node: root})
	for pending.Len() > 0 {
		f := pending.Pop().(frame[N])
		if err := visit(f.node, f.depth); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}
		children := nav.childrenOf(f.node)
		for i := len(children) - 1; i >= 0; i-- {
			if children[i] != none {
				pending.Push(frame[N]{node: children[i], depth: f.depth + 1})
			}
		}
	}
	return nil
}

// Descendants returns all nodes below root in pre-order, excluding root.
func (nav *Navigator[N]) Descendants(root N) ([]N, error) {
	var nodes []N
	err := nav.Walk(root, func(node N, depth int) error {
		if depth > 0 {
			nodes = append(nodes, node)
		}
		return nil
	})
	return nodes, err
}

// isLeaf reports whether node has no children.
func (nav *Navigator[N]) isLeaf(node N) bool {
	return nav.childrenOf == nil || len(nav.childrenOf(node)) == 0
}
