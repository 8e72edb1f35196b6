/*
Package html provides a tree navigator for HTML documents as parsed by
golang.org/x/net/html.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"github.com/npillmayer/expanse/treenav"
	"golang.org/x/net/html"
)

var navigator = treenav.New(parent, children)

// Navigator returns a navigator for trees of HTML nodes.
func Navigator() *treenav.Navigator[*html.Node] {
	return navigator
}

func parent(n *html.Node) *html.Node {
	return n.Parent
}

func children(n *html.Node) []*html.Node {
	var ch []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		ch = append(ch, c)
	}
	return ch
}

// CommonContainer returns the innermost node containing both a and b.
// If a is an ancestor of b (or vice versa), the ancestor is returned. For nodes
// of different documents, nil is returned.
func CommonContainer(a, b *html.Node) *html.Node {
	isect := navigator.PathIntersection(a, b, nil, nil)
	if n, ok := isect.CommonAncestor(); ok {
		return n
	}
	return nil
}

// ElementPath returns the tag names of the element nodes from the document
// root down to n, including n if it is an element.
//
//	<html><body><p>text</p></body></html>  ⇒  [html body p]  (for the text node)
func ElementPath(n *html.Node) []string {
	path := navigator.Ancestors(n, nil, true)
	tags := make([]string, 0, len(path))
	for _, node := range path {
		if node.Type == html.ElementNode {
			tags = append(tags, node.Data)
		}
	}
	return tags
}

// InnerText returns the text content of n and all of its descendents,
// similar to JavaScript's
//
//	document.getElementById("myNode").innerText
//
// (except that InnerText cannot respect CSS styling suppressing the
// visibility of the node's descendents).
func InnerText(n *html.Node) string {
	var text []byte
	_ = navigator.Walk(n, func(node *html.Node, _ int) error {
		if node.Type == html.TextNode {
			text = append(text, node.Data...)
		}
		return nil
	})
	return string(text)
}
