// seehuhn.de/go/highlight - marking text ranges in HTML documents
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package walker provides functionality to iterate over the nodes of an
// HTML document tree in document order.
package walker

import (
	"iter"

	"golang.org/x/net/html"
)

// Filter is the decision taken by a filter function for a single node.
type Filter int

const (
	// Accept yields the node.  The children of the node are visited next.
	Accept Filter = iota

	// Skip does not yield the node, but still visits its children.
	Skip

	// Reject neither yields the node nor visits its children.
	Reject
)

func (f Filter) String() string {
	switch f {
	case Accept:
		return "accept"
	case Skip:
		return "skip"
	case Reject:
		return "reject"
	default:
		return "invalid"
	}
}

// A Walker iterates over the descendants of a root node in document order,
// consulting a filter function for every node.  The root itself is never
// yielded.
//
// The walker only remembers the most recently yielded node and finds the
// next node through the live parent and sibling links.  The tree may
// therefore be modified between calls to Next, as long as the current node
// stays attached below the root and nodes which have not been visited yet
// keep their place relative to it.  In particular, it is safe to move the
// current node into a freshly inserted wrapper element at the current
// node's position.
type Walker struct {
	root   *html.Node
	cur    *html.Node
	filter func(*html.Node) Filter
}

// New returns a walker for the descendants of root.  If filter is nil,
// every node is accepted.
func New(root *html.Node, filter func(*html.Node) Filter) *Walker {
	if filter == nil {
		filter = func(*html.Node) Filter { return Accept }
	}
	return &Walker{root: root, cur: root, filter: filter}
}

// Current returns the node most recently returned by Next, or the root
// before the first call.
func (w *Walker) Current() *html.Node {
	return w.cur
}

// Next advances to the next accepted node and returns it.
// If no more nodes are accepted, nil is returned.
func (w *Walker) Next() *html.Node {
	node := w.cur
	result := Accept
	for {
		for result != Reject && node.FirstChild != nil {
			node = node.FirstChild
			result = w.filter(node)
			if result == Accept {
				w.cur = node
				return node
			}
		}

		next := w.nextSibling(node)
		if next == nil {
			return nil
		}
		node = next
		result = w.filter(node)
		if result == Accept {
			w.cur = node
			return node
		}
	}
}

// nextSibling returns the next sibling of n or of the closest ancestor of n
// which has one, without leaving the root.
func (w *Walker) nextSibling(n *html.Node) *html.Node {
	for n != nil && n != w.root {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// All returns an iterator over the remaining accepted nodes.
func (w *Walker) All() iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for n := w.Next(); n != nil; n = w.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// PreOrder returns an iterator over root and all its descendants, in
// document order.
//
// The iterator cannot be used while the tree is modified.
func PreOrder(root *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for n := root; n != nil; n = Following(n, root) {
			if !yield(n) {
				return
			}
		}
	}
}

// Following returns the node after n in document order, without leaving
// the subtree rooted at root.  If n is the last node, nil is returned.
func Following(n, root *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	return After(n, root)
}

// After returns the first node after the subtree rooted at n, in document
// order, without leaving the subtree rooted at root.
func After(n, root *html.Node) *html.Node {
	for n != nil && n != root {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// Preceding returns the node before n in document order, without leaving
// the subtree rooted at root.  For n == root, nil is returned.
func Preceding(n, root *html.Node) *html.Node {
	if n == root {
		return nil
	}
	if p := n.PrevSibling; p != nil {
		return LastDescendant(p)
	}
	return n.Parent
}

// LastDescendant returns the last node of the subtree rooted at n, in
// document order.  For a leaf, this is n itself.
func LastDescendant(n *html.Node) *html.Node {
	for n.LastChild != nil {
		n = n.LastChild
	}
	return n
}
