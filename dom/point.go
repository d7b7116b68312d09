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

// Package dom implements boundary points and ranges on HTML document
// trees, together with a few tree operations needed to insert and remove
// highlights.
//
// Character offsets inside text nodes count runes, not bytes.
package dom

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html"

	"seehuhn.de/go/highlight"
)

// A Point is a boundary point in a document tree.
//
// If Node is a text node, Offset is the number of runes before the point.
// Otherwise, Offset is the number of children of Node before the point.
type Point struct {
	Node   *html.Node
	Offset int
}

func (p Point) String() string {
	if p.Node == nil {
		return "(nil)"
	}
	if p.Node.Type == html.TextNode {
		return fmt.Sprintf("(%q, %d)", p.Node.Data, p.Offset)
	}
	return fmt.Sprintf("(<%s>, %d)", p.Node.Data, p.Offset)
}

// IsText reports whether the point lies inside a text node.
func (p Point) IsText() bool {
	return p.Node != nil && p.Node.Type == html.TextNode
}

// Check verifies that the offset is valid for the node.
func (p Point) Check() error {
	if p.Node == nil {
		return highlight.ErrDetached
	}
	if n := Length(p.Node); p.Offset < 0 || p.Offset > n {
		return &highlight.PointError{Offset: p.Offset, Max: n}
	}
	return nil
}

// Length returns the number of runes in a text node, or the number of
// children for all other node types.
func Length(n *html.Node) int {
	if n.Type == html.TextNode {
		return utf8.RuneCountInString(n.Data)
	}
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

// Child returns the child of n with index i, or nil if there is no such
// child.
func Child(n *html.Node, i int) *html.Node {
	if i < 0 {
		return nil
	}
	c := n.FirstChild
	for ; c != nil && i > 0; i-- {
		c = c.NextSibling
	}
	return c
}

// Index returns the position of n among its siblings.
func Index(n *html.Node) int {
	i := 0
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		i++
	}
	return i
}

// Root returns the topmost ancestor of n.
func Root(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Contains reports whether n is root or a descendant of root.
func Contains(root, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// Path lists the child indices leading from the root of the tree to n.
func Path(n *html.Node) []int {
	var path []int
	for ; n.Parent != nil; n = n.Parent {
		path = append(path, Index(n))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Compare returns -1 if a comes before b in document order, +1 if a comes
// after b, and 0 if both points are the same.  Both points must belong to
// the same tree.
func Compare(a, b Point) int {
	if a.Node == b.Node {
		return cmpInt(a.Offset, b.Offset)
	}

	// A point (n, k) sorts like the path to the k-th child of n.  Points
	// inside that child sort after it, since their keys are longer.
	ka := append(Path(a.Node), a.Offset)
	kb := append(Path(b.Node), b.Offset)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if c := cmpInt(ka[i], kb[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(ka), len(kb))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CommonAncestor returns the deepest node which contains both a and b.
// If the nodes are in different trees, nil is returned.
func CommonAncestor(a, b *html.Node) *html.Node {
	seen := make(map[*html.Node]bool)
	for n := a; n != nil; n = n.Parent {
		seen[n] = true
	}
	for n := b; n != nil; n = n.Parent {
		if seen[n] {
			return n
		}
	}
	return nil
}
