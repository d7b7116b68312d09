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

package dom

import (
	"iter"
	"strings"

	"golang.org/x/net/html"

	"seehuhn.de/go/highlight"
	"seehuhn.de/go/highlight/walker"
)

// A Range is the part of a document between two boundary points.
// Start must not come after End in document order.
type Range struct {
	Start, End Point
}

// NewRange returns the range between two points.  The points may be given
// in either order.
func NewRange(a, b Point) (*Range, error) {
	if err := a.Check(); err != nil {
		return nil, err
	}
	if err := b.Check(); err != nil {
		return nil, err
	}
	if Root(a.Node) != Root(b.Node) {
		return nil, highlight.ErrDetached
	}
	if Compare(a, b) > 0 {
		a, b = b, a
	}
	return &Range{Start: a, End: b}, nil
}

func (r *Range) String() string {
	return "[" + r.Start.String() + ", " + r.End.String() + "]"
}

// Clone returns a copy of the range.
func (r *Range) Clone() *Range {
	c := *r
	return &c
}

// Collapsed reports whether start and end are the same point.
func (r *Range) Collapsed() bool {
	return r.Start == r.End
}

// SetStart moves the start of the range.
func (r *Range) SetStart(p Point) {
	r.Start = p
}

// SetEnd moves the end of the range.
func (r *Range) SetEnd(p Point) {
	r.End = p
}

// CommonAncestor returns the deepest node containing both end points.
func (r *Range) CommonAncestor() *html.Node {
	return CommonAncestor(r.Start.Node, r.End.Node)
}

// A Piece is the part of a single text node which lies inside a range.
type Piece struct {
	Node       *html.Node
	Start, End int // rune offsets
}

// Text returns the text covered by the piece.
func (p Piece) Text() string {
	return Substring(p.Node.Data, p.Start, p.End)
}

// Pieces iterates over the text nodes which intersect the range, in
// document order.  Text nodes which touch the range only at a single
// boundary are included with an empty piece.
func (r *Range) Pieces() iter.Seq[Piece] {
	return func(yield func(Piece) bool) {
		root := Root(r.Start.Node)

		// first node at or after the start point
		var first *html.Node
		if r.Start.IsText() {
			first = r.Start.Node
		} else if c := Child(r.Start.Node, r.Start.Offset); c != nil {
			first = c
		} else {
			first = walker.After(r.Start.Node, root)
		}

		// first node after the end point, nil for the end of the document
		var stop *html.Node
		if r.End.IsText() {
			stop = walker.Following(r.End.Node, root)
		} else if c := Child(r.End.Node, r.End.Offset); c != nil {
			stop = c
		} else {
			stop = walker.After(r.End.Node, root)
		}

		for n := first; n != nil && n != stop; n = walker.Following(n, root) {
			if n.Type != html.TextNode {
				continue
			}
			p := Piece{Node: n, End: Length(n)}
			if n == r.Start.Node {
				p.Start = r.Start.Offset
			}
			if n == r.End.Node {
				p.End = r.End.Offset
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Text returns the text content of the range.
func (r *Range) Text() string {
	b := &strings.Builder{}
	for p := range r.Pieces() {
		b.WriteString(p.Text())
	}
	return b.String()
}

// Intersects reports whether some part of the subtree rooted at n lies
// strictly inside the range.  A node sharing only a boundary with the
// range does not intersect it.
func (r *Range) Intersects(n *html.Node) bool {
	before := Point{Node: n, Offset: 0}
	after := Point{Node: n, Offset: Length(n)}
	if n.Type != html.TextNode {
		// use the positions in the parent, so that descendants are covered
		if n.Parent == nil {
			return !r.Collapsed()
		}
		i := Index(n)
		before = Point{Node: n.Parent, Offset: i}
		after = Point{Node: n.Parent, Offset: i + 1}
	}
	return Compare(before, r.End) < 0 && Compare(after, r.Start) > 0
}
