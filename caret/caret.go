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

// Package caret maps screen coordinates to boundary points in text nodes.
//
// Screen rectangles use the fields of [rect.Rect] with LLx the left edge,
// URx the right edge, LLy the top edge and URy the bottom edge, since the
// y-axis points down on screen.
package caret

import (
	"golang.org/x/net/html"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/highlight/dom"
	"seehuhn.de/go/highlight/overlay"
)

// Geometry gives access to the rendered positions of nodes.
type Geometry interface {
	// ElementFromPoint returns the topmost element rendered at p, or nil.
	ElementFromPoint(p vec.Vec2) *html.Node

	// ClientRects returns the boxes occupied by an element or a text node.
	// There is one box per line fragment.
	ClientRects(n *html.Node) []rect.Rect

	// TextRects returns the boxes occupied by the runes of a text node with
	// indices in [start, end).
	TextRects(n *html.Node, start, end int) []rect.Rect
}

// NativeCaret is implemented by hosts which can resolve caret positions
// directly.
type NativeCaret interface {
	CaretFromPoint(p vec.Vec2) (dom.Point, bool)
}

// Resolver maps screen coordinates to boundary points.
//
// If Native is set, it is asked first.  When it has no answer, the
// position is computed from the geometry of the text nodes under the
// point.  This is much slower, since the boxes of individual characters
// are examined, but works for text where the host refuses to place a
// caret, for example because text selection is disabled.
type Resolver struct {
	Native   NativeCaret
	Geometry Geometry
}

// Resolve returns the boundary point at the screen position p.
// The second return value is false if no text is found at p.
func (r *Resolver) Resolve(p vec.Vec2) (dom.Point, bool) {
	if r.Native != nil {
		if pt, ok := r.Native.CaretFromPoint(p); ok && pt.Node != nil {
			return pt, true
		}
	}
	if r.Geometry == nil {
		return dom.Point{}, false
	}
	return r.fromGeometry(p)
}

func (r *Resolver) fromGeometry(p vec.Vec2) (dom.Point, bool) {
	elem := r.Geometry.ElementFromPoint(p)
	if elem == nil {
		return dom.Point{}, false
	}
	nodes := r.textNodesAt(nil, elem, p)
	if len(nodes) == 0 {
		return dom.Point{}, false
	}

	for i := len(nodes) - 1; i >= 0; i-- {
		node := nodes[i]
		text := []rune(node.Data)
		if !overlay.Contains(r.Geometry.TextRects(node, 0, len(text)), p) {
			continue
		}

		// The end of the last single-character range is used if no
		// character box contains the point.  Without any candidate
		// character, this is the end of the whole-node range.
		fallback := len(text)
		for j := len(text) - 1; j >= 0; j-- {
			if text[j] <= 32 {
				continue
			}
			if overlay.Contains(r.Geometry.TextRects(node, j, j+1), p) {
				return dom.Point{Node: node, Offset: j}, true
			}
			fallback = j + 1
		}
		return dom.Point{Node: node, Offset: fallback}, true
	}
	return dom.Point{}, false
}

// textNodesAt appends the text nodes below n whose boxes contain p, in
// document order.  Only elements whose boxes contain p are searched.
func (r *Resolver) textNodesAt(res []*html.Node, n *html.Node, p vec.Vec2) []*html.Node {
	if !overlay.Contains(r.Geometry.ClientRects(n), p) {
		return res
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if overlay.Contains(r.Geometry.ClientRects(c), p) {
				res = append(res, c)
			}
		case html.ElementNode:
			res = r.textNodesAt(res, c, p)
		}
	}
	return res
}
