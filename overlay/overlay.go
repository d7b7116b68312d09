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

// Package overlay computes the screen geometry of ranges, for drawing
// visual feedback while a selection is made.
package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/net/html"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/highlight/dom"
)

// TextGeometry gives the screen boxes of runes in a text node.
type TextGeometry interface {
	TextRects(n *html.Node, start, end int) []rect.Rect
}

// Rects returns the boxes covered by the text of r, one or more per text
// node.
func Rects(g TextGeometry, r *dom.Range) []rect.Rect {
	var res []rect.Rect
	for p := range r.Pieces() {
		if p.Start >= p.End {
			continue
		}
		res = append(res, g.TextRects(p.Node, p.Start, p.End)...)
	}
	return res
}

// Draw fills the given screen rectangles.  Translucent colors are blended
// over the existing image.
func Draw(img draw.Image, rects []rect.Rect, c color.Color) {
	src := image.NewUniform(c)
	for _, b := range rects {
		r := image.Rect(
			int(math.Floor(b.LLx)), int(math.Floor(b.LLy)),
			int(math.Ceil(b.URx)), int(math.Ceil(b.URy)),
		)
		draw.Draw(img, r.Intersect(img.Bounds()), src, image.Point{}, draw.Over)
	}
}

// Contains reports whether p lies in one of the screen rectangles.
// Points on the boundary of a rectangle are inside.
func Contains(boxes []rect.Rect, p vec.Vec2) bool {
	for _, b := range boxes {
		if p.X >= b.LLx && p.X <= b.URx && p.Y >= b.LLy && p.Y <= b.URy {
			return true
		}
	}
	return false
}
