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

package layout

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/net/html"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/highlight/dom"
	"seehuhn.de/go/highlight/mark"
	"seehuhn.de/go/highlight/overlay"
	"seehuhn.de/go/highlight/walker"
)

var (
	// DefaultMarkColor is used for marks without a background style.
	DefaultMarkColor = color.RGBA{R: 0xff, G: 0xf5, B: 0x9d, A: 0xff}

	// OverlayColor is used to paint the selection overlay.
	OverlayColor = color.NRGBA{R: 0x40, G: 0x80, B: 0xff, A: 0x60}
)

// Render draws the document text.  Marks are painted in their background
// color, and the overlay rectangles are drawn translucently on top.
func (l *Layout) Render(sel []rect.Rect) *image.RGBA {
	rows := max(l.rows, 1)
	img := image.NewRGBA(image.Rect(0, 0, l.cols*CellWidth, rows*CellHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for n := range walker.PreOrder(l.root) {
		if !mark.IsMark(n) {
			continue
		}
		col, ok := markColor(n)
		if !ok {
			col = DefaultMarkColor
		}
		overlay.Draw(img, l.ClientRects(n), col)
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}
	ascent := basicfont.Face7x13.Ascent
	for n, cells := range l.cells {
		j := 0
		for _, r := range n.Data {
			if j >= len(cells) {
				break // the tree changed after Update
			}
			c := cells[j]
			j++
			if c.width == 0 || r <= 32 {
				continue
			}
			d.Dot = fixed.P(c.col*CellWidth, c.row*CellHeight+ascent)
			d.DrawString(string(r))
		}
	}

	overlay.Draw(img, sel, OverlayColor)
	return img
}

// markColor extracts the background color from the style attribute of a
// mark.
func markColor(n *html.Node) (color.RGBA, bool) {
	v, ok := dom.StyleValue(n, "background-color", "background")
	if !ok {
		return color.RGBA{}, false
	}
	return ParseHex(v)
}

// ParseHex parses a color in the form #rgb or #rrggbb.
func ParseHex(s string) (color.RGBA, bool) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
}
