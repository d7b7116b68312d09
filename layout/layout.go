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

// Package layout places the text of an HTML document on a grid of
// character cells.
//
// This is far from a browser layout engine.  It knows about block-level
// elements, line breaks, collapsing white space and wide characters, which
// is enough to give every character of a document a well-defined box on
// screen.
package layout

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/width"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/highlight/dom"
	"seehuhn.de/go/highlight/overlay"
)

// The size of a character cell in pixels.  This matches the metrics of
// [golang.org/x/image/font/basicfont.Face7x13].
const (
	CellWidth  = 7
	CellHeight = 13
)

// cell is the position of a rune on the grid.  Collapsed white space has
// width 0.
type cell struct {
	row, col, width int
}

// Layout holds the positions of all characters of a document.
type Layout struct {
	root *html.Node
	cols int

	cells map[*html.Node][]cell
	boxes map[*html.Node][]rect.Rect
	rows  int

	// state used while placing text
	row, col  int
	pre       int
	lastSpace bool
}

// New lays out the document rooted at root, with lines of at most cols
// cells.
func New(root *html.Node, cols int) *Layout {
	if cols < 1 {
		cols = 1
	}
	l := &Layout{root: root, cols: cols}
	l.Update()
	return l
}

// Update recomputes the layout.  This must be called after the tree has
// been modified.
func (l *Layout) Update() {
	l.cells = make(map[*html.Node][]cell)
	l.boxes = make(map[*html.Node][]rect.Rect)
	l.row, l.col, l.pre = 0, 0, 0
	l.lastSpace = true

	l.place(l.root)

	l.rows = l.row
	if l.col > 0 {
		l.rows++
	}
}

// Size returns the number of columns and rows used by the layout.
func (l *Layout) Size() (cols, rows int) {
	return l.cols, l.rows
}

// hidden lists elements whose content is not rendered.
var hidden = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
	atom.Noscript: true,
}

func (l *Layout) place(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		l.placeText(n)
		return
	case html.ElementNode:
		if hidden[n.DataAtom] {
			return
		}
		if n.DataAtom == atom.Br {
			l.newLine()
			return
		}
	case html.DocumentNode:
		// pass through
	default:
		return
	}

	block := dom.IsBlock(n)
	if block {
		l.lineBreak()
	}
	if n.DataAtom == atom.Pre {
		l.pre++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		l.place(c)
	}
	if n.DataAtom == atom.Pre {
		l.pre--
	}
	if block {
		l.lineBreak()
	}
}

func (l *Layout) placeText(n *html.Node) {
	cells := make([]cell, 0, len(n.Data))
	for _, r := range n.Data {
		if r == '\n' && l.pre > 0 {
			cells = append(cells, cell{row: l.row, col: l.col})
			l.newLine()
			continue
		}

		w := runeWidth(r)
		if unicode.IsSpace(r) && l.pre == 0 {
			if l.lastSpace || l.col == 0 {
				cells = append(cells, cell{row: l.row, col: l.col})
				continue
			}
			l.lastSpace = true
			w = 1
		} else {
			l.lastSpace = false
		}

		if l.col+w > l.cols && l.col > 0 {
			l.newLine()
		}
		cells = append(cells, cell{row: l.row, col: l.col, width: w})
		l.col += w
	}
	l.cells[n] = cells
}

// lineBreak starts a new line, unless the current line is empty.
func (l *Layout) lineBreak() {
	if l.col > 0 {
		l.newLine()
	}
	l.lastSpace = true
}

func (l *Layout) newLine() {
	l.row++
	l.col = 0
	l.lastSpace = true
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// TextRects returns one box per line for the runes of the text node n with
// indices in [start, end).  Collapsed white space occupies no box.
func (l *Layout) TextRects(n *html.Node, start, end int) []rect.Rect {
	cells := l.cells[n]
	start = max(start, 0)
	end = min(end, len(cells))

	var res []rect.Rect
	lastRow := -1
	for _, c := range cells[min(start, end):end] {
		if c.width == 0 {
			continue
		}
		x0 := float64(c.col * CellWidth)
		x1 := float64((c.col + c.width) * CellWidth)
		if c.row == lastRow {
			res[len(res)-1].URx = x1
			continue
		}
		res = append(res, rect.Rect{
			LLx: x0,
			LLy: float64(c.row * CellHeight),
			URx: x1,
			URy: float64((c.row + 1) * CellHeight),
		})
		lastRow = c.row
	}
	return res
}

// ClientRects returns the boxes occupied by an element or a text node,
// one box per line.
func (l *Layout) ClientRects(n *html.Node) []rect.Rect {
	if n.Type == html.TextNode {
		return l.TextRects(n, 0, len(l.cells[n]))
	}
	if boxes, ok := l.boxes[n]; ok {
		return boxes
	}

	var boxes []rect.Rect
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		boxes = mergeRows(boxes, l.ClientRects(c))
	}
	l.boxes[n] = boxes
	return boxes
}

// mergeRows adds the boxes in add to boxes, joining boxes on the same line.
func mergeRows(boxes, add []rect.Rect) []rect.Rect {
next:
	for _, b := range add {
		for i := range boxes {
			if boxes[i].LLy == b.LLy {
				boxes[i].LLx = min(boxes[i].LLx, b.LLx)
				boxes[i].URx = max(boxes[i].URx, b.URx)
				continue next
			}
		}
		boxes = append(boxes, b)
	}
	return boxes
}

// ElementFromPoint returns the innermost element whose boxes contain p.
// Where sibling elements overlap, the later one is on top.
func (l *Layout) ElementFromPoint(p vec.Vec2) *html.Node {
	var found *html.Node
	n := l.root
	if n.Type == html.ElementNode {
		if !overlay.Contains(l.ClientRects(n), p) {
			return nil
		}
		found = n
	}
	for n != nil {
		var next *html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && overlay.Contains(l.ClientRects(c), p) {
				next = c
			}
		}
		if next != nil {
			found = next
		}
		n = next
	}
	return found
}

// CaretFromPoint returns the boundary point closest to p inside the
// character cell at p.  Like the native caret functions of some browsers,
// this fails for text where user selection is disabled.
func (l *Layout) CaretFromPoint(p vec.Vec2) (dom.Point, bool) {
	if p.X < 0 || p.Y < 0 {
		return dom.Point{}, false
	}
	row := int(p.Y) / CellHeight
	col := int(p.X) / CellWidth
	for n, cells := range l.cells {
		for j, c := range cells {
			if c.width == 0 || c.row != row || col < c.col || col >= c.col+c.width {
				continue
			}
			if !selectable(n) {
				return dom.Point{}, false
			}
			offset := j
			if p.X-float64(c.col*CellWidth) > float64(c.width*CellWidth)/2 {
				offset++
			}
			return dom.Point{Node: n, Offset: offset}, true
		}
	}
	return dom.Point{}, false
}

// selectable reports whether text selection is enabled for n.
func selectable(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		v, ok := dom.StyleValue(n, "user-select", "-webkit-user-select")
		if ok && strings.EqualFold(v, "none") {
			return false
		}
	}
	return true
}
