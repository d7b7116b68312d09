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

// Package wordbound moves the end points of ranges to word boundaries.
//
// Words are found using the Unicode text segmentation rules of UAX #29.
// The text of a block-level element is segmented as a whole, so that a word
// may span several text nodes inside inline elements.  Nested blocks and
// <br> elements separate words.
package wordbound

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"seehuhn.de/go/highlight/dom"
)

// Expander implements word-boundary expansion via the package-level
// functions.  The zero value is ready to use.
type Expander struct{}

// ExpandStart calls the package-level [ExpandStart].
func (Expander) ExpandStart(r *dom.Range) { ExpandStart(r) }

// ExpandEnd calls the package-level [ExpandEnd].
func (Expander) ExpandEnd(r *dom.Range) { ExpandEnd(r) }

// ExpandStart moves the start of r backwards to the beginning of the word
// it is in.  The range is unchanged if the start point is not a text
// position strictly inside a word.
func ExpandStart(r *dom.Range) {
	if !r.Start.IsText() {
		return
	}
	t := newRun(dom.BlockAncestor(r.Start.Node))
	i, ok := t.index(r.Start)
	if !ok {
		return
	}
	start, _, isWord := t.segment(i)
	if !isWord || start >= i {
		return
	}
	if p, ok := t.point(start, false); ok {
		r.Start = p
	}
}

// ExpandEnd moves the end of r forwards to the end of the word it is in.
// The range is unchanged if the end point is not a text position strictly
// inside a word.
func ExpandEnd(r *dom.Range) {
	if !r.End.IsText() {
		return
	}
	t := newRun(dom.BlockAncestor(r.End.Node))
	i, ok := t.index(r.End)
	if !ok || i == 0 {
		return
	}
	_, end, isWord := t.segment(i - 1)
	if !isWord || end <= i {
		return
	}
	if p, ok := t.point(end, true); ok {
		r.End = p
	}
}

// run is the text of a block, with the positions of its text nodes.
type run struct {
	text  []rune
	nodes []*html.Node
	base  map[*html.Node]int
}

func newRun(block *html.Node) *run {
	t := &run{base: make(map[*html.Node]int)}
	t.collect(block)
	return t
}

func (t *run) collect(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			t.base[c] = len(t.text)
			t.nodes = append(t.nodes, c)
			t.text = append(t.text, []rune(c.Data)...)
		case c.Type != html.ElementNode:
			// comments and the like do not contribute text
		case dom.IsBlock(c) || c.DataAtom == atom.Br:
			t.text = append(t.text, '\n')
		default:
			t.collect(c)
		}
	}
}

// index returns the rune index of a text position within the run.
func (t *run) index(p dom.Point) (int, bool) {
	base, ok := t.base[p.Node]
	if !ok || p.Offset < 0 || p.Offset > dom.Length(p.Node) {
		return 0, false
	}
	return base + p.Offset, true
}

// point converts a rune index back to a text position.  If the index is
// at the boundary between two text nodes, the position at the end of the
// earlier node is returned if atEnd is set, and the position at the start
// of the later node otherwise.
func (t *run) point(i int, atEnd bool) (dom.Point, bool) {
	for _, n := range t.nodes {
		base := t.base[n]
		length := dom.Length(n)
		if atEnd && i > base && i <= base+length ||
			!atEnd && i >= base && i < base+length {
			return dom.Point{Node: n, Offset: i - base}, true
		}
	}
	return dom.Point{}, false
}

// segment returns the word segment containing the rune with index i, as a
// half-open interval of rune indices.  isWord reports whether the segment
// is a word, rather than white space or punctuation.
func (t *run) segment(i int) (start, end int, isWord bool) {
	s := string(t.text)
	state := -1
	pos := 0
	for len(s) > 0 {
		var w string
		w, s, state = uniseg.FirstWordInString(s, state)
		n := utf8.RuneCountInString(w)
		if i < pos+n {
			return pos, pos + n, wordLike(w)
		}
		pos += n
	}
	return pos, pos, false
}

func wordLike(w string) bool {
	for _, r := range w {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
