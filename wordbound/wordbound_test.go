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

package wordbound

import (
	"testing"

	"seehuhn.de/go/highlight/dom"
	"seehuhn.de/go/highlight/internal/htmltest"
)

func TestSingleNode(t *testing.T) {
	cases := []struct {
		start, end int
		want       string
	}{
		{2, 8, "hello world"},
		{0, 5, "hello"},         // already on boundaries
		{5, 6, " "},             // white space only
		{6, 11, "world"},        // whole word
		{1, 2, "hello"},         // inside a single word
		{11, 12, "!"},           // punctuation
		{3, 12, "hello world!"}, // end after punctuation
	}
	for _, c := range cases {
		body := htmltest.Body(t, `<p>hello world!</p>`)
		text := htmltest.MustFindText(t, body, "hello world!")
		r := &dom.Range{
			Start: dom.Point{Node: text, Offset: c.start},
			End:   dom.Point{Node: text, Offset: c.end},
		}
		ExpandStart(r)
		ExpandEnd(r)
		if got := r.Text(); got != c.want {
			t.Errorf("[%d,%d): got %q, want %q", c.start, c.end, got, c.want)
		}
	}
}

func TestInlineElements(t *testing.T) {
	body := htmltest.Body(t, `<p>hel<b>lo</b> wor<i>ld</i>!</p>`)
	hel := htmltest.MustFindText(t, body, "hel")
	lo := htmltest.MustFindText(t, body, "lo")
	wor := htmltest.MustFindText(t, body, " wor")
	ld := htmltest.MustFindText(t, body, "ld")

	r := &dom.Range{
		Start: dom.Point{Node: lo, Offset: 1},
		End:   dom.Point{Node: wor, Offset: 2},
	}
	Expander{}.ExpandStart(r)
	Expander{}.ExpandEnd(r)

	if r.Start != (dom.Point{Node: hel, Offset: 0}) {
		t.Errorf("start = %v", r.Start)
	}
	if r.End != (dom.Point{Node: ld, Offset: 2}) {
		t.Errorf("end = %v", r.End)
	}
	if got := r.Text(); got != "hello world" {
		t.Errorf("got %q", got)
	}
}

func TestBoundaryBetweenNodes(t *testing.T) {
	body := htmltest.Body(t, `<p>ab<b>cd</b></p>`)
	ab := htmltest.MustFindText(t, body, "ab")
	cd := htmltest.MustFindText(t, body, "cd")

	// the end of "ab" is inside the word "abcd"
	r := &dom.Range{
		Start: dom.Point{Node: cd, Offset: 0},
		End:   dom.Point{Node: ab, Offset: 2},
	}
	ExpandStart(r)
	ExpandEnd(r)
	if r.Start != (dom.Point{Node: ab, Offset: 0}) {
		t.Errorf("start = %v", r.Start)
	}
	if r.End != (dom.Point{Node: cd, Offset: 2}) {
		t.Errorf("end = %v", r.End)
	}
}

func TestBlocksSeparateWords(t *testing.T) {
	body := htmltest.Body(t, `<div>ab<p>cd</p>ef</div><p>foo<br>bar</p>`)
	cd := htmltest.MustFindText(t, body, "cd")
	ef := htmltest.MustFindText(t, body, "ef")
	foo := htmltest.MustFindText(t, body, "foo")
	bar := htmltest.MustFindText(t, body, "bar")

	r := &dom.Range{
		Start: dom.Point{Node: ef, Offset: 1},
		End:   dom.Point{Node: ef, Offset: 1},
	}
	ExpandStart(r)
	if r.Start != (dom.Point{Node: ef, Offset: 0}) {
		t.Errorf("start = %v", r.Start)
	}

	r = &dom.Range{
		Start: dom.Point{Node: cd, Offset: 1},
		End:   dom.Point{Node: cd, Offset: 1},
	}
	ExpandStart(r)
	ExpandEnd(r)
	if got := r.Text(); got != "cd" {
		t.Errorf("got %q", got)
	}

	r = &dom.Range{
		Start: dom.Point{Node: foo, Offset: 1},
		End:   dom.Point{Node: foo, Offset: 2},
	}
	ExpandEnd(r)
	if r.End != (dom.Point{Node: foo, Offset: 3}) {
		t.Errorf("end = %v", r.End)
	}

	r = &dom.Range{
		Start: dom.Point{Node: bar, Offset: 1},
		End:   dom.Point{Node: bar, Offset: 2},
	}
	ExpandStart(r)
	if r.Start != (dom.Point{Node: bar, Offset: 0}) {
		t.Errorf("start = %v", r.Start)
	}
}

func TestElementPoints(t *testing.T) {
	body := htmltest.Body(t, `<p>hello</p>`)
	p := htmltest.FindElement(body, "p")

	r := &dom.Range{
		Start: dom.Point{Node: p, Offset: 0},
		End:   dom.Point{Node: p, Offset: 1},
	}
	ExpandStart(r)
	ExpandEnd(r)
	if r.Start != (dom.Point{Node: p, Offset: 0}) || r.End != (dom.Point{Node: p, Offset: 1}) {
		t.Errorf("range changed to %v", r)
	}
}
