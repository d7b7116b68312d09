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

package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/highlight/dom"
	"seehuhn.de/go/highlight/internal/htmltest"
)

// unitGeometry places every rune of a text node on its own row, with
// the row number given by the order of the node in rows.
type unitGeometry struct {
	rows map[*html.Node]int
}

func (g *unitGeometry) TextRects(n *html.Node, start, end int) []rect.Rect {
	y := float64(g.rows[n])
	return []rect.Rect{{LLx: float64(start), LLy: y, URx: float64(end), URy: y + 1}}
}

func TestRects(t *testing.T) {
	body := htmltest.Body(t, `<p>abc<b>de</b>fg</p>`)
	abc := htmltest.MustFindText(t, body, "abc")
	de := htmltest.MustFindText(t, body, "de")
	fg := htmltest.MustFindText(t, body, "fg")
	g := &unitGeometry{rows: map[*html.Node]int{abc: 0, de: 1, fg: 2}}

	r := &dom.Range{Start: dom.Point{Node: abc, Offset: 1}, End: dom.Point{Node: fg, Offset: 1}}
	want := []rect.Rect{
		{LLx: 1, LLy: 0, URx: 3, URy: 1},
		{LLx: 0, LLy: 1, URx: 2, URy: 2},
		{LLx: 0, LLy: 2, URx: 1, URy: 3},
	}
	if d := cmp.Diff(want, Rects(g, r)); d != "" {
		t.Errorf("unexpected boxes (-want +got):\n%s", d)
	}

	// empty pieces have no boxes
	r = &dom.Range{Start: dom.Point{Node: abc, Offset: 3}, End: dom.Point{Node: fg, Offset: 0}}
	want = []rect.Rect{{LLx: 0, LLy: 1, URx: 2, URy: 2}}
	if d := cmp.Diff(want, Rects(g, r)); d != "" {
		t.Errorf("unexpected boxes (-want +got):\n%s", d)
	}

	r = &dom.Range{Start: dom.Point{Node: de, Offset: 1}, End: dom.Point{Node: de, Offset: 1}}
	if boxes := Rects(g, r); len(boxes) != 0 {
		t.Errorf("collapsed range has boxes %v", boxes)
	}
}

func TestDraw(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{R: 0xff, A: 0xff}
	Draw(img, []rect.Rect{{LLx: 1.5, LLy: 2, URx: 3.2, URy: 4}, {LLx: 8, LLy: 8, URx: 20, URy: 20}}, red)

	for y := range 10 {
		for x := range 10 {
			in := (x >= 1 && x < 4 && y >= 2 && y < 4) || (x >= 8 && y >= 8)
			if got := img.RGBAAt(x, y) == red; got != in {
				t.Errorf("pixel (%d,%d): painted=%t", x, y, got)
			}
		}
	}
}

func TestContains(t *testing.T) {
	boxes := []rect.Rect{
		{LLx: 1, LLy: 2, URx: 3, URy: 4},
		{LLx: 10, LLy: 2, URx: 12, URy: 4},
	}
	cases := []struct {
		p    vec.Vec2
		want bool
	}{
		{vec.Vec2{X: 2, Y: 3}, true},
		{vec.Vec2{X: 1, Y: 2}, true},
		{vec.Vec2{X: 3, Y: 4}, true},
		{vec.Vec2{X: 12, Y: 3}, true},
		{vec.Vec2{X: 0, Y: 3}, false},
		{vec.Vec2{X: 2, Y: 5}, false},
		{vec.Vec2{X: 6, Y: 3}, false},
	}
	for _, c := range cases {
		if got := Contains(boxes, c.p); got != c.want {
			t.Errorf("Contains(%v) = %t", c.p, got)
		}
	}
	if Contains(nil, vec.Vec2{}) {
		t.Error("point contained in empty box list")
	}
}
