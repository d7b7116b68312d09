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

package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/highlight/caret"
	"seehuhn.de/go/highlight/dom"
	"seehuhn.de/go/highlight/event"
	"seehuhn.de/go/highlight/internal/htmltest"
	"seehuhn.de/go/highlight/layout"
	"seehuhn.de/go/highlight/wordbound"
)

func center(row, col int) vec.Vec2 {
	return vec.Vec2{
		X: (float64(col) + 0.5) * layout.CellWidth,
		Y: (float64(row) + 0.5) * layout.CellHeight,
	}
}

type recorder struct {
	calls [][]rect.Rect
}

func (r *recorder) draw(boxes []rect.Rect) {
	r.calls = append(r.calls, boxes)
}

func newSession(t *testing.T, src string) (*Session, *recorder) {
	t.Helper()
	body := htmltest.Body(t, src)
	l := layout.New(body, 80)
	rec := &recorder{}
	s := &Session{
		Resolver: &caret.Resolver{Native: l, Geometry: l},
		Expander: wordbound.Expander{},
		Geometry: l,
		Overlay:  rec.draw,
	}
	return s, rec
}

func TestDrag(t *testing.T) {
	s, rec := newSession(t, `<p>hello world</p><p>second line</p>`)

	s.Start(center(0, 2))
	r, ok := s.Move(center(0, 8))
	if !ok {
		t.Fatal("no range")
	}
	if got := r.Text(); got != "hello world" {
		t.Errorf("got %q", got)
	}
	want := [][]rect.Rect{{{LLx: 0, LLy: 0, URx: 11 * layout.CellWidth, URy: layout.CellHeight}}}
	if d := cmp.Diff(want, rec.calls); d != "" {
		t.Errorf("unexpected overlay (-want +got):\n%s", d)
	}

	// same raw text, no update
	if _, ok := s.Move(center(0, 8)); ok {
		t.Error("unchanged range published")
	}
	if len(rec.calls) != 1 {
		t.Errorf("overlay drawn %d times", len(rec.calls))
	}

	r, ok = s.Move(center(1, 3))
	if !ok {
		t.Fatal("no range for two lines")
	}
	if got := r.Text(); got != "hello worldsecond" {
		t.Errorf("got %q", got)
	}

	r, ok = s.End(center(1, 3))
	if !ok || r.Text() != "hello worldsecond" {
		t.Errorf("End() = %v, %t", r, ok)
	}
	if s.Active() {
		t.Error("session still active")
	}
	if _, ok := s.Move(center(0, 1)); ok {
		t.Error("inactive session published a range")
	}
}

func TestReversedDrag(t *testing.T) {
	s, _ := newSession(t, `<p>hello world</p>`)

	s.Start(center(0, 8))
	r, ok := s.End(center(0, 2))
	if !ok {
		t.Fatal("no range")
	}
	if dom.Compare(r.Start, r.End) > 0 {
		t.Errorf("range %v is not ordered", r)
	}
	if got := r.Text(); got != "hello world" {
		t.Errorf("got %q", got)
	}
}

func TestNoText(t *testing.T) {
	s, rec := newSession(t, `<p>hello</p>`)

	s.Start(center(0, 1))
	if _, ok := s.Move(center(4, 30)); ok {
		t.Error("range published for a position without text")
	}
	if _, ok := s.End(center(4, 30)); ok {
		t.Error("End returned a range")
	}
	if len(rec.calls) != 0 {
		t.Errorf("overlay drawn %d times", len(rec.calls))
	}
}

func TestRangeFromPoints(t *testing.T) {
	s, _ := newSession(t, `<p>abc</p><p>def</p>`)

	// bottom-left to top-right uses the top-left and bottom-right corners
	r, ok := s.RangeFromPoints(center(1, 0), center(0, 2))
	if !ok {
		t.Fatal("no range")
	}
	if r.Start.Offset != 0 || r.End.Offset != 2 || r.Text() != "abcde" {
		t.Errorf("got %v with text %q", r, r.Text())
	}
}

func TestHandle(t *testing.T) {
	body := htmltest.Body(t, `<p>one two three</p>`)
	l := layout.New(body, 80)

	var done []string
	s := &Session{
		Resolver: &caret.Resolver{Geometry: l},
		Expander: wordbound.Expander{},
		Done:     func(r *dom.Range) { done = append(done, r.Text()) },
	}
	d := &event.Dispatcher{}
	s.Listen(d, body)

	target := htmltest.MustFindText(t, body, "one two three")
	d.Dispatch(&event.Event{Type: event.PointerDown, Target: target, Pos: center(0, 5)})
	d.Dispatch(&event.Event{Type: event.PointerMove, Target: target, Pos: center(0, 9)})
	d.Dispatch(&event.Event{Type: event.PointerUp, Target: target, Pos: center(0, 9)})

	// a stray pointer up does nothing
	d.Dispatch(&event.Event{Type: event.PointerUp, Target: target, Pos: center(0, 1)})

	if d := cmp.Diff([]string{"two three"}, done); d != "" {
		t.Errorf("unexpected ranges (-want +got):\n%s", d)
	}
}
