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

// Package selection turns pointer drags into ranges of text.
package selection

import (
	"golang.org/x/net/html"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/highlight/caret"
	"seehuhn.de/go/highlight/dom"
	"seehuhn.de/go/highlight/event"
	"seehuhn.de/go/highlight/overlay"
)

// Expander adjusts the end points of a range in place, for example to
// word boundaries.
type Expander interface {
	ExpandStart(r *dom.Range)
	ExpandEnd(r *dom.Range)
}

// Session tracks a single drag gesture.
//
// While the pointer moves, the range between the drag start and the
// current pointer position is recomputed.  Only ranges whose text differs
// from the previous one are published.
type Session struct {
	Resolver *caret.Resolver

	// Expander, if set, is applied to every new range.
	Expander Expander

	// Geometry and Overlay are optional.  If both are set, Overlay is
	// called with the screen boxes of every published range.
	Geometry overlay.TextGeometry
	Overlay  func([]rect.Rect)

	// Done, if set, is called by Handle when a drag ends with a range.
	Done func(*dom.Range)

	start    vec.Vec2
	active   bool
	last     *dom.Range
	lastText string
}

// Start begins a drag at p.
func (s *Session) Start(p vec.Vec2) {
	s.start = p
	s.active = true
	s.last = nil
	s.lastText = ""
}

// Move updates the drag with the current pointer position.  If the range
// changed, the new range is returned.  Otherwise, the second return value
// is false.
func (s *Session) Move(p vec.Vec2) (*dom.Range, bool) {
	r, changed := s.update(p)
	if !changed {
		return nil, false
	}
	return r, true
}

// End finishes the drag at p and returns the final range.
// The second return value is false if no range was found during the drag.
func (s *Session) End(p vec.Vec2) (*dom.Range, bool) {
	s.update(p)
	r := s.last
	s.active = false
	s.last = nil
	return r, r != nil
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool {
	return s.active
}

func (s *Session) update(p vec.Vec2) (*dom.Range, bool) {
	if !s.active {
		return nil, false
	}
	r, ok := s.RangeFromPoints(s.start, p)
	if !ok {
		return s.last, false
	}

	// compare the text before expansion
	text := r.Text()
	if s.last != nil && text == s.lastText {
		return s.last, false
	}
	s.lastText = text

	if s.Expander != nil {
		s.Expander.ExpandStart(r)
		s.Expander.ExpandEnd(r)
	}
	s.last = r
	if s.Geometry != nil && s.Overlay != nil {
		s.Overlay(overlay.Rects(s.Geometry, r))
	}
	return r, true
}

// RangeFromPoints returns the range between the boundary points at two
// screen positions.  The top-left and bottom-right corners of the
// rectangle spanned by a and b are used.  Ranges which do not start and
// end in text nodes are rejected.
func (s *Session) RangeFromPoints(a, b vec.Vec2) (*dom.Range, bool) {
	lo := vec.Vec2{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	hi := vec.Vec2{X: max(a.X, b.X), Y: max(a.Y, b.Y)}

	start, ok := s.Resolver.Resolve(lo)
	if !ok {
		return nil, false
	}
	end, ok := s.Resolver.Resolve(hi)
	if !ok {
		return nil, false
	}
	if start.Node.Type != html.TextNode || end.Node.Type != html.TextNode {
		return nil, false
	}

	r, err := dom.NewRange(start, end)
	if err != nil {
		return nil, false
	}
	return r, true
}

// Handle drives the session from pointer events.  It can be registered
// with an [event.Dispatcher] for all three pointer event types.
func (s *Session) Handle(e *event.Event) {
	switch e.Type {
	case event.PointerDown:
		s.Start(e.Pos)
	case event.PointerMove:
		s.Move(e.Pos)
	case event.PointerUp:
		if !s.active {
			return
		}
		if r, ok := s.End(e.Pos); ok && s.Done != nil {
			s.Done(r)
		}
	}
}

// Listen registers the session for the pointer events reaching root.
func (s *Session) Listen(d *event.Dispatcher, root *html.Node) {
	d.On(root, event.PointerDown, s.Handle)
	d.On(root, event.PointerMove, s.Handle)
	d.On(root, event.PointerUp, s.Handle)
}
