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

// Package mark wraps text ranges in <mark> elements and manages the
// resulting highlights.
//
// A range is decomposed into one mark per text node it touches: the
// partially covered text nodes at the start and at the end of the range
// are split, and every non-blank text node in between is moved into a mark
// of its own.  Since no mark holds more than one text node, marks never
// cross the boundary of a block-level element, and the text of the
// document is preserved exactly.
package mark

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"seehuhn.de/go/highlight"
	"seehuhn.de/go/highlight/dom"
	"seehuhn.de/go/highlight/event"
	"seehuhn.de/go/highlight/walker"
)

// Color is a named highlight color.
type Color struct {
	Name string // stored in the color attribute
	Hex  string // CSS color used for the mark background, e.g. "#fff59d"
}

// A Marker creates and removes marks.
//
// The zero value can be used if no click notifications are needed.
type Marker struct {
	// Listener, if set, is called with the annotation id when the pointer
	// is released over a mark.  The call is posted to Tasks, so that it
	// happens after the pointer event has been fully dispatched.
	Listener func(id string)

	// Events receives the pointer handlers of new marks.  If nil, no
	// handlers are installed.
	Events *event.Dispatcher

	// Tasks is the queue used for the deferred Listener calls.  The host
	// event loop must drain it.  If nil, a queue is allocated when the
	// first mark is created.
	Tasks *event.Queue
}

// baseStyle is applied to every mark.
const baseStyle = "padding-top:0.24em; padding-bottom:0.24em; -webkit-user-select:none;"

// Mark wraps the text of r in marks with the given annotation id and
// returns the new marks in document order.
//
// Before the tree is modified, end points which are not inside text nodes
// are moved inwards to the closest non-blank text node.  If this fails, an
// error is returned and the tree is left unchanged.  Once the end points
// are found, the operation cannot fail.
func (m *Marker) Mark(r *dom.Range, id string, color *Color, hasNote bool) ([]*html.Node, error) {
	start, end, err := textBoundaries(r)
	if err != nil {
		return nil, err
	}

	if start.Node == end.Node {
		mk := m.newMark(id, color, hasNote)
		wrapText(start.Node, start.Offset, end.Offset, mk)
		return []*html.Node{mk}, nil
	}

	// The nodes strictly between the start node and the end node.  Wrapping
	// a node puts the mark at the same child index, so these positions stay
	// valid while marks are inserted.
	interior := &dom.Range{
		Start: dom.Point{Node: start.Node.Parent, Offset: dom.Index(start.Node) + 1},
		End:   dom.Point{Node: end.Node.Parent, Offset: dom.Index(end.Node)},
	}
	filter := func(n *html.Node) walker.Filter {
		if !interior.Intersects(n) {
			return walker.Reject
		}
		if n.Type == html.TextNode {
			return walker.Accept
		}
		return walker.Skip
	}

	var inner []*html.Node
	w := walker.New(dom.CommonAncestor(start.Node, end.Node), filter)
	for n := w.Next(); n != nil; n = w.Next() {
		if !dom.HasText(n) {
			continue
		}
		mk := m.newMark(id, color, hasNote)
		wrapNode(n, mk)
		inner = append(inner, mk)
	}

	marks := make([]*html.Node, 0, len(inner)+2)
	if start.Offset < dom.Length(start.Node) {
		mk := m.newMark(id, color, hasNote)
		wrapText(start.Node, start.Offset, dom.Length(start.Node), mk)
		marks = append(marks, mk)
	}
	marks = append(marks, inner...)
	if end.Offset > 0 {
		mk := m.newMark(id, color, hasNote)
		wrapText(end.Node, 0, end.Offset, mk)
		marks = append(marks, mk)
	}
	return marks, nil
}

// textBoundaries moves the end points of r into text nodes.  The text
// covered by the range does not change.
func textBoundaries(r *dom.Range) (start, end dom.Point, err error) {
	if err := r.Start.Check(); err != nil {
		return start, end, err
	}
	if err := r.End.Check(); err != nil {
		return start, end, err
	}
	root := dom.Root(r.Start.Node)
	if dom.Root(r.End.Node) != root {
		return start, end, highlight.ErrDetached
	}

	start = r.Start
	if !start.IsText() {
		n := dom.Child(start.Node, start.Offset)
		if n == nil {
			n = walker.After(start.Node, root)
		}
		for n != nil && !isTextTarget(n) {
			n = walker.Following(n, root)
		}
		if n == nil {
			return start, end, highlight.ErrNoTextBoundary
		}
		start = dom.Point{Node: n, Offset: 0}
	}

	end = r.End
	if !end.IsText() {
		var n *html.Node
		if end.Offset > 0 {
			n = walker.LastDescendant(dom.Child(end.Node, end.Offset-1))
		} else {
			n = walker.Preceding(end.Node, root)
		}
		for n != nil && !isTextTarget(n) {
			n = walker.Preceding(n, root)
		}
		if n == nil {
			return start, end, highlight.ErrNoTextBoundary
		}
		end = dom.Point{Node: n, Offset: dom.Length(n)}
	}

	if start.Node.Parent == nil || end.Node.Parent == nil {
		// text nodes must have a parent to be wrapped
		return start, end, highlight.ErrDetached
	}
	if dom.Compare(start, end) > 0 {
		return start, end, highlight.ErrNoTextBoundary
	}
	if strings.TrimSpace((&dom.Range{Start: start, End: end}).Text()) == "" {
		return start, end, highlight.ErrEmptyRange
	}
	return start, end, nil
}

func isTextTarget(n *html.Node) bool {
	return n.Type == html.TextNode && dom.HasText(n)
}

// wrapText moves the runes of n with indices in [start, end) into mk.
func wrapText(n *html.Node, start, end int, mk *html.Node) {
	if end < dom.Length(n) {
		dom.SplitText(n, end)
	}
	if start > 0 {
		n = dom.SplitText(n, start)
	}
	wrapNode(n, mk)
}

// wrapNode replaces n by mk and makes n the only child of mk.
func wrapNode(n, mk *html.Node) {
	parent := n.Parent
	parent.InsertBefore(mk, n)
	parent.RemoveChild(n)
	mk.AppendChild(n)
}

func (m *Marker) newMark(id string, color *Color, hasNote bool) *html.Node {
	mk := &html.Node{
		Type:     html.ElementNode,
		Data:     highlight.MarkTag,
		DataAtom: atom.Mark,
	}
	setAttr(mk, "class", highlight.MarkClass)
	setAttr(mk, highlight.AttrAnnotationID, id)
	var colorStyle string
	if color != nil {
		setAttr(mk, highlight.AttrColor, color.Name)
		colorStyle = "background:" + color.Hex
	}
	setStyle(mk, colorStyle)
	setAttr(mk, highlight.AttrHasNote, strconv.FormatBool(hasNote))

	if m.Events != nil && m.Listener != nil {
		if m.Tasks == nil {
			m.Tasks = &event.Queue{}
		}
		listener, tasks := m.Listener, m.Tasks
		m.Events.On(mk, event.PointerUp, func(*event.Event) {
			tasks.Post(func() { listener(id) })
		})
	}
	return mk
}

// setStyle sets the style attribute to the base style followed by the
// given declarations.
func setStyle(mk *html.Node, styles ...string) {
	style := baseStyle
	for _, s := range styles {
		if s == "" {
			continue
		}
		style += s + ";"
	}
	setAttr(mk, "style", style)
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
