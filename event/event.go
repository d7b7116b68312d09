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

// Package event delivers pointer events to handlers registered on nodes
// of a document tree, and provides a task queue for work which must run
// after the current event has been handled.
package event

import (
	"golang.org/x/net/html"
	"seehuhn.de/go/geom/vec"
)

// Type identifies the kind of an event.
type Type int

// These are the supported event types.
const (
	PointerDown Type = iota + 1
	PointerMove
	PointerUp
)

func (t Type) String() string {
	switch t {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	default:
		return "unknown"
	}
}

// An Event is delivered to the handlers of its target node and of all
// ancestors of the target.
type Event struct {
	Type   Type
	Target *html.Node
	Pos    vec.Vec2

	// Current is the node whose handler is running.
	Current *html.Node

	stopped bool
}

// StopPropagation prevents delivery to the ancestors of the current node.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// A Handler is called when an event reaches a node.
type Handler func(*Event)

// Dispatcher stores the event handlers for the nodes of a document.
//
// The zero value is ready to use.  A Dispatcher must only be used from the
// goroutine which owns the document.
type Dispatcher struct {
	handlers map[*html.Node]map[Type][]Handler
}

// On registers a handler for events of type t reaching n.
func (d *Dispatcher) On(n *html.Node, t Type, h Handler) {
	if d.handlers == nil {
		d.handlers = make(map[*html.Node]map[Type][]Handler)
	}
	byType := d.handlers[n]
	if byType == nil {
		byType = make(map[Type][]Handler)
		d.handlers[n] = byType
	}
	byType[t] = append(byType[t], h)
}

// Off removes all handlers registered for n.
func (d *Dispatcher) Off(n *html.Node) {
	delete(d.handlers, n)
}

// Has reports whether handlers are registered for n.
func (d *Dispatcher) Has(n *html.Node) bool {
	return len(d.handlers[n]) > 0
}

// Dispatch delivers e to the target and then to each ancestor in turn.
// It returns the number of handlers called.
func (d *Dispatcher) Dispatch(e *Event) int {
	count := 0
	for n := e.Target; n != nil && !e.stopped; n = n.Parent {
		hh := d.handlers[n][e.Type]
		if len(hh) == 0 {
			continue
		}
		e.Current = n
		for _, h := range hh {
			h(e)
			count++
		}
	}
	e.Current = nil
	return count
}
