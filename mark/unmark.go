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

package mark

import (
	"golang.org/x/net/html"

	"seehuhn.de/go/highlight/dom"
)

// Unmark removes marks from the document.  The content of each mark is
// moved back to the position of the mark, and adjacent text nodes are
// merged.  Marks may be removed in any order and in any subset; marks
// which are no longer attached to a parent are ignored.
func (m *Marker) Unmark(marks []*html.Node) {
	for _, mk := range marks {
		if m.Events != nil {
			m.Events.Off(mk)
		}

		parent := mk.Parent
		if parent == nil {
			continue
		}
		for c := mk.FirstChild; c != nil; c = mk.FirstChild {
			mk.RemoveChild(c)
			parent.InsertBefore(c, mk)
		}
		parent.RemoveChild(mk)
		dom.Normalize(parent)
	}
}
