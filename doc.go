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

// Package highlight turns text selections in HTML documents into
// persistent highlights.
//
// A highlight is a set of <mark> elements inserted into the document tree.
// All marks of one highlight share an annotation id, stored in the
// [AttrAnnotationID] attribute.  There is no separate annotation object:
// the set of marks for an id is found by searching the tree.
//
// The work is split over several packages:
//
//   - [seehuhn.de/go/highlight/caret] maps screen coordinates to positions
//     in text nodes,
//   - [seehuhn.de/go/highlight/dom] provides boundary points and ranges,
//   - [seehuhn.de/go/highlight/mark] wraps ranges in marks, queries and
//     updates marks, and removes them again,
//   - [seehuhn.de/go/highlight/selection] connects pointer drags to the
//     above,
//   - [seehuhn.de/go/highlight/layout] is a simple monospace layout engine
//     which provides the geometry needed for testing and for the command
//     line tool.
//
// This package contains the attribute names which make up the on-document
// format of marks, and the error values shared by the other packages.
package highlight
