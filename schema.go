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

package highlight

// The attributes below are stored on every mark element.  Documents
// written by earlier versions use the same names, so these values must
// not change.
const (
	// MarkTag is the element name used for marks.
	MarkTag = "mark"

	// MarkClass is the value of the class attribute of marks.
	MarkClass = "text-fragments-polyfill-target-text"

	// AttrAnnotationID holds the annotation id.
	AttrAnnotationID = "data-upnext-annotation-id"

	// AttrColor holds the name of the highlight color.  The attribute is
	// absent if no color was given.
	AttrColor = "data-upnext-color"

	// AttrHasNote is "true" if a note is attached to the annotation, and
	// "false" otherwise.
	AttrHasNote = "data-upnext-has-note"
)
