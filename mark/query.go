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
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"seehuhn.de/go/highlight"
	"seehuhn.de/go/highlight/dom"
	"seehuhn.de/go/highlight/walker"
)

// Find returns all marks in the tree below root which belong to the given
// annotation, in document order.  The document is searched on every call,
// there is no index.
func Find(root *html.Node, id string) []*html.Node {
	var marks []*html.Node
	for n := range walker.PreOrder(root) {
		if n.Type != html.ElementNode {
			continue
		}
		if val, ok := getAttr(n, highlight.AttrAnnotationID); ok && val == id {
			marks = append(marks, n)
		}
	}
	return marks
}

// IDs returns the annotation ids present below root, in order of first
// occurrence.
func IDs(root *html.Node) []string {
	var ids []string
	seen := make(map[string]bool)
	for n := range walker.PreOrder(root) {
		id, ok := ID(n)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// ID returns the annotation id of a mark.
// The second return value is false if n is not a mark.
func ID(n *html.Node) (string, bool) {
	if n.Type != html.ElementNode {
		return "", false
	}
	return getAttr(n, highlight.AttrAnnotationID)
}

// IsMark reports whether n is a mark element.
func IsMark(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Data != highlight.MarkTag {
		return false
	}
	class, _ := getAttr(n, "class")
	return class == highlight.MarkClass
}

// Text returns the text of an annotation.  This is the concatenated text
// of all its marks.  Line breaks and other formatting between the marks
// is not represented.
func Text(root *html.Node, id string) string {
	b := &strings.Builder{}
	for _, mk := range Find(root, id) {
		b.WriteString(dom.TextContent(mk))
	}
	return b.String()
}

// GetColor returns the color name of an annotation, as stored on its
// first mark.  The empty string is returned for marks without color.
func GetColor(root *html.Node, id string) (string, error) {
	marks := Find(root, id)
	if len(marks) == 0 {
		return "", highlight.ErrNotFound
	}
	color, _ := getAttr(marks[0], highlight.AttrColor)
	return color, nil
}

// HasNote reports whether a note is attached to an annotation, as stored
// on its first mark.
func HasNote(root *html.Node, id string) (bool, error) {
	marks := Find(root, id)
	if len(marks) == 0 {
		return false, highlight.ErrNotFound
	}
	val, _ := getAttr(marks[0], highlight.AttrHasNote)
	return val == "true", nil
}

// SetColor changes the color of all marks of an annotation, and returns
// the number of marks changed.
func SetColor(root *html.Node, id string, color Color) int {
	marks := Find(root, id)
	for _, mk := range marks {
		setStyle(mk, "background:"+color.Hex)
		setAttr(mk, highlight.AttrColor, color.Name)
	}
	return len(marks)
}

// SetHasNote changes the note flag of all marks of an annotation, and
// returns the number of marks changed.
func SetHasNote(root *html.Node, id string, hasNote bool) int {
	marks := Find(root, id)
	val := strconv.FormatBool(hasNote)
	for _, mk := range marks {
		setAttr(mk, highlight.AttrHasNote, val)
	}
	return len(marks)
}
