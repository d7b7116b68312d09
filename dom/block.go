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

package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements lists the block-level HTML elements.  A single inline
// element cannot span across the boundary of one of these.
//
// See https://developer.mozilla.org/en-US/docs/Web/HTML/Block-level_elements
var blockElements = map[atom.Atom]bool{
	atom.Address:    true,
	atom.Article:    true,
	atom.Aside:      true,
	atom.Blockquote: true,
	atom.Details:    true,
	atom.Dialog:     true,
	atom.Dd:         true,
	atom.Div:        true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Fieldset:   true,
	atom.Figcaption: true,
	atom.Figure:     true,
	atom.Footer:     true,
	atom.Form:       true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Header:     true,
	atom.Hgroup:     true,
	atom.Hr:         true,
	atom.Li:         true,
	atom.Main:       true,
	atom.Nav:        true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.Section:    true,
	atom.Table:      true,
	atom.Ul:         true,
	atom.Tr:         true,
	atom.Th:         true,
	atom.Td:         true,
	atom.Colgroup:   true,
	atom.Col:        true,
	atom.Caption:    true,
	atom.Thead:      true,
	atom.Tbody:      true,
	atom.Tfoot:      true,

	// not block-level in the HTML sense, but they delimit the text
	atom.Body: true,
	atom.Html: true,
}

// IsBlock reports whether n is a block-level element.
func IsBlock(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	a := n.DataAtom
	if a == 0 {
		a = atom.Lookup([]byte(n.Data))
	}
	return blockElements[a]
}

// BlockAncestor returns the closest block-level element containing n, or
// the topmost ancestor of n if there is none.
func BlockAncestor(n *html.Node) *html.Node {
	for ; n.Parent != nil; n = n.Parent {
		if IsBlock(n) {
			return n
		}
	}
	return n
}
