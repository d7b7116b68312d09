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
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// TextContent returns the concatenated data of all text nodes in the
// subtree rooted at n.
func TextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	b := &strings.Builder{}
	appendText(b, n)
	return b.String()
}

func appendText(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode, html.DocumentNode:
			appendText(b, c)
		}
	}
}

// HasText reports whether the subtree rooted at n contains text other
// than white space.
func HasText(n *html.Node) bool {
	return strings.TrimSpace(TextContent(n)) != ""
}

// IsText reports whether n is a text node.
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// byteOffset converts a rune offset into a byte offset.
func byteOffset(s string, runes int) int {
	pos := 0
	for i := 0; i < runes && pos < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return pos
}

// Substring returns the runes of s with indices in [start, end).
func Substring(s string, start, end int) string {
	a := byteOffset(s, start)
	b := a + byteOffset(s[a:], end-start)
	return s[a:b]
}

// SplitText breaks a text node in two at the given rune offset.  The node
// keeps the text before the offset.  The text after the offset is moved
// into a new text node, which is inserted after n and returned.
//
// n must be attached to a parent.
func SplitText(n *html.Node, offset int) *html.Node {
	pos := byteOffset(n.Data, offset)
	tail := &html.Node{
		Type: html.TextNode,
		Data: n.Data[pos:],
	}
	n.Data = n.Data[:pos]
	n.Parent.InsertBefore(tail, n.NextSibling)
	return tail
}

// Normalize merges adjacent text nodes and removes empty text nodes in the
// subtree rooted at n.
func Normalize(n *html.Node) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		if c.Type != html.TextNode {
			Normalize(c)
			c = next
			continue
		}

		for next != nil && next.Type == html.TextNode {
			c.Data += next.Data
			after := next.NextSibling
			n.RemoveChild(next)
			next = after
		}
		if c.Data == "" {
			n.RemoveChild(c)
		}
		c = next
	}
}
