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

// Package htmltest has helpers for tests which operate on HTML trees.
package htmltest

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Body parses an HTML document and returns its body element.
func Body(t testing.TB, src string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	body := FindElement(doc, "body")
	if body == nil {
		t.Fatal("document has no body")
	}
	return body
}

// FindElement returns the first element with the given tag name, in
// document order.
func FindElement(root *html.Node, tag string) *html.Node {
	if root.Type == html.ElementNode && root.Data == tag {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := FindElement(c, tag); n != nil {
			return n
		}
	}
	return nil
}

// FindText returns the first text node with the given content.
func FindText(root *html.Node, data string) *html.Node {
	if root.Type == html.TextNode && root.Data == data {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := FindText(c, data); n != nil {
			return n
		}
	}
	return nil
}

// MustFindText is like FindText, but fails the test if no node is found.
func MustFindText(t testing.TB, root *html.Node, data string) *html.Node {
	t.Helper()
	n := FindText(root, data)
	if n == nil {
		t.Fatalf("no text node %q", data)
	}
	return n
}

// Inner renders the children of n as HTML.
func Inner(t testing.TB, n *html.Node) string {
	t.Helper()

	b := &strings.Builder{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(b, c); err != nil {
			t.Fatal(err)
		}
	}
	return b.String()
}
