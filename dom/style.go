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

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// Style returns the declarations in the style attribute of n, keyed by
// lower case property name.  Where a property is declared more than once,
// the last declaration wins.  Parsing stops at the first malformed
// declaration; the declarations before it are kept.
func Style(n *html.Node) map[string]string {
	var src string
	found := false
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			src, found = a.Val, true
			break
		}
	}
	if !found {
		return nil
	}

	// The parser only stores the value of a declaration once it sees the
	// terminating semicolon.
	src = strings.TrimSpace(src)
	if src != "" && !strings.HasSuffix(src, ";") {
		src += ";"
	}
	decls, _ := parser.NewParser(src).ParseDeclarations()

	res := make(map[string]string, len(decls))
	for _, d := range decls {
		if d.Property == "" {
			continue
		}
		res[strings.ToLower(d.Property)] = d.Value
	}
	return res
}

// StyleValue returns the value of the first of the given properties which
// is declared in the style attribute of n.
func StyleValue(n *html.Node, properties ...string) (string, bool) {
	style := Style(n)
	for _, p := range properties {
		if v, ok := style[p]; ok {
			return v, true
		}
	}
	return "", false
}
