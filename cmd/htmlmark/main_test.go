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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"seehuhn.de/go/highlight/layout"
	"seehuhn.de/go/highlight/mark"
)

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

// cell returns the pixel coordinates of the centre of a character cell.
func cell(row, col int) [2]float64 {
	return [2]float64{
		(float64(col) + 0.5) * layout.CellWidth,
		(float64(row) + 0.5) * layout.CellHeight,
	}
}

func TestApply(t *testing.T) {
	doc := parse(t, `<p>hello world</p><p>second line</p>`)
	a := newAnnotator(doc, 80, zerolog.Nop())

	cfg := &Config{
		Palette: map[string]string{"yellow": "#fff59d"},
		Annotations: []Annotation{
			{ID: "a1", Color: "yellow", From: cell(0, 2), To: cell(0, 8)},
			{ID: "a2", Note: true, From: cell(1, 8), To: cell(1, 9)},
			{ID: "nowhere", From: cell(7, 0), To: cell(8, 3)},
		},
	}
	a.apply(cfg)

	if got := mark.Text(doc, "a1"); got != "hello world" {
		t.Errorf("a1: got %q", got)
	}
	if got := mark.Text(doc, "a2"); got != "line" {
		t.Errorf("a2: got %q", got)
	}
	if marks := mark.Find(doc, "nowhere"); len(marks) != 0 {
		t.Errorf("%d marks for an empty gesture", len(marks))
	}
	if len(a.selection) == 0 {
		t.Error("no selection recorded")
	}

	buf := &bytes.Buffer{}
	if err := list(buf, doc); err != nil {
		t.Fatal(err)
	}
	want := "a1\tyellow\tfalse\t\"hello world\"\na2\t-\ttrue\t\"line\"\n"
	if got := buf.String(); got != want {
		t.Errorf("list:\n%s\nwant:\n%s", got, want)
	}

	a.unmark("a1")
	a.unmark("missing")
	if ids := mark.IDs(doc); len(ids) != 1 || ids[0] != "a2" {
		t.Errorf("IDs() = %v", ids)
	}
}
