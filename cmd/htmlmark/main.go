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

// Htmlmark applies highlight annotations to an HTML document.
//
// Every annotation is given as a drag gesture on a character grid rendering
// of the document.  The gesture is resolved to a range of text, expanded to
// word boundaries and wrapped in <mark> elements.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
	"golang.org/x/term"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/highlight/caret"
	"seehuhn.de/go/highlight/dom"
	"seehuhn.de/go/highlight/event"
	"seehuhn.de/go/highlight/internal/buildinfo"
	"seehuhn.de/go/highlight/internal/logutils"
	"seehuhn.de/go/highlight/internal/profile"
	"seehuhn.de/go/highlight/layout"
	"seehuhn.de/go/highlight/mark"
	"seehuhn.de/go/highlight/selection"
	"seehuhn.de/go/highlight/wordbound"
)

var (
	configArg  = flag.String("config", "", "read annotations from `file.yaml`")
	colsArg    = flag.Int("cols", 0, "layout width in character cells (default: terminal width or 80)")
	unmarkArg  = flag.String("unmark", "", "remove the annotation with the given `id`")
	outArg     = flag.String("o", "", "write the marked document to `file.html`")
	pngArg     = flag.String("png", "", "write a rendering of the document to `file.png`")
	showSel    = flag.Bool("selection", false, "draw the last selection into the PNG file")
	listArg    = flag.Bool("list", false, "list the annotations of the document")
	logLevel   = flag.String("log-level", "warn", "log `level` (debug, info, warn, error)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "htmlmark \u2014 highlight text ranges in an HTML document\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("htmlmark"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  htmlmark [options] <input.html>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  htmlmark -config notes.yaml -o marked.html page.html\n")
		fmt.Fprintf(os.Stderr, "  htmlmark -list marked.html\n")
		fmt.Fprintf(os.Stderr, "  htmlmark -unmark a1 -png out.png marked.html\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(inputFile string) error {
	log, err := logutils.New(*logLevel, os.Stderr)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	stop, err := profile.Start(*cpuprofile, *memprofile, log)
	if err != nil {
		return err
	}
	defer stop()

	doc, err := readDocument(inputFile)
	if err != nil {
		return err
	}

	var cfg *Config
	if *configArg != "" {
		cfg, err = loadConfig(*configArg)
		if err != nil {
			return err
		}
	}

	cols := *colsArg
	if cols <= 0 {
		cols = terminalWidth()
	}
	a := newAnnotator(doc, cols, log)
	if cfg != nil {
		a.apply(cfg)
	}
	if *unmarkArg != "" {
		a.unmark(*unmarkArg)
	}

	if *pngArg != "" {
		var sel []rect.Rect
		if *showSel {
			sel = a.selection
		}
		if err := writePNG(*pngArg, a.layout, sel); err != nil {
			return err
		}
	}

	if *listArg {
		if err := list(os.Stdout, doc); err != nil {
			return err
		}
		if *outArg == "" {
			return nil
		}
	}
	return writeDocument(*outArg, doc)
}

// annotator applies drag gestures to a document.
type annotator struct {
	doc    *html.Node
	layout *layout.Layout
	log    zerolog.Logger

	events  *event.Dispatcher
	tasks   *event.Queue
	marker  *mark.Marker
	session *selection.Session

	// selection holds the screen boxes of the most recent drag
	selection []rect.Rect

	// current is the annotation being applied
	current *Annotation
	color   *mark.Color
}

func newAnnotator(doc *html.Node, cols int, log zerolog.Logger) *annotator {
	a := &annotator{
		doc:    doc,
		layout: layout.New(doc, cols),
		log:    log,
		events: &event.Dispatcher{},
		tasks:  &event.Queue{},
	}
	a.marker = &mark.Marker{
		Listener: func(id string) {
			a.log.Info().Str("id", id).Msg("pointer released over annotation")
		},
		Events: a.events,
		Tasks:  a.tasks,
	}
	a.session = &selection.Session{
		Resolver: &caret.Resolver{Native: a.layout, Geometry: a.layout},
		Expander: wordbound.Expander{},
		Geometry: a.layout,
		Overlay: func(boxes []rect.Rect) {
			a.selection = boxes
		},
	}
	a.session.Listen(a.events, doc)
	return a
}

func (a *annotator) apply(cfg *Config) {
	for i := range cfg.Annotations {
		ann := &cfg.Annotations[i]
		color, err := cfg.color(ann.Color)
		if err != nil {
			a.log.Warn().Err(err).Str("id", ann.ID).Msg("skipping annotation")
			continue
		}
		a.current, a.color = ann, color
		if !a.drag(ann.Start(), ann.End()) {
			a.log.Warn().Str("id", ann.ID).
				Floats64("from", ann.From[:]).
				Floats64("to", ann.To[:]).
				Msg("no text found")
		}
		a.current, a.color = nil, nil
	}
}

// drag simulates a pointer drag from p to q.  It reports whether a range
// was marked.
func (a *annotator) drag(p, q vec.Vec2) bool {
	marked := false
	done := a.session.Done
	a.session.Done = func(r *dom.Range) {
		marked = a.markRange(r)
	}
	defer func() { a.session.Done = done }()

	a.dispatch(event.PointerDown, p)
	a.dispatch(event.PointerMove, q)
	a.dispatch(event.PointerUp, q)
	a.tasks.Run()
	return marked
}

func (a *annotator) dispatch(tp event.Type, p vec.Vec2) {
	target := a.layout.ElementFromPoint(p)
	if target == nil {
		target = a.doc
	}
	a.events.Dispatch(&event.Event{Type: tp, Target: target, Pos: p})
}

// markRange wraps r for the current annotation.
func (a *annotator) markRange(r *dom.Range) bool {
	if a.current == nil {
		return false
	}
	id := a.current.ID
	marks, err := a.marker.Mark(r, id, a.color, a.current.Note)
	if err != nil {
		a.log.Warn().Err(err).Str("id", id).Stringer("range", r).Msg("cannot mark")
		return false
	}
	a.layout.Update()
	a.log.Info().Str("id", id).Int("marks", len(marks)).Str("text", mark.Text(a.doc, id)).Msg("marked")
	return true
}

func (a *annotator) unmark(id string) {
	marks := mark.Find(a.doc, id)
	if len(marks) == 0 {
		a.log.Warn().Str("id", id).Msg("annotation not found")
		return
	}
	a.marker.Unmark(marks)
	a.layout.Update()
	a.log.Info().Str("id", id).Int("marks", len(marks)).Msg("removed")
}

func readDocument(fname string) (*html.Node, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := html.Parse(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return doc, nil
}

func writeDocument(fname string, doc *html.Node) error {
	if fname == "" {
		w := bufio.NewWriter(os.Stdout)
		if err := html.Render(w, doc); err != nil {
			return err
		}
		return w.Flush()
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	if err := html.Render(w, doc); err != nil {
		out.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writePNG(fname string, l *layout.Layout, sel []rect.Rect) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(out, l.Render(sel)); err != nil {
		out.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	return out.Close()
}

// list prints one line per annotation: id, color, note flag and text.
func list(w io.Writer, doc *html.Node) error {
	for _, id := range mark.IDs(doc) {
		color, err := mark.GetColor(doc, id)
		if err != nil {
			return err
		}
		note, err := mark.HasNote(doc, id)
		if err != nil {
			return err
		}
		if color == "" {
			color = "-"
		}
		_, err = fmt.Fprintf(w, "%s\t%s\t%t\t%q\n", id, color, note, mark.Text(doc, id))
		if err != nil {
			return err
		}
	}
	return nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}
