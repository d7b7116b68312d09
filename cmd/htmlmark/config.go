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
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/highlight/layout"
	"seehuhn.de/go/highlight/mark"
)

// Config lists the annotations to apply to a document.
type Config struct {
	// Palette maps color names to CSS colors.
	Palette     map[string]string `yaml:"palette"`
	Annotations []Annotation      `yaml:"annotations"`
}

// Annotation describes one drag gesture, in pixel coordinates of the
// rendered document.
type Annotation struct {
	ID    string     `yaml:"id"`
	Color string     `yaml:"color"`
	Note  bool       `yaml:"note"`
	From  [2]float64 `yaml:"from"`
	To    [2]float64 `yaml:"to"`
}

// Start returns the position where the drag begins.
func (a *Annotation) Start() vec.Vec2 {
	return vec.Vec2{X: a.From[0], Y: a.From[1]}
}

// End returns the position where the drag ends.
func (a *Annotation) End() vec.Vec2 {
	return vec.Vec2{X: a.To[0], Y: a.To[1]}
}

var errNoID = errors.New("annotation without id")

func loadConfig(fname string) (*Config, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := decodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	for i := range cfg.Annotations {
		a := &cfg.Annotations[i]
		if a.ID == "" {
			return nil, fmt.Errorf("annotation %d: %w", i+1, errNoID)
		}
		if _, err := cfg.color(a.Color); err != nil {
			return nil, fmt.Errorf("annotation %q: %w", a.ID, err)
		}
	}
	return cfg, nil
}

// color looks up a color in the palette.  Colors which are not in the
// palette can be given in hex notation, and are then used as their own
// name.  For the empty name, nil is returned.
func (cfg *Config) color(name string) (*mark.Color, error) {
	if name == "" {
		return nil, nil
	}
	hex, ok := cfg.Palette[name]
	if !ok {
		hex = name
	}
	if _, ok := layout.ParseHex(hex); !ok {
		return nil, fmt.Errorf("invalid color %q", name)
	}
	return &mark.Color{Name: name, Hex: hex}, nil
}
