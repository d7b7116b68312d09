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

package logutils

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New("info", buf)
	if err != nil {
		t.Fatal(err)
	}

	log.Debug().Msg("hidden")
	log.Info().Str("id", "a1").Msg("marked")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log output %q: %v", buf.String(), err)
	}
	if rec["message"] != "marked" || rec["id"] != "a1" || rec["level"] != "info" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestBadLevel(t *testing.T) {
	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Error("invalid level accepted")
	}
}
