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

// Package buildinfo describes the version of the running binary.
package buildinfo

import (
	"runtime/debug"
)

// Info identifies a build of the module.
type Info struct {
	Path     string // module path
	Version  string // module version, empty for development builds
	Revision string // abbreviated VCS revision, if known
	Dirty    bool   // the working tree had local modifications
}

// Read returns the build information of the running binary.
// The second return value is false if no information is embedded.
func Read() (Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}

	info := Info{Path: bi.Main.Path}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	if len(info.Revision) > 8 {
		info.Revision = info.Revision[:8]
	}
	return info, true
}

// String returns the module path followed by the version, or by the VCS
// revision for development builds.  If neither is known, only the path is
// returned.
func (info Info) String() string {
	switch {
	case info.Version != "":
		return info.Path + " " + info.Version
	case info.Revision != "" && info.Dirty:
		return info.Path + " " + info.Revision + "+dirty"
	case info.Revision != "":
		return info.Path + " " + info.Revision
	default:
		return info.Path
	}
}

// Short returns a version string for a command line tool, for example
// "htmlmark (seehuhn.de/go/highlight v0.1.0)".
func Short(toolName string) string {
	info, ok := Read()
	if !ok || info.Path == "" {
		return toolName
	}
	return toolName + " (" + info.String() + ")"
}
