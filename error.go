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

package highlight

import (
	"errors"
	"strconv"
)

var (
	// ErrNoTextBoundary is returned when a range cannot be reduced to
	// end points inside non-blank text nodes.
	ErrNoTextBoundary = errors.New("no valid text boundary found")

	// ErrEmptyRange is returned when asked to mark a range which covers
	// no text.
	ErrEmptyRange = errors.New("range contains no text")

	// ErrDetached indicates that a boundary point refers to a node which
	// is not part of the document tree.
	ErrDetached = errors.New("node is not attached to the document")

	// ErrNotFound is returned when an annotation id has no marks in the
	// document.
	ErrNotFound = errors.New("annotation not found")

	// ErrInvalidOffset is the error wrapped by [PointError].
	ErrInvalidOffset = errors.New("invalid offset")
)

// PointError indicates that the offset of a boundary point is outside
// the valid range for its node.
type PointError struct {
	Offset int
	Max    int
}

func (err *PointError) Error() string {
	return "offset " + strconv.Itoa(err.Offset) +
		" out of range [0, " + strconv.Itoa(err.Max) + "]"
}

func (err *PointError) Unwrap() error {
	return ErrInvalidOffset
}
