// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// Every message is prefixed with "field: ..." and callers match with errors.Is.
// Methods wrap the sentinel with a "Field.<method>(args)" tag at the detection
// site; no method panics on user-triggered conditions.

package field

import "errors"

var (
	// ErrInvalidDimensions is returned by Resize when a requested dimension is <= 0.
	// The field is left untouched.
	ErrInvalidDimensions = errors.New("field: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside the field.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrInvalidRegion indicates a gradient region that is inverted or leaves the field.
	ErrInvalidRegion = errors.New("field: invalid region")

	// ErrTooLarge is returned when rows*cols overflows or exceeds the cell cap
	// (see WithMaxCells). Nothing is allocated.
	ErrTooLarge = errors.New("field: allocation exceeds cell limit")

	// ErrReleased is returned by operations on a field whose storage was released.
	ErrReleased = errors.New("field: storage released")
)
