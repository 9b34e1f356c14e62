// SPDX-License-Identifier: MIT

// Package field - Field storage (row-major) & safe accessors.
//
// Purpose:
//   - Own a single contiguous buffer of rows*cols elements, offset = i*cols + j.
//   - Guarantee safety at the public surface: SetValue/Set/At never panic.
//   - Keep storage all-or-nothing: a field either holds a fully zeroed
//     rows×cols buffer or no buffer at all.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set/SetValue: O(1); Clone: O(r*c); Release: O(1).

package field

import (
	"fmt"
	"log/slog"
	"math/bits"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxResize  = "Resize"
	ctxRelease = "Release"
	ctxGrad    = "Gradient"
)

// fieldErrorf wraps a sentinel with the method tag and its integer arguments,
// e.g. "Field.Set(3,1): field: index out of range".
func fieldErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Field.%s(%d,%d): %w", method, a, b, err)
}

// Field is a generic two-dimensional grid owned by its creator.
//   - r,c hold dimensions; both are zero when the field is empty.
//   - data is a flat buffer of length r*c in row-major order (nil when empty).
//   - released marks a field whose storage was dropped by Release.
type Field[T Scalar] struct {
	r, c     int // row and column counts (both > 0, or both 0)
	data     []T // contiguous row-major storage (len == r*c)
	released bool
	opts     options
}

// New creates a rows×cols field with every cell at T's zero value.
//
// New never fails. When rows <= 0 or cols <= 0 the result is an empty field
// with no storage. A request above the cell cap (WithMaxCells) also yields an
// empty field and is logged at Warn.
//
// Complexity: O(rows*cols) time and memory.
func New[T Scalar](rows, cols int, opts ...Option) *Field[T] {
	f := &Field[T]{opts: gatherOptions(opts...)}
	if rows <= 0 || cols <= 0 {
		return f
	}
	if err := f.checkCells(rows, cols); err != nil {
		f.logger().Warn("field: allocation refused", "rows", rows, "cols", cols, "err", err)

		return f
	}
	f.r, f.c = rows, cols
	f.data = make([]T, rows*cols)

	return f
}

// checkCells validates that rows*cols neither overflows nor exceeds the cap.
// Both arguments must be positive.
func (f *Field[T]) checkCells(rows, cols int) error {
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > uint64(f.opts.maxCells) {
		return ErrTooLarge
	}

	return nil
}

func (f *Field[T]) logger() *slog.Logger {
	if f.opts.logger != nil {
		return f.opts.logger
	}

	return Logger()
}

// Rows returns the row count. Complexity: O(1).
func (f *Field[T]) Rows() int { return f.r }

// Cols returns the column count. Complexity: O(1).
func (f *Field[T]) Cols() int { return f.c }

// Shape packs Rows() and Cols() into a single call.
func (f *Field[T]) Shape() (rows, cols int) { return f.r, f.c }

// Len returns the number of addressable cells (rows*cols).
func (f *Field[T]) Len() int { return len(f.data) }

// IsEmpty reports whether the field holds no cells.
func (f *Field[T]) IsEmpty() bool { return len(f.data) == 0 }

// Released reports whether Release has been called.
func (f *Field[T]) Released() bool { return f.released }

// indexOf bounds-checks (row, col) and returns the row-major offset.
// Returns the bare ErrOutOfRange; public methods wrap it with context.
func (f *Field[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= f.r || col < 0 || col >= f.c {
		return 0, ErrOutOfRange
	}

	return row*f.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (f *Field[T]) At(row, col int) (T, error) {
	off, err := f.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, fieldErrorf(ctxAt, row, col, err)
	}

	return f.data[off], nil
}

// Set stores v at (row, col) or returns a wrapped ErrOutOfRange.
// On error the field is unchanged.
// Complexity: O(1).
func (f *Field[T]) Set(row, col int, v T) error {
	off, err := f.indexOf(row, col)
	if err != nil {
		return fieldErrorf(ctxSet, row, col, err)
	}
	f.data[off] = v

	return nil
}

// SetValue stores v at (row, col) and reports whether the coordinates were
// inside the field. Out-of-range writes leave the field unchanged.
func (f *Field[T]) SetValue(row, col int, v T) bool {
	return f.Set(row, col, v) == nil
}

// Clone returns an independent copy with the same shape, data and options.
// Cloning a released field yields a fresh empty field that is not released.
// Complexity: O(r*c) time and memory.
func (f *Field[T]) Clone() *Field[T] {
	cp := &Field[T]{r: f.r, c: f.c, opts: f.opts}
	if len(f.data) > 0 {
		cp.data = make([]T, len(f.data))
		copy(cp.data, f.data)
	}

	return cp
}

// Do visits each cell in row-major order and calls fn(i, j, v).
// It stops early when fn returns false.
// Complexity: O(r*c), no allocations.
func (f *Field[T]) Do(fn func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < f.r; i++ {
		base = i * f.c
		for j = 0; j < f.c; j++ {
			if !fn(i, j, f.data[base+j]) {
				return
			}
		}
	}
}

// Release drops the storage, resets the shape to 0×0 and emits the release
// notification: the WithReleaseHook callback, then a Debug log record.
//
// The notification fires exactly once per field. Later calls return a
// wrapped ErrReleased and do nothing. Callers typically `defer f.Release()`
// right after New so every exit path releases the field.
func (f *Field[T]) Release() error {
	if f.released {
		return fieldErrorf(ctxRelease, f.r, f.c, ErrReleased)
	}
	rows, cols := f.r, f.c
	f.data = nil
	f.r, f.c = 0, 0
	f.released = true

	if f.opts.onRelease != nil {
		f.opts.onRelease()
	}
	f.logger().Debug("field: storage released", "rows", rows, "cols", cols)

	return nil
}
