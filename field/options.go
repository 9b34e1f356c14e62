// SPDX-License-Identifier: MIT

// Package field: functional configuration for Field construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options are fixed at New and carried by Clone; Resize keeps them.
package field

import "log/slog"

// DefaultMaxCells caps rows*cols for a single allocation (New, Resize, Clone).
// 1<<26 cells is 256 MiB of float32.
const DefaultMaxCells = 1 << 26

const panicMaxCellsInvalid = "field: WithMaxCells: limit must be > 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	maxCells  int          // > 0; DefaultMaxCells
	onRelease func()       // called once by Release; nil means no hook
	logger    *slog.Logger // nil means the package logger (see SetLogger)
}

// WithMaxCells sets the largest rows*cols the field may allocate.
// Requests above the limit are refused before any allocation:
// New degrades to an empty field, Resize returns ErrTooLarge.
//
// Panics when n <= 0.
func WithMaxCells(n int) Option {
	if n <= 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *options) { o.maxCells = n }
}

// WithReleaseHook registers fn as the release notification.
// Release calls it exactly once, after the storage has been dropped.
// A nil fn clears the hook.
func WithReleaseHook(fn func()) Option {
	return func(o *options) { o.onRelease = fn }
}

// WithLogger routes the field's diagnostics to l instead of the package logger.
// A nil l restores the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{maxCells: DefaultMaxCells}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
