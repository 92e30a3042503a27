// SPDX-License-Identifier: MIT

// Package render: functional configuration for the rendering pipeline.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package render

import "github.com/flapboard/flapboard/tiles"

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultWidth is the physical board width in tiles.
	DefaultWidth = tiles.Columns

	// DefaultRows is the physical board height in rows.
	DefaultRows = tiles.Rows
)

// Internal panic messages (no magic strings).
const (
	panicWidthInvalid = "render: WithWidth: width must be positive"
	panicRowsInvalid  = "render: WithRows: rows must be positive"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Unexported to prevent external mutation.
type options struct {
	width int // DefaultWidth
	rows  int // DefaultRows
}

// WithWidth overrides the row width in visible tiles.
// Panics when width < 1. Complexity: O(1).
func WithWidth(width int) Option {
	if width < 1 {
		panic(panicWidthInvalid)
	}
	return func(o *options) { o.width = width }
}

// WithRows overrides the number of board rows.
// Panics when rows < 1. Complexity: O(1).
func WithRows(rows int) Option {
	if rows < 1 {
		panic(panicRowsInvalid)
	}
	return func(o *options) { o.rows = rows }
}

// gatherOptions resolves defaults and applies setters in order.
func gatherOptions(opts ...Option) options {
	o := options{width: DefaultWidth, rows: DefaultRows}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
