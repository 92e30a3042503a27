// Package flapboard turns short template strings into board-legal frames
// for a fixed 6x22 split-flap character display.
//
// What is flapboard?
//
//	A deterministic rendering pipeline that brings together:
//		• Tile tables: character, color and symbol codes of the physical board
//		• Variable resolution: {{source.field}} lookups against a data context
//		• Filters: pad, truncate and case transforms on resolved values
//		• Marker normalization: named colors and symbols to canonical form
//		• Layout: alignment, flexible-space distribution, tile-aware wrapping
//		• Board encoding: finished rows to the 6x22 integer tile grid
//
// Why choose flapboard?
//
//   - Exact by construction: every rendered row is exactly 22 visible tiles
//   - Marker-safe wrapping: a color marker is never split across rows
//   - Pure functions only: safe for concurrent renders, no hidden state
//   - Author-friendly failures: broken references show up on the board as ???
//
// Everything is organized under small subpackages:
//
//	tiles/   - static character, color and symbol code tables
//	resolve/ - variable resolver and value filters
//	marker/  - marker scanner and normalizer
//	layout/  - alignment, flexible space and tile-aware wrapping
//	board/   - the 6x22 grid type and the tile encoder
//	render/  - the full pipeline plus template validation
//	source/  - the data-source boundary (Provider interface + Registry)
//
// Quick example:
//
//	rows := render.Render(
//	    []string{"{center}{yellow} HELLO {yellow}"},
//	    resolve.Context{},
//	)
//	grid, err := board.Encode(rows)
//
// The cmd/flapboard CLI wraps the same pipeline for template authors:
// render, validate and preview board files from the terminal.
//
//	go get github.com/flapboard/flapboard
package flapboard
