// Package render drives the full template-to-board pipeline.
//
// What:
//
//   - Render takes up to 6 template lines and a data context and produces
//     exactly 6 rows of exactly 22 visible tiles: per line, expression
//     substitution (resolve), marker normalization (marker), then layout
//     under the shrinking row budget (layout).
//   - RenderGrid additionally encodes the rows into the 6x22 integer grid
//     (board) for the device driver.
//   - Join renders the rows as one preview string.
//   - Validate is the authoring-tool entry point: it reports mismatched
//     expression delimiters, unknown source identifiers and probably-too-
//     wide lines without touching a live context.
//
// Why:
//
//   - Callers should hold one function, not five packages: everything a
//     page service needs is Render or RenderGrid plus a prebuilt Context.
//
// Pipeline per logical line:
//
//	resolve.Expand -> marker.Normalize -> layout.Compose
//
// The whole pipeline is a pure, synchronous computation with no I/O and no
// shared mutable state, so concurrent renders need no locking. Degradation
// is silent (placeholders, truncation); the only error surface
// is the encoder's 6x22 contract, which is a structured failure because a
// malformed frame must never reach the device.
//
// Options:
//
//   - WithWidth / WithRows override the board geometry for previews and
//     tests; the defaults are the physical 22x6.
//
// Errors:
//
//   - board.ErrRowCount / board.ErrRowWidth / board.ErrColorCode wrapped
//     out of RenderGrid on invariant violations.
package render
