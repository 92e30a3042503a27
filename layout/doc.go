// Package layout turns one logical template line into physical board rows.
//
// Three independent behaviors compose, in this order:
//
//  1. Alignment: a leading {left}, {center} or {right} directive
//     (case-insensitive, default left) is stripped and remembered; padding
//     is applied once the final visible width of each row is known.
//  2. Flexible space: every flexible-space sentinel on the line absorbs an
//     equal share of the unused width. With k sentinels and `remaining`
//     spare tiles, each receives remaining/k spaces and the first
//     remaining%k receive one extra, so the inserted total is exact.
//     If nothing remains, the sentinels are dropped.
//  3. Tile-aware wrap: lines wider than the board break into rows of at
//     most Width visible tiles. A {NN} color marker is an indivisible
//     one-tile unit and is never split across rows; embedded newlines
//     (multi-line resolved values) force a row break first; words longer
//     than a full row hard-break at tile granularity; content past the row
//     budget is discarded.
//
// Why:
//
//   - The board is a fixed 6x22 tile matrix. Authors write variable-width
//     text over a variable-width marker syntax; this package is where the
//     two meet exactly.
//
// Complexity: every operation is a single pass over the line's tokens,
// O(len(line)) time, O(Width) extra memory per produced row.
//
// Degradation policy (never an error): sentinels with no room are dropped,
// overflowing content is truncated, and no call ever yields more than
// MaxRows rows or a row wider than Width tiles.
package layout
