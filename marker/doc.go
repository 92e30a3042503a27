// Package marker scans and normalizes the {...} marker syntax used by
// board templates.
//
// What:
//
//   - Normalize rewrites the three marker families into canonical form:
//     color markers ({red}, {purple}, raw {63}..{71}) become {NN}, end
//     markers ({/}, {/red}) become the bare {/}, and symbol shortcuts
//     ({sun}, {heart}, ...) are replaced by their single substitute glyph.
//   - Tokens splits a line into tile-accounting units: one token per
//     visible character, one per color marker, zero-width tokens for end
//     markers and the flexible-space sentinel.
//   - Width counts visible tiles, where a {NN} marker is exactly one tile
//     regardless of its textual length.
//
// Why:
//
//   - The layout engine must never split a multi-character marker across
//     rows, so everything downstream works on tokens instead of bytes.
//   - Matching is anchored to the brace syntax only: a color name inside
//     ordinary text is literal text, never a marker.
//
// Normalize is idempotent: normalizing already-canonical input returns it
// unchanged. Markers that belong to no family (including the alignment
// directives, which the layout engine owns) pass through untouched.
//
// Marker scanning is an explicit scanner over the line, not a regular
// expression: boundary safety during wrapping is the point, and a scanner
// keeps the single-pass O(n) guarantee visible in the code.
package marker
