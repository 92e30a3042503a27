// Package board converts finished rows into the 6x22 integer tile grid the
// physical device consumes.
//
// What:
//
//   - Grid is the fixed 6x22 matrix of tile codes in [0, 71], the terminal
//     artifact of a render.
//   - Encode scans each finished row left to right: a canonical {NN} color
//     marker emits its code and advances one column, the inert {/} end
//     marker is skipped, and every other character is upper-cased and
//     looked up in the tile table (unsupported characters become blanks).
//
// Why:
//
//   - Sending a malformed frame to the device is strictly worse than
//     refusing to send, so the encoder enforces the 6x22 contract itself
//     instead of trusting upstream layout.
//
// Errors:
//
//   - ErrRowCount: input is not exactly 6 rows.
//   - ErrRowWidth: a row does not span exactly 22 visible tiles.
//   - ErrColorCode: a marker code falls outside the color tile range.
//
// Complexity: Encode is O(rows x columns) time and memory.
package board
