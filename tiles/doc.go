// Package tiles holds the static code tables of the physical board.
//
// What:
//
//   - CodeFor maps a visible character to its integer tile code.
//   - ColorCode / IsColorCode map color names to the 63..71 color tile range.
//   - SymbolGlyph maps symbol shortcuts (sun, heart, check, ...) to the single
//     character the board shows for them.
//   - Rows, Columns and the reserved codes describe the board geometry.
//
// Why:
//
//   - The device understands integers, not characters; every higher layer
//     (layout, encoding, preview) shares this one alphabet.
//
// Code layout:
//
//   - 0      blank
//   - 1..26  letters A..Z
//   - 27..35 digits 1..9
//   - 36     digit 0
//   - 37..62 punctuation and extra device glyphs
//   - 63..71 color / fill tiles
//
// All tables are populated at package init and never mutated afterwards, so
// concurrent renders may read them without locking.
package tiles
