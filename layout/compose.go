package layout

import "strings"

// Compose runs one logical line through the full layout pipeline:
// alignment extraction, forced breaks at embedded newlines, flexible-space
// expansion per segment, tile-aware wrapping under the row budget, and
// alignment padding of every produced row to exactly opts.Width tiles.
// Complexity: O(len(line) + rows produced x opts.Width).
func Compose(line string, opts Options) []string {
	if opts.Width <= 0 || opts.MaxRows <= 0 {
		return nil
	}
	align, rest := ParseAlignment(line)
	rows := make([]string, 0, opts.MaxRows)
	for _, seg := range strings.Split(rest, "\n") {
		if len(rows) == opts.MaxRows {
			break
		}
		seg = ExpandFlex(seg, opts.Width)
		rows = append(rows, Wrap(seg, opts.Width, opts.MaxRows-len(rows))...)
	}
	for i := range rows {
		rows[i] = Pad(rows[i], align, opts.Width)
	}
	return rows
}
