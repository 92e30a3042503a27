package layout

import (
	"strings"

	"github.com/flapboard/flapboard/marker"
)

// directives maps each alignment prefix to its Alignment. Matching is
// case-insensitive and anchored to the start of the line.
var directives = []struct {
	prefix string
	align  Alignment
}{
	{"{left}", Left},
	{"{center}", Center},
	{"{right}", Right},
}

// ParseAlignment strips a leading alignment directive from line and
// returns it together with the remaining text. Absence implies Left.
// Complexity: O(1).
func ParseAlignment(line string) (Alignment, string) {
	for _, d := range directives {
		if len(line) >= len(d.prefix) && strings.EqualFold(line[:len(d.prefix)], d.prefix) {
			return d.align, line[len(d.prefix):]
		}
	}
	return Left, line
}

// Pad grows s to exactly width visible tiles according to the alignment.
// Lines already at or past the width pass through unchanged: truncation is
// the wrapper's job, never padding's.
// Complexity: O(width).
func Pad(s string, a Alignment, width int) string {
	pad := width - marker.Width(s)
	if pad <= 0 {
		return s
	}
	switch a {
	case Right:
		return strings.Repeat(" ", pad) + s
	case Center:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
