package layout

import (
	"strings"

	"github.com/flapboard/flapboard/marker"
	"github.com/flapboard/flapboard/resolve"
)

// ExpandFlex distributes the line's unused width across its flexible-space
// sentinels: base = remaining/k spaces at each of the k sentinels, with the
// first remaining%k receiving one extra, so the inserted spaces sum to
// exactly `remaining`. When nothing remains the sentinels are dropped and
// the line proceeds to wrap normally.
// Complexity: O(len(s) + width).
func ExpandFlex(s string, width int) string {
	parts := strings.Split(s, string(resolve.FlexRune))
	k := len(parts) - 1
	if k == 0 {
		return s
	}
	remaining := width - marker.Width(s) // sentinels are zero-width
	if remaining <= 0 {
		return strings.Join(parts, "")
	}
	base, extra := remaining/k, remaining%k
	var b strings.Builder
	b.Grow(len(s) + remaining)
	b.WriteString(parts[0])
	for i, p := range parts[1:] {
		n := base
		if i < extra {
			n++
		}
		b.WriteString(strings.Repeat(" ", n))
		b.WriteString(p)
	}
	return b.String()
}
