package marker

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/flapboard/flapboard/tiles"
)

// Normalize rewrites named markers to canonical form without touching
// literal text: {red} and raw in-range codes become {NN}, {/} and {/name}
// become the bare {/}, symbol shortcuts become their substitute glyph.
// Alignment directives and unrecognized markers pass through unchanged.
// Idempotent. Complexity: O(len(s)).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '{' {
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size
			continue
		}
		end := strings.IndexByte(s[i:], '}')
		if end < 0 {
			// Dangling brace: the rest of the line is literal.
			b.WriteString(s[i:])
			break
		}
		b.WriteString(normalizeMarker(s[i : i+end+1]))
		i += end + 1
	}
	return b.String()
}

// normalizeMarker canonicalizes one braced unit, returning it verbatim
// when it belongs to no marker family.
func normalizeMarker(raw string) string {
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if strings.HasPrefix(inner, "/") {
		return "{/}"
	}
	if code, ok := tiles.ColorCode(inner); ok {
		return fmt.Sprintf("{%02d}", code)
	}
	if n, err := strconv.Atoi(inner); err == nil && tiles.IsColorCode(n) {
		return fmt.Sprintf("{%02d}", n)
	}
	if g, ok := tiles.SymbolGlyph(inner); ok {
		return string(g)
	}
	return raw
}
