package marker

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/flapboard/flapboard/resolve"
	"github.com/flapboard/flapboard/tiles"
)

// Tokens scans s into tile-accounting units. Color markers {NN} and end
// markers {/...} become single tokens; every other rune is one literal
// token, except the flexible-space sentinel, which is zero-width.
// Concatenating the token texts reproduces s exactly.
// Complexity: O(len(s)).
func Tokens(s string) []Token {
	toks := make([]Token, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == '{' {
			if tok, n, ok := scanMarker(s[i:]); ok {
				toks = append(toks, tok)
				i += n
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		kind := KindLiteral
		if r == resolve.FlexRune {
			kind = KindFlex
		}
		toks = append(toks, Token{Kind: kind, Text: s[i : i+size]})
		i += size
	}
	return toks
}

// Width returns the visible tile count of s: literal runes and color
// markers are one tile each, end markers and sentinels are zero.
// Complexity: O(len(s)).
func Width(s string) int {
	w := 0
	for _, t := range Tokens(s) {
		w += t.Width()
	}
	return w
}

// scanMarker recognizes a color marker {NN} or an end marker {/...} at the
// start of s and returns the token plus its byte length. Any other braced
// text is not a marker unit and scans as literal runes.
func scanMarker(s string) (Token, int, bool) {
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return Token{}, 0, false
	}
	inner := s[1:end]
	if strings.HasPrefix(inner, "/") {
		return Token{Kind: KindEnd, Text: s[:end+1]}, end + 1, true
	}
	if len(inner) == 2 {
		if n, err := strconv.Atoi(inner); err == nil && tiles.IsColorCode(n) {
			return Token{Kind: KindColor, Text: s[:end+1], Code: n}, end + 1, true
		}
	}
	return Token{}, 0, false
}
