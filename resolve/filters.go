package resolve

import (
	"strconv"
	"strings"
	"unicode"
)

// ApplyFilter post-processes a resolved value's string form.
//
// Supported filters: "pad:N" (right-pad or truncate to exactly N
// characters), "truncate:N", "upper", "lower", "capitalize". Unknown names
// and malformed numeric arguments leave the value unchanged: templates are
// author content, so a typo degrades silently instead of failing the render.
// Width arguments count runes, not bytes.
func ApplyFilter(s, name, arg string) string {
	switch strings.ToLower(name) {
	case "pad":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return s
		}
		r := []rune(s)
		if len(r) >= n {
			return string(r[:n])
		}
		return s + strings.Repeat(" ", n-len(r))
	case "truncate":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return s
		}
		r := []rune(s)
		if len(r) <= n {
			return s
		}
		return string(r[:n])
	case "upper":
		return strings.ToUpper(s)
	case "lower":
		return strings.ToLower(s)
	case "capitalize":
		r := []rune(strings.ToLower(s))
		if len(r) == 0 {
			return s
		}
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	default:
		return s
	}
}
