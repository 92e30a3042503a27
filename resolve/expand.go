package resolve

import "strings"

// Expand substitutes every {{source.path|filter:arg}} expression in a
// template line. Unresolved expressions become Placeholder, the reserved
// {{fill_space}} token becomes the FlexRune sentinel, and an unterminated
// "{{" leaves the remainder of the line as literal text. Single-brace
// markers ({red}, {center}, ...) pass through untouched for later stages.
// Complexity: O(len(line)).
func Expand(line string, ctx Context) string {
	var b strings.Builder
	b.Grow(len(line))
	rest := line
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			b.WriteString(rest)
			break
		}
		close := strings.Index(rest[open+2:], "}}")
		if close < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:open])
		body := strings.TrimSpace(rest[open+2 : open+2+close])
		b.WriteString(expandExpr(body, ctx))
		rest = rest[open+2+close+2:]
	}
	return b.String()
}

// expandExpr resolves one expression body: "path" or "path|filter[:arg]".
func expandExpr(body string, ctx Context) string {
	expr, filter, hasFilter := strings.Cut(body, "|")
	expr = strings.TrimSpace(expr)
	if strings.EqualFold(expr, FlexName) {
		return string(FlexRune)
	}
	val, err := Lookup(ctx, expr)
	if err != nil {
		return Placeholder
	}
	if hasFilter {
		name, arg, _ := strings.Cut(strings.TrimSpace(filter), ":")
		val = ApplyFilter(val, strings.TrimSpace(name), strings.TrimSpace(arg))
	}
	return val
}
