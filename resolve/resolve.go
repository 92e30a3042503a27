package resolve

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Lookup resolves a dotted-path expression ("source.field.subfield") against
// ctx and returns the value formatted as a display string.
//
// The path needs at least two segments (a source and a field). Unknown
// sources, missing fields and non-mapping intermediates all return
// ErrUnresolved; a nil leaf resolves to "" (present but empty).
// Complexity: O(depth of the path).
func Lookup(ctx Context, expr string) (string, error) {
	segs := strings.Split(expr, ".")
	if len(segs) < 2 {
		return "", fmt.Errorf("%w: %q needs a source and a field", ErrUnresolved, expr)
	}
	node, ok := ctx[segs[0]]
	if !ok {
		return "", fmt.Errorf("%w: unknown source %q", ErrUnresolved, segs[0])
	}
	for _, seg := range segs[1:] {
		node, ok = childOf(node, seg)
		if !ok {
			return "", fmt.Errorf("%w: %q has no field %q", ErrUnresolved, expr, seg)
		}
	}
	return formatValue(node)
}

// childOf descends one path segment into node. The second result is false
// when node is not a mapping or the key is absent.
func childOf(node any, key string) (any, bool) {
	switch m := node.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[string]string:
		v, ok := m[key]
		return v, ok
	case Context:
		v, ok := m[key]
		return v, ok
	default:
		return nil, false
	}
}

// formatValue renders a resolved leaf value as board-display text.
func formatValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		if x {
			return "Yes", nil
		}
		return "No", nil
	case int:
		return strconv.Itoa(x), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x), nil
	case float32:
		return formatFloat(float64(x)), nil
	case float64:
		return formatFloat(x), nil
	case []string:
		return strings.Join(x, "\n"), nil
	case []any:
		return formatSlice(x), nil
	default:
		// Mappings and anything exotic have no display form.
		return "", fmt.Errorf("%w: value of type %T has no display form", ErrUnresolved, v)
	}
}

// formatFloat drops the trailing ".0" for integral values and rounds
// everything else to one decimal place.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Placeholder
	}
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', 1, 64)
}

// formatSlice joins element display forms with newlines; the layout engine
// turns those into forced row breaks. Elements without a display form show
// the placeholder instead of aborting the whole value.
func formatSlice(xs []any) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		s, err := formatValue(x)
		if err != nil {
			s = Placeholder
		}
		parts[i] = s
	}
	return strings.Join(parts, "\n")
}
