package tiles

import "strings"

// Color tile codes. The device reserves 63..71 for solid color tiles.
const (
	Red    = 63
	Orange = 64
	Yellow = 65
	Green  = 66
	Blue   = 67
	Violet = 68
	White  = 69
	Black  = 70
	Filled = 71

	// ColorMin and ColorMax bound the color tile range.
	ColorMin = Red
	ColorMax = Filled
)

// colorCodes maps lower-case color names to tile codes.
// "purple" is accepted as an alias for violet.
var colorCodes = map[string]int{
	"red":    Red,
	"orange": Orange,
	"yellow": Yellow,
	"green":  Green,
	"blue":   Blue,
	"violet": Violet,
	"purple": Violet,
	"white":  White,
	"black":  Black,
	"filled": Filled,
}

// ColorCode returns the tile code for a color name (case-insensitive).
// The second result is false when the name is not a known color.
// Complexity: O(1).
func ColorCode(name string) (int, bool) {
	c, ok := colorCodes[strings.ToLower(name)]
	return c, ok
}

// IsColorCode reports whether n falls in the color tile range 63..71.
// Complexity: O(1).
func IsColorCode(n int) bool {
	return n >= ColorMin && n <= ColorMax
}
