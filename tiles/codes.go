package tiles

import "unicode"

// Board geometry and reserved codes.
const (
	// Rows is the number of physical lines on the board.
	Rows = 6
	// Columns is the number of tiles per line.
	Columns = 22
	// Blank is the tile code of an empty cell.
	Blank = 0
	// MaxCode is the highest tile code the device understands.
	MaxCode = 71
)

// punctCodes lists the punctuation and extra device glyphs in the 37..62
// range. Codes 43, 45, 51 and 62 carry the device's special glyphs so that
// every symbol shortcut expands to an encodable character.
var punctCodes = map[rune]int{
	'!': 37, '@': 38, '#': 39, '$': 40,
	'(': 41, ')': 42, '*': 43, '-': 44,
	'✓': 45, '+': 46, '&': 47, '=': 48,
	';': 49, ':': 50, '♥': 51, '\'': 52,
	'"': 53, '%': 54, ',': 55, '.': 56,
	'/': 59, '?': 60, '°': 62,
}

// charCodes maps every visible character to its tile code.
// Populated once at init; read-only afterwards.
var charCodes = make(map[rune]int, 26+10+len(punctCodes)+1)

func init() {
	charCodes[' '] = Blank
	for r := 'A'; r <= 'Z'; r++ {
		charCodes[r] = int(r-'A') + 1
	}
	for r := '1'; r <= '9'; r++ {
		charCodes[r] = int(r-'1') + 27
	}
	charCodes['0'] = 36
	for r, c := range punctCodes {
		charCodes[r] = c
	}
}

// CodeFor returns the tile code for a visible character, upper-casing
// letters first. Characters outside the board alphabet map to Blank.
// Complexity: O(1).
func CodeFor(r rune) int {
	if c, ok := charCodes[unicode.ToUpper(r)]; ok {
		return c
	}
	return Blank
}

// Supported reports whether the board can show the given character.
// Complexity: O(1).
func Supported(r rune) bool {
	_, ok := charCodes[unicode.ToUpper(r)]
	return ok
}
