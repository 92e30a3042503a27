package tiles

import "strings"

// symbolGlyphs maps lower-case symbol shortcuts to the single character the
// board shows for them. Every glyph here must be encodable via CodeFor.
var symbolGlyphs = map[string]rune{
	"sun":    '°',
	"cloud":  '@',
	"rain":   '/',
	"snow":   '*',
	"storm":  '!',
	"fog":    '=',
	"partly": '%',
	"heart":  '♥',
	"check":  '✓',
	"x":      'X',
}

// SymbolGlyph returns the substitute glyph for a symbol shortcut
// (case-insensitive). The second result is false for unknown names.
// Complexity: O(1).
func SymbolGlyph(name string) (rune, bool) {
	g, ok := symbolGlyphs[strings.ToLower(name)]
	return g, ok
}
