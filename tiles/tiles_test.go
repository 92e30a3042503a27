package tiles_test

import (
	"testing"

	"github.com/flapboard/flapboard/tiles"
	"github.com/stretchr/testify/require"
)

// TestCodeFor_Alphabet walks the documented code layout end to end.
func TestCodeFor_Alphabet(t *testing.T) {
	require.Equal(t, 0, tiles.CodeFor(' '))
	require.Equal(t, 1, tiles.CodeFor('A'))
	require.Equal(t, 26, tiles.CodeFor('Z'))
	require.Equal(t, 27, tiles.CodeFor('1'))
	require.Equal(t, 35, tiles.CodeFor('9'))
	require.Equal(t, 36, tiles.CodeFor('0'))
	require.Equal(t, 37, tiles.CodeFor('!'))
	require.Equal(t, 62, tiles.CodeFor('°'))
}

// TestCodeFor_UpperCases verifies lower-case input maps like upper-case.
func TestCodeFor_UpperCases(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		require.Equal(t, tiles.CodeFor(r-'a'+'A'), tiles.CodeFor(r), "rune %q", r)
	}
}

// TestCodeFor_Unsupported maps anything outside the alphabet to Blank.
func TestCodeFor_Unsupported(t *testing.T) {
	for _, r := range "~^`|☂\t" {
		require.Equal(t, tiles.Blank, tiles.CodeFor(r), "rune %q", r)
		require.False(t, tiles.Supported(r), "rune %q", r)
	}
}

// TestColorCode covers names, the purple alias and case-insensitivity.
func TestColorCode(t *testing.T) {
	cases := []struct {
		name string
		code int
	}{
		{"red", 63}, {"orange", 64}, {"yellow", 65}, {"green", 66},
		{"blue", 67}, {"violet", 68}, {"purple", 68}, {"white", 69},
		{"black", 70}, {"filled", 71}, {"RED", 63}, {"Violet", 68},
	}
	for _, tc := range cases {
		c, ok := tiles.ColorCode(tc.name)
		require.True(t, ok, "name %q", tc.name)
		require.Equal(t, tc.code, c, "name %q", tc.name)
	}
	_, ok := tiles.ColorCode("mauve")
	require.False(t, ok)
}

// TestIsColorCode checks the range boundaries.
func TestIsColorCode(t *testing.T) {
	require.False(t, tiles.IsColorCode(62))
	require.True(t, tiles.IsColorCode(63))
	require.True(t, tiles.IsColorCode(71))
	require.False(t, tiles.IsColorCode(72))
}

// TestSymbolGlyph verifies every shortcut expands to an encodable glyph.
func TestSymbolGlyph(t *testing.T) {
	for _, name := range []string{
		"sun", "cloud", "rain", "snow", "storm",
		"fog", "partly", "heart", "check", "x",
	} {
		g, ok := tiles.SymbolGlyph(name)
		require.True(t, ok, "symbol %q", name)
		require.True(t, tiles.Supported(g), "glyph %q of %q must be encodable", g, name)
	}
	_, ok := tiles.SymbolGlyph("moon")
	require.False(t, ok)

	g, ok := tiles.SymbolGlyph("HEART")
	require.True(t, ok)
	require.Equal(t, '♥', g)
}
