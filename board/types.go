// Package board defines the grid type and sentinel errors for the encoder.
package board

import "errors"

// Sentinel errors for board encoding.
var (
	// ErrRowCount indicates the encoder input is not exactly 6 rows.
	ErrRowCount = errors.New("board: input must have exactly 6 rows")
	// ErrRowWidth indicates a row does not span exactly 22 visible tiles.
	ErrRowWidth = errors.New("board: row must span exactly 22 visible tiles")
	// ErrColorCode indicates a marker code outside the color tile range.
	ErrColorCode = errors.New("board: marker code outside color range")
)

// Grid is the 6x22 integer tile matrix sent to the device driver.
// Grid[y][x] holds the tile code of row y, column x.
type Grid [][]int

// NewGrid returns a zeroed (all-blank) grid of the given dimensions.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for y := range g {
		g[y] = make([]int, cols)
	}
	return g
}

// Dimensions returns the row and column counts of the grid.
func (g Grid) Dimensions() (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y])
}
