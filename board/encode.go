package board

import (
	"fmt"
	"unicode"

	"github.com/flapboard/flapboard/marker"
	"github.com/flapboard/flapboard/tiles"
)

// Encode converts exactly 6 finished rows of exactly 22 visible tiles each
// into the integer grid. Rows are expected in canonical marker form (the
// layout engine's output); any contract violation is an internal invariant
// failure and returns a structured error instead of a malformed grid.
func Encode(rows []string) (Grid, error) {
	if len(rows) != tiles.Rows {
		return nil, fmt.Errorf("%w: got %d", ErrRowCount, len(rows))
	}
	g := NewGrid(tiles.Rows, tiles.Columns)
	for y, row := range rows {
		cells, err := encodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		copy(g[y], cells)
	}
	return g, nil
}

// encodeRow scans one row left to right into exactly 22 tile codes.
func encodeRow(row string) ([]int, error) {
	cells := make([]int, 0, tiles.Columns)
	for _, tok := range marker.Tokens(row) {
		switch tok.Kind {
		case marker.KindColor:
			if !tiles.IsColorCode(tok.Code) {
				return nil, fmt.Errorf("%w: %d", ErrColorCode, tok.Code)
			}
			cells = append(cells, tok.Code)
		case marker.KindEnd, marker.KindFlex:
			// Inert punctuation / leftover sentinel: zero columns.
		default:
			r := []rune(tok.Text)[0]
			cells = append(cells, tiles.CodeFor(unicode.ToUpper(r)))
		}
	}
	if len(cells) != tiles.Columns {
		return nil, fmt.Errorf("%w: got %d", ErrRowWidth, len(cells))
	}
	return cells, nil
}
