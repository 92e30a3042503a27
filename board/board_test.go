package board_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/flapboard/flapboard/board"
	"github.com/flapboard/flapboard/tiles"
	"github.com/stretchr/testify/require"
)

// blankRows returns 6 rows of 22 spaces, the empty frame.
func blankRows() []string {
	rows := make([]string, tiles.Rows)
	for i := range rows {
		rows[i] = strings.Repeat(" ", tiles.Columns)
	}
	return rows
}

// TestEncode_BlankFrame maps an empty frame to an all-zero grid.
func TestEncode_BlankFrame(t *testing.T) {
	g, err := board.Encode(blankRows())
	require.NoError(t, err)
	rows, cols := g.Dimensions()
	require.Equal(t, tiles.Rows, rows)
	require.Equal(t, tiles.Columns, cols)
	for y := range g {
		for x := range g[y] {
			require.Equal(t, tiles.Blank, g[y][x], "cell (%d,%d)", x, y)
		}
	}
}

// TestEncode_CharactersAndMarkers mixes text, colors and end markers.
func TestEncode_CharactersAndMarkers(t *testing.T) {
	rows := blankRows()
	rows[0] = "{63}HI 42{/}" + strings.Repeat(" ", 22-6)
	g, err := board.Encode(rows)
	require.NoError(t, err)
	require.Equal(t, 63, g[0][0])           // {63}
	require.Equal(t, 8, g[0][1])            // H
	require.Equal(t, 9, g[0][2])            // I
	require.Equal(t, 0, g[0][3])            // space
	require.Equal(t, 30, g[0][4])           // 4
	require.Equal(t, 28, g[0][5])           // 2
	require.Equal(t, 0, g[0][6])            // {/} consumed no column
	require.Equal(t, tiles.Blank, g[0][21]) // padding
}

// TestEncode_LowerCaseUpperCases encodes "hi" like "HI".
func TestEncode_LowerCaseUpperCases(t *testing.T) {
	rows := blankRows()
	rows[2] = "hi" + strings.Repeat(" ", 20)
	g, err := board.Encode(rows)
	require.NoError(t, err)
	require.Equal(t, 8, g[2][0])
	require.Equal(t, 9, g[2][1])
}

// TestEncode_UnsupportedBecomesBlank substitutes the space code.
func TestEncode_UnsupportedBecomesBlank(t *testing.T) {
	rows := blankRows()
	rows[0] = "A~B" + strings.Repeat(" ", 19)
	g, err := board.Encode(rows)
	require.NoError(t, err)
	require.Equal(t, 1, g[0][0])
	require.Equal(t, tiles.Blank, g[0][1])
	require.Equal(t, 2, g[0][2])
}

// TestEncode_FullMarkerRow encodes 22 color markers into 22 color cells.
func TestEncode_FullMarkerRow(t *testing.T) {
	rows := blankRows()
	rows[5] = strings.Repeat("{71}", tiles.Columns)
	g, err := board.Encode(rows)
	require.NoError(t, err)
	for x := 0; x < tiles.Columns; x++ {
		require.Equal(t, 71, g[5][x], "column %d", x)
	}
}

// TestEncode_ContractViolations rejects anything not exactly 6x22.
func TestEncode_ContractViolations(t *testing.T) {
	short := blankRows()[:5]
	_, err := board.Encode(short)
	require.True(t, errors.Is(err, board.ErrRowCount))

	long := append(blankRows(), strings.Repeat(" ", tiles.Columns))
	_, err = board.Encode(long)
	require.True(t, errors.Is(err, board.ErrRowCount))

	narrow := blankRows()
	narrow[3] = strings.Repeat(" ", tiles.Columns-1)
	_, err = board.Encode(narrow)
	require.True(t, errors.Is(err, board.ErrRowWidth))

	wide := blankRows()
	wide[0] = strings.Repeat("A", tiles.Columns+1)
	_, err = board.Encode(wide)
	require.True(t, errors.Is(err, board.ErrRowWidth))
}

// TestEncode_CodesStayInRange: every produced cell is within [0, 71].
func TestEncode_CodesStayInRange(t *testing.T) {
	rows := blankRows()
	rows[0] = "AZ09!?{63}{71}°♥" + strings.Repeat(" ", 22-10)
	g, err := board.Encode(rows)
	require.NoError(t, err)
	for y := range g {
		for x := range g[y] {
			require.GreaterOrEqual(t, g[y][x], 0)
			require.LessOrEqual(t, g[y][x], tiles.MaxCode)
		}
	}
}

// TestGrid_Helpers covers NewGrid, Dimensions and InBounds.
func TestGrid_Helpers(t *testing.T) {
	g := board.NewGrid(2, 3)
	rows, cols := g.Dimensions()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.True(t, g.InBounds(0, 0))
	require.True(t, g.InBounds(2, 1))
	require.False(t, g.InBounds(3, 0))
	require.False(t, g.InBounds(0, 2))
	require.False(t, g.InBounds(-1, 0))

	var empty board.Grid
	rows, cols = empty.Dimensions()
	require.Zero(t, rows)
	require.Zero(t, cols)
}
