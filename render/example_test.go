package render_test

import (
	"fmt"

	"github.com/flapboard/flapboard/render"
	"github.com/flapboard/flapboard/resolve"
)

// ExampleRender shows the pipeline end to end: substitution, centering and
// the fixed 6x22 frame.
func ExampleRender() {
	ctx := resolve.Context{
		"weather": map[string]any{"temperature": 72.0},
	}
	rows := render.Render([]string{"{center}NOW {{weather.temperature}}°"}, ctx)
	fmt.Printf("%d rows\n", len(rows))
	fmt.Printf("%q\n", rows[0])
	// Output:
	// 6 rows
	// "       NOW 72°        "
}

// ExampleRenderGrid encodes a one-line template into device tile codes.
func ExampleRenderGrid() {
	grid, err := render.RenderGrid([]string{"{red}HI"}, resolve.Context{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(grid[0][:4])
	// Output:
	// [63 8 9 0]
}
