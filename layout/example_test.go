package layout_test

import (
	"fmt"

	"github.com/flapboard/flapboard/layout"
)

// ExampleCompose centers a short line on a 22-tile row.
func ExampleCompose() {
	rows := layout.Compose("{center}TEST", layout.DefaultOptions())
	fmt.Printf("%q\n", rows[0])
	// Output:
	// "         TEST         "
}

// ExampleWrap shows marker-safe wrapping: each canonical {NN} color marker
// counts as one tile, so six of them fit a 22-tile row with room to spare.
func ExampleWrap() {
	line := "{63}{63}{63}{63}{63}{63}"
	rows := layout.Wrap(line, 22, 6)
	fmt.Println(len(rows))
	// Output:
	// 1
}
