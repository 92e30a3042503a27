package render

import (
	"strings"

	"github.com/flapboard/flapboard/board"
	"github.com/flapboard/flapboard/layout"
	"github.com/flapboard/flapboard/marker"
	"github.com/flapboard/flapboard/resolve"
)

// Render turns up to 6 template lines and a context into exactly rows
// physical rows of exactly width visible tiles. Missing lines become blank
// rows; a line that wraps consumes budget from the lines after it; content
// past the budget is discarded. Render never fails: broken references show
// as placeholders and overflow truncates.
// Complexity: O(total template length + rows x width).
func Render(template []string, ctx resolve.Context, opts ...Option) []string {
	o := gatherOptions(opts...)
	rows := make([]string, 0, o.rows)
	for _, line := range template {
		if len(rows) == o.rows {
			break
		}
		expanded := resolve.Expand(line, ctx)
		normalized := marker.Normalize(expanded)
		rows = append(rows, layout.Compose(normalized, layout.Options{
			Width:   o.width,
			MaxRows: o.rows - len(rows),
		})...)
	}
	blank := strings.Repeat(" ", o.width)
	for len(rows) < o.rows {
		rows = append(rows, blank)
	}
	return rows
}

// RenderGrid renders the template and encodes the finished rows into the
// 6x22 integer grid. The encode step is the pipeline's only error surface;
// it fires on internal invariant violations (or non-physical geometry
// options) rather than author mistakes.
func RenderGrid(template []string, ctx resolve.Context, opts ...Option) (board.Grid, error) {
	return board.Encode(Render(template, ctx, opts...))
}

// Join returns the rendered rows as one line-break-separated preview
// string, each row still in canonical marker form.
func Join(rows []string) string {
	return strings.Join(rows, "\n")
}
