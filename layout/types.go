// Package layout defines the alignment and option types shared by the
// layout pipeline.
package layout

import "github.com/flapboard/flapboard/tiles"

// Alignment selects where padding goes when a row is narrower than the
// board: Left pads the right edge, Right pads the left edge, Center splits
// padding evenly with any odd remainder on the right.
type Alignment int

const (
	// Left aligns content to the left edge (the default).
	Left Alignment = iota
	// Center centers content, odd padding remainder to the right.
	Center
	// Right aligns content to the right edge.
	Right
)

// String returns the directive name of the alignment.
func (a Alignment) String() string {
	switch a {
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "left"
	}
}

// Options contains the board geometry a layout call targets.
type Options struct {
	// Width is the number of visible tiles per row.
	Width int
	// MaxRows is the row budget remaining for this logical line.
	MaxRows int
}

// DefaultOptions returns the physical board geometry: 22 tiles wide,
// 6 rows tall.
func DefaultOptions() Options {
	return Options{Width: tiles.Columns, MaxRows: tiles.Rows}
}
