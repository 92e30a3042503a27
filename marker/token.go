package marker

// Kind classifies one scanned token of a template line.
type Kind int

const (
	// KindLiteral is a single visible character: one tile.
	KindLiteral Kind = iota
	// KindColor is a canonical {NN} color marker: one tile.
	KindColor
	// KindEnd is the inert end marker {/}: zero tiles.
	KindEnd
	// KindFlex is the internal flexible-space sentinel: zero tiles.
	KindFlex
)

// Token is one scanned unit of a line. Text holds the exact source slice,
// so concatenating all token texts reproduces the input. Code is the tile
// code for KindColor tokens and zero otherwise.
type Token struct {
	Kind Kind
	Text string
	Code int
}

// Width reports how many board tiles the token occupies.
func (t Token) Width() int {
	if t.Kind == KindLiteral || t.Kind == KindColor {
		return 1
	}
	return 0
}
