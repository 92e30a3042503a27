// Package resolve defines the context shape, sentinel values and errors
// shared by the resolver and the expression expander.
package resolve

import "errors"

// Sentinel errors for resolver operations.
var (
	// ErrUnresolved indicates an expression path that does not resolve:
	// unknown source, missing field, wrong nesting, or too few segments.
	ErrUnresolved = errors.New("resolve: expression does not resolve")
)

// Placeholder is substituted for unresolved expressions so the author can
// spot the broken reference on the physical board itself.
const Placeholder = "???"

// FlexName is the reserved expression name (matched case-insensitively)
// that expands to flexible space instead of a context lookup.
const FlexName = "fill_space"

// FlexRune is the internal flexible-space sentinel. It is a private-use
// rune so it can never collide with board-encodable text; the layout
// engine replaces it with real spaces and it must never reach the encoder.
const FlexRune rune = '\uE000'

// Context maps a source identifier to a nested mapping of field name to
// value, where a value is a string, number, boolean, nested mapping, or a
// slice of such values. It is built entirely by external collaborators and
// lives for one render call.
type Context map[string]any
