// Package resolve looks up template expressions against a data context and
// post-processes the resulting values.
//
// What:
//
//   - Context is the nested source-id -> field mapping assembled by the
//     data-source layer; the resolver never mutates it.
//   - Lookup walks a dotted path ("weather.temperature") through a Context
//     and formats the value it finds as a display string.
//   - ApplyFilter implements the pad / truncate / upper / lower / capitalize
//     filters an expression may carry.
//   - Expand substitutes every {{source.path|filter:arg}} expression in a
//     template line, turning the reserved {{fill_space}} token into the
//     internal flexible-space sentinel.
//
// Why:
//
//   - Templates are author-controlled content, not program input: a broken
//     reference must show up on the board (as "???"), never abort a render,
//     and a malformed filter must silently degrade to a no-op.
//
// Formatting rules:
//
//   - booleans render as "Yes" / "No"
//   - integral floats render without the trailing ".0" (72.0 -> "72")
//   - other floats round to one decimal place (72.46 -> "72.5")
//   - nil renders as "" (distinct from unresolved, which is "???")
//   - slices render as their elements joined by newlines, which the layout
//     engine later turns into forced row breaks
//
// Errors:
//
//   - ErrUnresolved: unknown source, missing field, too few path segments,
//     or a non-mapping intermediate segment.
//
// All functions are pure: same inputs, same outputs, no shared state.
package resolve
