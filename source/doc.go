// Package source feeds live data into template rendering.
//
// What:
//   - Provider: one named upstream (weather, transit, a config file) that
//     fetches a field map on demand.
//   - Registry: a concurrency-safe set of providers, assembled into a
//     resolve.Context in one call.
//   - Static: the trivial provider backed by a fixed map, for config-file
//     data and tests.
//
// Why:
//   - Templates reference data by source identifier ({{weather.temperature}});
//     the registry is the place those identifiers are bound to code.
//   - A board keeps rendering when one upstream is down: Context returns the
//     fields it could get plus a joined error, and the unresolved references
//     fall back to placeholders.
//
// Errors:
//   - ErrDuplicateSource: Register with an identifier already taken.
//   - ErrUnknownSource: Lookup of an identifier never registered.
//
// All Registry methods are safe for concurrent use.
package source
