// Package line implements the B2 line enumerator: given a single row or
// column as a slice of tentboard.CellState plus its tent target and the
// set of already-fixed indices, EnumerateLine produces every legal
// completion, and ForcedFromCompletions intersects them to find cells
// whose value is identical across every completion.
//
// Both functions are pure: same inputs always produce the same output,
// and neither touches a tentboard.Grid directly — callers slice a row or
// column out of the Grid themselves (see propagate and region).
package line
