// Package puzzlefile loads and saves Tents puzzles in the CLI's on-disk
// JSON format: size, tree positions, row/column targets, and an optional
// partially-filled player grid. It is the file-format edge of the
// module — nothing under tentboard, line, heuristics, region, propagate,
// search, or movestream ever imports it.
//
// The encoding mirrors tentcache's own use of encoding/json for on-disk
// values: a small, stable schema with no library beyond the standard
// library's json package buys anything a hand-rolled parser wouldn't
// already need to hand-roll around it.
package puzzlefile
