// Package tentsolve solves Tents puzzles: pairing each tree with an
// orthogonally-adjacent tent such that no two tents touch (including
// diagonally) and every row and column holds its exact tent count.
//
// The solver is organized as a small pipeline of packages, each owning
// one stage:
//
//   - tentboard — the Puzzle/Grid data model, with Set as the single
//     invariant-checking mutation primitive.
//   - line — enumerates a row or column's legal tent/grass assignments
//     and intersects them into forced cells.
//   - heuristics — six local deduction rules ported from the original
//     solver's priority list.
//   - region — decomposes the board's unknown cells into connected
//     components so line enumeration stays scoped to the rows and
//     columns that still hold an unknown cell.
//   - propagate — the fixed-point driver composing heuristics and
//     region into repeated passes until nothing more can be deduced.
//   - search — MRV backtracking with forward checking over whatever
//     propagate couldn't resolve outright.
//   - movestream — diffs a solved grid against a live one to produce a
//     single next move, tents before grass.
//
// tents is the top-level facade gathering Solve, NextMove,
// EnumerateLine, and ForcedFromCompletions behind one import.
// tentcache and cmd/tentsolve are external collaborators built on top
// of that facade: a persistent solved-grid cache and a small CLI.
package tentsolve
