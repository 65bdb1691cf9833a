// Package tentboard is the B1 component of the Tents solver: the Puzzle
// (immutable metadata) and Grid (mutable cell state) that every other
// package builds on.
//
//	tentboard/  — Puzzle, Grid, CellState, Position, sentinel errors
//
// Grid.Set is the single mutation primitive: every other package commits
// cells through it, so the adjacency/budget invariants in grid.go never
// need a separate validation pass.
package tentboard
