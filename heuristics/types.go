// Package heuristics implements the B3 local rules: six cheap,
// single-pass deductions over a tentboard.Grid. Each rule returns at most
// one forced cell per call — callers that want a fixed point (propagate)
// re-invoke the rules until none reports a further deduction; a
// move-by-move caller can surface each deduction as it's found.
package heuristics

import (
	"errors"

	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

// ErrInfeasible is returned by a rule that proves the board has no legal
// completion from its current state. See LockedCandidates for the one
// rule that can detect this (spec's open question: a tree with zero
// currently-legal tent spots is a propagation failure, not a vacuous lock;
// this module resolves the open question that way — see DESIGN.md).
var ErrInfeasible = errors.New("heuristics: board has no legal completion")

// Move is a single deduced cell assignment: Value is always Tent or
// Grass — never Unknown or Tree.
type Move struct {
	Pos   tentboard.Position
	Value tentboard.CellState
}

// Rule is one of the six local heuristics. It scans g and returns the
// first cell it can deduce, or ok=false if it finds nothing. err is
// non-nil only when the rule additionally proves the board infeasible.
type Rule func(g *tentboard.Grid) (move Move, ok bool, err error)

// All lists the six rules in the fixed order spec §4.2 requires for
// move-by-move mode. Run (in propagate) doesn't depend on this
// order for its final result, but still applies them in this sequence.
var All = []Rule{
	AdjacencyExclusion,
	RowColSaturation,
	RowColForcing,
	IsolatedTree,
	NoMansLand,
	LockedCandidates,
}
