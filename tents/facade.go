package tents

import (
	"errors"

	"github.com/ashrey-kulkarni/tentsolve/line"
	"github.com/ashrey-kulkarni/tentsolve/movestream"
	"github.com/ashrey-kulkarni/tentsolve/propagate"
	"github.com/ashrey-kulkarni/tentsolve/search"
	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

// Solve runs B5 (propagation) then B6 (backtracking search) and returns
// a fully-resolved Grid, or ErrInfeasible / ErrInterrupted.
//
// initial is the starting point; pass nil to start from puzzle's blank
// grid (every non-tree cell UNKNOWN). initial is never mutated — both
// propagate and search operate on their own clones.
func Solve(puzzle *tentboard.Puzzle, initial *tentboard.Grid, opts ...Option) (*tentboard.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var g *tentboard.Grid
	if initial != nil {
		g = initial.Clone()
	} else {
		g = tentboard.NewGrid(puzzle)
	}

	if err := propagate.Run(g, propagate.WithOnCommit(o.OnCommit)); err != nil {
		if errors.Is(err, propagate.ErrInfeasible) {
			return nil, ErrInfeasible
		}
		return nil, err
	}

	solved, err := search.Solve(g,
		search.WithCancel(o.Cancel),
		search.WithOnDecision(o.OnDecision),
		search.WithOnDeadEnd(o.OnDeadEnd),
		search.WithOnBacktrack(o.OnBacktrack),
	)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrInfeasible):
			return nil, ErrInfeasible
		case errors.Is(err, search.ErrInterrupted):
			return nil, ErrInterrupted
		default:
			return nil, err
		}
	}

	// search stops once every budget is met and can leave cells UNKNOWN;
	// with no tents left to place, each of them is GRASS.
	movestream.FillGrass(solved)
	return solved, nil
}

// Solver memoizes a single puzzle's solved Grid across repeated NextMove
// calls — the "lazy, memoized form used by B7" spec.md §6 names.
type Solver struct {
	puzzle *tentboard.Puzzle
	solved *tentboard.Grid
}

// New returns a Solver for puzzle. Its solve is deferred to the first
// NextMove call.
func New(puzzle *tentboard.Puzzle) *Solver {
	return &Solver{puzzle: puzzle}
}

// NextMove returns the next cell to reveal given live (the external
// collaborator's partially-filled grid), solving and caching the puzzle
// on first use.
func (s *Solver) NextMove(live *tentboard.Grid, opts ...Option) (movestream.Move, bool, error) {
	if s.solved == nil {
		solved, err := Solve(s.puzzle, nil, opts...)
		if err != nil {
			return movestream.Move{}, false, err
		}
		s.solved = solved
	}
	move, ok := movestream.NextMove(s.solved, live)
	return move, ok, nil
}

// EnumerateLine re-exports line.EnumerateLine — spec.md §6's
// "exposed for testability" operation.
func EnumerateLine(length, target int, cells []tentboard.CellState, fixed map[int]bool) []line.Completion {
	return line.EnumerateLine(length, target, cells, fixed)
}

// ForcedFromCompletions re-exports line.ForcedFromCompletions.
func ForcedFromCompletions(completions []line.Completion) map[int]tentboard.CellState {
	return line.ForcedFromCompletions(completions)
}
