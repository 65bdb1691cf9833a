package region

import (
	"errors"

	"github.com/ashrey-kulkarni/tentsolve/line"
	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

// ErrInfeasible is returned when a restricted line-enumeration pass finds
// a row or column with zero legal completions: the Grid has no solution
// from its current state.
var ErrInfeasible = errors.New("region: board has no legal completion")

// Apply decomposes g into regions, then runs the line enumerator on the
// rows and columns each region touches (every row and column, when the
// grid has at most one region — spec's single-component shortcut),
// committing every forced cell it finds via Grid.Set.
//
// Apply reports whether it committed at least one cell, and a non-nil
// error only when it proves the grid infeasible.
func Apply(g *tentboard.Grid) (bool, error) {
	size := g.Size()
	regions := Decompose(g)

	var rows, cols map[int]bool
	if len(regions) <= 1 {
		rows, cols = make(map[int]bool), make(map[int]bool)
		for i := 0; i < size; i++ {
			rows[i] = true
			cols[i] = true
		}
	} else {
		rows, cols = make(map[int]bool), make(map[int]bool)
		for _, rgn := range regions {
			for r := range rgn.Rows {
				rows[r] = true
			}
			for c := range rgn.Cols {
				cols[c] = true
			}
		}
	}

	changed := false

	for r := range rows {
		committed, err := applyLine(g.Row(r), g.Puzzle().RowTarget[r], func(i int, v tentboard.CellState) bool {
			return g.Set(r, i, v)
		})
		if err != nil {
			return changed, err
		}
		changed = changed || committed
	}

	for c := range cols {
		committed, err := applyLine(g.Column(c), g.Puzzle().ColTarget[c], func(i int, v tentboard.CellState) bool {
			return g.Set(i, c, v)
		})
		if err != nil {
			return changed, err
		}
		changed = changed || committed
	}

	return changed, nil
}

// applyLine runs the line enumerator on one row or column snapshot and
// commits every forced cell through set. set takes the index within the
// line and the forced value.
func applyLine(cells []tentboard.CellState, target int, set func(i int, v tentboard.CellState) bool) (bool, error) {
	fixed := make(map[int]bool)
	for i, v := range cells {
		if v == tentboard.Tent || v == tentboard.Grass {
			fixed[i] = true
		}
	}

	completions := line.EnumerateLine(len(cells), target, cells, fixed)
	if len(completions) == 0 {
		return false, ErrInfeasible
	}

	forced := line.ForcedFromCompletions(completions)
	committed := false
	for i, v := range forced {
		if cells[i] != tentboard.Unknown {
			continue
		}
		if !set(i, v) {
			return committed, ErrInfeasible
		}
		committed = true
	}

	return committed, nil
}
