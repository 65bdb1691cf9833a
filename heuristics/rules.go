package heuristics

import "github.com/ashrey-kulkarni/tentsolve/tentboard"

// AdjacencyExclusion: every UNKNOWN cell 8-adjacent to a placed TENT must
// be GRASS — a tent can never have a tent neighbour.
func AdjacencyExclusion(g *tentboard.Grid) (Move, bool, error) {
	size := g.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if g.At(r, c) != tentboard.Tent {
				continue
			}
			for nr := max(0, r-1); nr <= min(size-1, r+1); nr++ {
				for nc := max(0, c-1); nc <= min(size-1, c+1); nc++ {
					if nr == r && nc == c {
						continue
					}
					if g.At(nr, nc) == tentboard.Unknown {
						return Move{tentboard.Position{Row: nr, Col: nc}, tentboard.Grass}, true, nil
					}
				}
			}
		}
	}
	return Move{}, false, nil
}

// RowColSaturation: once a row or column already holds its full tent
// quota, every remaining UNKNOWN cell in that line must be GRASS.
func RowColSaturation(g *tentboard.Grid) (Move, bool, error) {
	size := g.Size()
	p := g.Puzzle()

	for r := 0; r < size; r++ {
		if g.RowTentCount[r] != p.RowTarget[r] {
			continue
		}
		for c := 0; c < size; c++ {
			if g.At(r, c) == tentboard.Unknown {
				return Move{tentboard.Position{Row: r, Col: c}, tentboard.Grass}, true, nil
			}
		}
	}

	for c := 0; c < size; c++ {
		if g.ColTentCount[c] != p.ColTarget[c] {
			continue
		}
		for r := 0; r < size; r++ {
			if g.At(r, c) == tentboard.Unknown {
				return Move{tentboard.Position{Row: r, Col: c}, tentboard.Grass}, true, nil
			}
		}
	}

	return Move{}, false, nil
}

// RowColForcing: when a line's remaining UNKNOWN cells exactly equal its
// remaining tent need, every one of those cells must be TENT.
func RowColForcing(g *tentboard.Grid) (Move, bool, error) {
	size := g.Size()
	p := g.Puzzle()

	for r := 0; r < size; r++ {
		unknowns := unknownColsInRow(g, r)
		if len(unknowns) > 0 && g.RowTentCount[r]+len(unknowns) == p.RowTarget[r] {
			return Move{tentboard.Position{Row: r, Col: unknowns[0]}, tentboard.Tent}, true, nil
		}
	}

	for c := 0; c < size; c++ {
		unknowns := unknownRowsInCol(g, c)
		if len(unknowns) > 0 && g.ColTentCount[c]+len(unknowns) == p.ColTarget[c] {
			return Move{tentboard.Position{Row: unknowns[0], Col: c}, tentboard.Tent}, true, nil
		}
	}

	return Move{}, false, nil
}

// IsolatedTree: a tree with no adjacent tent and exactly one UNKNOWN
// orthogonal neighbour forces that neighbour to TENT — it's the tree's
// only remaining way to be satisfied.
func IsolatedTree(g *tentboard.Grid) (Move, bool, error) {
	for _, tree := range g.Puzzle().Trees {
		hasTent, unknowns := scanTreeNeighbors(g, tree)
		if !hasTent && len(unknowns) == 1 {
			return Move{unknowns[0], tentboard.Tent}, true, nil
		}
	}
	return Move{}, false, nil
}

// NoMansLand: an UNKNOWN cell with no adjacent tree can never hold a
// tent — every tent must pair with a tree — so it must be GRASS.
func NoMansLand(g *tentboard.Grid) (Move, bool, error) {
	size := g.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if g.At(r, c) != tentboard.Unknown {
				continue
			}
			hasTree := false
			for _, n := range g.OrthogonalNeighbors(r, c) {
				if g.At(n.Row, n.Col) == tentboard.Tree {
					hasTree = true
					break
				}
			}
			if !hasTree {
				return Move{tentboard.Position{Row: r, Col: c}, tentboard.Grass}, true, nil
			}
		}
	}
	return Move{}, false, nil
}

// LockedCandidates: a tree whose still-legal tent spots all lie in one
// row (or column) is "locked" to that line. If a line's already-placed
// tents plus its locked trees exactly meet the line's target, every
// other UNKNOWN cell in that line must be GRASS — the locked trees have
// first claim on the remaining budget.
//
// A tree with no adjacent tent and zero legal spots proves the board
// infeasible from its current state: it can never be satisfied. See
// DESIGN.md for why this rule — rather than IsolatedTree — is where that
// check lives.
func LockedCandidates(g *tentboard.Grid) (Move, bool, error) {
	size := g.Size()
	p := g.Puzzle()

	type lock struct {
		tree                 tentboard.Position
		spots                []tentboard.Position
		lockedRow, lockedCol bool
		row, col             int
	}

	locks := make([]lock, 0, len(p.Trees))
	for _, tree := range p.Trees {
		hasTent, unknowns := scanTreeNeighbors(g, tree)
		if hasTent {
			continue
		}
		if len(unknowns) == 0 {
			return Move{}, false, ErrInfeasible
		}

		sameRow, sameCol := true, true
		for _, s := range unknowns {
			if s.Row != unknowns[0].Row {
				sameRow = false
			}
			if s.Col != unknowns[0].Col {
				sameCol = false
			}
		}
		locks = append(locks, lock{
			tree:      tree,
			spots:     unknowns,
			lockedRow: sameRow,
			lockedCol: sameCol,
			row:       unknowns[0].Row,
			col:       unknowns[0].Col,
		})
	}

	for r := 0; r < size; r++ {
		reserved := make(map[tentboard.Position]bool)
		lockedCount := 0
		for _, l := range locks {
			if l.lockedRow && l.row == r {
				lockedCount++
				for _, s := range l.spots {
					reserved[s] = true
				}
			}
		}
		if lockedCount == 0 {
			continue
		}
		if g.RowTentCount[r]+lockedCount == p.RowTarget[r] {
			for c := 0; c < size; c++ {
				pos := tentboard.Position{Row: r, Col: c}
				if g.At(r, c) == tentboard.Unknown && !reserved[pos] {
					return Move{pos, tentboard.Grass}, true, nil
				}
			}
		}
	}

	for c := 0; c < size; c++ {
		reserved := make(map[tentboard.Position]bool)
		lockedCount := 0
		for _, l := range locks {
			if l.lockedCol && l.col == c {
				lockedCount++
				for _, s := range l.spots {
					reserved[s] = true
				}
			}
		}
		if lockedCount == 0 {
			continue
		}
		if g.ColTentCount[c]+lockedCount == p.ColTarget[c] {
			for r := 0; r < size; r++ {
				pos := tentboard.Position{Row: r, Col: c}
				if g.At(r, c) == tentboard.Unknown && !reserved[pos] {
					return Move{pos, tentboard.Grass}, true, nil
				}
			}
		}
	}

	return Move{}, false, nil
}

// scanTreeNeighbors reports whether tree already has an adjacent tent,
// and if not, every orthogonal neighbour still UNKNOWN (its legal spots).
func scanTreeNeighbors(g *tentboard.Grid, tree tentboard.Position) (hasTent bool, unknowns []tentboard.Position) {
	for _, n := range g.OrthogonalNeighbors(tree.Row, tree.Col) {
		switch g.At(n.Row, n.Col) {
		case tentboard.Tent:
			return true, nil
		case tentboard.Unknown:
			unknowns = append(unknowns, n)
		}
	}
	return false, unknowns
}

func unknownColsInRow(g *tentboard.Grid, r int) []int {
	var out []int
	for c := 0; c < g.Size(); c++ {
		if g.At(r, c) == tentboard.Unknown {
			out = append(out, c)
		}
	}
	return out
}

func unknownRowsInCol(g *tentboard.Grid, c int) []int {
	var out []int
	for r := 0; r < g.Size(); r++ {
		if g.At(r, c) == tentboard.Unknown {
			out = append(out, r)
		}
	}
	return out
}

