package search

import "github.com/ashrey-kulkarni/tentsolve/tentboard"

// engine holds all search data: the working grid, the current option
// set, and nothing else — every other piece of state (the remaining-tree
// list, the undo stack for the branch in progress) is threaded through
// decide's call stack rather than stored here, since it's scoped to one
// recursion path rather than the whole search.
type engine struct {
	grid *tentboard.Grid
	opts Options
}

// Solve runs the B6 backtracking search on a clone of g and, on success,
// returns that clone with every tree paired and every row/column budget
// met. Cells that no placement touched can still be UNKNOWN. g itself is
// never mutated.
func Solve(g *tentboard.Grid, opts ...Option) (*tentboard.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	work := g.Clone()
	e := &engine{grid: work, opts: o}

	remaining := unsatisfiedTrees(work)
	ok, err := e.decide(remaining)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInfeasible
	}
	return work, nil
}

// decide is the recursive core: pick the remaining tree with the
// smallest domain (MRV), branch over its domain in N/S/W/E order, and
// recurse. An empty remaining list succeeds iff every row/column budget
// is exhausted.
func (e *engine) decide(remaining []tentboard.Position) (bool, error) {
	select {
	case <-e.opts.Cancel.Done():
		return false, ErrInterrupted
	default:
	}

	if len(remaining) == 0 {
		return e.allBudgetsExhausted(), nil
	}

	idx, domain := e.selectMRV(remaining)
	tree := remaining[idx]
	e.opts.OnDecision(tree, len(domain))

	if len(domain) == 0 {
		e.opts.OnDeadEnd(tree)
		return false, nil
	}

	rest := dropAt(remaining, idx)

	for _, cand := range domain {
		undo := e.place(cand)
		next := dropSatisfied(e.grid, rest)

		ok, err := e.decide(next)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}

		e.undo(cand, undo)
		e.opts.OnBacktrack(tree)
	}

	return false, nil
}

// selectMRV returns the index (within remaining) of the tree with the
// fewest legal tent spots, and that domain, breaking ties by the earlier
// index (the order unsatisfiedTrees produced: Puzzle.Trees order).
func (e *engine) selectMRV(remaining []tentboard.Position) (int, []tentboard.Position) {
	bestIdx := 0
	bestDomain := e.domain(remaining[0])
	for i := 1; i < len(remaining); i++ {
		dom := e.domain(remaining[i])
		if len(dom) < len(bestDomain) {
			bestIdx, bestDomain = i, dom
			if len(dom) == 0 {
				break
			}
		}
	}
	return bestIdx, bestDomain
}

// domain returns tree's legal tent spots: orthogonal neighbours (N, S,
// W, E order) that are UNKNOWN and pass both the 8-adjacency and the
// row/column budget checks on the current grid.
func (e *engine) domain(tree tentboard.Position) []tentboard.Position {
	var out []tentboard.Position
	for _, n := range e.grid.OrthogonalNeighbors(tree.Row, tree.Col) {
		if e.grid.CanPlaceTent(n.Row, n.Col) {
			out = append(out, n)
		}
	}
	return out
}

// place commits a tent at pos and marks every still-UNKNOWN cell in its
// 8-neighbourhood as GRASS (forward checking), returning the list of
// cells it changed so the caller can undo them on backtrack.
func (e *engine) place(pos tentboard.Position) []tentboard.Position {
	e.grid.Set(pos.Row, pos.Col, tentboard.Tent)

	var changed []tentboard.Position
	size := e.grid.Size()
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := pos.Row+dr, pos.Col+dc
			if nr < 0 || nr >= size || nc < 0 || nc >= size {
				continue
			}
			if e.grid.At(nr, nc) == tentboard.Unknown {
				e.grid.Set(nr, nc, tentboard.Grass)
				changed = append(changed, tentboard.Position{Row: nr, Col: nc})
			}
		}
	}
	return changed
}

// undo reverses place: every recorded GRASS goes back to UNKNOWN, then
// the tent cell itself.
func (e *engine) undo(pos tentboard.Position, changed []tentboard.Position) {
	for _, c := range changed {
		e.grid.Set(c.Row, c.Col, tentboard.Unknown)
	}
	e.grid.Set(pos.Row, pos.Col, tentboard.Unknown)
}

// allBudgetsExhausted reports whether every row and column has placed
// exactly its target number of tents — the solver's success condition
// once every tree has an adjacent tent.
func (e *engine) allBudgetsExhausted() bool {
	size := e.grid.Size()
	for i := 0; i < size; i++ {
		if e.grid.RowRemaining(i) != 0 || e.grid.ColRemaining(i) != 0 {
			return false
		}
	}
	return true
}

// unsatisfiedTrees returns every Puzzle tree that has no adjacent TENT
// yet, in the Puzzle's own (caller-supplied) tree order.
func unsatisfiedTrees(g *tentboard.Grid) []tentboard.Position {
	var out []tentboard.Position
	for _, t := range g.Puzzle().Trees {
		if !treeSatisfied(g, t) {
			out = append(out, t)
		}
	}
	return out
}

// dropSatisfied filters remaining to the trees still lacking an adjacent
// tent — a tent placed for one tree can incidentally satisfy another
// whose neighbourhood overlaps it.
func dropSatisfied(g *tentboard.Grid, remaining []tentboard.Position) []tentboard.Position {
	var out []tentboard.Position
	for _, t := range remaining {
		if !treeSatisfied(g, t) {
			out = append(out, t)
		}
	}
	return out
}

func treeSatisfied(g *tentboard.Grid, tree tentboard.Position) bool {
	for _, n := range g.OrthogonalNeighbors(tree.Row, tree.Col) {
		if g.At(n.Row, n.Col) == tentboard.Tent {
			return true
		}
	}
	return false
}

func dropAt(positions []tentboard.Position, idx int) []tentboard.Position {
	out := make([]tentboard.Position, 0, len(positions)-1)
	out = append(out, positions[:idx]...)
	out = append(out, positions[idx+1:]...)
	return out
}
