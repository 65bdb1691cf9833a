package movestream

import "github.com/ashrey-kulkarni/tentsolve/tentboard"

// Move is a single cell reveal: Value is always Tent or Grass.
type Move struct {
	Pos          tentboard.Position
	Value        tentboard.CellState
	CellsScanned int
}

// NextMove scans solved (the cached, fully-resolved grid) against live
// (the external collaborator's partially-filled grid) and returns the
// next cell to reveal, or ok=false if live already matches solved
// everywhere it's determined.
//
// Pass 1 (row-major): the first cell live still has UNKNOWN where solved
// has TENT.
// Pass 2 (row-major): the first cell live still has UNKNOWN at all —
// emitted as GRASS, since every TENT has already been accounted for by
// pass 1.
//
// CellsScanned is advisory and strictly increasing across both passes.
func NextMove(solved, live *tentboard.Grid) (Move, bool) {
	size := live.Size()
	scanned := 0

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			scanned++
			if live.At(r, c) == tentboard.Unknown && solved.At(r, c) == tentboard.Tent {
				return Move{tentboard.Position{Row: r, Col: c}, tentboard.Tent, scanned}, true
			}
		}
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			scanned++
			if live.At(r, c) == tentboard.Unknown {
				return Move{tentboard.Position{Row: r, Col: c}, tentboard.Grass, scanned}, true
			}
		}
	}

	return Move{}, false
}

// FillGrass mutates g in place, setting every remaining UNKNOWN cell to
// GRASS. It is NextMove's pass 2 rule applied eagerly to an already
// fully tent-resolved grid — the case B6's search leaves behind once
// every row/column budget is exhausted, since search itself never
// visits a cell beyond what satisfying those budgets requires (see
// search's own design note). A caller displaying a solved Grid wants
// every cell final; FillGrass makes that true without another solve.
func FillGrass(g *tentboard.Grid) {
	size := g.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if g.At(r, c) == tentboard.Unknown {
				g.Set(r, c, tentboard.Grass)
			}
		}
	}
}
