package tents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

// verifySolutionInvariants checks the spec §8 invariant set that every
// solve result must satisfy: one adjacent TENT per TREE (and vice
// versa, giving a bijective pairing), no two 8-adjacent TENTs, and
// row/column tent counts matching the puzzle's targets.
func verifySolutionInvariants(t *testing.T, p *tentboard.Puzzle, g *tentboard.Grid) {
	t.Helper()

	for r := 0; r < p.Size; r++ {
		assert.Equal(t, p.RowTarget[r], g.RowTentCount[r], "row %d tent count", r)
	}
	for c := 0; c < p.Size; c++ {
		assert.Equal(t, p.ColTarget[c], g.ColTentCount[c], "col %d tent count", c)
	}

	totalTents := 0
	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			if g.At(r, c) != tentboard.Tent {
				continue
			}
			totalTents++
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if p.InBounds(nr, nc) {
						assert.NotEqual(t, tentboard.Tent, g.At(nr, nc), "tents at (%d,%d) and (%d,%d) are 8-adjacent", r, c, nr, nc)
					}
				}
			}

			adjacentTrees := 0
			for _, n := range g.OrthogonalNeighbors(r, c) {
				if g.At(n.Row, n.Col) == tentboard.Tree {
					adjacentTrees++
				}
			}
			assert.Equal(t, 1, adjacentTrees, "tent at (%d,%d) must have exactly one adjacent tree", r, c)
		}
	}
	assert.Equal(t, len(p.Trees), totalTents, "tent count must equal tree count")

	for _, tree := range p.Trees {
		adjacentTents := 0
		for _, n := range g.OrthogonalNeighbors(tree.Row, tree.Col) {
			if g.At(n.Row, n.Col) == tentboard.Tent {
				adjacentTents++
			}
		}
		assert.Equal(t, 1, adjacentTents, "tree at (%d,%d) must have exactly one adjacent tent", tree.Row, tree.Col)
	}
}
