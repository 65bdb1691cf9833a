package heuristics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashrey-kulkarni/tentsolve/heuristics"
	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

func mustPuzzle(t *testing.T, size int, trees []tentboard.Position, rowTarget, colTarget []int) *tentboard.Puzzle {
	t.Helper()
	p, err := tentboard.NewPuzzle(size, trees, rowTarget, colTarget)
	require.NoError(t, err)
	return p
}

func mustSet(t *testing.T, g *tentboard.Grid, r, c int, v tentboard.CellState) {
	t.Helper()
	require.True(t, g.Set(r, c, v), "Set(%d,%d,%v) rejected", r, c, v)
}

func TestAdjacencyExclusion(t *testing.T) {
	p := mustPuzzle(t, 3, []tentboard.Position{{Row: 0, Col: 0}}, []int{0, 1, 0}, []int{1, 0, 0})
	g := tentboard.NewGrid(p)
	mustSet(t, g, 1, 0, tentboard.Tent)

	move, ok, err := heuristics.AdjacencyExclusion(g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tentboard.Grass, move.Value)
}

func TestRowColSaturation(t *testing.T) {
	p := mustPuzzle(t, 3, []tentboard.Position{{Row: 0, Col: 0}}, []int{1, 0, 0}, []int{0, 0, 1})
	g := tentboard.NewGrid(p)
	mustSet(t, g, 0, 2, tentboard.Tent)

	move, ok, err := heuristics.RowColSaturation(g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tentboard.Position{Row: 0, Col: 1}, move.Pos)
	assert.Equal(t, tentboard.Grass, move.Value)
}

func TestRowColForcing(t *testing.T) {
	// Row 0 needs 2 tents and has exactly 2 UNKNOWN cells remaining.
	p := mustPuzzle(t, 4,
		[]tentboard.Position{{Row: 0, Col: 0}, {Row: 0, Col: 3}},
		[]int{2, 0, 0, 0},
		[]int{1, 1, 0, 0},
	)
	g := tentboard.NewGrid(p)

	move, ok, err := heuristics.RowColForcing(g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tentboard.Tent, move.Value)
}

func TestIsolatedTree(t *testing.T) {
	p := mustPuzzle(t, 2, []tentboard.Position{{Row: 0, Col: 0}}, []int{1, 0}, []int{1, 0})
	g := tentboard.NewGrid(p)
	mustSet(t, g, 0, 1, tentboard.Grass)

	move, ok, err := heuristics.IsolatedTree(g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tentboard.Position{Row: 1, Col: 0}, move.Pos)
	assert.Equal(t, tentboard.Tent, move.Value)
}

func TestNoMansLand(t *testing.T) {
	p := mustPuzzle(t, 3, []tentboard.Position{{Row: 0, Col: 0}}, []int{1, 0, 0}, []int{1, 0, 0})
	g := tentboard.NewGrid(p)

	move, ok, err := heuristics.NoMansLand(g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, tentboard.Position{Row: 1, Col: 0}, move.Pos, "forced GRASS on a tree-adjacent cell")
	assert.NotEqual(t, tentboard.Position{Row: 0, Col: 1}, move.Pos, "forced GRASS on a tree-adjacent cell")
	assert.Equal(t, tentboard.Grass, move.Value)
}

func TestLockedCandidates_Infeasible(t *testing.T) {
	// A corner tree whose two orthogonal neighbours are both GRASS,
	// leaving zero legal spots and no adjacent tent.
	p := mustPuzzle(t, 2, []tentboard.Position{{Row: 0, Col: 0}}, []int{1, 0}, []int{1, 0})
	g := tentboard.NewGrid(p)
	mustSet(t, g, 0, 1, tentboard.Grass)
	mustSet(t, g, 1, 0, tentboard.Grass)

	_, _, err := heuristics.LockedCandidates(g)
	assert.ErrorIs(t, err, heuristics.ErrInfeasible)
}
