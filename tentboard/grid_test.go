package tentboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

func samplePuzzle(t *testing.T) *tentboard.Puzzle {
	t.Helper()
	// 3x3 with a tree at (0,1); row targets [1,0,0], col targets [1,0,0].
	p, err := tentboard.NewPuzzle(3, []tentboard.Position{{Row: 0, Col: 1}}, []int{1, 0, 0}, []int{1, 0, 0})
	require.NoError(t, err)
	return p
}

func TestNewPuzzle_Valid(t *testing.T) {
	p := samplePuzzle(t)
	assert.True(t, p.IsTree(0, 1))
	assert.False(t, p.IsTree(0, 0))
}

func TestNewPuzzle_Invariants(t *testing.T) {
	cases := []struct {
		name      string
		size      int
		trees     []tentboard.Position
		rowTarget []int
		colTarget []int
		wantErr   error
	}{
		{"non-positive size", 0, nil, nil, nil, tentboard.ErrNonPositiveSize},
		{"bad target length", 3, nil, []int{0, 0}, []int{0, 0, 0}, tentboard.ErrTargetLength},
		{"tree out of bounds", 3, []tentboard.Position{{Row: 5, Col: 0}}, []int{1, 0, 0}, []int{1, 0, 0}, tentboard.ErrTreeOutOfBounds},
		{"duplicate tree", 3, []tentboard.Position{{Row: 0, Col: 0}, {Row: 0, Col: 0}}, []int{2, 0, 0}, []int{2, 0, 0}, tentboard.ErrDuplicateTree},
		{"negative target", 3, nil, []int{-1, 0, 0}, []int{0, 0, 0}, tentboard.ErrNegativeTarget},
		{"sum mismatch", 3, []tentboard.Position{{Row: 0, Col: 0}}, []int{1, 0, 0}, []int{0, 0, 0}, tentboard.ErrTargetSumMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tentboard.NewPuzzle(tc.size, tc.trees, tc.rowTarget, tc.colTarget)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGrid_SetInvariants(t *testing.T) {
	p := samplePuzzle(t)
	g := tentboard.NewGrid(p)

	// Tree cells can never be overwritten.
	assert.False(t, g.Set(0, 1, tentboard.Grass))

	// Placing a tent at (0,0) is legal: row/col budgets are 1, no adjacent tent.
	require.True(t, g.Set(0, 0, tentboard.Tent))
	assert.Equal(t, 1, g.RowTentCount[0])
	assert.Equal(t, 1, g.ColTentCount[0])

	// Row 0's budget is now exhausted; a second tent in row 0 must be rejected.
	assert.False(t, g.Set(0, 2, tentboard.Tent))

	// Idempotent re-set of the same value succeeds without changing counts.
	assert.True(t, g.Set(0, 0, tentboard.Tent))
	assert.Equal(t, 1, g.RowTentCount[0])
}

func TestGrid_AdjacencyRejected(t *testing.T) {
	// 3x3, two trees, wide-open targets so adjacency is the only blocker.
	p, err := tentboard.NewPuzzle(3, []tentboard.Position{{Row: 0, Col: 0}, {Row: 2, Col: 2}}, []int{1, 1, 0}, []int{0, 1, 1})
	require.NoError(t, err)

	g := tentboard.NewGrid(p)
	require.True(t, g.Set(0, 1, tentboard.Tent))
	// (1,2) is diagonally adjacent to (0,1) — must be rejected.
	assert.False(t, g.Set(1, 2, tentboard.Tent))
}

func TestGrid_Clone(t *testing.T) {
	p := samplePuzzle(t)
	g := tentboard.NewGrid(p)
	g.Set(0, 0, tentboard.Tent)

	clone := g.Clone()
	assert.True(t, g.Equal(clone))

	clone.Set(0, 0, tentboard.Grass)
	assert.False(t, g.Equal(clone))
	assert.Equal(t, tentboard.Tent, g.At(0, 0))
}
