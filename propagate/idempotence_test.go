package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashrey-kulkarni/tentsolve/heuristics"
	"github.com/ashrey-kulkarni/tentsolve/propagate"
	"github.com/ashrey-kulkarni/tentsolve/region"
	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

// TestProperty_PropagationIdempotentAtFixedPoint is spec §8's B3/B4
// idempotence property: once Run reaches a fixed point, running it
// again must commit nothing and leave the Grid unchanged.
func TestProperty_PropagationIdempotentAtFixedPoint(t *testing.T) {
	p, err := tentboard.NewPuzzle(3,
		[]tentboard.Position{{Row: 0, Col: 1}},
		[]int{1, 0, 0},
		[]int{1, 0, 0},
	)
	require.NoError(t, err)
	g := tentboard.NewGrid(p)

	require.NoError(t, propagate.Run(g))
	before := g.Clone()

	commits := 0
	err = propagate.Run(g, propagate.WithOnCommit(func(_ heuristics.Move) { commits++ }))
	require.NoError(t, err)
	assert.Equal(t, 0, commits, "re-running propagation at a fixed point must commit nothing")
	assert.True(t, before.Equal(g))
}

// TestProperty_RegionApplyIdempotentAtFixedPoint checks the same
// property directly against B4's Apply, one level below Run's
// heuristics-then-region composition.
func TestProperty_RegionApplyIdempotentAtFixedPoint(t *testing.T) {
	p, err := tentboard.NewPuzzle(3,
		[]tentboard.Position{{Row: 0, Col: 1}},
		[]int{1, 0, 0},
		[]int{1, 0, 0},
	)
	require.NoError(t, err)
	g := tentboard.NewGrid(p)

	for i := 0; i < 9; i++ {
		changed, err := region.Apply(g)
		require.NoError(t, err)
		if !changed {
			break
		}
	}

	changed, err := region.Apply(g)
	require.NoError(t, err)
	assert.False(t, changed, "Apply at a fixed point must report no change")
}
