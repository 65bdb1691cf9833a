package clicommon_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashrey-kulkarni/tentsolve/cmd/tentsolve/internal/clicommon"
	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

func TestRenderGrid(t *testing.T) {
	p, err := tentboard.NewPuzzle(2,
		[]tentboard.Position{{Row: 0, Col: 0}},
		[]int{0, 1},
		[]int{0, 1},
	)
	require.NoError(t, err)

	g := tentboard.NewGrid(p)
	require.True(t, g.Set(1, 1, tentboard.Tent))

	var buf bytes.Buffer
	clicommon.RenderGrid(&buf, g)

	require.Contains(t, buf.String(), "T")
	require.Contains(t, buf.String(), "A")
}

func TestFormatMove(t *testing.T) {
	s := clicommon.FormatMove(tentboard.Position{Row: 2, Col: 3}, tentboard.Tent)
	require.Equal(t, "(2,3) = A", s)
}
