package tentcache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashrey-kulkarni/tentsolve/tentboard"
	"github.com/ashrey-kulkarni/tentsolve/tentcache"
)

func TestCache_PutGet(t *testing.T) {
	c, err := tentcache.Open(filepath.Join(t.TempDir(), "db"))
	require.NoError(t, err)
	defer c.Close()

	p, err := tentboard.NewPuzzle(3,
		[]tentboard.Position{{Row: 0, Col: 1}},
		[]int{1, 0, 0},
		[]int{1, 0, 0},
	)
	require.NoError(t, err)

	_, found, err := c.Get(p)
	require.NoError(t, err)
	assert.False(t, found, "expected cache miss")

	g := tentboard.NewGrid(p)
	require.True(t, g.Set(0, 0, tentboard.Tent))
	require.NoError(t, c.Put(p, g))

	cached, found, err := c.Get(p)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, tentboard.Tent, cached.At(0, 0))

	assert.NotEmpty(t, c.DiskSize())
}
