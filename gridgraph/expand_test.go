package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/gridgraph"
)

// A single water cell separates two land cells.
func TestExpandIsland_BasicLine(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.Len(t, gg.Components(), 2)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cost)
	assert.Equal(t, []gridgraph.Point{gridgraph.Pt(0, 0), gridgraph.Pt(1, 0), gridgraph.Pt(2, 0)}, path)
}

func TestExpandIsland_MediumRow(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0, 0, 0, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost)
	assert.Len(t, path, 5)
}

// Land cells along the way are free, so the route prefers them.
func TestExpandIsland_PrefersLand(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 1, 1, 0},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.Len(t, gg.Components(), 3)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cost)
	assert.Equal(t, gridgraph.Pt(0, 0), path[0])
	assert.Equal(t, gridgraph.Pt(4, 0), path[len(path)-1])
}

func TestExpandIsland_SameComponent(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cost)
	assert.Len(t, path, 1)
}

func TestExpandIsland_BadIndex(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	_, _, err = gg.ExpandIsland(0, 2)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = gg.ExpandIsland(-1, 0)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}
