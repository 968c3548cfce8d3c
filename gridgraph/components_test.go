package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/gridgraph"
)

func TestComponents(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
		{1, 0, 0},
		{0, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, [][]gridgraph.Point{
		{gridgraph.Pt(0, 0), gridgraph.Pt(0, 1)},
		{gridgraph.Pt(2, 0)},
		{gridgraph.Pt(2, 2)},
	}, gg.Components())
}

func TestComponents_Connectivity(t *testing.T) {
	grid := [][]int{
		{1, 0},
		{0, 1},
	}
	gg4, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Len(t, gg4.Components(), 2)

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg8, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	comps := gg8.Components()
	require.Len(t, comps, 1)
	assert.Equal(t, []gridgraph.Point{gridgraph.Pt(0, 0), gridgraph.Pt(1, 1)}, comps[0])
}

func TestComponents_AllWater(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{0, 0}, {0, 0}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Empty(t, gg.Components())
}

func TestComponents_Threshold(t *testing.T) {
	opts := gridgraph.GridOptions{LandThreshold: 3, Conn: gridgraph.Conn4}
	gg, err := gridgraph.NewGridGraph([][]int{{3, 2, 5, 5}}, opts)
	require.NoError(t, err)
	assert.Equal(t, [][]gridgraph.Point{
		{gridgraph.Pt(0, 0)},
		{gridgraph.Pt(2, 0), gridgraph.Pt(3, 0)},
	}, gg.Components())
}
