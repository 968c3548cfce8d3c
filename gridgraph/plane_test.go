package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/gridgraph"
)

func manhattanTo(goal gridgraph.Point) core.Heuristic[gridgraph.Point] {
	return func(p gridgraph.Point) int64 { return int64(goal.Sub(p).GridLen()) }
}

func TestPlane_Direct(t *testing.T) {
	pl := gridgraph.NewPlane()
	start, goal := gridgraph.Pt(1, 1), gridgraph.Pt(3, 4)

	nodes, ok := bfs.Path[gridgraph.Point](pl, start, core.Is(goal))
	require.True(t, ok)
	assert.Len(t, nodes, 6)
	assert.Equal(t, start, nodes[0])
	assert.Equal(t, goal, nodes[len(nodes)-1])

	edges, ok := dijkstra.Path[gridgraph.Point](pl, start, core.Is(goal))
	require.True(t, ok)
	assert.Len(t, edges, 5)
	assert.NoError(t, core.Validate(start, core.Is(goal), edges))

	edges, ok = astar.Path[gridgraph.Point](pl, start, core.Is(goal), manhattanTo(goal))
	require.True(t, ok)
	assert.Len(t, edges, 5)
	assert.NoError(t, core.Validate(start, core.Is(goal), edges))
}

func TestPlane_Wall(t *testing.T) {
	pl := gridgraph.NewPlane(
		gridgraph.Pt(0, 3), gridgraph.Pt(1, 3), gridgraph.Pt(2, 3), gridgraph.Pt(3, 3), gridgraph.Pt(4, 3),
	)
	start, goal := gridgraph.Pt(1, 1), gridgraph.Pt(3, 4)

	nodes, ok := bfs.Path[gridgraph.Point](pl, start, core.Is(goal))
	require.True(t, ok)
	assert.Len(t, nodes, 10)
	assert.Equal(t, start, nodes[0])
	assert.Equal(t, goal, nodes[len(nodes)-1])

	edges, ok := dijkstra.Path[gridgraph.Point](pl, start, core.Is(goal))
	require.True(t, ok)
	assert.Len(t, edges, 9)
	assert.NoError(t, core.Validate(start, core.Is(goal), edges))

	edges, ok = astar.Path[gridgraph.Point](pl, start, core.Is(goal), manhattanTo(goal))
	require.True(t, ok)
	assert.Len(t, edges, 9)
	assert.NoError(t, core.Validate(start, core.Is(goal), edges))
}

// A small enclosed room: every reachable cell and its distance is known.
func TestPlane_Room(t *testing.T) {
	pl := gridgraph.NewPlane(
		gridgraph.Pt(1, 0), gridgraph.Pt(2, 0),
		gridgraph.Pt(0, 1), gridgraph.Pt(3, 1), gridgraph.Pt(4, 1),
		gridgraph.Pt(0, 2), gridgraph.Pt(2, 2), gridgraph.Pt(5, 2),
		gridgraph.Pt(0, 3), gridgraph.Pt(4, 3),
		gridgraph.Pt(1, 4), gridgraph.Pt(2, 4), gridgraph.Pt(3, 4),
	)
	start, farthest := gridgraph.Pt(2, 3), gridgraph.Pt(2, 1)
	want := map[gridgraph.Point]int{
		gridgraph.Pt(1, 1): 3, gridgraph.Pt(2, 1): 4, gridgraph.Pt(1, 2): 2, gridgraph.Pt(3, 2): 2,
		gridgraph.Pt(4, 2): 3, gridgraph.Pt(1, 3): 1, gridgraph.Pt(2, 3): 0, gridgraph.Pt(3, 3): 1,
	}

	bfsRoutes := bfs.All[gridgraph.Point](pl, start)
	got := make(map[gridgraph.Point]int, len(bfsRoutes))
	for p, route := range bfsRoutes {
		got[p] = len(route) - 1
	}
	assert.Equal(t, want, got)

	djkRoutes := dijkstra.All[gridgraph.Point](pl, start)
	got = make(map[gridgraph.Point]int, len(djkRoutes))
	for p, route := range djkRoutes {
		got[p] = int(core.Cost(route))
	}
	assert.Equal(t, want, got)

	// only one route reaches the far corner, so Path and All agree on it
	route, ok := bfs.Path[gridgraph.Point](pl, start, core.Is(farthest))
	require.True(t, ok)
	assert.Equal(t, bfsRoutes[farthest], route)
}

func TestPlane_BlockedStart(t *testing.T) {
	pl := gridgraph.NewPlane(gridgraph.Origin)
	assert.True(t, pl.Blocked(gridgraph.Origin))
	assert.Empty(t, pl.Neighbors(gridgraph.Origin))

	_, ok := bfs.Path[gridgraph.Point](pl, gridgraph.Origin, core.Is(gridgraph.Pt(1, 0)))
	assert.False(t, ok)
}
