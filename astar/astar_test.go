package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// panicErr runs fn and returns the error it panicked with, or nil.
func panicErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

type pt struct{ x, y int }

func manhattan(a, b pt) int64 {
	dx, dy := a.x-b.x, a.y-b.y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return int64(dx + dy)
}

// plane is an unbounded 4-connected unit grid with blocked cells.
func plane(blocked ...pt) core.Graph[pt] {
	walls := make(map[pt]bool, len(blocked))
	for _, b := range blocked {
		walls[b] = true
	}
	return core.GraphFunc[pt](func(p pt) []core.Edge[pt] {
		if walls[p] {
			return nil
		}
		var out []core.Edge[pt]
		for _, d := range []pt{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			q := pt{p.x + d.x, p.y + d.y}
			if !walls[q] {
				out = append(out, core.NewEdge(1, p, q))
			}
		}
		return out
	})
}

// reverseCosts returns the exact cost from every node to target.
func reverseCosts(g *core.Adjacency[int], n int, target int) map[int]int64 {
	rev := core.NewAdjacency[int]()
	for u := 0; u < n; u++ {
		rev.AddNode(u)
		for _, e := range g.Neighbors(u) {
			rev.AddEdge(e.Dest, e.Source, e.Weight)
		}
	}
	return dijkstra.Distances[int](rev, target)
}

func randomGraph(seed int64, n, edges int) *core.Adjacency[int] {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewAdjacency[int]()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 0; i < edges; i++ {
		g.AddEdge(rng.Intn(n), rng.Intn(n), rng.Int63n(15))
	}
	return g
}

func TestPath_Direct(t *testing.T) {
	start, goal := pt{1, 1}, pt{3, 4}
	path, ok := astar.Path(plane(), start, core.Is(goal), func(p pt) int64 { return manhattan(p, goal) })
	require.True(t, ok)
	assert.Len(t, path, 5)
	assert.Equal(t, start, path[0].Source)
	assert.Equal(t, goal, path[len(path)-1].Dest)
	assert.NoError(t, core.Validate(start, core.Is(goal), path))
}

func TestPath_Wall(t *testing.T) {
	g := plane(pt{0, 3}, pt{1, 3}, pt{2, 3}, pt{3, 3}, pt{4, 3})
	start, goal := pt{1, 1}, pt{3, 4}
	path, ok := astar.Path(g, start, core.Is(goal), func(p pt) int64 { return manhattan(p, goal) })
	require.True(t, ok)
	assert.Len(t, path, 9)
	assert.Equal(t, int64(9), core.Cost(path))
	assert.NoError(t, core.Validate(start, core.Is(goal), path))
}

func TestPath_StartIsGoal(t *testing.T) {
	path, ok := astar.Path(plane(), pt{0, 0}, core.Is(pt{0, 0}), nil)
	require.True(t, ok)
	assert.Empty(t, path)
}

func TestPath_Unreachable(t *testing.T) {
	g := core.NewAdjacency[string]()
	g.AddEdge("A", "B", 1)
	g.AddNode("C")

	path, ok := astar.Path[string](g, "A", core.Is("C"), astar.Zero[string]())
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestPath_AgreesWithDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(seed, 60, 250)
		for _, target := range []int{5, 17, 33, 59} {
			djk, okD := dijkstra.Path[int](g, 0, core.Is(target))
			exact := reverseCosts(g, 60, target)

			heuristics := map[string]core.Heuristic[int]{
				"zero":  nil,
				"exact": func(n int) int64 { return exact[n] },
				"half":  func(n int) int64 { return exact[n] / 2 },
				// admissible but inconsistent: exact on even nodes, zero on odd
				"patchy": func(n int) int64 {
					if n%2 == 0 {
						return exact[n]
					}
					return 0
				},
			}
			for name, h := range heuristics {
				path, ok := astar.Path[int](g, 0, core.Is(target), h)
				require.Equal(t, okD, ok, "seed %d target %d h=%s", seed, target, name)
				if !ok {
					continue
				}
				assert.Equal(t, core.Cost(djk), core.Cost(path), "seed %d target %d h=%s", seed, target, name)
				assert.NoError(t, core.Validate(0, core.Is(target), path))
			}
		}
	}
}

func TestPath_InadmissibleMayBeSuboptimal(t *testing.T) {
	// S→A(1)→G(10) costs 11; S→B(5)→G(1) costs 6.
	g := core.NewAdjacency[string]()
	g.AddEdge("S", "A", 1)
	g.AddEdge("A", "G", 10)
	g.AddEdge("S", "B", 5)
	g.AddEdge("B", "G", 1)

	overestimate := func(n string) int64 {
		if n == "B" {
			return 100
		}
		return 0
	}
	path, ok := astar.Path[string](g, "S", core.Is("G"), overestimate)
	require.True(t, ok)
	assert.NoError(t, core.Validate("S", core.Is("G"), path))
	assert.Equal(t, int64(11), core.Cost(path), "overestimating B hides the cheaper route")

	path, ok = astar.Path[string](g, "S", core.Is("G"), nil)
	require.True(t, ok)
	assert.Equal(t, int64(6), core.Cost(path))
}

func TestPath_InformedHeuristicSettlesFewer(t *testing.T) {
	start, goal := pt{0, 0}, pt{20, 0}
	g := plane()
	// bound the plane so the zero-heuristic run terminates
	bounded := core.GraphFunc[pt](func(p pt) []core.Edge[pt] {
		var out []core.Edge[pt]
		for _, e := range g.Neighbors(p) {
			if e.Dest.x >= -30 && e.Dest.x <= 30 && e.Dest.y >= -30 && e.Dest.y <= 30 {
				out = append(out, e)
			}
		}
		return out
	})

	count := func(h core.Heuristic[pt]) int {
		n := 0
		_, ok := astar.Path[pt](bounded, start, core.Is(goal), h,
			astar.WithOnSettle(func(pt, int64, int64) { n++ }))
		require.True(t, ok)
		return n
	}
	informed := count(func(p pt) int64 { return manhattan(p, goal) })
	blind := count(nil)
	assert.Less(t, informed, blind)
}

func TestPath_NegativeWeightPanics(t *testing.T) {
	g := core.NewAdjacency[int]()
	g.AddEdge(0, 1, -1)
	err := panicErr(func() { astar.Path[int](g, 0, core.Is(1), nil) })
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestPath_SourceMismatchPanics(t *testing.T) {
	g := core.GraphFunc[int](func(n int) []core.Edge[int] {
		return []core.Edge[int]{core.NewEdge(1, n+1, n+2)}
	})
	err := panicErr(func() { astar.Path[int](g, 0, core.Is(5), nil) })
	assert.ErrorIs(t, err, core.ErrSourceMismatch)
}
