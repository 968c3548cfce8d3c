package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/katalvlaran/pathfind/internal/config"
)

var (
	errNoPath      = errors.New("no path")
	errUnknownAlgo = errors.New("unknown algorithm")
	errOffGrid     = errors.New("point is outside the grid or on a wall")
)

// query is one fully specified search.
type query struct {
	grid  string
	algo  string
	start string
	goal  string
	tile  int
	conn  gridgraph.Connectivity
}

// result is what a search produced.
type result struct {
	grid     *gridgraph.GridGraph
	start    gridgraph.Point
	goal     gridgraph.Point
	path     []gridgraph.Point
	cost     int64
	expanded int
	elapsed  time.Duration
}

// steps is the number of moves along the path.
func (r result) steps() int { return len(r.path) - 1 }

func loadGrid(path string, tile int, conn gridgraph.Connectivity) (*gridgraph.GridGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gg, err := gridgraph.Parse(f, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if tile > 1 {
		return gg.Tile(tile)
	}
	return gg, nil
}

// endpoint resolves a command-line point, falling back to a marker glyph and
// then to a corner of the grid.
func endpoint(gg *gridgraph.GridGraph, flag string, marker byte, corner gridgraph.Point) (gridgraph.Point, error) {
	p := corner
	if m, ok := gg.Marker(marker); ok {
		p = m
	}
	if flag != "" {
		var err error
		if p, err = gridgraph.ParsePoint(flag); err != nil {
			return gridgraph.Point{}, err
		}
	}
	if !gg.Passable(p) {
		return gridgraph.Point{}, fmt.Errorf("%w: %s", errOffGrid, p)
	}
	return p, nil
}

func runQuery(q query, log *zap.Logger) (result, error) {
	gg, err := loadGrid(q.grid, q.tile, q.conn)
	if err != nil {
		return result{}, err
	}
	start, err := endpoint(gg, q.start, 'S', gg.TopLeft())
	if err != nil {
		return result{}, fmt.Errorf("start: %w", err)
	}
	goal, err := endpoint(gg, q.goal, 'E', gg.BottomRight())
	if err != nil {
		return result{}, fmt.Errorf("goal: %w", err)
	}

	res := result{grid: gg, start: start, goal: goal}
	began := time.Now()
	if err := search(gg, q.algo, &res, log); err != nil {
		return result{}, err
	}
	res.elapsed = time.Since(began)

	log.Info("search finished",
		zap.String("algo", q.algo),
		zap.String("grid", q.grid),
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Int("steps", res.steps()),
		zap.Int64("cost", res.cost),
		zap.Int("expanded", res.expanded),
		zap.Duration("elapsed", res.elapsed),
	)
	return res, nil
}

// search fills res.path, res.cost and res.expanded.
func search(gg *gridgraph.GridGraph, algo string, res *result, log *zap.Logger) error {
	goal := core.Is(res.goal)
	trace := func(p gridgraph.Point, fields ...zap.Field) {
		res.expanded++
		if ce := log.Check(zapcore.DebugLevel, "settled"); ce != nil {
			ce.Write(append(fields, zap.Stringer("node", p))...)
		}
	}

	var edges []core.Edge[gridgraph.Point]
	var ok bool
	switch algo {
	case config.AlgoBFS:
		var nodes []gridgraph.Point
		nodes, ok = bfs.Path(gg.Unit(), res.start, goal,
			bfs.WithOnVisit(func(p gridgraph.Point, depth int) {
				trace(p, zap.Int("depth", depth))
			}))
		if ok {
			res.path = nodes
			for _, p := range nodes[1:] {
				res.cost += int64(gg.Value(p))
			}
			return nil
		}
	case config.AlgoDijkstra:
		edges, ok = dijkstra.Path[gridgraph.Point](gg, res.start, goal,
			dijkstra.WithOnSettle(func(p gridgraph.Point, cost int64) {
				trace(p, zap.Int64("cost", cost))
			}))
	case config.AlgoAStar:
		edges, ok = astar.Path[gridgraph.Point](gg, res.start, goal, gg.Heuristic(res.goal),
			astar.WithOnSettle(func(p gridgraph.Point, cost, estimate int64) {
				trace(p, zap.Int64("cost", cost), zap.Int64("estimate", estimate))
			}))
	default:
		return fmt.Errorf("%w %q", errUnknownAlgo, algo)
	}
	if !ok {
		return fmt.Errorf("%w from %s to %s", errNoPath, res.start, res.goal)
	}
	if err := core.Validate(res.start, goal, edges); err != nil {
		return err
	}
	res.path = core.Nodes(res.start, edges)
	res.cost = core.Cost(edges)
	return nil
}
