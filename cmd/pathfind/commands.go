package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/katalvlaran/pathfind/internal/config"
)

var errScenarioFailed = errors.New("scenarios failed")

func connFlag(n int) (gridgraph.Connectivity, error) {
	switch n {
	case 4:
		return gridgraph.Conn4, nil
	case 8:
		return gridgraph.Conn8, nil
	}
	return 0, fmt.Errorf("connectivity must be 4 or 8, got %d", n)
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		q            query
		conn         int
		render, tint bool
	)
	cmd := &cobra.Command{
		Use:   "solve <grid-file>",
		Short: "Find a shortest path between two cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if q.conn, err = connFlag(conn); err != nil {
				return err
			}
			if q.tile < 1 {
				return fmt.Errorf("%w: %d", gridgraph.ErrBadScale, q.tile)
			}
			q.grid = args[0]
			res, err := runQuery(q, a.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "algorithm: %s\nstart: %s\ngoal: %s\nsteps: %d\ncost: %d\nexpanded: %d\n",
				q.algo, res.start, res.goal, res.steps(), res.cost, res.expanded)
			if render || tint {
				_, _ = io.WriteString(out, res.grid.Render(res.path, gridgraph.RenderOptions{Color: tint}))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&q.algo, "algo", config.AlgoDijkstra, "search algorithm: bfs|dijkstra|astar")
	cmd.Flags().StringVar(&q.start, "start", "", "start cell x,y (default S marker or top-left)")
	cmd.Flags().StringVar(&q.goal, "goal", "", "goal cell x,y (default E marker or bottom-right)")
	cmd.Flags().IntVar(&q.tile, "tile", 1, "expand the grid n×n times before searching")
	cmd.Flags().IntVar(&conn, "conn", 4, "neighbor connectivity: 4|8")
	cmd.Flags().BoolVar(&render, "render", false, "print the grid with the path marked")
	cmd.Flags().BoolVar(&tint, "color", false, "print the grid with the path in color")
	return cmd
}

func newReachCmd(a *app) *cobra.Command {
	var (
		startFlag string
		maxDepth  int
		conn      int
	)
	cmd := &cobra.Command{
		Use:   "reach <grid-file>",
		Short: "Count the cells reachable from a start cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := connFlag(conn)
			if err != nil {
				return err
			}
			if maxDepth < 0 {
				return fmt.Errorf("max-depth cannot be negative (%d)", maxDepth)
			}
			gg, err := loadGrid(args[0], 1, c)
			if err != nil {
				return err
			}
			start, err := endpoint(gg, startFlag, 'S', gg.TopLeft())
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}

			routes := bfs.All(gg.Unit(), start, bfs.WithMaxDepth[gridgraph.Point](maxDepth))
			farthest, far := start, 0
			for p, route := range routes {
				d := len(route) - 1
				if d > far || (d == far && less(p, farthest)) {
					farthest, far = p, d
				}
			}
			a.log.Info("reach finished",
				zap.String("grid", args[0]),
				zap.Stringer("start", start),
				zap.Int("reachable", len(routes)),
				zap.Int("farthest", far),
			)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reachable: %d\nfarthest: %s (%d steps)\n", len(routes), farthest, far)
			return nil
		},
	}
	cmd.Flags().StringVar(&startFlag, "start", "", "start cell x,y (default S marker or top-left)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop exploring beyond this many steps (0 = unlimited)")
	cmd.Flags().IntVar(&conn, "conn", 4, "neighbor connectivity: 4|8")
	return cmd
}

// less orders points row-major so ties are reported deterministically.
func less(p, q gridgraph.Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run every scenario in a file and check expected costs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, sc := range cfg.Scenarios {
				res, err := runQuery(query{
					grid:  sc.Grid,
					algo:  sc.Algorithm,
					start: sc.Start,
					goal:  sc.Goal,
					tile:  sc.Tile,
					conn:  sc.Conn(),
				}, a.log.With(zap.String("scenario", sc.Name)))
				switch {
				case err != nil:
					failed++
					_, _ = fmt.Fprintf(out, "ERR  %s: %v\n", sc.Name, err)
				case sc.ExpectCost != nil && *sc.ExpectCost != res.cost:
					failed++
					_, _ = fmt.Fprintf(out, "FAIL %s: cost %d, want %d\n", sc.Name, res.cost, *sc.ExpectCost)
				default:
					_, _ = fmt.Fprintf(out, "ok   %s: cost %d in %d steps\n", sc.Name, res.cost, res.steps())
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errScenarioFailed, failed, len(cfg.Scenarios))
			}
			return nil
		},
	}
}
