// Command pathfind runs breadth-first, Dijkstra and A* searches over ASCII
// grid files.
//
//	pathfind solve grid.txt --algo astar --tile 5 --render
//	pathfind reach grid.txt --start 2,3
//	pathfind run scenarios.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfind/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries state shared by every subcommand.
type app struct {
	logFormat string
	verbose   bool
	log       *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "pathfind",
		Short:         "Shortest paths over grid files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := logging.New(logging.Options{
				Format:  a.logFormat,
				Verbose: a.verbose,
				Output:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", logging.FormatConsole, "log format: console|json")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every visited node")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newReachCmd(a))
	root.AddCommand(newRunCmd(a))
	return root
}
