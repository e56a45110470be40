// Package cli implements the digra command-line interface: a console
// front-end over the connectivity toolkit (core, traverse, scc, condense,
// augment).
//
// The CLI is an external caller of the library, not part of it. It loads
// a route network, either the built-in airport sample or a TOML file
// supplied with --routes, and exposes one subcommand per query:
//
//   - render: print the edge listing
//   - path: first DFS path between two labels
//   - reachable: everything a source reaches
//   - scc: strongly connected components (tarjan or kosaraju)
//   - condense: the condensation DAG
//   - augment: reachability augmentation (count and constructive)
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the digra CLI and returns an error if any command fails.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// newRootCmd builds the root command with all subcommands attached and
// the --verbose / --routes persistent flags wired.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		routes  string
	)

	root := &cobra.Command{
		Use:   "digra",
		Short: "digra answers connectivity queries over a directed route network",
		Long: `digra maintains a directed graph of labeled routes and answers
structural queries: reachability, DFS paths, strongly connected
components, the condensation DAG, and the edges needed to make
every vertex reachable from a source.

Without --routes, the built-in airport sample network is used.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&routes, "routes", "", "TOML route file (default: built-in airport sample)")

	root.AddCommand(newRenderCmd(&routes))
	root.AddCommand(newPathCmd(&routes))
	root.AddCommand(newReachableCmd(&routes))
	root.AddCommand(newSCCCmd(&routes))
	root.AddCommand(newCondenseCmd(&routes))
	root.AddCommand(newAugmentCmd(&routes))

	return root
}
