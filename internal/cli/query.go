package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mzeevi/digra/traverse"
)

// newRenderCmd prints the edge listing, one "<from> -> <to>" line per
// edge in insertion order.
func newRenderCmd(routes *string) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the route network, one edge per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(*routes)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("loaded route network", "vertices", g.VertexCount(), "edges", g.EdgeCount())

			fmt.Fprint(cmd.OutOrStdout(), g.Render())

			return nil
		},
	}
}

// newPathCmd reports the first DFS path between two labels.
func newPathCmd(routes *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find a directed path between two labels",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(*routes)
			if err != nil {
				return err
			}

			path := traverse.FindPath(g, args[0], args[1])
			if len(path) == 0 {
				// Queries fail soft; absence of a path is a result,
				// not an error.
				fmt.Fprintf(cmd.OutOrStdout(), "no path from %s to %s\n", args[0], args[1])

				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(path, " -> "))

			return nil
		},
	}
}

// newReachableCmd lists every label reachable from a source.
func newReachableCmd(routes *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reachable <from>",
		Short: "List every label reachable from a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(*routes)
			if err != nil {
				return err
			}

			for _, label := range traverse.ReachableFrom(g, args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}

			return nil
		},
	}
}
