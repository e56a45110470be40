package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mzeevi/digra/augment"
	"github.com/mzeevi/digra/condense"
	"github.com/mzeevi/digra/core"
	"github.com/mzeevi/digra/scc"
)

// sccAlgorithms maps the --algo flag to a decomposition.
var sccAlgorithms = map[string]func(*core.Graph) []scc.Component{
	"tarjan":   scc.Tarjan,
	"kosaraju": scc.Kosaraju,
}

// newSCCCmd prints the strongly connected components, one per line.
func newSCCCmd(routes *string) *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "scc",
		Short: "Print the strongly connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			decompose, ok := sccAlgorithms[algo]
			if !ok {
				return fmt.Errorf("cli: unknown scc algorithm %q (want tarjan or kosaraju)", algo)
			}

			g, err := loadGraph(*routes)
			if err != nil {
				return err
			}

			comps := decompose(g)
			loggerFromContext(cmd.Context()).Debug("decomposed", "algorithm", algo, "components", len(comps))

			for _, comp := range comps {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(comp, " "))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "tarjan", "decomposition algorithm: tarjan or kosaraju")

	return cmd
}

// newCondenseCmd prints the condensation: each component with its id and
// members, then the inter-component edges.
func newCondenseCmd(routes *string) *cobra.Command {
	return &cobra.Command{
		Use:   "condense",
		Short: "Print the condensation DAG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(*routes)
			if err != nil {
				return err
			}

			d := condense.Build(g, scc.Tarjan(g))
			out := cmd.OutOrStdout()
			for id := 0; id < d.Size(); id++ {
				fmt.Fprintf(out, "[%d] %s\n", id, strings.Join(d.Members(id), " "))
			}
			for id := 0; id < d.Size(); id++ {
				for _, succ := range d.Successors(id) {
					fmt.Fprintf(out, "%d -> %d\n", id, succ)
				}
			}

			return nil
		},
	}
}

// newAugmentCmd reports how to make every vertex reachable from a source:
// the structural lower bound and, unless --count-only, the greedily
// constructed edges.
func newAugmentCmd(routes *string) *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "augment <from>",
		Short: "Edges needed to reach every vertex from a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(*routes)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "lower bound: %d\n", augment.CountAdditionalEdges(g, args[0]))
			if countOnly {
				return nil
			}

			for _, arc := range augment.ConnectAll(g, args[0]) {
				fmt.Fprintln(out, arc)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&countOnly, "count-only", false, "print only the structural lower bound")

	return cmd
}
