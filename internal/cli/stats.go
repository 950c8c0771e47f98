package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spacegraph/pkg/graph"
)

// statsCommand prints vertex/edge counts and degree statistics.
func (c *CLI) statsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show vertex, edge, degree and self-loop statistics",
		Long: `Show vertex, edge, degree and self-loop statistics.

The average degree is 2*E/V rounded down. It is reported as n/a for a
graph without vertices.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			s, err := g.Stats()
			avgOK := err == nil
			if err != nil && !errors.Is(err, graph.ErrNoVertices) {
				return err
			}
			if !avgOK {
				c.Logger.Warn("average degree undefined", "reason", err)
			}

			w := cmd.OutOrStdout()
			if plain {
				for _, row := range statsRows(s, avgOK) {
					printKeyValue(w, row[0], row[1])
				}
				return nil
			}
			_, err = fmt.Fprintln(w, renderStatsTable(s, avgOK))
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print key/value lines instead of a table")
	return cmd
}
