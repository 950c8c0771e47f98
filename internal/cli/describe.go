package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// describeCommand prints the adjacency dump of a graph file.
func (c *CLI) describeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [file]",
		Short: "Print every vertex with its neighbors",
		Long: `Print every vertex with its neighbors.

Each vertex gets one line of the form

  Vertex <i> Edges : <n1> <n2> ...

with neighbors listed most recently added first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), g.Describe())
			return err
		},
	}
}
