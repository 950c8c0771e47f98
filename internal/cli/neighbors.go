package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/spacegraph/pkg/errors"
)

// neighborsCommand prints the neighbors and degree of a vertex, or whether
// two vertices are adjacent.
func (c *CLI) neighborsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighbors [file] [v] [w]",
		Short: "Show the neighbors of a vertex",
		Long: `Show the neighbors of a vertex.

With a single vertex v, prints its neighbors (most recently added first) and
its degree. With a second vertex w, reports whether v and w are adjacent.

Flags go before the file argument; everything after it is read as a vertex.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := apperrors.ParseVertex(args[1])
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 3 {
				w, err := apperrors.ParseVertex(args[2])
				if err != nil {
					return err
				}
				ok, err := g.AreNeighbors(v, w)
				if err != nil {
					return err
				}
				if ok {
					printSuccess(out, "%d and %d are neighbors", v, w)
				} else {
					printFailure(out, "%d and %d are not neighbors", v, w)
				}
				return nil
			}

			ns, err := g.Neighbors(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, StyleTitle.Render("Vertex "+strconv.Itoa(v)))
			printKeyValue(out, "Neighbors", formatNeighbors(ns))
			printKeyValue(out, "Degree", strconv.Itoa(len(ns)))
			if loop, _ := g.AreNeighbors(v, v); loop {
				printKeyValue(out, "Self-loop", StyleWarning.Render(iconLoop))
			}
			return nil
		},
	}

	// Stop flag parsing at the file so "-1" reaches ParseVertex.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
