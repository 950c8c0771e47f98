package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/spacegraph/pkg/errors"
	"github.com/matzehuels/spacegraph/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; derived from the input when empty
	format   string // "dot" or "svg"
	detailed bool   // show vertex degrees in node labels
}

// renderCommand creates the render command for node-link diagrams.
// Unset flags fall back to the [render] section of the config file.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph as a DOT or SVG node-link diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.Config.Render.Format
			}
			if !cmd.Flags().Changed("detailed") {
				opts.detailed = c.Config.Render.Detailed
			}
			opts.format = strings.ToLower(opts.format)
			if err := apperrors.ValidateFormat(opts.format, formatDOT, formatSVG); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show vertex degrees in labels")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	g, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.detailed})
	data, err := encodeDiagram(ctx, dot, opts.format)
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = outputPath(input, opts.format)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	prog.done("Rendered " + strings.ToUpper(opts.format))

	w := cmd.OutOrStdout()
	printSuccess(w, "Rendered %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	printFile(w, out)
	return nil
}

// encodeDiagram returns the DOT source as-is or renders it to SVG.
func encodeDiagram(ctx context.Context, dot, format string) ([]byte, error) {
	if format == formatDOT {
		return []byte(dot), nil
	}
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	return svg, nil
}

// outputPath replaces the extension of input with format.
func outputPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}
