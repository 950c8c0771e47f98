package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/spacegraph/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the vertex degree to each node label.
	// When false, only the vertex index is shown.
	Detailed bool
}

// ToDOT converts a graph to an undirected Graphviz DOT document.
// The resulting DOT string can be rendered with [RenderSVG].
//
// Every vertex becomes a node named by its index, and every edge from
// [graph.Graph.Edges] becomes one "--" line, so a self-loop is drawn once.
// Isolated vertices are drawn with a dashed outline.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("\n")

	for v := range g.VertexCount() {
		deg, _ := g.Degree(v)
		attrs := fmtAttrs(v, deg, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", strconv.Itoa(v), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", strconv.Itoa(e.V), strconv.Itoa(e.W))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(v, degree int, detailed bool) string {
	if !detailed {
		return strconv.Itoa(v)
	}
	return fmt.Sprintf("%d\ndeg: %d", v, degree)
}

func fmtAttrs(v, degree int, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(v, degree, detailed))}
	if degree == 0 {
		attrs = append(attrs, "style=\"filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the image scales from a
// zero-origin viewBox with matching width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
