// Package nodelink renders graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the vertex degree
//
// # DOT Format
//
// [ToDOT] produces an undirected DOT document ("graph G { ... }") laid out
// with neato. Vertices are circles labelled with their index; isolated
// vertices are dashed and grey. The DOT source can be rendered with
// [RenderSVG] or saved and processed with external Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is required.
package nodelink
