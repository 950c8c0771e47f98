// Package io builds graphs from plain-text, TOML and JSON descriptions.
//
// # Overview
//
// The readers in this package only construct [graph.Graph] values; nothing
// here writes a graph back out. Every format carries an optional vertex
// count and a list of (v, w) pairs:
//
//   - With a vertex count, the graph is created with [graph.New] and each
//     pair is added with [graph.Graph.AddEdge].
//   - Without one, the pairs go through [graph.FromEdges], which allocates
//     one vertex per pair.
//
// # Text Format
//
// The text format is the classic edge-list layout: the vertex count, the
// edge count, then one pair per line. Blank lines and lines starting with #
// are skipped.
//
//	# a triangle
//	3
//	3
//	0 1
//	1 2
//	2 0
//
// # TOML Format
//
//	vertices = 3
//	edges = [[0, 1], [1, 2], [2, 0]]
//
// Unknown keys are rejected.
//
// # JSON Format
//
//	{
//	  "vertices": 3,
//	  "edges": [{"v": 0, "w": 1}, {"v": 1, "w": 2}, {"v": 2, "w": 0}]
//	}
//
// # Import
//
// Use [Import] to read a file and pick the format from its extension
// (.txt, .toml, .json), or call [ReadText], [ReadTOML] or [ReadJSON] on any
// io.Reader:
//
//	g, err := io.Import("tiny.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Malformed input yields an INVALID_FORMAT error from pkg/errors. An edge
// that references a vertex outside the graph keeps the OUT_OF_RANGE error
// from package graph, wrapped with the position of the offending pair, so
// errors.Is(err, graph.ErrVertexOutOfRange) still holds.
package io
