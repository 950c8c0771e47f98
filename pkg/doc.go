// Package pkg holds the spacegraph libraries.
//
// # Overview
//
//  1. [graph] - The undirected graph container and its queries
//  2. [io] - Readers that build graphs from text, TOML and JSON files
//  3. [render/nodelink] - DOT and SVG node-link diagrams
//  4. [errors] - Coded errors shared by the libraries and the CLI
//  5. [buildinfo] - Version information injected at build time
//
// # Data Flow
//
//	graph file (.txt / .toml / .json)
//	         ↓
//	    [io] package (parse and validate)
//	         ↓
//	    [graph] package (adjacency, degrees, self-loops)
//	         ↓
//	    describe / stats / neighbors / DOT / SVG
//
// [graph]: github.com/matzehuels/spacegraph/pkg/graph
// [io]: github.com/matzehuels/spacegraph/pkg/io
// [render/nodelink]: github.com/matzehuels/spacegraph/pkg/render/nodelink
// [errors]: github.com/matzehuels/spacegraph/pkg/errors
// [buildinfo]: github.com/matzehuels/spacegraph/pkg/buildinfo
package pkg
