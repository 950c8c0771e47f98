package io

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/spacegraph/pkg/errors"
	"github.com/matzehuels/spacegraph/pkg/graph"
)

type tomlGraph struct {
	Vertices *int    `toml:"vertices"`
	Edges    [][]int `toml:"edges"`
}

// ReadTOML decodes a TOML graph description from r:
//
//	vertices = 3
//	edges = [[0, 1], [1, 2]]
//
// vertices is optional. Each edge must be a two-element array, and keys other
// than vertices and edges are rejected. ReadTOML does not close r.
func ReadTOML(r io.Reader) (*graph.Graph, error) {
	var data tomlGraph
	md, err := toml.NewDecoder(r).Decode(&data)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode TOML")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
	}

	d := description{vertices: data.Vertices, edges: make([]graph.Edge, len(data.Edges))}
	for i, pair := range data.Edges {
		if len(pair) != 2 {
			return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "edge %d: want [v, w], got %v", i, pair)
		}
		d.edges[i] = graph.Edge{V: pair[0], W: pair[1]}
	}
	return d.build()
}
