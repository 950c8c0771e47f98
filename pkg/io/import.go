package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/matzehuels/spacegraph/pkg/errors"
	"github.com/matzehuels/spacegraph/pkg/graph"
)

// Supported file formats, keyed by extension in [Import].
const (
	FormatText = "text"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// MaxVertices bounds the vertex count a graph file may declare. Every vertex
// owns a neighbor list, so the count alone decides the allocation.
const MaxVertices = 1 << 20

var formatFromExt = map[string]string{
	".txt":   FormatText,
	".edges": FormatText,
	".toml":  FormatTOML,
	".json":  FormatJSON,
}

// description is the format-independent content of a graph file.
type description struct {
	vertices *int
	edges    []graph.Edge
}

// build turns a description into a graph. A missing vertex count falls back
// to graph.FromEdges.
func (d description) build() (*graph.Graph, error) {
	if d.vertices == nil {
		g, err := graph.FromEdges(d.edges)
		if err != nil {
			return nil, fmt.Errorf("edges: %w", err)
		}
		return g, nil
	}

	if *d.vertices < 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "vertex count %d must not be negative", *d.vertices)
	}
	if *d.vertices > MaxVertices {
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "vertex count %d exceeds limit of %d", *d.vertices, MaxVertices)
	}
	g := graph.New(*d.vertices)
	for i, e := range d.edges {
		if err := g.AddEdge(e.V, e.W); err != nil {
			return nil, fmt.Errorf("edge %d (%d, %d): %w", i, e.V, e.W, err)
		}
	}
	return g, nil
}

type jsonEdge struct {
	V int `json:"v"`
	W int `json:"w"`
}

type jsonGraph struct {
	Vertices *int       `json:"vertices,omitempty"`
	Edges    []jsonEdge `json:"edges"`
}

// ReadJSON decodes a JSON graph description from r.
//
// The input is an object with an optional "vertices" count and an "edges"
// array of {"v": int, "w": int} objects. Unknown keys are rejected.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data jsonGraph
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode JSON")
	}

	d := description{vertices: data.Vertices, edges: make([]graph.Edge, len(data.Edges))}
	for i, e := range data.Edges {
		d.edges[i] = graph.Edge{V: e.V, W: e.W}
	}
	return d.build()
}

// Import reads the graph file at path, choosing the reader from the file
// extension: .txt and .edges use [ReadText], .toml uses [ReadTOML] and .json
// uses [ReadJSON].
//
// A missing file yields FILE_NOT_FOUND and an unknown extension UNSUPPORTED.
// Decoding errors are returned as-is from the reader, wrapped with the path.
func Import(path string) (*graph.Graph, error) {
	if err := apperrors.ValidatePath(path); err != nil {
		return nil, err
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Read decodes a graph from r in the given format.
func Read(r io.Reader, format string) (*graph.Graph, error) {
	switch format {
	case FormatText:
		return ReadText(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatJSON:
		return ReadJSON(r)
	}
	return nil, apperrors.New(apperrors.ErrCodeUnsupported, "unknown graph format %q", format)
}

// DetectFormat maps a file extension to one of the Format constants.
func DetectFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := formatFromExt[ext]; ok {
		return format, nil
	}
	return "", apperrors.New(apperrors.ErrCodeUnsupported, "unsupported graph file extension %q (want .txt, .edges, .toml or .json)", ext)
}
