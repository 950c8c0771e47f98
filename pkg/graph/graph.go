package graph

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	apperrors "github.com/matzehuels/spacegraph/pkg/errors"
)

var (
	// ErrVertexOutOfRange is returned when a vertex index lies outside
	// [0, VertexCount()). It is always wrapped in an *apperrors.Error with
	// code OUT_OF_RANGE.
	ErrVertexOutOfRange = errors.New("vertex out of range")

	// ErrNoVertices is returned by [Graph.AvgDegree] on a graph without
	// vertices, where the average is undefined. It is wrapped with code
	// DIVISION_BY_ZERO.
	ErrNoVertices = errors.New("graph has no vertices")
)

// Edge is an unordered pair of vertex indices. V == W denotes a self-loop.
type Edge struct {
	V int
	W int
}

// IsSelfLoop reports whether both endpoints are the same vertex.
func (e Edge) IsSelfLoop() bool { return e.V == e.W }

// Graph is an undirected graph over a fixed set of vertices 0..n-1.
//
// Each vertex owns a neighbor list. Duplicate edges are rejected, so the list
// behaves as a set, but it keeps insertion order: [Graph.Neighbors] and
// [Graph.Describe] report the most recently added neighbor first.
//
// The zero value is an empty graph with no vertices.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	vertices int
	edges    int
	adj      [][]int // vertex -> neighbors in insertion order
}

// Empty returns a graph with no vertices and no edges.
func Empty() *Graph {
	return &Graph{}
}

// New returns a graph with n isolated vertices.
// Like make, New panics if n is negative.
func New(n int) *Graph {
	if n < 0 {
		panic("graph: negative vertex count " + strconv.Itoa(n))
	}
	return &Graph{
		vertices: n,
		adj:      make([][]int, n),
	}
}

// FromEdges builds a graph with len(edges) vertices and adds every pair
// through [Graph.AddEdge].
//
// The vertex count is the number of pairs, not the largest index referenced,
// so every index must be below len(edges). The first invalid pair aborts
// construction: FromEdges returns nil and the error.
func FromEdges(edges []Edge) (*Graph, error) {
	g := New(len(edges))
	for _, e := range edges {
		if err := g.AddEdge(e.V, e.W); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// VertexCount returns the fixed number of vertices.
func (g *Graph) VertexCount() int { return g.vertices }

// EdgeCount returns the number of distinct edges. A self-loop counts as one.
func (g *Graph) EdgeCount() int { return g.edges }

// AddEdge connects v and w.
//
// Both indices must be in [0, VertexCount()); otherwise AddEdge returns an
// OUT_OF_RANGE error wrapping [ErrVertexOutOfRange] and the graph is not
// modified. Adding an edge that already exists, including a repeated
// self-loop, is a no-op. A self-loop is stored once in the neighbor list of v.
func (g *Graph) AddEdge(v, w int) error {
	if err := g.check(v); err != nil {
		return err
	}
	if err := g.check(w); err != nil {
		return err
	}
	if g.adjacent(v, w) {
		return nil
	}

	g.adj[v] = append(g.adj[v], w)
	if v != w {
		g.adj[w] = append(g.adj[w], v)
	}
	g.edges++
	return nil
}

// Clear removes every edge. The vertex count is unchanged.
func (g *Graph) Clear() {
	g.adj = make([][]int, g.vertices)
	g.edges = 0
}

// Neighbors returns a copy of the neighbor list of v, most recently added
// neighbor first.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}
	return g.neighbors(v), nil
}

// AreNeighbors reports whether an edge connects v and w.
func (g *Graph) AreNeighbors(v, w int) (bool, error) {
	if err := g.check(v); err != nil {
		return false, err
	}
	if err := g.check(w); err != nil {
		return false, err
	}
	return g.adjacent(v, w), nil
}

// Degree returns the number of distinct neighbors of v.
// A self-loop contributes one, not two.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.check(v); err != nil {
		return 0, err
	}
	return len(g.adj[v]), nil
}

// MaxDegree returns the largest vertex degree, or 0 for a graph without
// vertices.
func (g *Graph) MaxDegree() int {
	maxDeg := 0
	for _, ns := range g.adj {
		maxDeg = max(maxDeg, len(ns))
	}
	return maxDeg
}

// AvgDegree returns 2*EdgeCount()/VertexCount() using integer division.
// A graph without vertices has no average; AvgDegree then returns a
// DIVISION_BY_ZERO error wrapping [ErrNoVertices].
func (g *Graph) AvgDegree() (int, error) {
	if g.vertices == 0 {
		return 0, apperrors.Wrap(apperrors.ErrCodeDivisionByZero, ErrNoVertices, "average degree")
	}
	return 2 * g.edges / g.vertices, nil
}

// SelfLoopCount returns the number of vertices that are their own neighbor.
func (g *Graph) SelfLoopCount() int {
	n := 0
	for v, ns := range g.adj {
		if slices.Contains(ns, v) {
			n++
		}
	}
	return n
}

// Edges returns every distinct edge once, with V <= W. Edges are ordered by
// V, then by the neighbor order of V.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for v := range g.adj {
		for _, w := range g.neighbors(v) {
			if v <= w {
				out = append(out, Edge{V: v, W: w})
			}
		}
	}
	return out
}

// Describe renders one line per vertex in ascending order, for example
// "Vertex 0 Edges : 2 1 \n". Each neighbor is followed by a single space, in
// the order reported by [Graph.Neighbors]; a vertex without neighbors yields
// "Vertex i Edges : \n".
func (g *Graph) Describe() string {
	var b strings.Builder
	for v := range g.adj {
		b.WriteString("Vertex ")
		b.WriteString(strconv.Itoa(v))
		b.WriteString(" Edges : ")
		for _, w := range g.neighbors(v) {
			b.WriteString(strconv.Itoa(w))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer using [Graph.Describe].
func (g *Graph) String() string { return g.Describe() }

func (g *Graph) check(v int) error {
	if v < 0 || v >= g.vertices {
		return apperrors.Wrap(apperrors.ErrCodeOutOfRange, ErrVertexOutOfRange,
			"vertex %d not in [0, %d)", v, g.vertices)
	}
	return nil
}

func (g *Graph) adjacent(v, w int) bool {
	return slices.Contains(g.adj[v], w)
}

// neighbors returns adj[v] newest first. The stored slice is append-ordered.
func (g *Graph) neighbors(v int) []int {
	ns := slices.Clone(g.adj[v])
	slices.Reverse(ns)
	return ns
}
