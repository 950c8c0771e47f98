// Package graph provides a small undirected graph container.
//
// A [Graph] owns a fixed number of vertices, indexed 0..n-1, and a neighbor
// list per vertex. Edges are added one at a time and can only be removed all
// at once with [Graph.Clear]; vertices are never added or removed after
// construction.
//
// # Construction
//
//	g := graph.Empty()            // no vertices
//	g := graph.New(5)             // five isolated vertices
//	g, err := graph.FromEdges([]graph.Edge{{V: 0, W: 1}, {V: 1, W: 2}, {V: 2, W: 0}})
//
// [FromEdges] allocates one vertex per supplied pair, not one per distinct
// index, and stops at the first pair that is out of range.
//
// # Edges
//
// [Graph.AddEdge] rejects indices outside [0, VertexCount()) with an error
// wrapping [ErrVertexOutOfRange]. Adding an edge twice is a no-op, and a
// self-loop (v, v) is stored once in the neighbor list of v. As a result a
// self-loop adds one to the degree of its vertex, and
//
//	sum(Degree(v)) == 2*(EdgeCount() - SelfLoopCount()) + SelfLoopCount()
//
// holds for every graph.
//
// # Neighbor Order
//
// Neighbor lists keep insertion order and are reported newest first, so the
// output of [Graph.Describe] is stable for a given sequence of AddEdge calls:
//
//	Vertex 0 Edges : 2 1
//	Vertex 1 Edges : 2 0
//	Vertex 2 Edges : 0 1
//
// (each neighbor is followed by a space, including the last one).
//
// # Errors
//
// Errors are *errors.Error values from pkg/errors carrying a machine-readable
// code (OUT_OF_RANGE or DIVISION_BY_ZERO) and wrapping one of the sentinels
// in this package, so both of these work:
//
//	errors.Is(err, graph.ErrVertexOutOfRange)
//	apperrors.Is(err, apperrors.ErrCodeOutOfRange)
//
// # Concurrency
//
// Graph has no internal synchronization. Callers that share a Graph between
// goroutines must guard the whole value, e.g. with a sync.Mutex.
package graph
