package graph_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/spacegraph/pkg/graph"
)

func ExampleNew() {
	g := graph.New(5)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(0, 0)

	d0, _ := g.Degree(0)
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Degree of 0:", d0)
	fmt.Println("Self-loops:", g.SelfLoopCount())
	fmt.Println("Max degree:", g.MaxDegree())
	// Output:
	// Edges: 3
	// Degree of 0: 2
	// Self-loops: 1
	// Max degree: 2
}

func ExampleFromEdges() {
	g, err := graph.FromEdges([]graph.Edge{{V: 0, W: 1}, {V: 1, W: 2}, {V: 2, W: 0}})
	if err != nil {
		fmt.Println(err)
		return
	}

	ok, _ := g.AreNeighbors(0, 2)
	fmt.Println("Vertices:", g.VertexCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("0-2 adjacent:", ok)
	// Output:
	// Vertices: 3
	// Edges: 3
	// 0-2 adjacent: true
}

func ExampleGraph_Describe() {
	g, _ := graph.FromEdges([]graph.Edge{{V: 0, W: 1}, {V: 1, W: 2}, {V: 2, W: 0}})
	for _, line := range strings.SplitAfter(g.Describe(), "\n") {
		if line != "" {
			fmt.Printf("%q\n", line)
		}
	}
	// Output:
	// "Vertex 0 Edges : 2 1 \n"
	// "Vertex 1 Edges : 2 0 \n"
	// "Vertex 2 Edges : 0 1 \n"
}

func ExampleGraph_AddEdge_outOfRange() {
	g := graph.New(3)
	err := g.AddEdge(0, 3)
	fmt.Println(errors.Is(err, graph.ErrVertexOutOfRange))
	fmt.Println(err)
	// Output:
	// true
	// OUT_OF_RANGE: vertex 3 not in [0, 3): vertex out of range
}

func ExampleGraph_AvgDegree() {
	avg, _ := graph.New(4).AvgDegree()
	fmt.Println("Average degree:", avg)

	_, err := graph.Empty().AvgDegree()
	fmt.Println(errors.Is(err, graph.ErrNoVertices))
	// Output:
	// Average degree: 0
	// true
}
