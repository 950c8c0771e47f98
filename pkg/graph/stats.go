package graph

// Stats is a snapshot of the aggregate queries on a [Graph].
type Stats struct {
	Vertices  int
	Edges     int
	MaxDegree int
	AvgDegree int
	SelfLoops int
}

// Stats collects vertex and edge counts and degree statistics in one pass
// over the public queries. It returns the [Graph.AvgDegree] error for a graph
// without vertices, alongside the remaining fields.
func (g *Graph) Stats() (Stats, error) {
	s := Stats{
		Vertices:  g.VertexCount(),
		Edges:     g.EdgeCount(),
		MaxDegree: g.MaxDegree(),
		SelfLoops: g.SelfLoopCount(),
	}
	avg, err := g.AvgDegree()
	if err != nil {
		return s, err
	}
	s.AvgDegree = avg
	return s, nil
}
