package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	VertexCount int
	EdgeCount   int
}

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVerts.RLock()
	defer g.muVerts.RUnlock()

	return g.weighted
}

// Stats returns a snapshot of configuration and sizes.
// Vertex and edge counts are read under separate locks, so a concurrent
// writer may be observed between the two reads.
func (g *Graph) Stats() GraphStats {
	g.muVerts.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		VertexCount: len(g.vertices),
	}
	g.muVerts.RUnlock()

	g.muEdges.RLock()
	stats.EdgeCount = len(g.edges)
	g.muEdges.RUnlock()

	return stats
}
