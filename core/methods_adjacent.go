package core

import "sort"

// Neighbors returns the edges leaving vertex id: outgoing edges for
// directed edges, and every incident edge for undirected ones. The result
// is sorted by edge creation order.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	var out []*Edge
	for _, edgeSet := range g.adj[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the sorted, de-duplicated IDs of the vertices
// reachable from id in one step.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else {
			seen[e.From] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// adjRow makes adj[id] non-nil. Caller holds muEdges.
func (g *Graph) adjRow(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]map[string]struct{})
	}
}

// adjSlot makes adj[from][to] non-nil. Caller holds muEdges.
func (g *Graph) adjSlot(from, to string) {
	g.adjRow(from)
	if g.adj[from][to] == nil {
		g.adj[from][to] = make(map[string]struct{})
	}
}
