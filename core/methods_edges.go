package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge links from to to with weight and returns the new edge ID,
// creating missing endpoints. Unweighted graphs only take weight 0.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed or
// ErrMultiEdgeNotAllowed.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	switch {
	case from == "" || to == "":
		return "", ErrEmptyVertexID
	case weight != 0 && !g.weighted:
		return "", ErrBadWeight
	case from == to:
		return "", ErrLoopNotAllowed
	}
	for _, id := range [2]string{from, to} {
		if err := g.AddVertex(id); err != nil {
			return "", err
		}
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if len(g.adj[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{ID: g.newEdgeID(), From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[e.ID] = e
	g.link(from, to, e.ID)
	if !e.Directed && from != to {
		g.link(to, from, e.ID)
	}

	return e.ID, nil
}

// link files eid under adj[from][to]. Caller holds muEdges.
func (g *Graph) link(from, to, eid string) {
	g.adjSlot(from, to)
	g.adj[from][to][eid] = struct{}{}
}

// HasEdge reports whether to is one step from from. Undirected edges
// count both ways.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return len(g.adj[from][to]) > 0
}

// Edges lists every edge in creation order.
func (g *Graph) Edges() []*Edge {
	g.muEdges.RLock()
	all := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		all = append(all, e)
	}
	g.muEdges.RUnlock()
	sortEdges(all)

	return all
}

// EdgeCount is the number of stored edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return len(g.edges)
}

func (g *Graph) newEdgeID() string {
	return fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.edgeSeq, 1))
}

// sortEdges orders edges by creation: "e2" before "e10".
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		if len(es[i].ID) != len(es[j].ID) {
			return len(es[i].ID) < len(es[j].ID)
		}
		return es[i].ID < es[j].ID
	})
}
