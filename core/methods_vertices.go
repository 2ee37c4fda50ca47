package core

import "sort"

// AddVertex registers id; an existing id is left untouched.
// Returns ErrEmptyVertexID if id is empty.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVerts.Lock()
	defer g.muVerts.Unlock()

	if g.vertices[id] != nil {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: map[string]any{}}

	g.muEdges.Lock()
	g.adjRow(id)
	g.muEdges.Unlock()

	return nil
}

// HasVertex reports whether id is registered.
func (g *Graph) HasVertex(id string) bool {
	g.muVerts.RLock()
	defer g.muVerts.RUnlock()

	return g.vertices[id] != nil
}

// SetVertexMetadata stores value under key on vertex id.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
func (g *Graph) SetVertexMetadata(id, key string, value any) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVerts.Lock()
	defer g.muVerts.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// VertexMetadata returns the value stored under key on vertex id, and
// whether it was present.
func (g *Graph) VertexMetadata(id, key string) (any, bool) {
	g.muVerts.RLock()
	defer g.muVerts.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	val, ok := v.Metadata[key]

	return val, ok
}

// Vertices lists the registered IDs in lexical order.
func (g *Graph) Vertices() []string {
	g.muVerts.RLock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.muVerts.RUnlock()
	sort.Strings(out)

	return out
}

// VertexCount is the number of registered vertices.
func (g *Graph) VertexCount() int {
	g.muVerts.RLock()
	defer g.muVerts.RUnlock()

	return len(g.vertices)
}
