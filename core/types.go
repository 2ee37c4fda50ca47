package core

import (
	"errors"
	"sync"
)

// Errors returned by Graph methods; compare with errors.Is.
var (
	ErrEmptyVertexID       = errors.New("core: vertex ID is empty")
	ErrVertexNotFound      = errors.New("core: vertex not found")
	ErrBadWeight           = errors.New("core: bad weight for unweighted graph")
	ErrLoopNotAllowed      = errors.New("core: self-loop not allowed")
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a node of the graph.
//
// Metadata carries caller data such as a worm state or a cell coordinate.
type Vertex struct {
	ID       string
	Metadata map[string]any
}

// Edge connects From to To. IDs are "e1", "e2", ... in creation order.
// An undirected edge is stored once and reachable from both endpoints.
type Edge struct {
	ID       string
	From     string
	To       string
	Weight   int64
	Directed bool
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted lets AddEdge accept non-zero weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is an in-memory graph with string vertex IDs, safe for concurrent
// use. Lock order is muVerts before muEdges.
type Graph struct {
	muVerts sync.RWMutex // vertices
	muEdges sync.RWMutex // edges, adj

	directed bool
	weighted bool

	edgeSeq  uint64 // atomic
	vertices map[string]*Vertex
	edges    map[string]*Edge

	// adj[from][to][edgeID]; undirected edges are mirrored.
	adj map[string]map[string]map[string]struct{}
}

// NewGraph returns an empty graph, undirected and unweighted unless opts
// say otherwise. Self-loops and parallel edges are always rejected.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		adj:      make(map[string]map[string]map[string]struct{}),
	}
	for _, apply := range opts {
		apply(g)
	}

	return g
}
