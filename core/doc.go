// Package core provides a thread-safe in-memory Graph with a small,
// composable API surface. The search packages (bfs, dijkstra) and the board
// views (hexgraph, solver) all speak in terms of core.Graph.
//
// Configuration options (GraphOption):
//
//	WithDirected(bool)  new edges are one-way; otherwise mirrored.
//	WithWeighted()      permits non-zero weights; else AddEdge(w != 0) fails with ErrBadWeight.
//
// Self-loops and parallel edges are rejected with ErrLoopNotAllowed and
// ErrMultiEdgeNotAllowed; callers dedupe with HasEdge.
//
// Adjacency is stored as nested maps, adj[from][to][edgeID], so
// existence checks and insertion are O(1). Edge IDs come from an
// atomic counter ("e1", "e2", ...). Vertices, Edges and NeighborIDs return
// deterministic, sorted results.
//
// Vertex metadata is the hook callers use to hang domain values off a
// vertex; SetVertexMetadata and VertexMetadata guard it with the vertex lock.
package core
