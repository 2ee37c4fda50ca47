// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order.
//
// The traversal explores vertices in non-decreasing edge count from the
// start. WithOnVisit runs a hook as each vertex leaves the frontier and may
// abort the walk. WithMaxDepth bounds the layers, and WithStopAt ends the
// walk early once a target is visited; the solver uses both to stop at the
// goal state within a move budget.
//
// Determinism: core.NeighborIDs returns sorted IDs and BFS enqueues them in
// that order, so Order and Parent are reproducible for a given graph.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
