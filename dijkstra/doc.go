// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted core.Graph values with non-negative weights.
//
// Vertices are finalized in order of increasing distance using a binary
// min-heap with lazy decrease-key: improved distances push a fresh entry
// and stale entries are skipped on extraction. Ties are broken by push
// order, which makes the predecessor map reproducible.
//
// Options:
//
//	Source(id)          starting vertex (required).
//	WithTarget(id)      stop once id is final.
//	WithReturnPath()    return the predecessor map.
//	WithMaxDistance(d)  skip vertices farther than d; the solver's move budget.
//	WithContext(ctx)    cancellation.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra
