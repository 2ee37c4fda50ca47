package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/hexworm/core"
)

var (
	// ErrWeightedGraph rejects graphs built with core.WithWeighted.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrNeighbors wraps a failed adjacency lookup.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// entry is one frontier slot.
type entry struct {
	id    string
	depth int
}

// walk is the state of a single traversal.
type walk struct {
	g        *core.Graph
	o        BFSOptions
	ctx      context.Context
	frontier *queue.Queue[entry]
	res      *BFSResult
}

// BFS runs breadth-first search on g from startID.
//
// Returns ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrWeightedGraph, ErrNeighbors, the context error on cancellation, or a
// wrapped OnVisit error. The partial result is returned alongside
// traversal errors.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	size := g.VertexCount()
	w := &walk{
		g:        g,
		o:        o,
		ctx:      o.Ctx,
		frontier: queue.New[entry](),
		res: &BFSResult{
			Order:  make([]string, 0, size),
			Depth:  make(map[string]int, size),
			Parent: make(map[string]string, size),
		},
	}
	w.discover(startID, "", 0)

	return w.res, w.run()
}

// discover records id at depth under parent and queues it.
func (w *walk) discover(id, parent string, depth int) {
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.frontier.Enqueue(entry{id: id, depth: depth})
}

func (w *walk) run() error {
	for !w.frontier.Empty() {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		cur := w.frontier.Dequeue()
		w.res.Order = append(w.res.Order, cur.id)
		if err := w.o.OnVisit(cur.id, cur.depth); err != nil {
			return fmt.Errorf("bfs: visit %q: %w", cur.id, err)
		}
		if cur.id == w.o.StopAt {
			return nil
		}
		if err := w.expand(cur); err != nil {
			return err
		}
	}

	return nil
}

// expand discovers the unseen neighbors of cur unless that would exceed
// MaxDepth.
func (w *walk) expand(cur entry) error {
	depth := cur.depth + 1
	if w.o.MaxDepth > 0 && depth > w.o.MaxDepth {
		return nil
	}
	ids, err := w.g.NeighborIDs(cur.id)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, cur.id, err)
	}
	for _, id := range ids {
		if _, seen := w.res.Depth[id]; seen {
			continue
		}
		w.discover(id, cur.id, depth)
	}

	return nil
}
