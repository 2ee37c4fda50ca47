package dijkstra

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/hexworm/core"
)

// Dijkstra computes shortest distances from Options.Source to every
// reachable vertex of the weighted graph g.
//
// Returns dist (math.MaxInt64 for unreached vertices) and, with
// WithReturnPath, prev where prev[v] == u means the best path to v ends
// with u→v ("" for the source and unreached vertices).
//
// Validation, in order: ErrEmptySource, ErrNilGraph, ErrUnweightedGraph,
// ErrVertexNotFound, ErrNegativeWeight. Cancellation returns the context
// error.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	o := DefaultOptions("")
	for _, apply := range opts {
		apply(&o)
	}
	switch {
	case o.Source == "":
		return nil, nil, ErrEmptySource
	case g == nil:
		return nil, nil, ErrNilGraph
	case !g.Weighted():
		return nil, nil, ErrUnweightedGraph
	case !g.HasVertex(o.Source):
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: %s->%s (%d)", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	s := newSearch(g, o)
	if err := s.run(); err != nil {
		return nil, nil, err
	}
	if o.ReturnPath {
		return s.dist, s.prev, nil
	}

	return s.dist, nil, nil
}

// candidate is a tentative distance waiting in the heap. Equal distances
// pop in push order so ties resolve identically on every run.
type candidate struct {
	id   string
	dist int64
	seq  uint64
}

func byDistThenSeq(a, b candidate) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.seq < b.seq
}

// search is the state of one run.
type search struct {
	g     *core.Graph
	o     Options
	dist  map[string]int64
	prev  map[string]string
	done  map[string]bool
	open  *heap.Heap[candidate]
	nextN uint64
}

func newSearch(g *core.Graph, o Options) *search {
	ids := g.Vertices()
	s := &search{
		g:    g,
		o:    o,
		dist: make(map[string]int64, len(ids)),
		prev: make(map[string]string, len(ids)),
		done: make(map[string]bool, len(ids)),
		open: heap.New[candidate](byDistThenSeq),
	}
	for _, id := range ids {
		s.dist[id] = math.MaxInt64
		s.prev[id] = ""
	}
	s.dist[o.Source] = 0
	s.offer(o.Source, 0)

	return s
}

func (s *search) offer(id string, d int64) {
	s.nextN++
	s.open.Push(candidate{id: id, dist: d, seq: s.nextN})
}

// run settles vertices in distance order until the heap drains, the
// distance cap is passed or the target settles. Outdated heap entries
// are skipped on pop.
func (s *search) run() error {
	for s.open.Size() > 0 {
		if err := s.o.Ctx.Err(); err != nil {
			return err
		}
		c, _ := s.open.Pop()
		if s.done[c.id] {
			continue
		}
		if c.dist > s.o.MaxDistance {
			return nil
		}
		s.done[c.id] = true
		if c.id == s.o.Target {
			return nil
		}
		if err := s.relax(c.id); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every neighbor of the settled vertex u a shorter distance
// through u.
func (s *search) relax(u string) error {
	out, err := s.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}
	for _, e := range out {
		v := e.To
		if v == u {
			v = e.From
		}
		d := s.dist[u] + e.Weight
		if d > s.o.MaxDistance || d >= s.dist[v] {
			continue
		}
		s.dist[v], s.prev[v] = d, u
		s.offer(v, d)
	}

	return nil
}
