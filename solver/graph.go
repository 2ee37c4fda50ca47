package solver

import (
	"fmt"

	"github.com/katalvlaran/hexworm/board"
	"github.com/katalvlaran/hexworm/core"
	"github.com/katalvlaran/hexworm/creature"
	"github.com/katalvlaran/hexworm/hex"
)

// stateKey is the vertex metadata key holding the creature.State.
const stateKey = "state"

// StateGraph returns the reachable-state graph of b: one vertex per
// Standing position on a valid cell and per Flat position on a valid
// adjacent pair, and one directed edge per move that stays on the board.
// Dead is never a vertex. Vertex IDs are State.Key values; each vertex
// carries its State, see StateOf.
//
// With weighted set, every edge has weight 1; otherwise weight 0 on an
// unweighted graph.
func StateGraph(b *board.Board, weighted bool) (*core.Graph, error) {
	gopts := []core.GraphOption{core.WithDirected(true)}
	var w int64
	if weighted {
		gopts = append(gopts, core.WithWeighted())
		w = 1
	}
	g := core.NewGraph(gopts...)

	link := func(from creature.State) error {
		if err := addState(g, from); err != nil {
			return err
		}
		for _, d := range hex.Directions() {
			next := creature.NextOnBoard(from, d, b)
			if creature.IsDead(next) {
				continue
			}
			if err := addState(g, next); err != nil {
				return err
			}
			if g.HasEdge(from.Key(), next.Key()) {
				continue
			}
			if _, err := g.AddEdge(from.Key(), next.Key(), w); err != nil {
				return fmt.Errorf("solver: edge %v→%v: %w", from, next, err)
			}
		}
		return nil
	}

	for _, head := range b.Cells() {
		if err := link(creature.Standing{Head: head}); err != nil {
			return nil, err
		}
		for _, d := range hex.Directions() {
			tail := head.Neighbor(d)
			if !b.Contains(tail) {
				continue
			}
			if err := link(creature.Flat{Head: head, Tail: tail}); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func addState(g *core.Graph, s creature.State) error {
	id := s.Key()
	if g.HasVertex(id) {
		return nil
	}
	if err := g.AddVertex(id); err != nil {
		return err
	}

	return g.SetVertexMetadata(id, stateKey, s)
}

// StateOf returns the State stored on vertex id of a graph built by
// StateGraph.
func StateOf(g *core.Graph, id string) (creature.State, bool) {
	v, ok := g.VertexMetadata(id, stateKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(creature.State)

	return s, ok
}
