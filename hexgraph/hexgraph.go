// Package hexgraph treats the cells of a board as an undirected graph with
// hex adjacency. It answers connectivity questions the worm solver does
// not: how many separate islands a level has, and whether two cells share
// one.
//
// Connectivity here is cell adjacency, which is weaker than worm
// reachability: a worm can only cross narrow gaps it can stretch over, and
// can fail to reach cells on its own island.
package hexgraph

import (
	"fmt"

	"github.com/katalvlaran/hexworm/bfs"
	"github.com/katalvlaran/hexworm/board"
	"github.com/katalvlaran/hexworm/core"
	"github.com/katalvlaran/hexworm/hex"
)

// Metadata keys set on every vertex by ToCoreGraph.
const (
	MetaQ = "q"
	MetaR = "r"
)

// HexGraph is a read-only cell graph view of a board.
type HexGraph struct {
	b     *board.Board
	cells []hex.Coord
	g     *core.Graph

	comps  [][]hex.Coord
	island map[hex.Coord]int
}

// New builds the cell graph of b and labels its islands.
// Returns ErrNilBoard.
// Complexity: O(V) time and memory.
func New(b *board.Board) (*HexGraph, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	hg := &HexGraph{b: b, cells: b.Cells()}
	hg.g = hg.ToCoreGraph()
	if err := hg.label(); err != nil {
		return nil, err
	}

	return hg, nil
}

// VertexID formats the vertex identifier of cell c: "q,r".
func VertexID(c hex.Coord) string {
	return fmt.Sprintf("%d,%d", c.Q(), c.R())
}

// ToCoreGraph converts the board into an unweighted, undirected
// *core.Graph. Each cell becomes a vertex "q,r" with q and r metadata;
// edges join cells one step apart.
// Complexity: O(6V).
func (hg *HexGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph()
	for _, c := range hg.cells {
		id := VertexID(c)
		_ = g.AddVertex(id)
		_ = g.SetVertexMetadata(id, MetaQ, c.Q())
		_ = g.SetVertexMetadata(id, MetaR, c.R())
	}
	for _, c := range hg.cells {
		for _, d := range hex.Directions() {
			n := c.Neighbor(d)
			if !hg.b.Contains(n) {
				continue
			}
			u, v := VertexID(c), VertexID(n)
			if g.HasEdge(u, v) {
				continue
			}
			_, _ = g.AddEdge(u, v, 0)
		}
	}

	return g
}

// label runs one BFS per unlabelled cell, in board order.
func (hg *HexGraph) label() error {
	hg.island = make(map[hex.Coord]int, len(hg.cells))
	for _, c := range hg.cells {
		if _, done := hg.island[c]; done {
			continue
		}
		idx := len(hg.comps)
		var comp []hex.Coord
		visit := func(id string, _ int) error {
			cell, err := hg.cellOf(id)
			if err != nil {
				return err
			}
			hg.island[cell] = idx
			comp = append(comp, cell)
			return nil
		}
		if _, err := bfs.BFS(hg.g, VertexID(c), bfs.WithOnVisit(visit)); err != nil {
			return fmt.Errorf("hexgraph: island of %v: %w", c, err)
		}
		hg.comps = append(hg.comps, comp)
	}

	return nil
}

// cellOf reads the coordinate stored on vertex id.
func (hg *HexGraph) cellOf(id string) (hex.Coord, error) {
	q, okQ := hg.g.VertexMetadata(id, MetaQ)
	r, okR := hg.g.VertexMetadata(id, MetaR)
	qi, isQ := q.(int)
	ri, isR := r.(int)
	if !okQ || !okR || !isQ || !isR {
		return hex.Coord{}, fmt.Errorf("vertex %q has no cell coordinates", id)
	}

	return hex.Axial(qi, ri), nil
}

// Graph returns the underlying core graph.
func (hg *HexGraph) Graph() *core.Graph { return hg.g }

// ConnectedComponents returns the islands of the board. Islands are
// ordered by their first cell in board order; cells within an island are
// in BFS order from that cell.
func (hg *HexGraph) ConnectedComponents() [][]hex.Coord {
	out := make([][]hex.Coord, len(hg.comps))
	for i, comp := range hg.comps {
		out[i] = append([]hex.Coord(nil), comp...)
	}

	return out
}

// Islands returns the number of islands.
func (hg *HexGraph) Islands() int { return len(hg.comps) }

// Component returns island i. Returns ErrComponentIndex when i is out of
// range.
func (hg *HexGraph) Component(i int) ([]hex.Coord, error) {
	if i < 0 || i >= len(hg.comps) {
		return nil, fmt.Errorf("%w: %d", ErrComponentIndex, i)
	}

	return append([]hex.Coord(nil), hg.comps[i]...), nil
}

// IslandOf returns the island index of c, or -1 if c is not on the board.
func (hg *HexGraph) IslandOf(c hex.Coord) int {
	if i, ok := hg.island[c]; ok {
		return i
	}
	return -1
}

// SameIsland reports whether a and b are both on the board and connected
// by a chain of adjacent cells.
func (hg *HexGraph) SameIsland(a, b hex.Coord) bool {
	ia, ib := hg.IslandOf(a), hg.IslandOf(b)
	return ia >= 0 && ia == ib
}
