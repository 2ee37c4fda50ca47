package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hexworm/bfs"
	"github.com/katalvlaran/hexworm/board"
	"github.com/katalvlaran/hexworm/core"
	"github.com/katalvlaran/hexworm/creature"
	"github.com/katalvlaran/hexworm/dijkstra"
	"github.com/katalvlaran/hexworm/hex"
)

// Path is a sequence of worm states. Solve returns it goal first; Forward
// gives the playable order.
type Path []creature.State

// Forward returns a reversed copy of p.
func (p Path) Forward() Path {
	out := make(Path, len(p))
	for i, s := range p {
		out[len(p)-1-i] = s
	}

	return out
}

// Moves returns the number of transitions in p.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Result is the outcome of Solve.
type Result struct {
	// Path runs from Standing(goal) back to Standing(start). Nil when
	// Found is false.
	Path Path
	// Found reports whether the goal is reachable.
	Found bool
	// Nodes and Edges size the state graph that was searched.
	Nodes int
	Edges int
}

// Solve finds a shortest move sequence that takes a worm standing on start
// to standing on b.Goal() without leaving b.
//
// An unreachable goal, or a start off the board, is Found == false and not
// an error. Errors are ErrNilBoard, a cancelled context, or a failure of
// the underlying search.
//
// Complexity: O(V log V + E) with V <= 7|cells| and E <= 6V.
func Solve(b *board.Board, start hex.Coord, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.ctx.Err(); err != nil {
		return nil, err
	}
	log := o.logger.With("strategy", o.strategy.String(), "start", start.String(), "goal", b.Goal().String())

	if !b.Contains(start) {
		log.Debug("solver: start is off the board")
		return &Result{}, nil
	}

	g, err := StateGraph(b, o.strategy == UniformCost)
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	res := &Result{Nodes: st.VertexCount, Edges: st.EdgeCount}
	log.Debug("solver: state graph built", "nodes", st.VertexCount, "edges", st.EdgeCount, "weighted", st.Weighted, "max_moves", o.maxMoves)

	src := creature.Standing{Head: start}.Key()
	dst := creature.Standing{Head: b.Goal()}.Key()

	var ids []string
	switch o.strategy {
	case BreadthFirst:
		ids, err = searchBFS(g, src, dst, o)
	default:
		ids, err = searchDijkstra(g, src, dst, o)
	}
	if err != nil {
		return nil, err
	}
	if ids == nil {
		log.Debug("solver: goal unreachable", "nodes", res.Nodes, "edges", res.Edges)
		return res, nil
	}

	res.Found = true
	res.Path = make(Path, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		s, ok := StateOf(g, ids[i])
		if !ok {
			return nil, fmt.Errorf("solver: vertex %q has no state", ids[i])
		}
		res.Path = append(res.Path, s)
	}
	log.Debug("solver: path found", "moves", res.Path.Moves(), "nodes", res.Nodes, "edges", res.Edges)

	return res, nil
}

// searchBFS returns vertex IDs src..dst, or nil when dst is unreachable.
func searchBFS(g *core.Graph, src, dst string, o options) ([]string, error) {
	r, err := bfs.BFS(g, src,
		bfs.WithStopAt(dst),
		bfs.WithMaxDepth(o.maxMoves),
		bfs.WithContext(o.ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	ids, err := r.PathTo(dst)
	if errors.Is(err, bfs.ErrNoPath) {
		return nil, nil
	}

	return ids, err
}

// searchDijkstra returns vertex IDs src..dst, or nil when dst is unreachable.
func searchDijkstra(g *core.Graph, src, dst string, o options) ([]string, error) {
	dopts := []dijkstra.Option{
		dijkstra.Source(src),
		dijkstra.WithTarget(dst),
		dijkstra.WithReturnPath(),
		dijkstra.WithContext(o.ctx),
	}
	if o.maxMoves > 0 {
		dopts = append(dopts, dijkstra.WithMaxDistance(int64(o.maxMoves)))
	}
	dist, prev, err := dijkstra.Dijkstra(g, dopts...)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	d, ok := dist[dst]
	if !ok || d == math.MaxInt64 {
		return nil, nil
	}

	ids := make([]string, 0, d+1)
	for cur := dst; cur != ""; cur = prev[cur] {
		ids = append(ids, cur)
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	return ids, nil
}

// Directions returns the inputs that replay a forward path: the i-th
// direction moves forward[i] to forward[i+1]. Returns ErrNotAMove when no
// direction connects two neighbors in the path.
func Directions(forward Path) ([]hex.Direction, error) {
	if len(forward) < 2 {
		return nil, nil
	}
	out := make([]hex.Direction, 0, len(forward)-1)
	for i := 1; i < len(forward); i++ {
		d, ok := moveBetween(forward[i-1], forward[i])
		if !ok {
			return nil, fmt.Errorf("%w: step %d %v→%v", ErrNotAMove, i, forward[i-1], forward[i])
		}
		out = append(out, d)
	}

	return out, nil
}

func moveBetween(from, to creature.State) (hex.Direction, bool) {
	for _, d := range hex.Directions() {
		if creature.Next(from, d) == to {
			return d, true
		}
	}
	return hex.NoDirection, false
}
