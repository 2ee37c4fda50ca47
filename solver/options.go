package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Sentinel errors for Solve and Directions.
var (
	// ErrNilBoard indicates Solve was called without a board.
	ErrNilBoard = errors.New("solver: board is nil")

	// ErrUnknownStrategy indicates an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")

	// ErrNotAMove indicates two consecutive path states that no single
	// direction connects.
	ErrNotAMove = errors.New("solver: states are not one move apart")
)

// Strategy selects the search run over the state graph. Every edge costs
// one move, so both strategies return paths with the minimum move count.
type Strategy int

const (
	// UniformCost runs Dijkstra over unit-weight edges.
	UniformCost Strategy = iota
	// BreadthFirst runs BFS over unweighted edges.
	BreadthFirst
)

var strategyNames = map[Strategy]string{
	UniformCost:  "uniform-cost",
	BreadthFirst: "breadth-first",
}

// String returns the strategy's configuration name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a configuration name ("uniform-cost", "dijkstra",
// "breadth-first", "bfs") to a Strategy. Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uniform-cost", "uniformcost", "dijkstra", "":
		return UniformCost, nil
	case "breadth-first", "breadthfirst", "bfs":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

type options struct {
	strategy Strategy
	maxMoves int
	logger   *slog.Logger
	ctx      context.Context
}

func defaultOptions() options {
	return options{
		strategy: UniformCost,
		logger:   slog.Default(),
		ctx:      context.Background(),
	}
}

// Option configures Solve.
type Option func(*options)

// WithStrategy selects the search strategy. Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	if _, ok := strategyNames[s]; !ok {
		panic(fmt.Sprintf("solver: WithStrategy(%d): unknown strategy", int(s)))
	}
	return func(o *options) { o.strategy = s }
}

// WithMaxMoves bounds the search to paths of at most n moves; a goal
// farther away is reported as not found. Zero means no bound. Panics on a
// negative n.
func WithMaxMoves(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("solver: WithMaxMoves(%d): negative bound", n))
	}
	return func(o *options) { o.maxMoves = n }
}

// WithLogger sets the logger for search diagnostics. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
