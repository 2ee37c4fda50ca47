package session

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/hexworm/board"
	"github.com/katalvlaran/hexworm/levelgen"
	"github.com/katalvlaran/hexworm/solver"
)

type options struct {
	genOpts      []levelgen.Option
	solverOpts   []solver.Option
	fixed        *board.Board
	source       func(level int) (*board.Board, error)
	premade      bool
	logger       *slog.Logger
	solvableOnly bool
	maxAttempts  int
	rng          *rand.Rand
}

// DefaultMaxAttempts bounds regeneration under WithSolvableOnly when no
// explicit limit is given.
const DefaultMaxAttempts = 50

func defaultOptions() options {
	return options{
		logger:      slog.Default(),
		maxAttempts: DefaultMaxAttempts,
	}
}

// Option configures a Session.
type Option func(*options)

// WithGenerator sets the level generator options. The session always
// supplies its own random source after these, so every level differs.
func WithGenerator(opts ...levelgen.Option) Option {
	own := append([]levelgen.Option(nil), opts...)
	return func(o *options) { o.genOpts = own }
}

// WithBoard plays b on every level instead of generating. Panics on nil.
func WithBoard(b *board.Board) Option {
	if b == nil {
		panic("session: WithBoard(nil)")
	}
	return func(o *options) { o.fixed = b }
}

// WithLevelSource replaces the random generator with fn, which is called
// with the zero-based level number. WithSolvableOnly still applies.
// Panics on nil.
func WithLevelSource(fn func(level int) (*board.Board, error)) Option {
	if fn == nil {
		panic("session: WithLevelSource(nil)")
	}
	return func(o *options) { o.source = fn }
}

// WithPremadeLevels plays the hand-built levels first, in order, before
// switching to generated ones.
func WithPremadeLevels() Option {
	return func(o *options) { o.premade = true }
}

// WithSeed seeds the session's level source.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the session logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithSolvableOnly rejects generated levels the solver cannot finish,
// trying at most maxAttempts boards per level. Panics if maxAttempts < 1.
func WithSolvableOnly(maxAttempts int) Option {
	if maxAttempts < 1 {
		panic(fmt.Sprintf("session: WithSolvableOnly(%d): want >= 1", maxAttempts))
	}
	return func(o *options) {
		o.solvableOnly = true
		o.maxAttempts = maxAttempts
	}
}

// WithSolverOptions sets the options used for hints and solvability checks.
func WithSolverOptions(opts ...solver.Option) Option {
	own := append([]solver.Option(nil), opts...)
	return func(o *options) { o.solverOpts = own }
}

func (o *options) ensureRand() {
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}
