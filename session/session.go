// Package session runs a game of worm levels: it owns the live worm state,
// detects wins and losses, counts levels and moves, and hands out hints.
//
// A Session is safe for concurrent use; a renderer may read it while an
// input loop calls Move.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/hexworm/board"
	"github.com/katalvlaran/hexworm/creature"
	"github.com/katalvlaran/hexworm/hex"
	"github.com/katalvlaran/hexworm/hexgraph"
	"github.com/katalvlaran/hexworm/levelgen"
	"github.com/katalvlaran/hexworm/solver"
)

// Sentinel errors for session operations.
var (
	// ErrNotStanding indicates a hint was requested while the worm is not
	// standing.
	ErrNotStanding = errors.New("session: worm is not standing")

	// ErrWrongStatus indicates a level transition from the wrong status.
	ErrWrongStatus = errors.New("session: operation not allowed in current status")

	// ErrUnsolvable indicates WithSolvableOnly ran out of attempts.
	ErrUnsolvable = errors.New("session: no solvable level found")
)

// Status is the phase of the current level.
type Status int

const (
	// Playing accepts moves.
	Playing Status = iota
	// Won means the worm stands on the goal.
	Won
	// Lost means the worm fell off the board.
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Session is one player's run through a sequence of levels.
type Session struct {
	mu     sync.RWMutex
	opts   options
	log    *slog.Logger
	board  *board.Board
	state  creature.State
	status Status
	level  int
	moves  int
}

// New starts a session on level 0.
// Returns ErrUnsolvable, or a generator error.
func New(opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.ensureRand()

	s := &Session{opts: o, log: o.logger}
	if err := s.load(0); err != nil {
		return nil, err
	}

	return s, nil
}

// load installs level n. Caller holds mu or owns s exclusively.
func (s *Session) load(n int) error {
	b, attempts, err := s.nextBoard(n)
	if err != nil {
		return err
	}
	s.board = b
	s.state = creature.Standing{Head: b.Start()}
	s.status = Playing
	s.level = n
	s.moves = 0
	s.log.Info("session: level loaded", "level", n, "cells", b.Len(), "attempts", attempts)

	return nil
}

func (s *Session) nextBoard(n int) (*board.Board, int, error) {
	switch {
	case s.opts.fixed != nil:
		return s.opts.fixed, 1, nil
	case s.opts.premade && n < board.PremadeCount:
		b, err := board.Premade(n + 1)
		return b, 1, err
	}

	generate := s.opts.source
	if generate == nil {
		genOpts := append(append([]levelgen.Option(nil), s.opts.genOpts...), levelgen.WithRand(s.opts.rng))
		generate = func(int) (*board.Board, error) { return levelgen.Generate(genOpts...) }
	}
	for attempt := 1; ; attempt++ {
		b, err := generate(n)
		if err != nil {
			return nil, attempt, fmt.Errorf("session: level %d: %w", n, err)
		}
		if !s.opts.solvableOnly {
			return b, attempt, nil
		}
		res, err := solver.Solve(b, b.Start(), s.opts.solverOpts...)
		if err != nil {
			return nil, attempt, fmt.Errorf("session: level %d: %w", n, err)
		}
		if res.Found {
			return b, attempt, nil
		}
		s.log.Debug("session: rejected unsolvable level", "level", n, "attempt", attempt)
		if attempt >= s.opts.maxAttempts {
			return nil, attempt, fmt.Errorf("%w: level %d after %d attempts", ErrUnsolvable, n, attempt)
		}
	}
}

// Move applies direction d. It is a no-op for NoDirection or when the
// level is not Playing. Returns the status after the move.
func (s *Session) Move(d hex.Direction) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !d.Valid() || s.status != Playing {
		return s.status
	}
	s.state = creature.NextOnBoard(s.state, d, s.board)
	s.moves++

	switch {
	case creature.IsDead(s.state):
		s.status = Lost
		s.log.Info("session: worm fell", "level", s.level, "moves", s.moves, "direction", d.String())
	case creature.IsStandingOn(s.state, s.board.Goal()):
		s.status = Won
		s.log.Info("session: level passed", "level", s.level, "moves", s.moves)
	default:
		s.log.Debug("session: move", "direction", d.String(), "state", s.state.String())
	}

	return s.status
}

// Hint solves from the worm's current cell to the goal. The result has
// Found == false when no path remains. Returns ErrNotStanding unless the
// worm is standing.
func (s *Session) Hint() (*solver.Result, error) {
	s.mu.RLock()
	b, st := s.board, s.state
	s.mu.RUnlock()

	standing, ok := st.(creature.Standing)
	if !ok {
		return nil, ErrNotStanding
	}
	res, err := solver.Solve(b, standing.Head, s.opts.solverOpts...)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		attrs := []any{"from", standing.Head.String()}
		if hg, err := hexgraph.New(b); err == nil {
			attrs = append(attrs, "islands", hg.Islands(), "same_island", hg.SameIsland(standing.Head, b.Goal()))
		}
		s.log.Info("session: no path to goal", attrs...)
	}

	return res, nil
}

// NextLevel advances to the next level after a win.
// Returns ErrWrongStatus unless the level was won.
func (s *Session) NextLevel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Won {
		return fmt.Errorf("%w: next level from %v", ErrWrongStatus, s.status)
	}

	return s.load(s.level + 1)
}

// Restart begins again from level 0 after a loss.
// Returns ErrWrongStatus unless the level was lost.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Lost {
		return fmt.Errorf("%w: restart from %v", ErrWrongStatus, s.status)
	}

	return s.load(0)
}

// Board returns the current level's board.
func (s *Session) Board() *board.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// State returns the worm's current state.
func (s *Session) State() creature.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Status returns the current level's status.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Level returns the zero-based level counter.
func (s *Session) Level() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.level
}

// Moves returns the number of moves made on the current level.
func (s *Session) Moves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moves
}
