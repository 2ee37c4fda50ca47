package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/hexworm/board"
	"github.com/katalvlaran/hexworm/config"
	"github.com/katalvlaran/hexworm/hex"
	"github.com/katalvlaran/hexworm/hexgraph"
	"github.com/katalvlaran/hexworm/levelgen"
	"github.com/katalvlaran/hexworm/session"
	"github.com/katalvlaran/hexworm/solver"
)

// env carries what every subcommand needs.
type env struct {
	cfg  *config.Config
	seed int64
	log  *slog.Logger
}

func newEnv(path string, seed int64, logOut io.Writer) (*env, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	log, err := cfg.NewLogger(logOut)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(log)

	if seed == 0 {
		seed = cfg.Seed(time.Now().UnixNano())
	}
	log.Debug("hexworm: configured", "seed", seed, "strategy", cfg.Solver.Strategy)

	return &env{cfg: cfg, seed: seed, log: log}, nil
}

func (e *env) generate() (*board.Board, error) {
	opts := append(e.cfg.GeneratorOptions(), levelgen.WithSeed(e.seed))
	return levelgen.Generate(opts...)
}

// gen prints a generated board and its island count.
func (e *env) gen(out io.Writer) error {
	b, err := e.generate()
	if err != nil {
		return err
	}
	hg, err := hexgraph.New(b)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "seed %d: %d cells, %d islands\n", e.seed, b.Len(), hg.Islands())
	fmt.Fprint(out, b.String())

	return nil
}

// solve prints the shortest move list for a premade, file or generated board.
func (e *env) solve(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	level := fs.Int("level", 0, "premade level number (1-based)")
	mapFile := fs.String("map", "", "char map file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var b *board.Board
	var err error
	switch {
	case *level > 0:
		b, err = board.Premade(*level)
	case *mapFile != "":
		var data []byte
		if data, err = os.ReadFile(*mapFile); err == nil {
			b, err = board.Parse(string(data))
		}
	default:
		b, err = e.generate()
	}
	if err != nil {
		return err
	}

	return e.printSolution(b, out)
}

func (e *env) printSolution(b *board.Board, out io.Writer) error {
	opts, err := e.cfg.SolverOptions(e.log)
	if err != nil {
		return err
	}
	res, err := solver.Solve(b, b.Start(), opts...)
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintf(out, "no path (%d states, %d edges)\n", res.Nodes, res.Edges)
		return nil
	}
	dirs, err := solver.Directions(res.Path.Forward())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "moves: %d\n%s\n", res.Path.Moves(), joinDirections(dirs))

	return nil
}

// levels lists the premade levels with their shortest solutions.
func (e *env) levels(out io.Writer) error {
	opts, err := e.cfg.SolverOptions(e.log)
	if err != nil {
		return err
	}
	for n := 1; n <= board.PremadeCount; n++ {
		b, err := board.Premade(n)
		if err != nil {
			return err
		}
		res, err := solver.Solve(b, b.Start(), opts...)
		if err != nil {
			return err
		}
		fmt.Fprint(out, levelLine(n, b, res))
	}

	return nil
}

func levelLine(n int, b *board.Board, res *solver.Result) string {
	if !res.Found {
		return fmt.Sprintf("level %d: %d cells, no path\n", n, b.Len())
	}
	return fmt.Sprintf("level %d: %d cells, %d moves\n", n, b.Len(), res.Path.Moves())
}

// play reads commands line by line. Movement keys are w e a d z x;
// h asks for a hint, n goes to the next level, r restarts and q quits.
func (e *env) play(in io.Reader, out io.Writer) error {
	opts, err := e.cfg.SessionOptions(e.seed, e.log)
	if err != nil {
		return err
	}
	s, err := session.New(opts...)
	if err != nil {
		return err
	}
	printLevel(s, out)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		for _, r := range strings.TrimSpace(sc.Text()) {
			switch r {
			case 'q', 'Q':
				return nil
			case 'h', 'H':
				e.hint(s, out)
				continue
			case 'n', 'N':
				if err := s.NextLevel(); err != nil {
					fmt.Fprintln(out, err)
				} else {
					printLevel(s, out)
				}
				continue
			case 'r', 'R':
				if err := s.Restart(); err != nil {
					fmt.Fprintln(out, err)
				} else {
					printLevel(s, out)
				}
				continue
			}
			d := session.KeyDirection(r)
			if d == hex.NoDirection {
				continue
			}
			st := s.Move(d)
			fmt.Fprintf(out, "%v -> %v (%s)\n", d, s.State(), st)
		}
	}

	return sc.Err()
}

func (e *env) hint(s *session.Session, out io.Writer) {
	res, err := s.Hint()
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if !res.Found {
		fmt.Fprintln(out, "hint: no path")
		return
	}
	dirs, err := solver.Directions(res.Path.Forward())
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintf(out, "hint: %s\n", joinDirections(dirs))
}

func printLevel(s *session.Session, out io.Writer) {
	fmt.Fprintf(out, "level %d\n%s", s.Level(), s.Board().String())
}

func joinDirections(dirs []hex.Direction) string {
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}

	return strings.Join(names, " ")
}
