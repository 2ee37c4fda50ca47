// Package config loads hexworm settings from YAML.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default.
//
//	generator:
//	  seed: 7
//	  steps: 30
//	  directions: [sw, se, e, w]
//	solver:
//	  strategy: bfs
//	  max_moves: 40
//	log:
//	  level: debug
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexworm/hex"
	"github.com/katalvlaran/hexworm/levelgen"
	"github.com/katalvlaran/hexworm/session"
	"github.com/katalvlaran/hexworm/solver"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all hexworm settings.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Solver    SolverConfig    `yaml:"solver"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
}

// GeneratorConfig holds level generator settings.
type GeneratorConfig struct {
	Seed         int64    `yaml:"seed"` // 0 picks a fresh seed per run
	Steps        int      `yaml:"steps"`
	BranchChance float64  `yaml:"branch_chance"`
	BranchLength int      `yaml:"branch_length"`
	Directions   []string `yaml:"directions"`
}

// SolverConfig holds path solver settings.
type SolverConfig struct {
	Strategy string `yaml:"strategy"`  // uniform-cost or breadth-first
	MaxMoves int    `yaml:"max_moves"` // 0: unbounded
}

// SessionConfig holds game session settings.
type SessionConfig struct {
	SolvableOnly bool `yaml:"solvable_only"`
	MaxAttempts  int  `yaml:"max_attempts"`
	Premade      bool `yaml:"premade"` // play the hand-built levels first
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() *Config {
	dirs := levelgen.DefaultDirections()
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}

	return &Config{
		Generator: GeneratorConfig{
			Steps:        levelgen.DefaultSteps,
			BranchChance: levelgen.DefaultBranchChance,
			BranchLength: levelgen.DefaultBranchLength,
			Directions:   names,
		},
		Solver:  SolverConfig{Strategy: solver.UniformCost.String()},
		Session: SessionConfig{SolvableOnly: true, MaxAttempts: session.DefaultMaxAttempts},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from a YAML file on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every value. Errors wrap ErrInvalid or the parsing
// error of the offending field.
func (c *Config) Validate() error {
	g := c.Generator
	if g.Steps < 0 {
		return fmt.Errorf("%w: generator.steps %d < 0", ErrInvalid, g.Steps)
	}
	if math.IsNaN(g.BranchChance) || g.BranchChance < 0 || g.BranchChance > 1 {
		return fmt.Errorf("%w: generator.branch_chance %v not in [0,1]", ErrInvalid, g.BranchChance)
	}
	if g.BranchLength < 0 {
		return fmt.Errorf("%w: generator.branch_length %d < 0", ErrInvalid, g.BranchLength)
	}
	if _, err := c.directions(); err != nil {
		return err
	}
	if _, err := solver.ParseStrategy(c.Solver.Strategy); err != nil {
		return fmt.Errorf("solver.strategy: %w", err)
	}
	if c.Solver.MaxMoves < 0 {
		return fmt.Errorf("%w: solver.max_moves %d < 0", ErrInvalid, c.Solver.MaxMoves)
	}
	if c.Session.MaxAttempts < 1 {
		return fmt.Errorf("%w: session.max_attempts %d < 1", ErrInvalid, c.Session.MaxAttempts)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

func (c *Config) directions() ([]hex.Direction, error) {
	if len(c.Generator.Directions) == 0 {
		return nil, fmt.Errorf("%w: generator.directions is empty", ErrInvalid)
	}
	out := make([]hex.Direction, 0, len(c.Generator.Directions))
	for _, name := range c.Generator.Directions {
		d, err := hex.ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("generator.directions: %w", err)
		}
		out = append(out, d)
	}

	return out, nil
}

func (c *Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return lvl, nil
}

// GeneratorOptions converts the generator section into levelgen options.
// The seed is not included; see Seed. Call on a validated Config.
func (c *Config) GeneratorOptions() []levelgen.Option {
	dirs, err := c.directions()
	if err != nil {
		dirs = levelgen.DefaultDirections()
	}

	return []levelgen.Option{
		levelgen.WithSteps(c.Generator.Steps),
		levelgen.WithBranchChance(c.Generator.BranchChance),
		levelgen.WithBranchLength(c.Generator.BranchLength),
		levelgen.WithDirections(dirs...),
	}
}

// Seed returns the configured seed, or fallback when the seed is 0.
func (c *Config) Seed(fallback int64) int64 {
	if c.Generator.Seed == 0 {
		return fallback
	}
	return c.Generator.Seed
}

// SolverOptions converts the solver section into solver options.
func (c *Config) SolverOptions(log *slog.Logger) ([]solver.Option, error) {
	st, err := solver.ParseStrategy(c.Solver.Strategy)
	if err != nil {
		return nil, err
	}
	opts := []solver.Option{solver.WithStrategy(st), solver.WithMaxMoves(c.Solver.MaxMoves)}
	if log != nil {
		opts = append(opts, solver.WithLogger(log))
	}

	return opts, nil
}

// SessionOptions converts the whole configuration into session options
// seeded with seed.
func (c *Config) SessionOptions(seed int64, log *slog.Logger) ([]session.Option, error) {
	solverOpts, err := c.SolverOptions(log)
	if err != nil {
		return nil, err
	}
	opts := []session.Option{
		session.WithSeed(seed),
		session.WithGenerator(c.GeneratorOptions()...),
		session.WithSolverOptions(solverOpts...),
	}
	if c.Session.SolvableOnly {
		opts = append(opts, session.WithSolvableOnly(c.Session.MaxAttempts))
	}
	if c.Session.Premade {
		opts = append(opts, session.WithPremadeLevels())
	}
	if log != nil {
		opts = append(opts, session.WithLogger(log))
	}

	return opts, nil
}

// NewLogger builds a slog logger writing to w per the log section.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}
