// SPDX-License-Identifier: MIT
// Package: hexworm/levelgen
//
// config.go: generator knobs and their defaults.
//
// Defaults:
//   • steps        = 20
//   • branchChance = 1/3
//   • branchLength = 3
//   • directions   = SouthWest, SouthEast, East, West
//   • rng          = nil (Generate fails with ErrNeedRandSource)

package levelgen

import (
	"math/rand"

	"github.com/katalvlaran/hexworm/hex"
)

const (
	// DefaultSteps is the number of walk iterations.
	DefaultSteps = 20

	// DefaultBranchChance is the per-step probability of scattering a branch.
	DefaultBranchChance = 1.0 / 3.0

	// DefaultBranchLength is the number of cells scattered per branch.
	DefaultBranchLength = 3
)

// DefaultDirections returns the walk directions used when none are given.
// The walk never moves NorthWest or NorthEast, so levels drift downward.
func DefaultDirections() []hex.Direction {
	return []hex.Direction{hex.SouthWest, hex.SouthEast, hex.East, hex.West}
}

// genConfig aggregates every generator knob. Options mutate it in order;
// later options override earlier ones.
type genConfig struct {
	rng          *rand.Rand
	steps        int
	branchChance float64
	branchLength int
	directions   []hex.Direction
}

func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		steps:        DefaultSteps,
		branchChance: DefaultBranchChance,
		branchLength: DefaultBranchLength,
		directions:   DefaultDirections(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
