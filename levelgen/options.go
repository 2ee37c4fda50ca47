// SPDX-License-Identifier: MIT
// Package: hexworm/levelgen
//
// options.go: functional options for Generate.
//
// Option constructors validate their arguments and panic on meaningless
// input; Generate itself never panics.

package levelgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hexworm/hex"
)

// Option customizes a generator run.
type Option func(*genConfig)

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("levelgen: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// WithSeed seeds a fresh source; the same seed and options give the same
// board.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSteps sets the number of walk iterations. Panics if n < 0.
func WithSteps(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("levelgen: WithSteps(%d): negative", n))
	}
	return func(c *genConfig) { c.steps = n }
}

// WithBranchChance sets the per-step branch probability. Panics outside [0,1].
func WithBranchChance(p float64) Option {
	if p < 0 || p > 1 || p != p {
		panic(fmt.Sprintf("levelgen: WithBranchChance(%v): want [0,1]", p))
	}
	return func(c *genConfig) { c.branchChance = p }
}

// WithBranchLength sets the number of cells per branch. Panics if n < 0.
func WithBranchLength(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("levelgen: WithBranchLength(%d): negative", n))
	}
	return func(c *genConfig) { c.branchLength = n }
}

// WithDirections sets the directions the walk and branches draw from.
// Panics on an empty list or an invalid direction.
func WithDirections(dirs ...hex.Direction) Option {
	if len(dirs) == 0 {
		panic("levelgen: WithDirections(): empty")
	}
	for _, d := range dirs {
		if !d.Valid() {
			panic(fmt.Sprintf("levelgen: WithDirections: invalid direction %d", int(d)))
		}
	}
	own := append([]hex.Direction(nil), dirs...)

	return func(c *genConfig) { c.directions = own }
}
