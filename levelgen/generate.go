package levelgen

import (
	"github.com/katalvlaran/hexworm/board"
	"github.com/katalvlaran/hexworm/hex"
)

// Generate builds a random level by walking from the origin.
//
// Each step, with probability branchChance, scatters branchLength cells
// around the current cell (each at current + a random direction, the
// current cell does not move), then advances one random direction and
// keeps the new cell. The final cell becomes the goal. Start and goal are
// padded with their full one-ring so both can always be stood on and
// stretched away from.
//
// Returns ErrNeedRandSource when no source was configured.
// Complexity: O(steps * branchLength).
func Generate(opts ...Option) (*board.Board, error) {
	cfg := newGenConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	pick := func() hex.Direction {
		return cfg.directions[cfg.rng.Intn(len(cfg.directions))]
	}

	bld := board.NewBuilder()
	start := hex.Coord{}
	current := start
	for i := 0; i < cfg.steps; i++ {
		if cfg.rng.Float64() < cfg.branchChance {
			for j := 0; j < cfg.branchLength; j++ {
				bld.Add(current.Neighbor(pick()))
			}
		}
		current = current.Neighbor(pick())
		bld.Add(current)
	}
	goal := current

	bld.Add(start, goal)
	bld.Add(start.Ring(1)...)
	bld.Add(goal.Ring(1)...)

	return bld.Build(start, goal)
}
