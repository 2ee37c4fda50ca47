package levelgen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexworm/hex"
	"github.com/katalvlaran/hexworm/levelgen"
)

func TestGenerate_NeedsRandSource(t *testing.T) {
	_, err := levelgen.Generate()
	require.ErrorIs(t, err, levelgen.ErrNeedRandSource)
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		a, err := levelgen.Generate(levelgen.WithSeed(seed))
		require.NoError(t, err)
		b, err := levelgen.Generate(levelgen.WithRand(rand.New(rand.NewSource(seed))))
		require.NoError(t, err)

		assert.Equal(t, a.Cells(), b.Cells(), "seed %d", seed)
		assert.Equal(t, a.Goal(), b.Goal(), "seed %d", seed)
	}
}

func TestGenerate_Halos(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b, err := levelgen.Generate(levelgen.WithSeed(seed))
		require.NoError(t, err)

		assert.Equal(t, hex.Coord{}, b.Start())
		for _, c := range b.Start().Spiral(1) {
			assert.True(t, b.Contains(c), "seed %d: start halo misses %v", seed, c)
		}
		for _, c := range b.Goal().Spiral(1) {
			assert.True(t, b.Contains(c), "seed %d: goal halo misses %v", seed, c)
		}
	}
}

// TestGenerate_DefaultDirectionsDriftDown checks that the walk never moves
// up: with only SW, SE, E and W available, r never decreases, and the
// goal is dumped on or below the start row.
func TestGenerate_DefaultDirectionsDriftDown(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b, err := levelgen.Generate(levelgen.WithSeed(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, b.Goal().R(), 0, "seed %d", seed)
		for _, c := range b.Cells() {
			assert.GreaterOrEqual(t, c.R(), -1, "seed %d: cell %v above the start halo", seed, c)
		}
		assert.LessOrEqual(t, hex.Distance(b.Start(), b.Goal()), levelgen.DefaultSteps)
	}
}

func TestGenerate_StraightWalk(t *testing.T) {
	b, err := levelgen.Generate(
		levelgen.WithSeed(1),
		levelgen.WithSteps(5),
		levelgen.WithBranchChance(0),
		levelgen.WithDirections(hex.East),
	)
	require.NoError(t, err)
	assert.Equal(t, hex.Axial(5, 0), b.Goal())
	// Origin spiral (7) + walk cells (2,0)..(5,0) (4) + new goal halo cells (5).
	assert.Equal(t, 16, b.Len())
}

func TestGenerate_ZeroSteps(t *testing.T) {
	b, err := levelgen.Generate(levelgen.WithSeed(3), levelgen.WithSteps(0))
	require.NoError(t, err)
	assert.Equal(t, b.Start(), b.Goal())
	assert.Equal(t, 7, b.Len())
}

// TestGenerate_BranchesHugTheWalker checks that branch cells are placed
// one step from the current cell: with East as the only direction every
// branch cell coincides with the next walk cell.
func TestGenerate_BranchesHugTheWalker(t *testing.T) {
	plain, err := levelgen.Generate(
		levelgen.WithSeed(9), levelgen.WithBranchChance(0), levelgen.WithDirections(hex.East),
	)
	require.NoError(t, err)
	branched, err := levelgen.Generate(
		levelgen.WithSeed(9), levelgen.WithBranchChance(1), levelgen.WithBranchLength(3),
		levelgen.WithDirections(hex.East),
	)
	require.NoError(t, err)
	assert.Equal(t, plain.Cells(), branched.Cells())
	assert.Equal(t, hex.Axial(levelgen.DefaultSteps, 0), branched.Goal())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { levelgen.WithRand(nil) })
	assert.Panics(t, func() { levelgen.WithSteps(-1) })
	assert.Panics(t, func() { levelgen.WithBranchChance(-0.1) })
	assert.Panics(t, func() { levelgen.WithBranchChance(1.5) })
	assert.Panics(t, func() { levelgen.WithBranchLength(-2) })
	assert.Panics(t, func() { levelgen.WithDirections() })
	assert.Panics(t, func() { levelgen.WithDirections(hex.NoDirection) })
	assert.NotPanics(t, func() { levelgen.WithBranchChance(0) })
	assert.NotPanics(t, func() { levelgen.WithBranchChance(1) })
}
