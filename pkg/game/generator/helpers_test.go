package generator

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/engine/world"
)

// stageFunc adapts a function to both stage interfaces
type stageFunc struct {
	name string
	fn   func(rng *rand.Rand, ctx *BuildContext) error
}

func (s stageFunc) Name() string { return s.name }

func (s stageFunc) Build(rng *rand.Rand, ctx *BuildContext) error { return s.fn(rng, ctx) }

func (s stageFunc) Modify(rng *rand.Rand, ctx *BuildContext) error { return s.fn(rng, ctx) }

func noop(name string) stageFunc {
	return stageFunc{name: name, fn: func(*rand.Rand, *BuildContext) error { return nil }}
}

// newTestContext returns an all-wall context with history enabled
func newTestContext(t *testing.T, width, height int) *BuildContext {
	t.Helper()
	grid, err := world.NewGrid(width, height)
	require.NoError(t, err)
	return newBuildContext(grid, slog.New(slog.NewTextHandler(io.Discard, nil)), true)
}

// carveAll turns the listed points into floor
func carveAll(t *testing.T, grid *world.Grid, points ...world.Point) {
	t.Helper()
	for _, p := range points {
		require.NoError(t, grid.Set(p, world.Floor))
	}
}

// carveInterior turns every non-perimeter tile into floor
func carveInterior(grid *world.Grid) {
	for y := 1; y < grid.Height()-1; y++ {
		for x := 1; x < grid.Width()-1; x++ {
			grid.SetTile(y*grid.Width()+x, world.Floor)
		}
	}
}

func newRand(seed uint64) *rand.Rand {
	return random.New(seed)
}

func mustAt(t *testing.T, grid *world.Grid, p world.Point) world.TileType {
	t.Helper()
	tile, err := grid.At(p)
	require.NoError(t, err)
	return tile
}
