package generator

import (
	"fmt"
	"math/rand"

	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/engine/world"
)

// LineWalker generates maps by walking lines in random directions from the
// map centre, branching off new lines with decreasing probability.
type LineWalker struct {
	BranchProbability float64
	MinRun, MaxRun    int
	ExtraWalks        int
}

// maxBranchProbability keeps the branch recursion shallow
const maxBranchProbability = 0.65

// NewLineWalker creates a line walker builder
func NewLineWalker(branchProbability float64, minRun, maxRun, extraWalks int) *LineWalker {
	return &LineWalker{
		BranchProbability: branchProbability,
		MinRun:            minRun,
		MaxRun:            maxRun,
		ExtraWalks:        extraWalks,
	}
}

// Name returns the name of this builder
func (g *LineWalker) Name() string {
	return "line_walker"
}

// Build walks the four main lines and any extra walks
func (g *LineWalker) Build(rng *rand.Rand, ctx *BuildContext) error {
	if g.MinRun < 1 || g.MaxRun < g.MinRun || g.ExtraWalks < 0 || g.BranchProbability < 0 {
		return fmt.Errorf("%w: branch_probability=%v min_run=%d max_run=%d extra_walks=%d",
			ErrInvalidParameters, g.BranchProbability, g.MinRun, g.MaxRun, g.ExtraWalks)
	}
	grid := ctx.Grid
	if grid.Width() < 3 || grid.Height() < 3 {
		return fmt.Errorf("%w: %dx%d has no interior", ErrGridTooSmall, grid.Width(), grid.Height())
	}
	branchProb := min(g.BranchProbability, maxBranchProbability)

	// The centre is always in the playable area
	center := world.Pt(grid.Width()/2, grid.Height()/2)
	for _, dir := range world.AllDirections() {
		g.walk(rng, ctx, center, dir, branchProb)
	}
	ctx.TakeSnapshot()

	for i := 0; i < g.ExtraWalks; i++ {
		// Extra walks start on carved floor near the centre
		start := center.Add(rng.Intn(5)-2, rng.Intn(5)-2)
		if grid.IsFloor(start) {
			g.walk(rng, ctx, start, randomDirection(rng), branchProb)
		}
	}
	if g.ExtraWalks > 0 {
		ctx.TakeSnapshot()
	}
	return nil
}

// randomDirection returns a random cardinal direction
func randomDirection(rng *rand.Rand) world.Direction {
	return world.Direction(rng.Intn(4))
}

// walk carves a line starting at p in the given direction. Floor is only
// placed within the playable area (not on the perimeter).
func (g *LineWalker) walk(rng *rand.Rand, ctx *BuildContext, p world.Point, dir world.Direction, branchProbability float64) world.Point {
	grid := ctx.Grid
	distance := random.Range(rng, g.MinRun, g.MaxRun)

	for segment := 0; segment < distance; segment++ {
		if grid.IsPlayablePosition(p.X, p.Y) {
			ctx.carveFloor(p)
		}

		next := dir.Step(p)
		// If the next cell would be outside playable area, stop here
		if !grid.IsPlayablePosition(next.X, next.Y) {
			return p
		}

		if random.Chance(rng, branchProbability) {
			g.walk(rng, ctx, p, randomDirection(rng), branchProbability-0.1)
		}
		p = next
	}

	if grid.IsPlayablePosition(p.X, p.Y) {
		ctx.carveFloor(p)
	}
	return p
}
