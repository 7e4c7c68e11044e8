package generator

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/spawn"
)

// ArbitraryStartingPoint picks a random index and starts the player on the
// nearest floor tile at or after it, searching backwards if none follows.
type ArbitraryStartingPoint struct{}

// Name returns the name of this modifier
func (ArbitraryStartingPoint) Name() string {
	return "arbitrary_starting_point"
}

// Modify sets Metadata.StartingPosition
func (ArbitraryStartingPoint) Modify(rng *rand.Rand, ctx *BuildContext) error {
	start, err := findFloorNear(ctx.Grid, rng.Intn(ctx.Grid.Len()))
	if err != nil {
		return err
	}
	ctx.Metadata.StartingPosition = &start
	ctx.Logger().Debug("starting position chosen", "pos", start)
	return nil
}

// GeneralObjectiveSpawner places the objective on a floor tile found the same
// way ArbitraryStartingPoint finds the start. The tile may already be taken.
type GeneralObjectiveSpawner struct {
	Kind spawn.Kind
}

// Name returns the name of this modifier
func (GeneralObjectiveSpawner) Name() string {
	return "general_objective_spawner"
}

// Modify inserts the objective into the spawn list
func (s GeneralObjectiveSpawner) Modify(rng *rand.Rand, ctx *BuildContext) error {
	if !s.Kind.IsValid() {
		return fmt.Errorf("%w: %v", spawn.ErrUnknownKind, s.Kind)
	}
	pos, err := findFloorNear(ctx.Grid, rng.Intn(ctx.Grid.Len()))
	if err != nil {
		return err
	}
	ctx.Metadata.Spawns.Insert(pos, s.Kind)
	return nil
}

// CullUnreachable turns every floor tile that cannot be walked to from the
// starting position into wall. Movement is orthogonal only.
type CullUnreachable struct{}

// Name returns the name of this modifier
func (CullUnreachable) Name() string {
	return "cull_unreachable"
}

// Modify walls off unreachable floor
func (CullUnreachable) Modify(_ *rand.Rand, ctx *BuildContext) error {
	start, err := ctx.requireStart()
	if err != nil {
		return err
	}
	grid := ctx.Grid
	reachable := ReachableFrom(grid, start)

	culled := 0
	for idx := 0; idx < grid.Len(); idx++ {
		if grid.Tile(idx) == world.Wall {
			continue
		}
		pos, err := grid.IndexToXY(idx)
		if err != nil {
			return err
		}
		if pos == start || reachable.Has(pos) {
			continue
		}
		grid.SetTile(idx, world.Wall)
		culled++
	}
	ctx.Logger().Debug("unreachable floor culled", "culled", culled, "reachable", reachable.Size())
	return nil
}

// ReachableFrom returns every floor tile connected to start by orthogonal
// steps over floor. start itself is included even when it is not floor.
func ReachableFrom(grid *world.Grid, start world.Point) mapset.Set[world.Point] {
	visited := mapset.New[world.Point]()
	visited.Put(start)
	queue := []world.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range world.OrthogonalNeighbors(current) {
			if visited.Has(next) || !grid.IsFloor(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}
