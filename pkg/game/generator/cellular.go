package generator

import (
	"fmt"
	"math/rand"

	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/engine/world"
)

// CellularAutomata fills the interior with random floor and then smooths it:
// a tile becomes wall when its count of wall neighbours is listed in
// NeighborsForWall, floor otherwise. The border is never touched.
type CellularAutomata struct {
	Iterations       int
	FloorLikelihood  float64
	NeighborsForWall []int
}

// DefaultNeighborsForWall turns open areas and dense rock into wall and
// leaves tiles with one to four wall neighbours as floor.
var DefaultNeighborsForWall = []int{0, 5, 6, 7, 8}

// NewCellularAutomata creates a cellular automata builder
func NewCellularAutomata(iterations int, floorLikelihood float64, neighborsForWall []int) *CellularAutomata {
	return &CellularAutomata{
		Iterations:       iterations,
		FloorLikelihood:  floorLikelihood,
		NeighborsForWall: neighborsForWall,
	}
}

// Name returns the name of this builder
func (b *CellularAutomata) Name() string {
	return "cellular_automata"
}

func (b *CellularAutomata) rules(grid *world.Grid) ([9]bool, error) {
	var wallAt [9]bool
	if b.Iterations < 0 || b.FloorLikelihood < 0 || b.FloorLikelihood > 1 {
		return wallAt, fmt.Errorf("%w: iterations=%d floor_likelihood=%v",
			ErrInvalidParameters, b.Iterations, b.FloorLikelihood)
	}
	if grid.Width() < 3 || grid.Height() < 3 {
		return wallAt, fmt.Errorf("%w: %dx%d has no interior", ErrGridTooSmall, grid.Width(), grid.Height())
	}
	for _, n := range b.NeighborsForWall {
		if n < 0 || n > 8 {
			return wallAt, fmt.Errorf("%w: neighbour count %d", ErrInvalidParameters, n)
		}
		wallAt[n] = true
	}
	return wallAt, nil
}

// Build randomises the interior and runs the smoothing iterations
func (b *CellularAutomata) Build(rng *rand.Rand, ctx *BuildContext) error {
	grid := ctx.Grid
	wallAt, err := b.rules(grid)
	if err != nil {
		return err
	}
	w, h := grid.Width(), grid.Height()

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if random.Chance(rng, b.FloorLikelihood) {
				grid.SetTile(y*w+x, world.Floor)
			} else {
				grid.SetTile(y*w+x, world.Wall)
			}
		}
	}
	ctx.TakeSnapshot()

	for i := 0; i < b.Iterations; i++ {
		next := grid.Tiles()
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				idx := y*w + x
				if wallAt[wallNeighbours(grid, idx)] {
					next[idx] = world.Wall
				} else {
					next[idx] = world.Floor
				}
			}
		}
		grid.ReplaceTiles(next)
		ctx.TakeSnapshot()
	}

	ctx.Logger().Debug("cellular automata settled", "iterations", b.Iterations, "floor", grid.CountFloor())
	return nil
}

// wallNeighbours counts walls among the eight neighbours of an interior index
func wallNeighbours(grid *world.Grid, idx int) int {
	w := grid.Width()
	n := 0
	for _, off := range [8]int{-1, 1, -w, w, -w - 1, -w + 1, w - 1, w + 1} {
		if grid.Tile(idx+off) == world.Wall {
			n++
		}
	}
	return n
}
