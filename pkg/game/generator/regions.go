package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/spawn"
)

// DistanceFunc selects how VoronoiRegions measures distance to a seed
type DistanceFunc int

const (
	// DistanceSquaredEuclidean compares dx*dx + dy*dy
	DistanceSquaredEuclidean DistanceFunc = iota
	// DistanceManhattan compares dx + dy
	DistanceManhattan
	// DistanceChebyshev compares max(dx, dy)
	DistanceChebyshev
)

func (d DistanceFunc) String() string {
	switch d {
	case DistanceSquaredEuclidean:
		return "euclidean"
	case DistanceManhattan:
		return "manhattan"
	case DistanceChebyshev:
		return "chebyshev"
	default:
		return fmt.Sprintf("distance(%d)", int(d))
	}
}

// ParseDistanceFunc parses a distance function name. "maximum" is accepted
// as an alias for chebyshev.
func ParseDistanceFunc(s string) (DistanceFunc, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euclidean":
		return DistanceSquaredEuclidean, nil
	case "manhattan":
		return DistanceManhattan, nil
	case "chebyshev", "maximum":
		return DistanceChebyshev, nil
	}
	return 0, fmt.Errorf("%w: distance function %q", ErrInvalidParameters, s)
}

// Measure returns the distance between a and b
func (d DistanceFunc) Measure(a, b world.Point) int {
	dx, dy := absDiff(a.X, b.X), absDiff(a.Y, b.Y)
	switch d {
	case DistanceManhattan:
		return dx + dy
	case DistanceChebyshev:
		return max(dx, dy)
	default:
		return dx*dx + dy*dy
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// VoronoiRegions scatters Count seed points over the whole map and assigns
// every interior floor tile to its closest seed. Ties go to the lower seed.
type VoronoiRegions struct {
	Count    int
	Distance DistanceFunc
}

// Name returns the name of this modifier
func (VoronoiRegions) Name() string {
	return "voronoi_regions"
}

// Modify sets Metadata.Regions and Metadata.RegionSeeds. Regions may be empty.
func (v VoronoiRegions) Modify(rng *rand.Rand, ctx *BuildContext) error {
	if v.Count < 1 {
		return fmt.Errorf("%w: region count %d", ErrInvalidParameters, v.Count)
	}
	grid := ctx.Grid
	w, h := grid.Width(), grid.Height()

	seeds := make([]world.Point, v.Count)
	for i := range seeds {
		x := rng.Intn(w)
		y := rng.Intn(h)
		seeds[i] = world.Pt(x, y)
	}

	regions := make([][]world.Point, v.Count)
	for i := range regions {
		regions[i] = []world.Point{}
	}
	for x := 1; x < w-1; x++ {
		for y := 1; y < h-1; y++ {
			if grid.Tile(y*w+x) != world.Floor {
				continue
			}
			p := world.Pt(x, y)
			closest := v.closest(p, seeds)
			regions[closest] = append(regions[closest], p)
		}
	}

	ctx.Metadata.Regions = regions
	ctx.Metadata.RegionSeeds = seeds
	ctx.Logger().Debug("regions assigned", "count", v.Count, "distance", v.Distance)
	return nil
}

func (v VoronoiRegions) closest(p world.Point, seeds []world.Point) int {
	best, bestDist := 0, -1
	for i, s := range seeds {
		d := v.Distance.Measure(p, s)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// RegionBasedSpawner populates every region with up to MaxSpawns entries
// rolled from Table, or from the default table when Table is nil.
type RegionBasedSpawner struct {
	MaxSpawns int
	Table     *random.Table[spawn.Kind]
}

// Name returns the name of this modifier
func (RegionBasedSpawner) Name() string {
	return "region_based_spawner"
}

// Modify fills each region in order and snapshots after merging each one
func (s RegionBasedSpawner) Modify(rng *rand.Rand, ctx *BuildContext) error {
	regions, err := ctx.requireRegions()
	if err != nil {
		return err
	}
	if s.MaxSpawns < 0 {
		return fmt.Errorf("%w: max_spawns=%d", ErrInvalidParameters, s.MaxSpawns)
	}
	table := tableOrDefault(s.Table)

	lists := make([]spawn.List, 0, len(regions))
	for _, region := range regions {
		lists = append(lists, fillRegion(rng, region, s.MaxSpawns, table))
	}
	for _, l := range lists {
		ctx.Metadata.Spawns.Extend(l)
		ctx.TakeSnapshot()
	}
	return nil
}
