package generator

import (
	"darkdelve/pkg/engine/world"
)

// carveFloor turns p into floor. Points outside the map are logged and skipped.
func (c *BuildContext) carveFloor(p world.Point) {
	if err := c.Grid.Set(p, world.Floor); err != nil {
		c.Logger().Warn("cannot carve floor", "pos", p, "err", err)
	}
}

// carveRoom carves the interior of room, leaving its border as wall
func carveRoom(ctx *BuildContext, room world.Rect) {
	for _, p := range room.Interior() {
		ctx.carveFloor(p)
	}
}

// carveCorridor digs an L-shaped corridor between two points. With
// horizontalFirst the corridor runs along from.Y then turns at to.X;
// otherwise it runs along from.X then turns at to.Y.
func carveCorridor(ctx *BuildContext, from, to world.Point, horizontalFirst bool) {
	if horizontalFirst {
		carveHorizontal(ctx, from.Y, from.X, to.X)
		carveVertical(ctx, to.X, from.Y, to.Y)
		return
	}
	carveVertical(ctx, from.X, from.Y, to.Y)
	carveHorizontal(ctx, to.Y, from.X, to.X)
}

// carveHorizontal carves row y between x1 and x2 inclusive
func carveHorizontal(ctx *BuildContext, y, x1, x2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		ctx.carveFloor(world.Pt(x, y))
	}
}

// carveVertical carves column x between y1 and y2 inclusive
func carveVertical(ctx *BuildContext, x, y1, y2 int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		ctx.carveFloor(world.Pt(x, y))
	}
}

// findFloorNear scans forward from idx for the first floor tile, then
// backward from idx-1 if none was found.
func findFloorNear(grid *world.Grid, idx int) (world.Point, error) {
	for i := idx; i < grid.Len(); i++ {
		if grid.Tile(i) == world.Floor {
			return grid.IndexToXY(i)
		}
	}
	for i := idx - 1; i >= 0; i-- {
		if grid.Tile(i) == world.Floor {
			return grid.IndexToXY(i)
		}
	}
	return world.Point{}, ErrNoFloor
}
