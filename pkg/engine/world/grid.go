package world

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size map of tiles stored row-major.
// Index of (x, y) is y*width + x.
type Grid struct {
	width  int
	height int
	tiles  []TileType
}

// NewGrid creates a new grid with the given dimensions, filled with walls
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]TileType, width*height),
	}, nil
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of tiles in the grid
func (g *Grid) Len() int {
	return len(g.tiles)
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
// This ensures a 1-cell wall border around the entire map
func (g *Grid) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.InBounds(x, y) && !g.IsPlayablePosition(x, y)
}

// XYToIndex transforms an (x, y) position into the linear tile index
func (g *Grid) XYToIndex(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutsideMap, x, y, g.width, g.height)
	}
	return y*g.width + x, nil
}

// IndexToXY transforms a linear tile index into its (x, y) position
func (g *Grid) IndexToXY(idx int) (Point, error) {
	if idx < 0 || idx >= len(g.tiles) {
		return Point{}, fmt.Errorf("%w: index %d on %dx%d", ErrOutsideMap, idx, g.width, g.height)
	}
	return Point{X: idx % g.width, Y: idx / g.width}, nil
}

// Tile returns the tile at a linear index. The index must be valid.
func (g *Grid) Tile(idx int) TileType {
	return g.tiles[idx]
}

// SetTile sets the tile at a linear index. The index must be valid.
func (g *Grid) SetTile(idx int, t TileType) {
	g.tiles[idx] = t
}

// At returns the tile at the given position, or ErrOutsideMap
func (g *Grid) At(p Point) (TileType, error) {
	idx, err := g.XYToIndex(p.X, p.Y)
	if err != nil {
		return Wall, err
	}
	return g.tiles[idx], nil
}

// Set sets the tile at the given position. Returns ErrOutsideMap if out of bounds.
func (g *Grid) Set(p Point, t TileType) error {
	idx, err := g.XYToIndex(p.X, p.Y)
	if err != nil {
		return err
	}
	g.tiles[idx] = t
	return nil
}

// IsFloor reports whether p is inside the grid and a floor tile
func (g *Grid) IsFloor(p Point) bool {
	t, err := g.At(p)
	return err == nil && t == Floor
}

// Fill sets every tile to t
func (g *Grid) Fill(t TileType) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// CountFloor returns the number of floor tiles
func (g *Grid) CountFloor() int {
	n := 0
	for _, t := range g.tiles {
		if t == Floor {
			n++
		}
	}
	return n
}

// Tiles returns a copy of the tile sequence in index order
func (g *Grid) Tiles() []TileType {
	out := make([]TileType, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// ReplaceTiles swaps in a full tile buffer of the same length
func (g *Grid) ReplaceTiles(tiles []TileType) {
	if len(tiles) != len(g.tiles) {
		panic(fmt.Sprintf("world: replacing %d tiles with %d", len(g.tiles), len(tiles)))
	}
	g.tiles = tiles
}

// ForEachTile iterates over all tiles in index order, calling the provided function for each
func (g *Grid) ForEachTile(fn func(p Point, t TileType)) {
	for idx, t := range g.tiles {
		fn(Point{X: idx % g.width, Y: idx / g.width}, t)
	}
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		tiles:  g.Tiles(),
	}
}

// Equal reports whether both grids have the same size and tiles
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, t := range g.tiles {
		if other.tiles[i] != t {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for walls and '.' for floors, one row per line
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x] == Floor {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
