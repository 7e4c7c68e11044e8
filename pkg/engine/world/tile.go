// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// TileType classifies a single cell of the map grid
type TileType uint8

// Tile types. Wall is the zero value so a fresh grid is solid rock.
const (
	Wall TileType = iota
	Floor
)

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	default:
		return "Unknown"
	}
}

// Point is an (x, y) map coordinate. x grows to the east, y to the south.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String formats the point as "x,y"
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p offset by the given deltas
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
