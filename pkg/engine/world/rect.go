package world

import "fmt"

// Rect is an axis-aligned rectangle between corners (X1, Y1) and (X2, Y2).
// The border belongs to the rectangle; rooms carve only the interior.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rectangle at (x, y) spanning w columns and h rows.
// Negative sizes are a caller error and panic.
func NewRect(x, y, w, h int) Rect {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("world: rect size must not be negative, got %dx%d", w, h))
	}
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersect returns true if r and other overlap or touch (edges inclusive)
func (r Rect) Intersect(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the center of the rectangle, truncated toward the lower corner
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Width returns X2 - X1
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns Y2 - Y1
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// HasInterior reports whether at least one tile lies strictly inside the border
func (r Rect) HasInterior() bool {
	return r.Width() >= 2 && r.Height() >= 2
}

// Interior lists the points strictly inside the border, column by column
func (r Rect) Interior() []Point {
	if !r.HasInterior() {
		return nil
	}
	points := make([]Point, 0, (r.Width()-1)*(r.Height()-1))
	for x := r.X1 + 1; x < r.X2; x++ {
		for y := r.Y1 + 1; y < r.Y2; y++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// Contains reports whether p lies on or inside the border
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// String formats the rectangle as "(x1,y1)-(x2,y2)"
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}
