// Package geom provides the integer geometry primitives used by the input
// pipeline: screen points and axis-aligned rectangles with inclusive
// containment on both edges.
package geom

import "fmt"

// Point represents a screen coordinate.
type Point struct {
	X int32
	Y int32
}

// Pt is a shorthand constructor for Point.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// In reports whether the point lies inside the rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect represents an axis-aligned rectangle anchored at its top-left corner.
// Unlike half-open screen rectangles, both edges are inclusive: a point on
// the right or bottom edge counts as inside. Width and Height may be
// negative, in which case the rectangle contains no points.
type Rect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// NewRect creates a rectangle from its top-left corner and extents.
func NewRect(x, y, width, height int32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains reports whether the point (px, py) lies inside the rectangle.
// Both edges are inclusive: Contains(r.X, r.Y) and
// Contains(r.X+r.Width, r.Y+r.Height) are true for non-negative extents.
func (r Rect) Contains(px, py int32) bool {
	dx := px - r.X
	dy := py - r.Y

	return 0 <= dx && dx <= r.Width &&
		0 <= dy && dy <= r.Height
}

// Empty reports whether the rectangle can contain no points.
func (r Rect) Empty() bool {
	return r.Width < 0 || r.Height < 0
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
