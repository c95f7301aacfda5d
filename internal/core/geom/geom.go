// Package geom holds the small spatial types shared by the world, camera,
// combat and renderer packages.
package geom

import "math"

// Point represents a continuous position in tile units.
type Point struct {
	X, Y float64
}

// Coord represents a tile coordinate.
type Coord struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Offset()
	return c.Add(dx, dy)
}

// Center returns the continuous position of the tile centre.
func (c Coord) Center() Point {
	return Point{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// Manhattan returns |dx| + |dy| between two coordinates.
func Manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev returns max(|dx|, |dy|), the 8-directional step distance.
func Chebyshev(a, b Coord) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// Euclidean returns the straight-line distance between two coordinates.
func Euclidean(a, b Coord) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Adjacent8 reports whether b is one of the 8 tiles surrounding a.
func Adjacent8(a, b Coord) bool {
	return a != b && Chebyshev(a, b) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
