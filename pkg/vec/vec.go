// Package vec models 2D vectors over 64-bit integers. The widened width
// gives enough headroom to multiply two 32-bit fixed-point coordinate
// deltas in a cross product without overflow.
package vec

import (
	"strconv"

	"github.com/kass/go-geo-kernel/pkg/geo"
)

// Vec is a 2D integer vector, representing either a planar point or a
// direction.
type Vec struct {
	X int64
	Y int64
}

// New creates a vector from raw components.
func New(x, y int64) Vec {
	return Vec{X: x, Y: y}
}

// FromCoordinate creates a vector from a fixed-point coordinate, mapping
// longitude to x and latitude to y.
func FromCoordinate(c geo.Coordinate) Vec {
	return Vec{X: int64(c.Lon), Y: int64(c.Lat)}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Cross returns the 2D cross product of v and o: the signed area of the
// parallelogram the two vectors span. The sign encodes orientation.
func (v Vec) Cross(o Vec) int64 {
	return v.X*o.Y - v.Y*o.X
}

// Scale returns the vector scaled by s, with each component truncated back
// to an integer.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: int64(s * float64(v.X)), Y: int64(s * float64(v.Y))}
}

// Equal reports exact component-wise equality.
func (v Vec) Equal(o Vec) bool {
	return v.X == o.X && v.Y == o.Y
}

func (v Vec) String() string {
	return "(" + strconv.FormatInt(v.X, 10) + "," + strconv.FormatInt(v.Y, 10) + ")"
}

// Orientation reports the turn direction of the path a→b→c: +1 for a left
// (counterclockwise) turn, -1 for a right turn, 0 for collinear points.
func Orientation(a, b, c Vec) int {
	cross := b.Sub(a).Cross(c.Sub(a))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	}
	return 0
}

// RingArea2 returns twice the signed area of the closed ring, positive for
// counterclockwise winding. The ring may be given with or without the
// closing point repeated.
func RingArea2(ring []Vec) int64 {
	if len(ring) < 3 {
		return 0
	}
	var area int64
	prev := ring[len(ring)-1]
	for _, cur := range ring {
		area += prev.Cross(cur)
		prev = cur
	}
	return area
}
