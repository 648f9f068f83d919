package geom

import (
	"image"
	"slices"

	"github.com/gogpu/gg"
)

// SignedArea returns the shoelace area of a ring. The sign is positive when
// the ring turns counter-clockwise in a y-up frame, which is clockwise on a
// y-down screen.
func SignedArea(ring []gg.Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		a := ring[i]
		b := ring[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// IsClockwise reports whether ring is clockwise in a y-up frame.
func IsClockwise(ring []gg.Point) bool {
	return SignedArea(ring) < 0
}

// Oriented returns ring with the requested winding. The input is returned
// unchanged when it already has it, otherwise a reversed copy.
func Oriented(ring []gg.Point, clockwise bool) []gg.Point {
	if len(ring) < 3 || IsClockwise(ring) == clockwise {
		return ring
	}
	out := slices.Clone(ring)
	slices.Reverse(out)
	return out
}

// CloseRing appends the first corner when the ring does not end on it.
func CloseRing(ring []image.Point) []image.Point {
	if len(ring) == 0 || ring[0] == ring[len(ring)-1] {
		return ring
	}
	return append(ring, ring[0])
}
