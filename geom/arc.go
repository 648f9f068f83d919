package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// MinSegmentsPerCircle bounds arc flattening for tiny radii.
const MinSegmentsPerCircle = 8

// ArcSegmentCount returns the number of chords needed to approximate an arc
// of the given radius and sweep (degrees) so that no chord strays further
// than maxError from the true arc. At least one chord is always returned.
func ArcSegmentCount(radius, maxError int, arcDegrees float64) int {
	radius = max(1, radius)
	relError := float64(maxError) / float64(radius)
	if relError > 1 {
		relError = 1
	}

	increment := 180 / math.Pi * math.Acos(1-relError) * 2
	increment = math.Min(360.0/MinSegmentsPerCircle, increment)
	if increment <= 0 {
		increment = 360.0 / MinSegmentsPerCircle
	}

	return max(Round(math.Abs(arcDegrees)/increment), 1)
}

// ArcToChords returns segments+1 points along the arc from startAngle to
// endAngle (radians) around center.
func ArcToChords(center gg.Point, radius, startAngle, endAngle float64, segments int) []gg.Point {
	segments = max(segments, 1)
	pts := make([]gg.Point, 0, segments+1)
	step := (endAngle - startAngle) / float64(segments)
	for i := 0; i <= segments; i++ {
		s, c := math.Sincos(startAngle + step*float64(i))
		pts = append(pts, gg.Pt(center.X+radius*c, center.Y+radius*s))
	}
	return pts
}

// CircleToPolygon approximates a full circle with a closed ring.
func CircleToPolygon(center gg.Point, radius float64, segments int) []gg.Point {
	pts := ArcToChords(center, radius, 0, 2*math.Pi, max(segments, 3))
	return pts[:len(pts)-1]
}

// RoundRectToPolygon builds the outline of a rectangle of the given size,
// centred on the origin, with rounded corners, rotated by angle decidegrees
// and translated to center. Each corner uses segmentsPerCorner chords.
func RoundRectToPolygon(center, size gg.Point, radius, angle float64, segmentsPerCorner int) []gg.Point {
	hw, hh := size.X/2, size.Y/2
	radius = math.Min(radius, math.Min(hw, hh))
	if radius < 0 {
		radius = 0
	}

	corners := [4]struct {
		c     gg.Point
		start float64
	}{
		{gg.Pt(hw-radius, -hh+radius), -math.Pi / 2},
		{gg.Pt(hw-radius, hh-radius), 0},
		{gg.Pt(-hw+radius, hh-radius), math.Pi / 2},
		{gg.Pt(-hw+radius, -hh+radius), math.Pi},
	}

	var pts []gg.Point
	for _, k := range corners {
		if radius == 0 {
			pts = append(pts, k.c)
			continue
		}
		pts = append(pts, ArcToChords(k.c, radius, k.start, k.start+math.Pi/2, segmentsPerCorner)...)
	}

	for i, p := range pts {
		pts[i] = RotateVector(p, angle).Add(center)
	}
	return pts
}
