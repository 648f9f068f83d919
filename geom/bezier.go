package geom

import (
	"image"
	"math"
)

// BezierToPolyline flattens a cubic bezier into integer points. The number of
// steps grows with the control polygon length so that no step is longer than
// minSegLen; the first and last points are the curve ends.
func BezierToPolyline(start, c1, c2, end image.Point, minSegLen int) []image.Point {
	minSegLen = max(minSegLen, 1)
	hull := LineLength(start, c1) + LineLength(c1, c2) + LineLength(c2, end)
	steps := min(max(int(math.Ceil(hull/float64(minSegLen))), 1), 128)

	pts := make([]image.Point, 0, steps+1)
	pts = append(pts, start)
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		u := 1 - t
		a := u * u * u
		b := 3 * u * u * t
		c := 3 * u * t * t
		d := t * t * t
		x := a*float64(start.X) + b*float64(c1.X) + c*float64(c2.X) + d*float64(end.X)
		y := a*float64(start.Y) + b*float64(c1.Y) + c*float64(c2.Y) + d*float64(end.Y)
		pts = append(pts, image.Pt(Round(x), Round(y)))
	}
	return append(pts, end)
}
