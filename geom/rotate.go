package geom

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// RotatePoint rotates p about the origin by angle decidegrees and rounds the
// result to the nearest internal unit. Quarter turns are exact.
func RotatePoint(p image.Point, angle float64) image.Point {
	angle = NormalizeAnglePos(angle)

	switch angle {
	case 0:
		return p
	case 900:
		return image.Pt(p.Y, -p.X)
	case 1800:
		return image.Pt(-p.X, -p.Y)
	case 2700:
		return image.Pt(-p.Y, p.X)
	}

	s, c := math.Sincos(DecidegToRad(angle))
	fx := float64(p.Y)*s + float64(p.X)*c
	fy := float64(p.Y)*c - float64(p.X)*s
	return image.Pt(Round(fx), Round(fy))
}

// RotatePointAround rotates p about center by angle decidegrees.
func RotatePointAround(p, center image.Point, angle float64) image.Point {
	return RotatePoint(p.Sub(center), angle).Add(center)
}

// RotateVector rotates a floating point vector about the origin by angle
// decidegrees, using the same orientation as RotatePoint.
func RotateVector(v gg.Point, angle float64) gg.Point {
	s, c := math.Sincos(DecidegToRad(angle))
	return gg.Pt(v.Y*s+v.X*c, v.Y*c-v.X*s)
}
