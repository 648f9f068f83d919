// Package geom provides the small geometric toolkit shared by the drawing
// context and the board plotter: decidegree angles, integer point rotation
// with the board's rounding rules, polygon winding and arc/curve flattening.
//
// Board coordinates are integer internal units (image.Point); drawing
// coordinates are floating point (gg.Point). Angles handed around by board
// entities are in tenths of a degree, angles consumed by the drawing context
// are in radians.
package geom

import "math"

// NormalizeAnglePos brings a decidegree angle into [0, 3600).
func NormalizeAnglePos(angle float64) float64 {
	for angle < 0 {
		angle += 3600
	}
	for angle >= 3600 {
		angle -= 3600
	}
	return angle
}

// NormalizeAngle180 brings a decidegree angle into (-1800, 1800].
func NormalizeAngle180(angle float64) float64 {
	for angle <= -1800 {
		angle += 3600
	}
	for angle > 1800 {
		angle -= 3600
	}
	return angle
}

// DecidegToRad converts tenths of a degree to radians.
func DecidegToRad(deciDeg float64) float64 {
	return deciDeg * math.Pi / 1800
}

// RadToDecideg converts radians to tenths of a degree.
func RadToDecideg(rad float64) float64 {
	return rad * 1800 / math.Pi
}

// ArcTangente returns the angle of the vector (dx, dy) in decidegrees.
// Axis-aligned and diagonal vectors return exact values so that integer
// geometry built from them stays exact.
func ArcTangente(dy, dx int) float64 {
	switch {
	case dx == 0 && dy == 0:
		return 0
	case dy == 0:
		if dx >= 0 {
			return 0
		}
		return -1800
	case dx == 0:
		if dy >= 0 {
			return 900
		}
		return -900
	case dx == dy:
		if dx >= 0 {
			return 450
		}
		return -1800 + 450
	case dx == -dy:
		if dx >= 0 {
			return -450
		}
		return 1800 - 450
	}
	return RadToDecideg(math.Atan2(float64(dy), float64(dx)))
}
