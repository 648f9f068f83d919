package geom

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Round rounds half away from zero to the nearest integer.
func Round(v float64) int {
	return int(math.Round(v))
}

// Clamp returns v limited to [lo, hi]. The lower bound wins when lo > hi.
func Clamp(lo, v, hi int) int {
	if v < lo {
		return lo
	}
	if hi < v {
		if hi < lo {
			return lo
		}
		return hi
	}
	return v
}

// LineLength returns the euclidean distance between a and b.
func LineLength(a, b image.Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// ToPoint converts integer internal units to a drawing point.
func ToPoint(p image.Point) gg.Point {
	return gg.Pt(float64(p.X), float64(p.Y))
}

// ToPoints converts a slice of integer points.
func ToPoints(pts []image.Point) []gg.Point {
	out := make([]gg.Point, len(pts))
	for i, p := range pts {
		out[i] = ToPoint(p)
	}
	return out
}
