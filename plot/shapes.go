package plot

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gal/board"
	"github.com/gogpu/gal/geom"
)

// arcMaxError is the chord deviation allowed when flattening arcs.
const arcMaxError = board.IUPerMM / 200

// roundRectSegments is the chord count of each round-rect corner.
const roundRectSegments = 8

// ovalEnds returns the centres of the two end caps of an oval pad and the
// cap diameter.
func ovalEnds(pos, size image.Point, orientation float64) (a, b image.Point, width int) {
	var delta image.Point
	if size.X > size.Y {
		delta = image.Pt((size.X-size.Y)/2, 0)
		width = size.Y
	} else {
		delta = image.Pt(0, (size.Y-size.X)/2)
		width = size.X
	}
	delta = geom.RotatePoint(delta, orientation)
	return pos.Sub(delta), pos.Add(delta), width
}

// rectCorners returns the corners of a rectangle of the given size centred
// on pos and rotated by orientation.
func rectCorners(pos, size image.Point, orientation float64) []gg.Point {
	h := image.Pt(size.X/2, size.Y/2)
	return placeCorners(pos, []image.Point{
		{-h.X, -h.Y}, {h.X, -h.Y}, {h.X, h.Y}, {-h.X, h.Y},
	}, orientation)
}

// placeCorners rotates pad-relative corners and moves them to pos.
func placeCorners(pos image.Point, corners []image.Point, orientation float64) []gg.Point {
	out := make([]gg.Point, len(corners))
	for i, c := range corners {
		out[i] = geom.ToPoint(geom.RotatePoint(c, orientation).Add(pos))
	}
	return out
}

func roundRectCorners(pos, size image.Point, radius int, orientation float64) []gg.Point {
	return geom.RoundRectToPolygon(geom.ToPoint(pos), geom.ToPoint(size), float64(radius), orientation, roundRectSegments)
}

// arcRadians converts plotter arc angles, counter-clockwise with y up, to
// the clockwise-positive radians of the y-down drawing frame, in
// increasing order.
func arcRadians(startAngle, endAngle float64) (from, to float64) {
	from, to = geom.DecidegToRad(-endAngle), geom.DecidegToRad(-startAngle)
	if from > to {
		from, to = to, from
	}
	return from, to
}

func arcChords(center image.Point, radius float64, from, to float64) []gg.Point {
	deg := (to - from) * 180 / math.Pi
	n := geom.ArcSegmentCount(int(radius), arcMaxError, deg)
	return geom.ArcToChords(geom.ToPoint(center), radius, from, to, n)
}

// segmentOutline returns the closed outline of a thick segment with round
// ends.
func segmentOutline(start, end image.Point, width int) []gg.Point {
	a, b := geom.ToPoint(start), geom.ToPoint(end)
	r := float64(width) / 2
	theta := math.Atan2(b.Y-a.Y, b.X-a.X)
	n := geom.ArcSegmentCount(int(r), arcMaxError, 180)

	out := geom.ArcToChords(b, r, theta-math.Pi/2, theta+math.Pi/2, n)
	return append(out, geom.ArcToChords(a, r, theta+math.Pi/2, theta+3*math.Pi/2, n)...)
}
