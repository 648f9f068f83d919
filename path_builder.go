package gal

import (
	"math"

	"github.com/gogpu/gg"
)

// pathBuilder accumulates user-space geometry with explicit sub-path
// control: after newSubPath the next arc or line starts a fresh figure
// instead of connecting to the previous end point.
type pathBuilder struct {
	path    *gg.Path
	open    bool
	resume  gg.Point
	resumed bool
}

func newPathBuilder() *pathBuilder {
	return &pathBuilder{path: gg.NewPath()}
}

func (b *pathBuilder) empty() bool {
	return len(b.path.Elements()) == 0
}

// take returns the accumulated path and starts a new one.
func (b *pathBuilder) take() *gg.Path {
	p := b.path
	b.path = gg.NewPath()
	b.open = false
	b.resumed = false
	return p
}

func (b *pathBuilder) moveTo(p gg.Point) {
	b.path.MoveTo(p.X, p.Y)
	b.open = true
	b.resumed = false
}

// lineTo without a current point behaves as moveTo. After closePath the
// figure restarts from its first point.
func (b *pathBuilder) lineTo(p gg.Point) {
	if !b.open {
		if !b.resumed {
			b.moveTo(p)
			return
		}
		b.moveTo(b.resume)
	}
	b.path.LineTo(p.X, p.Y)
}

func (b *pathBuilder) curveTo(c1, c2, p gg.Point) {
	if !b.open {
		b.lineTo(c1)
	}
	b.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

func (b *pathBuilder) closePath() {
	if !b.open {
		return
	}
	b.path.Close()
	b.resume = b.startOfFigure()
	b.open = false
	b.resumed = true
}

func (b *pathBuilder) newSubPath() {
	b.open = false
	b.resumed = false
}

// startOfFigure finds the last MoveTo, which is where a closed figure ends.
func (b *pathBuilder) startOfFigure() gg.Point {
	elems := b.path.Elements()
	for i := len(elems) - 1; i >= 0; i-- {
		if m, ok := elems[i].(gg.MoveTo); ok {
			return m.Point
		}
	}
	return gg.Point{}
}

// arc adds a circular arc swept with increasing angle from a0 to a1
// (radians). A line joins the current point to the arc start.
func (b *pathBuilder) arc(center gg.Point, radius, a0, a1 float64) {
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	b.arcSweep(center, radius, a0, a1)
}

// arcNegative sweeps with decreasing angle from a0 to a1.
func (b *pathBuilder) arcNegative(center gg.Point, radius, a0, a1 float64) {
	for a1 > a0 {
		a1 -= 2 * math.Pi
	}
	b.arcSweep(center, radius, a0, a1)
}

func (b *pathBuilder) arcSweep(center gg.Point, radius, a0, a1 float64) {
	b.lineTo(pointOnCircle(center, radius, a0))

	sweep := a1 - a0
	if sweep == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	for i := range n {
		s := a0 + step*float64(i)
		e := s + step
		ss, cs := math.Sincos(s)
		se, ce := math.Sincos(e)
		p0 := gg.Pt(center.X+radius*cs, center.Y+radius*ss)
		p3 := gg.Pt(center.X+radius*ce, center.Y+radius*se)
		c1 := gg.Pt(p0.X-k*radius*ss, p0.Y+k*radius*cs)
		c2 := gg.Pt(p3.X+k*radius*se, p3.Y-k*radius*ce)
		b.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p3.X, p3.Y)
	}
}

func pointOnCircle(center gg.Point, radius, angle float64) gg.Point {
	s, c := math.Sincos(angle)
	return gg.Pt(center.X+radius*c, center.Y+radius*s)
}
