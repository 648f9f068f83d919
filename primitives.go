package gal

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gal/geom"
)

// DrawLine draws a line.
func (c *Context) DrawLine(start, end gg.Point) {
	b := c.path()
	b.moveTo(start)
	b.lineTo(end)
}

// DrawSegment draws a line of the given width with round ends.
//
// With filling enabled the segment is a solid capsule painted in the fill
// color, and the line width is set to width. Otherwise only the capsule
// outline is added to the pending path: two offset lines and two half
// circles, so outline views show the track boundary.
func (c *Context) DrawSegment(start, end gg.Point, width float64) {
	if c.isFill {
		c.SetLineWidth(width)
		b := c.path()
		b.moveTo(start)
		b.lineTo(end)
		c.dirty = false
		c.commitStroke(c.pending.take())
		return
	}

	d := end.Sub(start)
	angle := math.Atan2(d.Y, d.X)
	r := width / 2
	n := gg.Pt(-math.Sin(angle)*r, math.Cos(angle)*r)

	b := c.path()
	b.newSubPath()
	b.arc(start, r, angle+math.Pi/2, angle+3*math.Pi/2)
	b.newSubPath()
	b.arc(end, r, angle-math.Pi/2, angle+math.Pi/2)
	b.newSubPath()
	b.moveTo(start.Add(n))
	b.lineTo(end.Add(n))
	b.newSubPath()
	b.moveTo(start.Sub(n))
	b.lineTo(end.Sub(n))
}

// DrawCircle draws a circle.
func (c *Context) DrawCircle(center gg.Point, radius float64) {
	b := c.path()
	b.newSubPath()
	b.arc(center, radius, 0, 2*math.Pi)
	b.closePath()
}

// DrawArc draws an arc from startAngle to endAngle (radians). The angles are
// swapped if startAngle > endAngle. With filling enabled the arc is closed
// through the centre into a pie wedge.
func (c *Context) DrawArc(center gg.Point, radius, startAngle, endAngle float64) {
	if startAngle > endAngle {
		startAngle, endAngle = endAngle, startAngle
	}

	b := c.path()
	b.newSubPath()
	b.arc(center, radius, startAngle, endAngle)
	if c.isFill {
		b.lineTo(center)
		b.closePath()
	}
}

// DrawArcSegment draws an arc of the given width with round ends.
//
// With filling enabled it is a solid stroke painted in the fill color.
// Otherwise the outline is added to the pending path: the inner and outer
// arcs at radius ∓ width/2 and two half-circle end caps.
func (c *Context) DrawArcSegment(center gg.Point, radius, startAngle, endAngle, width float64) {
	if startAngle > endAngle {
		startAngle, endAngle = endAngle, startAngle
	}

	if c.isFill {
		c.SetLineWidth(width)
		b := c.path()
		b.newSubPath()
		b.arc(center, radius, startAngle, endAngle)
		c.dirty = false
		c.commitStroke(c.pending.take())
		return
	}

	r := width / 2
	startCap := pointOnCircle(center, radius, startAngle)
	endCap := pointOnCircle(center, radius, endAngle)

	b := c.path()
	b.newSubPath()
	b.arc(center, radius-r, startAngle, endAngle)
	b.newSubPath()
	b.arc(center, radius+r, startAngle, endAngle)
	b.newSubPath()
	b.arcNegative(startCap, r, startAngle, startAngle+math.Pi)
	b.newSubPath()
	b.arc(endCap, r, endAngle, endAngle+math.Pi)
}

// DrawRectangle draws an axis aligned rectangle given two opposite corners.
func (c *Context) DrawRectangle(start, end gg.Point) {
	b := c.path()
	b.newSubPath()
	b.moveTo(start)
	b.lineTo(gg.Pt(end.X, start.Y))
	b.lineTo(end)
	b.lineTo(gg.Pt(start.X, end.Y))
	b.closePath()
}

// DrawPolygon draws a closed polygon. Fewer than two points draw nothing.
func (c *Context) DrawPolygon(points []gg.Point) {
	if len(points) < 2 {
		return
	}
	c.addPoly(c.path(), points, true)
}

// DrawPolyline draws an open polyline. Fewer than two points draw nothing.
func (c *Context) DrawPolyline(points []gg.Point) {
	if len(points) < 2 {
		return
	}
	c.addPoly(c.path(), points, false)
}

// DrawPolySet draws a set of closed outlines as one shape. Outlines with
// fewer than two points are skipped.
func (c *Context) DrawPolySet(outlines [][]gg.Point) {
	c.flush()
	for _, ol := range outlines {
		if len(ol) < 2 {
			continue
		}
		c.addPoly(c.path(), geom.Oriented(ol, false), true)
	}
	c.flush()
}

// DrawPolygonWithHoles draws a closed outline with holes cut out of it.
func (c *Context) DrawPolygonWithHoles(outline []gg.Point, holes [][]gg.Point) {
	if len(outline) < 2 {
		return
	}
	c.flush()
	b := c.path()
	c.addPoly(b, geom.Oriented(outline, false), true)
	for _, h := range holes {
		if len(h) < 2 {
			continue
		}
		c.addPoly(b, geom.Oriented(h, true), true)
	}
	c.flush()
}

func (c *Context) addPoly(b *pathBuilder, points []gg.Point, closed bool) {
	b.newSubPath()
	b.moveTo(points[0])
	for _, p := range points[1:] {
		b.lineTo(p)
	}
	if closed {
		b.closePath()
	}
}

// DrawCurve draws a cubic Bézier curve.
func (c *Context) DrawCurve(start, control1, control2, end gg.Point) {
	b := c.path()
	b.moveTo(start)
	b.curveTo(control1, control2, end)
}
