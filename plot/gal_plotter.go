package plot

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gal"
	"github.com/gogpu/gal/geom"
	"github.com/gogpu/gal/gerber"
)

// Canvas is the drawing surface driven by GALPlotter. *gal.Context
// implements it.
type Canvas interface {
	SetIsFill(enabled bool)
	SetIsStroke(enabled bool)
	SetFillColor(c gal.Color)
	SetStrokeColor(c gal.Color)
	SetLineWidth(width float64)

	DrawSegment(start, end gg.Point, width float64)
	DrawCircle(center gg.Point, radius float64)
	DrawArcSegment(center gg.Point, radius, startAngle, endAngle, width float64)
	DrawPolygon(points []gg.Point)
	DrawPolyline(points []gg.Point)

	Save()
	Restore()
	Translate(offset gg.Point)
	Rotate(angle float64)
	BitmapText(s string, position gg.Point, height float64)
}

var _ Canvas = (*gal.Context)(nil)

// GALPlotter plots onto a Canvas whose world unit is the board internal
// unit. Metadata has no visual meaning and is dropped. Sketch mode draws
// one pixel wide outlines.
type GALPlotter struct {
	canvas Canvas
	color  gal.Color
}

var _ Plotter = (*GALPlotter)(nil)

// NewGALPlotter returns a plotter drawing onto c.
func NewGALPlotter(c Canvas) *GALPlotter {
	return &GALPlotter{canvas: c, color: gal.Black}
}

// SetColor sets both the fill and the stroke color of the canvas.
func (p *GALPlotter) SetColor(c gal.Color) {
	p.color = c
	p.canvas.SetFillColor(c)
	p.canvas.SetStrokeColor(c)
}

// SetCurrentLineWidth sets the canvas line width. Negative widths become 0.
func (p *GALPlotter) SetCurrentLineWidth(width int, _ *gerber.Metadata) {
	p.canvas.SetLineWidth(float64(max(width, 0)))
}

// solid selects filled bodies or hairline outlines.
func (p *GALPlotter) solid(mode DrawMode) {
	if mode == Filled {
		p.canvas.SetIsFill(true)
		p.canvas.SetIsStroke(false)
		return
	}
	p.outline(0)
}

func (p *GALPlotter) outline(width float64) {
	p.canvas.SetIsFill(false)
	p.canvas.SetIsStroke(true)
	p.canvas.SetLineWidth(width)
}

// ThickSegment draws a track-like segment: solid in Filled mode, its
// outline otherwise.
func (p *GALPlotter) ThickSegment(start, end image.Point, width int, mode DrawMode, _ *gerber.Metadata) {
	p.solid(mode)
	p.canvas.DrawSegment(geom.ToPoint(start), geom.ToPoint(end), float64(width))
}

// ThickArc draws an arc of the given width as a ring segment.
func (p *GALPlotter) ThickArc(center image.Point, startAngle, endAngle float64, radius, width int, mode DrawMode, _ *gerber.Metadata) {
	from, to := arcRadians(startAngle, endAngle)
	p.solid(mode)
	p.canvas.DrawArcSegment(geom.ToPoint(center), float64(radius), from, to, float64(width))
}

// ThickCircle draws a ring. In sketch mode it draws the inner and outer
// edges, or a single circle when width is 0.
func (p *GALPlotter) ThickCircle(center image.Point, diameter, width int, mode DrawMode, _ *gerber.Metadata) {
	c := geom.ToPoint(center)
	r := float64(diameter) / 2
	if mode == Filled {
		p.solid(mode)
		p.canvas.DrawArcSegment(c, r, 0, 2*math.Pi, float64(width))
		return
	}
	p.outline(0)
	if width == 0 {
		p.canvas.DrawCircle(c, r)
		return
	}
	p.canvas.DrawCircle(c, r-float64(width)/2)
	p.canvas.DrawCircle(c, r+float64(width)/2)
}

// PlotPoly draws an open polyline (NoFill) or a filled polygon with an
// optional outline of the given width. Fewer than 2 corners draw nothing.
func (p *GALPlotter) PlotPoly(corners []image.Point, fill FillType, width int, _ *gerber.Metadata) {
	if len(corners) < 2 {
		return
	}
	pts := geom.ToPoints(corners)
	if fill == NoFill {
		p.outline(float64(width))
		p.canvas.DrawPolyline(pts)
		return
	}
	p.canvas.SetIsFill(true)
	p.canvas.SetIsStroke(width > 0)
	p.canvas.SetLineWidth(float64(width))
	p.canvas.DrawPolygon(pts)
}

// FlashPadCircle draws a round pad.
func (p *GALPlotter) FlashPadCircle(pos image.Point, diameter int, mode DrawMode, _ *gerber.Metadata) {
	p.solid(mode)
	p.canvas.DrawCircle(geom.ToPoint(pos), float64(diameter)/2)
}

// FlashPadOval draws an oval pad as a thick segment along its long axis.
func (p *GALPlotter) FlashPadOval(pos, size image.Point, orientation float64, mode DrawMode, md *gerber.Metadata) {
	a, b, w := ovalEnds(pos, size, orientation)
	p.ThickSegment(a, b, w, mode, md)
}

// FlashPadRect draws a rotated rectangular pad.
func (p *GALPlotter) FlashPadRect(pos, size image.Point, orientation float64, mode DrawMode, _ *gerber.Metadata) {
	p.solid(mode)
	p.canvas.DrawPolygon(rectCorners(pos, size, orientation))
}

// FlashPadRoundRect draws a rectangle with rounded corners.
func (p *GALPlotter) FlashPadRoundRect(pos, size image.Point, cornerRadius int, orientation float64, mode DrawMode, _ *gerber.Metadata) {
	p.solid(mode)
	p.canvas.DrawPolygon(roundRectCorners(pos, size, cornerRadius, orientation))
}

// FlashPadTrapez draws a trapezoid pad from its corners relative to pos.
func (p *GALPlotter) FlashPadTrapez(pos image.Point, corners [4]image.Point, orientation float64, mode DrawMode, _ *gerber.Metadata) {
	p.solid(mode)
	p.canvas.DrawPolygon(placeCorners(pos, corners[:], orientation))
}

// Text draws a centred label as tall as the text size.
func (p *GALPlotter) Text(pos image.Point, c gal.Color, text string, style TextStyle, _ *gerber.Metadata) {
	if c.IsUnspecified() {
		c = p.color
	}
	height := math.Abs(float64(style.Size.Y))

	p.canvas.SetStrokeColor(c)
	if style.Orientation == 0 {
		p.canvas.BitmapText(text, geom.ToPoint(pos), height)
	} else {
		p.canvas.Save()
		p.canvas.Translate(geom.ToPoint(pos))
		p.canvas.Rotate(-geom.DecidegToRad(style.Orientation))
		p.canvas.BitmapText(text, gg.Point{}, height)
		p.canvas.Restore()
	}
	p.canvas.SetStrokeColor(p.color)
}
