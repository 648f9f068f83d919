package plot

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"

	"github.com/gogpu/gal"
	"github.com/gogpu/gal/geom"
	"github.com/gogpu/gal/gerber"
)

// Plot is a finished vector plot: the recorded drawing and, for each
// drawing command in order, the metadata it was plotted with.
type Plot struct {
	Recording *recording.Recording
	Metadata  []*gerber.Metadata
}

// DrawCommands returns the commands of rec that put marks on the page, in
// the order they were recorded.
func DrawCommands(rec *recording.Recording) []recording.Command {
	var out []recording.Command
	for _, cmd := range rec.Commands() {
		switch cmd.(type) {
		case recording.FillPathCommand, recording.StrokePathCommand,
			recording.FillRectCommand, recording.StrokeRectCommand,
			recording.DrawImageCommand, recording.DrawTextCommand:
			out = append(out, cmd)
		}
	}
	return out
}

// VectorPlotter records plotter calls as resolution independent vector
// commands that can be replayed to any registered recording backend.
// Board coordinates are mapped to output pixels by subtracting origin and
// multiplying by scale.
type VectorPlotter struct {
	rec   *recording.Recorder
	scale float64
	color gal.Color
	meta  []*gerber.Metadata
	empty bool
}

var _ Plotter = (*VectorPlotter)(nil)

// NewVectorPlotter returns a plotter recording a width x height page.
func NewVectorPlotter(width, height int, scale float64, origin image.Point) *VectorPlotter {
	rec := recording.NewRecorder(width, height)
	rec.SetLineCap(recording.LineCapRound)
	rec.SetLineJoin(recording.LineJoinRound)
	rec.Scale(scale, scale)
	rec.Translate(-float64(origin.X), -float64(origin.Y))

	p := &VectorPlotter{rec: rec, scale: scale, empty: true}
	p.SetColor(gal.Black)
	return p
}

// Finish ends the recording. The plotter must not be used afterwards.
func (p *VectorPlotter) Finish() *Plot {
	return &Plot{Recording: p.rec.FinishRecording(), Metadata: p.meta}
}

// SetColor sets the recorder color used by later fills, strokes and text.
func (p *VectorPlotter) SetColor(c gal.Color) {
	p.color = c
	p.rec.SetColor(c.ToRGBA())
}

// SetCurrentLineWidth sets the recorder line width in output pixels.
func (p *VectorPlotter) SetCurrentLineWidth(width int, _ *gerber.Metadata) {
	p.rec.SetLineWidth(p.pixels(max(width, 0)))
}

// pixels converts a board width to an output stroke width. Strokes are
// never thinner than one pixel.
func (p *VectorPlotter) pixels(width int) float64 {
	return math.Max(float64(width)*p.scale, 1)
}

func (p *VectorPlotter) moveTo(pt gg.Point) {
	p.rec.MoveTo(pt.X, pt.Y)
	p.empty = false
}

func (p *VectorPlotter) lineTo(pt gg.Point) {
	p.rec.LineTo(pt.X, pt.Y)
}

func (p *VectorPlotter) poly(pts []gg.Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	p.moveTo(pts[0])
	for _, pt := range pts[1:] {
		p.lineTo(pt)
	}
	if closed {
		p.rec.ClosePath()
	}
}

func (p *VectorPlotter) circle(center gg.Point, radius float64) {
	p.rec.DrawCircle(center.X, center.Y, radius)
	p.empty = false
}

func (p *VectorPlotter) fill(md *gerber.Metadata) {
	if p.empty {
		return
	}
	p.rec.Fill()
	p.meta = append(p.meta, md.Clone())
	p.empty = true
}

func (p *VectorPlotter) stroke(width int, md *gerber.Metadata) {
	if p.empty {
		return
	}
	p.rec.SetLineWidth(p.pixels(width))
	p.rec.Stroke()
	p.meta = append(p.meta, md.Clone())
	p.empty = true
}

// body fills the pending outline, or strokes it as a hairline in sketch
// mode.
func (p *VectorPlotter) body(mode DrawMode, md *gerber.Metadata) {
	if mode == Filled {
		p.fill(md)
	} else {
		p.stroke(0, md)
	}
}

// ThickSegment records one round-capped stroke in Filled mode and the
// hairline outline of the segment otherwise.
func (p *VectorPlotter) ThickSegment(start, end image.Point, width int, mode DrawMode, md *gerber.Metadata) {
	if mode == Filled {
		p.moveTo(geom.ToPoint(start))
		p.lineTo(geom.ToPoint(end))
		p.stroke(width, md)
		return
	}
	p.poly(segmentOutline(start, end, width), true)
	p.stroke(0, md)
}

// ThickArc records the arc as a chord polyline of the given width, or its
// inner and outer edges in sketch mode.
func (p *VectorPlotter) ThickArc(center image.Point, startAngle, endAngle float64, radius, width int, mode DrawMode, md *gerber.Metadata) {
	from, to := arcRadians(startAngle, endAngle)
	r := float64(radius)
	if mode == Filled {
		p.poly(arcChords(center, r, from, to), false)
		p.stroke(width, md)
		return
	}
	hw := float64(width) / 2
	p.poly(arcChords(center, r-hw, from, to), false)
	p.poly(arcChords(center, r+hw, from, to), false)
	p.stroke(0, md)
}

// ThickCircle records a stroked ring, or its two edges in sketch mode.
func (p *VectorPlotter) ThickCircle(center image.Point, diameter, width int, mode DrawMode, md *gerber.Metadata) {
	c := geom.ToPoint(center)
	r := float64(diameter) / 2
	if mode == Filled {
		p.circle(c, r)
		p.stroke(width, md)
		return
	}
	hw := float64(width) / 2
	p.circle(c, r-hw)
	p.circle(c, r+hw)
	p.stroke(0, md)
}

// PlotPoly records an open polyline (NoFill), or a filled polygon followed
// by its outline when width is positive.
func (p *VectorPlotter) PlotPoly(corners []image.Point, fill FillType, width int, md *gerber.Metadata) {
	if len(corners) < 2 {
		return
	}
	pts := geom.ToPoints(corners)
	if fill == NoFill {
		p.poly(pts, false)
		p.stroke(width, md)
		return
	}
	p.poly(pts, true)
	p.fill(md)
	if width > 0 {
		p.poly(pts, true)
		p.stroke(width, md)
	}
}

// FlashPadCircle records a round pad.
func (p *VectorPlotter) FlashPadCircle(pos image.Point, diameter int, mode DrawMode, md *gerber.Metadata) {
	p.circle(geom.ToPoint(pos), float64(diameter)/2)
	p.body(mode, md)
}

// FlashPadOval records an oval pad as a segment along its long axis.
func (p *VectorPlotter) FlashPadOval(pos, size image.Point, orientation float64, mode DrawMode, md *gerber.Metadata) {
	a, b, w := ovalEnds(pos, size, orientation)
	p.ThickSegment(a, b, w, mode, md)
}

// FlashPadRect records a rotated rectangular pad.
func (p *VectorPlotter) FlashPadRect(pos, size image.Point, orientation float64, mode DrawMode, md *gerber.Metadata) {
	p.poly(rectCorners(pos, size, orientation), true)
	p.body(mode, md)
}

// FlashPadRoundRect records a rectangle with rounded corners.
func (p *VectorPlotter) FlashPadRoundRect(pos, size image.Point, cornerRadius int, orientation float64, mode DrawMode, md *gerber.Metadata) {
	p.poly(roundRectCorners(pos, size, cornerRadius, orientation), true)
	p.body(mode, md)
}

// FlashPadTrapez records a trapezoid pad from its corners relative to pos.
func (p *VectorPlotter) FlashPadTrapez(pos image.Point, corners [4]image.Point, orientation float64, mode DrawMode, md *gerber.Metadata) {
	p.poly(placeCorners(pos, corners[:], orientation), true)
	p.body(mode, md)
}

// Text records the string at pos. Recorded text is always horizontal.
func (p *VectorPlotter) Text(pos image.Point, c gal.Color, text string, style TextStyle, md *gerber.Metadata) {
	if !c.IsUnspecified() {
		p.rec.SetColor(c.ToRGBA())
	}
	p.rec.SetFontSize(math.Abs(float64(style.Size.Y)) * p.scale)
	p.rec.DrawString(text, float64(pos.X), float64(pos.Y))
	p.meta = append(p.meta, md.Clone())
	if !c.IsUnspecified() {
		p.rec.SetColor(p.color.ToRGBA())
	}
}
