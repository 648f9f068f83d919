// Package plot translates board items into plotter primitives.
//
// BoardPlotter walks the read-only board model, decides the color and the
// manufacturing metadata of every item, and decomposes it into calls on a
// Plotter. Two plotters are provided: GALPlotter draws into a gal.Context
// for on-screen or raster output, and VectorPlotter records into a
// gg recording for vector back ends.
package plot

import (
	"image"

	"github.com/gogpu/gal"
	"github.com/gogpu/gal/board"
	"github.com/gogpu/gal/gerber"
)

// DrawMode selects how thick primitives are plotted.
type DrawMode uint8

const (
	// Filled plots solid shapes.
	Filled DrawMode = iota
	// Sketch plots outlines only.
	Sketch
)

var drawModeNames = [...]string{"filled", "sketch"}

func (m DrawMode) String() string {
	if int(m) < len(drawModeNames) {
		return drawModeNames[m]
	}
	return "unknown"
}

// FillType selects whether PlotPoly fills the polygon.
type FillType uint8

const (
	NoFill FillType = iota
	FilledShape
)

// TextStyle carries the text attributes handed to Plotter.Text. A negative
// Size.X means mirrored text.
type TextStyle struct {
	Orientation float64 // decidegrees
	Size        image.Point
	HJustify    board.HJustify
	VJustify    board.VJustify
	Thickness   int
	Italic      bool
	Bold        bool
	Multiline   bool
}

// Plotter is the primitive sink driven by BoardPlotter. Coordinates are
// board internal units, angles decidegrees. Every drawing call takes the
// metadata of the item it belongs to; nil means none.
type Plotter interface {
	SetColor(c gal.Color)
	// SetCurrentLineWidth sets the pen width; -1 restores the default.
	SetCurrentLineWidth(width int, md *gerber.Metadata)

	ThickSegment(start, end image.Point, width int, mode DrawMode, md *gerber.Metadata)
	// ThickArc draws an arc between two angles measured counter-clockwise
	// with the y axis pointing up.
	ThickArc(center image.Point, startAngle, endAngle float64, radius, width int, mode DrawMode, md *gerber.Metadata)
	ThickCircle(center image.Point, diameter, width int, mode DrawMode, md *gerber.Metadata)
	PlotPoly(corners []image.Point, fill FillType, width int, md *gerber.Metadata)

	FlashPadCircle(pos image.Point, diameter int, mode DrawMode, md *gerber.Metadata)
	FlashPadOval(pos, size image.Point, orientation float64, mode DrawMode, md *gerber.Metadata)
	FlashPadRect(pos, size image.Point, orientation float64, mode DrawMode, md *gerber.Metadata)
	FlashPadRoundRect(pos, size image.Point, cornerRadius int, orientation float64, mode DrawMode, md *gerber.Metadata)
	// FlashPadTrapez flashes a quadrilateral given by corners relative to pos.
	FlashPadTrapez(pos image.Point, corners [4]image.Point, orientation float64, mode DrawMode, md *gerber.Metadata)

	// Text draws a single line. An Unspecified color means the current one.
	Text(pos image.Point, c gal.Color, text string, style TextStyle, md *gerber.Metadata)
}
