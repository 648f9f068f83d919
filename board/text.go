package board

import (
	"image"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/gal/geom"
)

// HJustify is the horizontal text alignment.
type HJustify int8

const (
	HJustifyLeft   HJustify = -1
	HJustifyCenter HJustify = 0
	HJustifyRight  HJustify = 1
)

// VJustify is the vertical text alignment.
type VJustify int8

const (
	VJustifyTop    VJustify = -1
	VJustifyCenter VJustify = 0
	VJustifyBottom VJustify = 1
)

// interlinePitch is the line pitch as a fraction of the glyph height.
const interlinePitch = 1.4

// Text holds the attributes shared by every text item.
type Text struct {
	Text      string
	Position  image.Point
	Size      image.Point
	Thickness int
	Angle     float64 // decidegrees

	HJustify HJustify
	VJustify VJustify

	Mirrored  bool
	Italic    bool
	Bold      bool
	Visible   bool
	Multiline bool

	Layer Layer
}

// ShownText returns the text as drawn, in composed Unicode form so that
// accented pad and net names map to single glyphs.
func (t *Text) ShownText() string {
	return norm.NFC.String(t.Text)
}

// Lines splits the shown text into lines.
func (t *Text) Lines() []string {
	return strings.Split(t.ShownText(), "\n")
}

// Interline returns the distance between consecutive lines.
func (t *Text) Interline() int {
	return int(math.Round(float64(t.Size.Y)*interlinePitch)) + t.Thickness
}

// LinePositions returns the anchor of each of count lines. Position is the
// anchor of the whole block; the block is rotated by Angle around it.
func (t *Text) LinePositions(count int) []image.Point {
	pos := t.Position
	offset := image.Pt(0, t.Interline())

	if count > 1 {
		switch t.VJustify {
		case VJustifyCenter:
			pos.Y -= (count - 1) * offset.Y / 2
		case VJustifyBottom:
			pos.Y -= (count - 1) * offset.Y
		}
	}

	pos = geom.RotatePointAround(pos, t.Position, t.Angle)
	offset = geom.RotatePoint(offset, t.Angle)

	out := make([]image.Point, count)
	for i := range out {
		out[i] = pos
		pos = pos.Add(offset)
	}
	return out
}
