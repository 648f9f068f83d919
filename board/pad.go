package board

import (
	"image"
	"math"

	"github.com/gogpu/gal/geom"
)

// PadShape is the copper shape of a pad.
type PadShape uint8

const (
	// PadShapeCircle is round; only Size.X is used.
	PadShapeCircle PadShape = iota
	// PadShapeRect is a Size.X by Size.Y rectangle.
	PadShapeRect
	// PadShapeOval is a rectangle with fully rounded short sides.
	PadShapeOval
	// PadShapeTrapezoid is a rectangle skewed by DeltaSize.
	PadShapeTrapezoid
	// PadShapeRoundRect is a rectangle with corners rounded by
	// RoundRectCornerRadius.
	PadShapeRoundRect
)

var padShapeNames = [...]string{"circle", "rect", "oval", "trapezoid", "roundrect"}

func (s PadShape) String() string {
	if int(s) < len(padShapeNames) {
		return padShapeNames[s]
	}
	return "unknown"
}

// PadAttribute is the mounting kind of a pad.
type PadAttribute uint8

const (
	// PadAttribStandard is a plated through-hole pad.
	PadAttribStandard PadAttribute = iota
	// PadAttribSMD is a surface mount pad with solder paste.
	PadAttribSMD
	// PadAttribConn is an edge connector pad without paste.
	PadAttribConn
	// PadAttribHoleNotPlated is a mechanical hole.
	PadAttribHoleNotPlated
)

var padAttributeNames = [...]string{"standard", "smd", "connect", "np_thru_hole"}

func (a PadAttribute) String() string {
	if int(a) < len(padAttributeNames) {
		return padAttributeNames[a]
	}
	return "unknown"
}

// DrillShape is the shape of a pad hole.
type DrillShape uint8

const (
	// DrillShapeCircle is a round hole of diameter DrillSize.X.
	DrillShapeCircle DrillShape = iota
	// DrillShapeOblong is a slot of DrillSize.X by DrillSize.Y.
	DrillShapeOblong
)

// Pad is a footprint pad.
type Pad struct {
	Name      string
	Net       string
	Shape     PadShape
	Attribute PadAttribute

	// Position is the anchor in board coordinates; Offset moves the copper
	// shape relative to it in the pad frame.
	Position    image.Point
	Offset      image.Point
	Size        image.Point
	Orientation float64 // decidegrees

	DrillShape DrillShape
	DrillSize  image.Point

	// DeltaSize is the trapezoid skew; x narrows the top edge against the
	// bottom one, y the left edge against the right one.
	DeltaSize image.Point

	RoundRectRadiusRatio float64

	Layers LayerSet
	Parent *Module
}

// ShapePos returns the centre of the copper shape.
func (p *Pad) ShapePos() image.Point {
	if p.Offset == (image.Point{}) {
		return p.Position
	}
	return p.Position.Add(geom.RotatePoint(p.Offset, p.Orientation))
}

// RoundRectCornerRadius returns the corner radius of a round-rect pad.
func (p *Pad) RoundRectCornerRadius() int {
	return int(math.Round(float64(min(p.Size.X, p.Size.Y)) * p.RoundRectRadiusRatio))
}

// BuildPadPolygon returns the four corners of a trapezoid pad relative to
// its shape position, before rotation: lower left, upper left, upper right,
// lower right.
func (p *Pad) BuildPadPolygon() [4]image.Point {
	h := image.Pt(p.Size.X/2, p.Size.Y/2)
	d := image.Pt(p.DeltaSize.X/2, p.DeltaSize.Y/2)
	return [4]image.Point{
		{X: -h.X - d.Y, Y: h.Y + d.X},
		{X: -h.X + d.Y, Y: -h.Y - d.X},
		{X: h.X - d.Y, Y: -h.Y + d.X},
		{X: h.X + d.Y, Y: h.Y - d.X},
	}
}

// Reference returns the reference designator of the parent footprint.
func (p *Pad) Reference() string {
	if p.Parent == nil {
		return ""
	}
	return p.Parent.Reference.Text.Text
}
