package board

import (
	"image"

	"github.com/gogpu/gal/geom"
)

// Drawing is a board-level graphic item. The set of drawings is closed;
// consumers handle every kind through DrawingVisitor.
type Drawing interface {
	Accept(v DrawingVisitor)
	DrawingLayer() Layer
}

// DrawingVisitor has one method per drawing kind.
type DrawingVisitor interface {
	VisitDrawSegment(s *DrawSegment)
	VisitPCBText(t *PCBText)
	VisitDimension(d *Dimension)
	VisitTarget(t *Target)
	VisitMarker(m *Marker)
}

// DrawSegment is a graphic line, arc, circle, polygon or curve.
//
// For circles and arcs Start is the centre and End a point on the circle;
// Angle is the arc sweep.
type DrawSegment struct {
	Shape      Shape
	Layer      Layer
	Width      int
	Start, End image.Point
	Angle      float64 // decidegrees

	BezierC1, BezierC2 image.Point
	PolyPoints         []image.Point
}

func (s *DrawSegment) Accept(v DrawingVisitor) { v.VisitDrawSegment(s) }
func (s *DrawSegment) DrawingLayer() Layer     { return s.Layer }

// BezierPoints flattens a curve into a polyline with steps no longer than
// the line width.
func (s *DrawSegment) BezierPoints() []image.Point {
	if s.Shape != ShapeCurve {
		return nil
	}
	return geom.BezierToPolyline(s.Start, s.BezierC1, s.BezierC2, s.End, s.Width)
}

// PCBText is a free board text.
type PCBText struct {
	Text
}

func (t *PCBText) Accept(v DrawingVisitor) { v.VisitPCBText(t) }
func (t *PCBText) DrawingLayer() Layer     { return t.Layer }

// Dimension is a measurement annotation: a label, a crossbar between two
// feature lines and an arrow head at each crossbar end.
type Dimension struct {
	Layer Layer
	Width int
	Text  PCBText

	CrossBarO, CrossBarF         image.Point
	FeatureLineGO, FeatureLineGF image.Point
	FeatureLineDO, FeatureLineDF image.Point
	ArrowD1F, ArrowD2F           image.Point
	ArrowG1F, ArrowG2F           image.Point
}

func (d *Dimension) Accept(v DrawingVisitor) { v.VisitDimension(d) }
func (d *Dimension) DrawingLayer() Layer     { return d.Layer }

// TargetShape selects the cross drawn inside an alignment target.
type TargetShape uint8

const (
	TargetPlus TargetShape = iota
	TargetX
)

// Target is an alignment mark ("mire"): a circle plus a cross.
type Target struct {
	Shape    TargetShape
	Layer    Layer
	Position image.Point
	Size     int
	Width    int
}

func (t *Target) Accept(v DrawingVisitor) { v.VisitTarget(t) }
func (t *Target) DrawingLayer() Layer     { return t.Layer }

// Marker flags a design rule violation. It is never plotted.
type Marker struct {
	Position image.Point
	Message  string
}

func (m *Marker) Accept(v DrawingVisitor) { v.VisitMarker(m) }
func (m *Marker) DrawingLayer() Layer     { return UndefinedLayer }
