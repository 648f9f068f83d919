package board

import (
	"image"

	"github.com/gogpu/gal/geom"
)

// Shape is the geometry kind of a graphic item.
type Shape uint8

const (
	ShapeSegment Shape = iota
	ShapeArc
	ShapeCircle
	ShapePolygon
	ShapeCurve
)

var shapeNames = [...]string{"segment", "arc", "circle", "polygon", "curve"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Segment is a straight piece between two points.
type Segment struct {
	Start, End image.Point
}

// Track is a copper trace.
type Track struct {
	Start, End image.Point
	Width      int
	Layer      Layer
	Net        string
}

// Via connects copper layers through a plated hole.
type Via struct {
	Position image.Point
	Width    int
	Drill    int
	Layers   LayerSet
	Net      string
}

// ZoneFillMode selects how a zone's filled area is made.
type ZoneFillMode uint8

const (
	// ZoneFillSolid fills with polygons.
	ZoneFillSolid ZoneFillMode = iota
	// ZoneFillSegments fills with precomputed thick segments.
	ZoneFillSegments
)

// Zone is a filled area.
type Zone struct {
	Layer Layer
	Net   string

	// FilledPolys holds the contours of the filled area, already shrunk by
	// half of MinThickness.
	FilledPolys  [][]image.Point
	FillMode     ZoneFillMode
	FillSegments []Segment
	MinThickness int
}

// IsOnCopperLayer reports whether the zone is copper.
func (z *Zone) IsOnCopperLayer() bool {
	return z.Layer.IsCopper()
}

// IsEmpty reports whether the zone has no filled area.
func (z *Zone) IsEmpty() bool {
	for _, c := range z.FilledPolys {
		if len(c) > 0 {
			return false
		}
	}
	return true
}

// Module is a placed footprint.
type Module struct {
	Reference *ModuleText
	Value     *ModuleText

	// GraphicalItems holds *ModuleText and *EdgeModule items.
	GraphicalItems []ModuleItem
	Pads           []*Pad

	Position    image.Point
	Orientation float64 // decidegrees
	Layer       Layer
}

// NewModule returns a footprint with empty reference and value fields.
func NewModule(ref, value string, pos image.Point, orientation float64) *Module {
	m := &Module{Position: pos, Orientation: orientation, Layer: FCu}
	m.Reference = &ModuleText{Kind: TextReference, Parent: m}
	m.Reference.Text = Text{Text: ref, Position: pos, Visible: true, Layer: FSilkS}
	m.Value = &ModuleText{Kind: TextValue, Parent: m}
	m.Value.Text = Text{Text: value, Position: pos, Visible: true, Layer: FFab}
	return m
}

// ReferenceDesignator returns the reference text, e.g. "U3".
func (m *Module) ReferenceDesignator() string {
	if m.Reference == nil {
		return ""
	}
	return m.Reference.Text.Text
}

// AddPad attaches a pad to the footprint.
func (m *Module) AddPad(p *Pad) {
	p.Parent = m
	m.Pads = append(m.Pads, p)
}

// AddItem attaches a graphic item to the footprint.
func (m *Module) AddItem(it ModuleItem) {
	switch it := it.(type) {
	case *ModuleText:
		it.Parent = m
	case *EdgeModule:
		it.Parent = m
	}
	m.GraphicalItems = append(m.GraphicalItems, it)
}

// ModuleItem is a footprint graphic item.
type ModuleItem interface {
	ItemLayer() Layer
	isModuleItem()
}

// ModuleTextKind tells the reference and value fields from free texts.
type ModuleTextKind uint8

const (
	TextReference ModuleTextKind = iota
	TextValue
	TextDivers
)

// ModuleText is a footprint text. Text.Angle is relative to the footprint.
type ModuleText struct {
	Text
	Kind   ModuleTextKind
	Parent *Module
}

func (t *ModuleText) ItemLayer() Layer { return t.Layer }
func (*ModuleText) isModuleItem()      {}

// DrawRotation returns the absolute text angle, kept readable: the result
// is in (-900, 900].
func (t *ModuleText) DrawRotation() float64 {
	rot := t.Angle
	if t.Parent != nil {
		rot += t.Parent.Orientation
	}
	rot = geom.NormalizeAnglePos(rot)
	for rot > 900 {
		rot -= 1800
	}
	return rot
}

// EdgeModule is a footprint outline item. Start and End are in board
// coordinates; PolyPoints are relative to the footprint at orientation 0.
type EdgeModule struct {
	Shape      Shape
	Layer      Layer
	Width      int
	Start, End image.Point
	Angle      float64 // arc sweep, decidegrees
	PolyPoints []image.Point
	Parent     *Module
}

func (e *EdgeModule) ItemLayer() Layer { return e.Layer }
func (*EdgeModule) isModuleItem()      {}
