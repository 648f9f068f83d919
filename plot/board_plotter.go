package plot

import (
	"image"
	"slices"

	"github.com/gogpu/gal"
	"github.com/gogpu/gal/board"
	"github.com/gogpu/gal/geom"
	"github.com/gogpu/gal/gerber"
)

// BoardPlotter decomposes board items into Plotter calls for the layers in
// its layer set. Items on other layers are skipped.
//
// A BoardPlotter is not safe for concurrent use.
type BoardPlotter struct {
	plotter   Plotter
	board     *board.Board
	opts      Options
	layerMask board.LayerSet
}

var _ board.DrawingVisitor = (*BoardPlotter)(nil)

// NewBoardPlotter returns a plotter for b writing to p. The layer set is
// empty until SetLayerSet is called.
func NewBoardPlotter(p Plotter, b *board.Board, opts Options) *BoardPlotter {
	return &BoardPlotter{plotter: p, board: b, opts: opts}
}

// SetLayerSet selects the layers being plotted.
func (bp *BoardPlotter) SetLayerSet(s board.LayerSet) { bp.layerMask = s }

// LayerSet returns the layers being plotted.
func (bp *BoardPlotter) LayerSet() board.LayerSet { return bp.layerMask }

// Options returns the plot options.
func (bp *BoardPlotter) Options() Options { return bp.opts }

// color returns the layer color, with white replaced by light gray.
func (bp *BoardPlotter) color(l board.Layer) gal.Color {
	return readable(bp.board.LayerColor(l))
}

func readable(c gal.Color) gal.Color {
	if c == gal.White {
		return gal.LightGray
	}
	return c
}

func (bp *BoardPlotter) onCopper() bool {
	return (bp.layerMask & board.AllCuMask()).Any()
}

// PlotPad flashes one pad. The aperture function follows the pad
// attribute, the pad shape and whether the plotted layers are external
// copper.
func (bp *BoardPlotter) PlotPad(pad *board.Pad, c gal.Color, mode DrawMode) {
	var md gerber.Metadata

	onCopper := bp.onCopper()
	onExternalCopper := (bp.layerMask & board.ExternalCuMask()).Any()
	onTechLayers := (pad.Layers & board.AllBoardTechMask()).Any()

	md.SetCmpReference(pad.Reference())

	if onCopper {
		md.SetNetAttribType(gerber.NetAttribAll)
		if onExternalCopper {
			md.SetPadName(pad.Name)
		}
		md.SetNetName(pad.Net)

		// Mechanical pads have no name or no plating.
		if pad.Attribute == board.PadAttribHoleNotPlated || pad.Name == "" {
			md.SetNotInNet(true)
		}

		if !onExternalCopper || !onTechLayers {
			// Not a flashed pad: inner layer, or a copper node without mask
			// or paste.
			md.SetNetAttribType(gerber.NetAttribNet | gerber.NetAttribCmp)
			if !onTechLayers {
				md.SetApertureAttrib(gerber.ApertureConductor)
			}
			switch pad.Attribute {
			case board.PadAttribHoleNotPlated:
				md.SetApertureAttrib(gerber.ApertureWasherPad)
			case board.PadAttribStandard:
				md.SetApertureAttrib(gerber.ApertureViaPad)
			}
		} else {
			switch pad.Attribute {
			case board.PadAttribHoleNotPlated:
				md.SetApertureAttrib(gerber.ApertureWasherPad)
			case board.PadAttribStandard:
				md.SetApertureAttrib(gerber.ApertureComponentPad)
			case board.PadAttribConn:
				md.SetApertureAttrib(gerber.ApertureConnectorPad)
			case board.PadAttribSMD:
				if pad.Shape == board.PadShapeCircle {
					md.SetApertureAttrib(gerber.ApertureBGAPadCuDef)
				} else {
					md.SetApertureAttrib(gerber.ApertureSMDPadCuDef)
				}
			}
		}

		if pad.Attribute == board.PadAttribHoleNotPlated {
			md.SetApertureAttrib(gerber.ApertureWasherPad)
		}
	} else {
		md.SetNetAttribType(gerber.NetAttribCmp)
	}

	bp.plotter.SetColor(readable(c))

	pos := pad.ShapePos()
	switch pad.Shape {
	case board.PadShapeCircle:
		bp.plotter.FlashPadCircle(pos, pad.Size.X, mode, &md)
	case board.PadShapeOval:
		bp.plotter.FlashPadOval(pos, pad.Size, pad.Orientation, mode, &md)
	case board.PadShapeTrapezoid:
		bp.plotter.FlashPadTrapez(pos, pad.BuildPadPolygon(), pad.Orientation, mode, &md)
	case board.PadShapeRoundRect:
		bp.plotter.FlashPadRoundRect(pos, pad.Size, pad.RoundRectCornerRadius(), pad.Orientation, mode, &md)
	default:
		bp.plotter.FlashPadRect(pos, pad.Size, pad.Orientation, mode, &md)
	}
}

// PlotAllTextsModule plots the reference, value and free texts of a
// footprint. It reports false when a text sits on an invalid layer.
func (bp *BoardPlotter) PlotAllTextsModule(m *board.Module) bool {
	plotRef := bp.opts.PlotReference
	plotVal := bp.opts.PlotValue

	ref, val := m.Reference, m.Value
	if !ref.Layer.Valid() || !val.Layer.Valid() {
		return false
	}
	if !bp.layerMask.Has(ref.Layer) || (!ref.Visible && !bp.opts.PlotInvisibleText) {
		plotRef = false
	}
	if !bp.layerMask.Has(val.Layer) || (!val.Visible && !bp.opts.PlotInvisibleText) {
		plotVal = false
	}

	if plotRef {
		c := bp.opts.ReferenceColor
		if c.IsUnspecified() {
			c = bp.color(ref.Layer)
		}
		bp.PlotTextModule(ref, c)
	}
	if plotVal {
		c := bp.opts.ValueColor
		if c.IsUnspecified() {
			c = bp.color(val.Layer)
		}
		bp.PlotTextModule(val, c)
	}

	for _, it := range m.GraphicalItems {
		t, ok := it.(*board.ModuleText)
		if !ok || !t.Visible {
			continue
		}
		if !t.Layer.Valid() {
			return false
		}
		if !bp.layerMask.Has(t.Layer) {
			continue
		}
		bp.PlotTextModule(t, bp.color(t.Layer))
	}
	return true
}

// PlotBoardGraphicItems plots the board drawings: graphic lines, texts,
// dimensions and targets. Markers are not plotted.
func (bp *BoardPlotter) PlotBoardGraphicItems() {
	for _, d := range bp.board.Drawings {
		d.Accept(bp)
	}
}

func (bp *BoardPlotter) VisitDrawSegment(s *board.DrawSegment) { bp.PlotDrawSegment(s) }
func (bp *BoardPlotter) VisitPCBText(t *board.PCBText)         { bp.PlotPCBText(t) }
func (bp *BoardPlotter) VisitDimension(d *board.Dimension)     { bp.PlotDimension(d) }
func (bp *BoardPlotter) VisitTarget(t *board.Target)           { bp.PlotTarget(t) }
func (bp *BoardPlotter) VisitMarker(*board.Marker)             {}

func textStyle(t *board.Text, orientation float64) TextStyle {
	size := t.Size
	if t.Mirrored {
		size.X = -size.X
	}
	return TextStyle{
		Orientation: orientation,
		Size:        size,
		HJustify:    t.HJustify,
		VJustify:    t.VJustify,
		Thickness:   t.Thickness,
		Italic:      t.Italic,
		// Any stroke thickness plots as bold.
		Bold:      t.Bold || t.Thickness != 0,
		Multiline: t.Multiline,
	}
}

// PlotTextModule plots one footprint text in c.
func (bp *BoardPlotter) PlotTextModule(t *board.ModuleText, c gal.Color) {
	c = readable(c)
	bp.plotter.SetColor(c)

	var md gerber.Metadata
	md.SetNetAttribType(gerber.NetAttribCmp)
	if t.Parent != nil {
		md.SetCmpReference(t.Parent.ReferenceDesignator())
	}

	bp.plotter.Text(t.Position, c, t.ShownText(), textStyle(&t.Text, t.DrawRotation()), &md)
}

// PlotDimension plots the dimension text and its seven lines: crossbar,
// two feature lines and two arrows at each crossbar end.
func (bp *BoardPlotter) PlotDimension(d *board.Dimension) {
	if !bp.layerMask.Has(d.Layer) {
		return
	}
	bp.plotter.SetColor(bp.color(d.Layer))

	bp.PlotPCBText(&d.Text)

	seg := board.DrawSegment{Shape: board.ShapeSegment, Layer: d.Layer, Width: d.Width}
	for _, l := range [...][2]image.Point{
		{d.CrossBarO, d.CrossBarF},
		{d.FeatureLineGO, d.FeatureLineGF},
		{d.FeatureLineDO, d.FeatureLineDF},
		{d.CrossBarF, d.ArrowD1F},
		{d.CrossBarF, d.ArrowD2F},
		{d.CrossBarO, d.ArrowG1F},
		{d.CrossBarO, d.ArrowG2F},
	} {
		seg.Start, seg.End = l[0], l[1]
		bp.PlotDrawSegment(&seg)
	}
}

// PlotTarget plots an alignment target: a circle of a third of its size,
// or half its size for the X shape, and a cross of half its size.
func (bp *BoardPlotter) PlotTarget(t *board.Target) {
	if !bp.layerMask.Has(t.Layer) {
		return
	}
	bp.plotter.SetColor(bp.color(t.Layer))

	radius := t.Size / 3
	if t.Shape == board.TargetX {
		radius = t.Size / 2
	}
	seg := board.DrawSegment{
		Shape: board.ShapeCircle,
		Layer: t.Layer,
		Width: t.Width,
		Start: t.Position,
		End:   t.Position.Add(image.Pt(radius, 0)),
	}
	bp.PlotDrawSegment(&seg)

	radius = t.Size / 2
	d1 := image.Pt(radius, 0)
	d2 := image.Pt(0, radius)
	if t.Shape == board.TargetX {
		d1 = image.Pt(radius, radius)
		d2 = image.Pt(radius, -radius)
	}

	seg.Shape = board.ShapeSegment
	seg.Start, seg.End = t.Position.Sub(d1), t.Position.Add(d1)
	bp.PlotDrawSegment(&seg)
	seg.Start, seg.End = t.Position.Sub(d2), t.Position.Add(d2)
	bp.PlotDrawSegment(&seg)
}

// PlotEdgeModules plots the outline items of every footprint.
func (bp *BoardPlotter) PlotEdgeModules() {
	for _, m := range bp.board.Modules {
		for _, it := range m.GraphicalItems {
			if e, ok := it.(*board.EdgeModule); ok && bp.layerMask.Has(e.Layer) {
				bp.PlotEdgeModule(e)
			}
		}
	}
}

// PlotEdgeModule plots one footprint outline item.
func (bp *BoardPlotter) PlotEdgeModule(e *board.EdgeModule) {
	bp.plotter.SetColor(bp.color(e.Layer))

	var md gerber.Metadata
	md.SetNetAttribType(gerber.NetAttribCmp)
	if e.Parent != nil {
		md.SetCmpReference(e.Parent.ReferenceDesignator())
	}
	switch {
	case bp.onCopper():
		md.SetApertureAttrib(gerber.ApertureEtchedCmp)
	case e.Layer == board.EdgeCuts:
		md.SetApertureAttrib(gerber.ApertureNonConductor)
	}

	mode := bp.opts.Mode
	switch e.Shape {
	case board.ShapeSegment:
		bp.plotter.ThickSegment(e.Start, e.End, e.Width, mode, &md)

	case board.ShapeCircle:
		r := geom.Round(geom.LineLength(e.End, e.Start))
		bp.plotter.ThickCircle(e.Start, 2*r, e.Width, mode, &md)

	case board.ShapeArc:
		r := geom.Round(geom.LineLength(e.End, e.Start))
		start := geom.ArcTangente(e.End.Y-e.Start.Y, e.End.X-e.Start.X)
		end := start + e.Angle
		bp.plotter.ThickArc(e.Start, -end, -start, r, e.Width, mode, &md)

	case board.ShapePolygon:
		if len(e.PolyPoints) <= 1 {
			gal.Logger().Debug("plot: malformed footprint polygon skipped", "points", len(e.PolyPoints))
			return
		}
		// Polygon corners are relative to the footprint at orientation 0.
		corners := make([]image.Point, len(e.PolyPoints))
		for i, p := range e.PolyPoints {
			if e.Parent != nil {
				p = geom.RotatePoint(p, e.Parent.Orientation).Add(e.Parent.Position)
			}
			corners[i] = p
		}
		bp.plotter.PlotPoly(corners, FilledShape, e.Width, &md)
	}
}

// PlotPCBText plots a board text, one Text call per line when multiline.
func (bp *BoardPlotter) PlotPCBText(t *board.PCBText) {
	shown := t.ShownText()
	if shown == "" || !bp.layerMask.Has(t.Layer) {
		return
	}

	var md gerber.Metadata
	if t.Layer.IsCopper() {
		md.SetApertureAttrib(gerber.ApertureNonConductor)
	}

	bp.plotter.SetColor(bp.color(t.Layer))
	style := textStyle(&t.Text, t.Angle)

	if !t.Multiline {
		bp.plotter.Text(t.Position, gal.Unspecified, shown, style, &md)
		return
	}
	lines := t.Lines()
	for i, pos := range t.LinePositions(len(lines)) {
		bp.plotter.Text(pos, gal.Unspecified, lines[i], style, &md)
	}
}

// PlotFilledAreas plots the filled area of a zone. In filled mode each
// contour is plotted as a polygon or as its fill segments plus outline; in
// sketch mode only the outline is drawn.
func (bp *BoardPlotter) PlotFilledAreas(z *board.Zone) {
	if z.IsEmpty() {
		return
	}

	var md gerber.Metadata
	if z.IsOnCopperLayer() {
		md.SetNetName(z.Net)
		// A zone without a net connects nothing.
		if z.Net == "" {
			md.SetApertureAttrib(gerber.ApertureNonConductor)
		} else {
			md.SetApertureAttrib(gerber.ApertureConductor)
			md.SetNetAttribType(gerber.NetAttribNet)
		}
	}

	bp.plotter.SetColor(bp.color(z.Layer))

	for _, contour := range z.FilledPolys {
		if len(contour) == 0 {
			continue
		}
		corners := geom.CloseRing(slices.Clone(contour))

		if bp.opts.Mode == Filled {
			if z.FillMode == board.ZoneFillSolid {
				bp.plotter.PlotPoly(corners, FilledShape, z.MinThickness, &md)
				continue
			}
			for _, s := range z.FillSegments {
				bp.plotter.ThickSegment(s.Start, s.End, z.MinThickness, bp.opts.Mode, &md)
			}
			if z.MinThickness > 0 {
				bp.plotter.PlotPoly(corners, NoFill, z.MinThickness, nil)
			}
			continue
		}

		if z.MinThickness > 0 {
			for i := 1; i < len(corners); i++ {
				bp.plotter.ThickSegment(corners[i-1], corners[i], z.MinThickness, bp.opts.Mode, &md)
			}
		}
		bp.plotter.SetCurrentLineWidth(-1, nil)
	}
}

// PlotDrawSegment plots a graphic line, circle, arc or curve.
func (bp *BoardPlotter) PlotDrawSegment(s *board.DrawSegment) {
	if !bp.layerMask.Has(s.Layer) {
		return
	}
	bp.plotter.SetColor(bp.color(s.Layer))

	var md gerber.Metadata
	if bp.onCopper() && s.Layer == board.EdgeCuts {
		md.SetApertureAttrib(gerber.ApertureNonConductor)
	}

	mode := bp.opts.Mode
	switch s.Shape {
	case board.ShapeCircle:
		r := geom.Round(geom.LineLength(s.End, s.Start))
		bp.plotter.ThickCircle(s.Start, 2*r, s.Width, mode, &md)

	case board.ShapeArc:
		r := geom.Round(geom.LineLength(s.End, s.Start))
		start := geom.ArcTangente(s.End.Y-s.Start.Y, s.End.X-s.Start.X)
		end := start + s.Angle
		bp.plotter.ThickArc(s.Start, -end, -start, r, s.Width, mode, &md)

	case board.ShapeCurve:
		bp.plotter.SetCurrentLineWidth(s.Width, &md)
		pts := s.BezierPoints()
		for i := 1; i < len(pts); i++ {
			bp.plotter.ThickSegment(pts[i-1], pts[i], s.Width, mode, &md)
		}

	default:
		bp.plotter.ThickSegment(s.Start, s.End, s.Width, mode, &md)
	}
}

// DrillMarkSize returns the flashed size of a drill mark: round holes are
// first clamped to small, then both axes lose adjust and are clamped to
// [1, pad size - 1]. The y axis only matters for oblong holes.
func DrillMarkSize(shape board.DrillShape, drill, pad image.Point, small, adjust int) image.Point {
	if small != 0 && shape == board.DrillShapeCircle {
		drill.X = min(small, drill.X)
	}
	drill.X = geom.Clamp(1, drill.X-adjust, pad.X-1)
	if shape == board.DrillShapeOblong {
		drill.Y = geom.Clamp(1, drill.Y-adjust, pad.Y-1)
	}
	return drill
}

func (bp *BoardPlotter) plotOneDrillMark(shape board.DrillShape, pos, drill, pad image.Point, orientation float64, small int) {
	size := DrillMarkSize(shape, drill, pad, small, bp.opts.WidthAdjust)
	if shape == board.DrillShapeOblong {
		bp.plotter.FlashPadOval(pos, size, orientation, bp.opts.Mode, nil)
		return
	}
	bp.plotter.FlashPadCircle(pos, size.X, bp.opts.Mode, nil)
}

// PlotDrillMarks marks via and pad holes. In filled mode marks are white so
// that they scrape the pads below, and the plot color is restored after.
func (bp *BoardPlotter) PlotDrillMarks() {
	small := 0
	if bp.opts.DrillMarks == SmallDrillMarks {
		small = board.SmallDrill
	}

	if bp.opts.Mode == Filled {
		bp.plotter.SetColor(gal.White)
	}

	for _, v := range bp.board.Vias {
		bp.plotOneDrillMark(board.DrillShapeCircle, v.Position, image.Pt(v.Drill, 0), image.Pt(v.Width, 0), 0, small)
	}
	for _, m := range bp.board.Modules {
		for _, p := range m.Pads {
			if p.DrillSize.X == 0 {
				continue
			}
			bp.plotOneDrillMark(p.DrillShape, p.Position, p.DrillSize, p.Size, p.Orientation, small)
		}
	}

	if bp.opts.Mode == Filled {
		bp.plotter.SetColor(bp.opts.Color)
	}
}

// PlotTracks plots the copper tracks on the plotted layers as conductors.
func (bp *BoardPlotter) PlotTracks() {
	for _, t := range bp.board.Tracks {
		if !bp.layerMask.Has(t.Layer) {
			continue
		}
		var md gerber.Metadata
		md.SetApertureAttrib(gerber.ApertureConductor)
		md.SetNetAttribType(gerber.NetAttribNet)
		md.SetNetName(t.Net)

		bp.plotter.SetColor(bp.color(t.Layer))
		bp.plotter.ThickSegment(t.Start, t.End, t.Width, bp.opts.Mode, &md)
	}
}

// PlotVias flashes the vias crossing a plotted copper layer.
func (bp *BoardPlotter) PlotVias() {
	for _, v := range bp.board.Vias {
		on := v.Layers & bp.layerMask & board.AllCuMask()
		if !on.Any() {
			continue
		}
		var md gerber.Metadata
		md.SetApertureAttrib(gerber.ApertureViaPad)
		md.SetNetAttribType(gerber.NetAttribNet)
		md.SetNetName(v.Net)

		bp.plotter.SetColor(bp.color(on.Layers()[0]))
		bp.plotter.FlashPadCircle(v.Position, v.Width, bp.opts.Mode, &md)
	}
}

// PlotLayer runs a full pass over the board for the given layers: zones,
// tracks, vias, pads, footprint texts and outlines, board drawings and
// drill marks.
func (bp *BoardPlotter) PlotLayer(layers board.LayerSet) {
	bp.SetLayerSet(layers)
	gal.Logger().Debug("plot: layer pass", "layers", layers.String(), "mode", bp.opts.Mode.String())

	for _, z := range bp.board.Zones {
		if layers.Has(z.Layer) {
			bp.PlotFilledAreas(z)
		}
	}
	bp.PlotTracks()
	bp.PlotVias()

	for _, m := range bp.board.Modules {
		for _, p := range m.Pads {
			on := p.Layers & layers
			if !on.Any() {
				continue
			}
			bp.PlotPad(p, bp.board.LayerColor(on.Layers()[0]), bp.opts.Mode)
		}
	}
	for _, m := range bp.board.Modules {
		if !bp.PlotAllTextsModule(m) {
			gal.Logger().Warn("plot: footprint text on invalid layer", "ref", m.ReferenceDesignator())
		}
	}
	bp.PlotEdgeModules()
	bp.PlotBoardGraphicItems()

	if bp.opts.DrillMarks != NoDrillMarks && bp.onCopper() {
		bp.PlotDrillMarks()
	}
}
