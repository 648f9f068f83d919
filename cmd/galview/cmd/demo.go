package cmd

import (
	"image"

	"github.com/gogpu/gal/board"
)

var mm = board.MMToIU

// demoBoard returns a small two layer board and its outline rectangle.
func demoBoard() (*board.Board, image.Rectangle) {
	b := board.New()
	area := image.Rect(0, 0, mm(40), mm(25))

	// Outline.
	corners := []image.Point{
		area.Min, {area.Max.X, area.Min.Y}, area.Max, {area.Min.X, area.Max.Y}, area.Min,
	}
	for i := 1; i < len(corners); i++ {
		b.Drawings = append(b.Drawings, &board.DrawSegment{
			Shape: board.ShapeSegment, Layer: board.EdgeCuts, Width: mm(0.15),
			Start: corners[i-1], End: corners[i],
		})
	}

	r1 := resistor("R1", "10k", image.Pt(mm(8), mm(8)))
	u1 := dualInline("U1", "NE555", image.Pt(mm(24), mm(12)))
	j1 := mountingHole("H1", image.Pt(mm(36), mm(21)))
	b.Modules = append(b.Modules, r1, u1, j1)

	b.Tracks = append(b.Tracks,
		&board.Track{Start: r1.Pads[1].Position, End: image.Pt(mm(14), mm(8)), Width: mm(0.25), Layer: board.FCu, Net: "OUT"},
		&board.Track{Start: image.Pt(mm(14), mm(8)), End: u1.Pads[0].Position, Width: mm(0.25), Layer: board.FCu, Net: "OUT"},
		&board.Track{Start: r1.Pads[0].Position, End: image.Pt(mm(6), mm(16)), Width: mm(0.4), Layer: board.FCu, Net: "VCC"},
		&board.Track{Start: image.Pt(mm(6), mm(16)), End: u1.Pads[3].Position, Width: mm(0.4), Layer: board.BCu, Net: "VCC"},
	)
	b.Vias = append(b.Vias, &board.Via{
		Position: image.Pt(mm(6), mm(16)), Width: mm(0.8), Drill: mm(0.4),
		Layers: board.AllCuMask(), Net: "VCC",
	})

	b.Zones = append(b.Zones, &board.Zone{
		Layer: board.BCu,
		Net:   "GND",
		FilledPolys: [][]image.Point{{
			{mm(1), mm(19)}, {mm(30), mm(19)}, {mm(30), mm(24)}, {mm(1), mm(24)},
		}},
		MinThickness: mm(0.25),
	})

	b.Drawings = append(b.Drawings,
		&board.PCBText{Text: board.Text{
			Text: "gal demo\nrev A", Position: image.Pt(mm(8), mm(3)), Size: image.Pt(mm(1.5), mm(1.5)),
			Thickness: mm(0.2), Visible: true, Multiline: true, Layer: board.FSilkS,
		}},
		&board.Target{Shape: board.TargetX, Layer: board.FSilkS, Position: image.Pt(mm(36), mm(4)), Size: mm(3), Width: mm(0.15)},
		&board.DrawSegment{
			Shape: board.ShapeArc, Layer: board.FSilkS, Width: mm(0.15),
			Start: image.Pt(mm(36), mm(12)), End: image.Pt(mm(38), mm(12)), Angle: 1800,
		},
		&board.DrawSegment{
			Shape: board.ShapeCurve, Layer: board.FSilkS, Width: mm(0.15),
			Start: image.Pt(mm(30), mm(16)), BezierC1: image.Pt(mm(32), mm(13)),
			BezierC2: image.Pt(mm(35), mm(19)), End: image.Pt(mm(38), mm(16)),
		},
	)
	return b, area
}

func silkBox(m *board.Module, half image.Point) {
	c := []image.Point{
		{-half.X, -half.Y}, {half.X, -half.Y}, {half.X, half.Y}, {-half.X, half.Y}, {-half.X, -half.Y},
	}
	for i := 1; i < len(c); i++ {
		m.AddItem(&board.EdgeModule{
			Shape: board.ShapeSegment, Layer: board.FSilkS, Width: mm(0.12),
			Start: m.Position.Add(c[i-1]), End: m.Position.Add(c[i]),
		})
	}
}

func resistor(ref, value string, pos image.Point) *board.Module {
	m := board.NewModule(ref, value, pos, 0)
	m.Reference.Position = pos.Add(image.Pt(0, -mm(1.5)))
	m.Reference.Size = image.Pt(mm(1), mm(1))
	m.Value.Size = image.Pt(mm(1), mm(1))

	layers := board.NewLayerSet(board.FCu, board.FMask, board.FPaste)
	nets := [2]string{"VCC", "OUT"}
	for i, dx := range []int{-mm(1), mm(1)} {
		m.AddPad(&board.Pad{
			Name: string(rune('1' + i)), Net: nets[i],
			Shape: board.PadShapeRoundRect, Attribute: board.PadAttribSMD,
			Position: pos.Add(image.Pt(dx, 0)), Size: image.Pt(mm(1), mm(1.2)),
			RoundRectRadiusRatio: 0.25, Layers: layers,
		})
	}
	silkBox(m, image.Pt(mm(1.8), mm(0.9)))
	return m
}

func dualInline(ref, value string, pos image.Point) *board.Module {
	m := board.NewModule(ref, value, pos, 900)
	m.Reference.Position = pos.Add(image.Pt(-mm(5), 0))
	m.Reference.Size = image.Pt(mm(1.2), mm(1.2))
	m.Value.Size = image.Pt(mm(1.2), mm(1.2))

	layers := board.AllCuMask() | board.NewLayerSet(board.FMask, board.BMask)
	nets := [8]string{"OUT", "", "", "VCC", "GND", "", "", "VCC"}
	for i := range 8 {
		col, row := i/4, i%4
		shape := board.PadShapeOval
		if i == 0 {
			shape = board.PadShapeRect
		}
		m.AddPad(&board.Pad{
			Name: string(rune('1' + i)), Net: nets[i],
			Shape: shape, Attribute: board.PadAttribStandard,
			Position:    pos.Add(image.Pt(mm(-3.81)+row*mm(2.54), mm(-3.81)+col*mm(7.62))),
			Size:        image.Pt(mm(1.6), mm(2.4)),
			Orientation: 900,
			DrillShape:  board.DrillShapeCircle,
			DrillSize:   image.Pt(mm(0.8), 0),
			Layers:      layers,
		})
	}
	m.AddItem(&board.EdgeModule{
		Shape: board.ShapePolygon, Layer: board.FSilkS, Width: mm(0.12),
		PolyPoints: []image.Point{{-mm(2), -mm(5)}, {mm(2), -mm(5)}, {mm(2), mm(5)}, {-mm(2), mm(5)}},
	})
	return m
}

func mountingHole(ref string, pos image.Point) *board.Module {
	m := board.NewModule(ref, "MountingHole", pos, 0)
	m.Reference.Position = pos.Add(image.Pt(0, -mm(3)))
	m.Reference.Size = image.Pt(mm(1), mm(1))
	m.Value.Visible = false

	m.AddPad(&board.Pad{
		Shape: board.PadShapeCircle, Attribute: board.PadAttribHoleNotPlated,
		Position: pos, Size: image.Pt(mm(3.2), mm(3.2)),
		DrillShape: board.DrillShapeCircle, DrillSize: image.Pt(mm(3.2), 0),
		Layers: board.AllCuMask() | board.NewLayerSet(board.FMask, board.BMask),
	})
	m.AddPad(&board.Pad{
		Name: "2", Net: "GND", Shape: board.PadShapeTrapezoid, Attribute: board.PadAttribConn,
		Position: pos.Add(image.Pt(-mm(4), 0)), Size: image.Pt(mm(2), mm(1.5)), DeltaSize: image.Pt(mm(0.5), 0),
		Layers: board.NewLayerSet(board.FCu, board.FMask),
	})
	m.AddItem(&board.EdgeModule{
		Shape: board.ShapeCircle, Layer: board.FSilkS, Width: mm(0.12),
		Start: pos, End: pos.Add(image.Pt(mm(2), 0)),
	})
	return m
}
