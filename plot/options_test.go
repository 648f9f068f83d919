package plot

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gal"
	"github.com/gogpu/gal/board"
)

func TestReadOptions(t *testing.T) {
	src := `
mode: sketch
drill_marks: full
width_adjust: 50000
plot_value: false
reference_color: "#00ff00"
layers: [F.Cu, F.Mask]
`
	opts, err := ReadOptions(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadOptions() error = %v", err)
	}
	if opts.Mode != Sketch || opts.DrillMarks != FullDrillMarks || opts.WidthAdjust != 50000 {
		t.Errorf("opts = %+v", opts)
	}
	if opts.PlotValue || !opts.PlotReference {
		t.Errorf("PlotValue = %v, PlotReference = %v, want false, true", opts.PlotValue, opts.PlotReference)
	}
	if opts.ReferenceColor != gal.PureGreen {
		t.Errorf("ReferenceColor = %v, want pure green", opts.ReferenceColor)
	}
	if opts.Color != gal.Black {
		t.Errorf("Color = %v, want default black", opts.Color)
	}

	layers, err := opts.PlotLayers()
	if err != nil {
		t.Fatalf("PlotLayers() error = %v", err)
	}
	if !slices.Equal(layers, []board.Layer{board.FCu, board.FMask}) {
		t.Errorf("PlotLayers() = %v, want [F.Cu F.Mask]", layers)
	}
}

func TestReadOptionsEmpty(t *testing.T) {
	opts, err := ReadOptions(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadOptions() error = %v", err)
	}
	if opts.Mode != Filled || opts.DrillMarks != SmallDrillMarks || len(opts.Layers) != 4 {
		t.Errorf("opts = %+v, want defaults", opts)
	}
}

func TestReadOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown field", "colour: red\n"},
		{"bad mode", "mode: wireframe\n"},
		{"bad drill marks", "drill_marks: some\n"},
		{"bad color", "color: \"#12\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadOptions(strings.NewReader(tt.src)); err == nil {
				t.Error("ReadOptions() error = nil")
			}
		})
	}
}

func TestPlotLayersUnknown(t *testing.T) {
	opts := DefaultOptions()
	opts.Layers = append(opts.Layers, "F.Glue")
	if _, err := opts.PlotLayers(); err == nil {
		t.Error("PlotLayers() error = nil for unknown layer")
	}
}

func TestWriteOptionsRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	opts.Mode = Sketch
	opts.ValueColor = gal.Blue

	var buf bytes.Buffer
	if err := WriteOptions(&buf, opts); err != nil {
		t.Fatalf("WriteOptions() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "mode: sketch") || !strings.Contains(out, "drill_marks: small") {
		t.Errorf("WriteOptions() =\n%s", out)
	}
	if strings.Contains(out, "reference_color") {
		t.Errorf("unspecified reference color written:\n%s", out)
	}

	back, err := ReadOptions(&buf)
	if err != nil {
		t.Fatalf("ReadOptions() error = %v", err)
	}
	if back.Mode != opts.Mode || back.ValueColor.Hex() != opts.ValueColor.Hex() || len(back.Layers) != len(opts.Layers) {
		t.Errorf("round trip = %+v, want %+v", back, opts)
	}
}
