package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gal/plot"
)

func TestFitScale(t *testing.T) {
	area := image.Rect(0, 0, 1000, 500)
	if got := fitScale(area, 100, 100); math.Abs(got-0.09) > 1e-12 {
		t.Errorf("fitScale() = %v, want 0.09", got)
	}
	if got := centre(image.Rect(10, 20, 30, 60)); got != image.Pt(20, 40) {
		t.Errorf("centre() = %v, want (20,40)", got)
	}
}

func TestRenderBoard(t *testing.T) {
	b, area := demoBoard()
	cfg := Config{Width: 160, Height: 100, Zoom: 1, Output: "x.png", LogLevel: "warn"}

	img, err := renderBoard(b, area, cfg, plot.DefaultOptions())
	if err != nil {
		t.Fatalf("renderBoard() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 160, 100) {
		t.Fatalf("bounds = %v", img.Bounds())
	}

	drawn := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			drawn++
		}
	}
	if drawn == 0 {
		t.Error("rendered image is blank")
	}

	path := filepath.Join(t.TempDir(), "board.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("png.Decode() error = %v", err)
	}
}

func TestWriteFrameRaw(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	tests := []struct {
		format string
		want   []byte
	}{
		{"RGBA8Unorm", []byte{1, 2, 3, 255, 0, 0, 0, 0}},
		{"bgra8unorm", []byte{3, 2, 1, 255, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "frame.raw")
		cfg := Config{Output: path, Format: tt.format}
		if err := writeFrame(cfg, img); err != nil {
			t.Fatalf("writeFrame(%s) error = %v", tt.format, err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("writeFrame(%s) wrote %v, want %v", tt.format, got, tt.want)
		}
	}

	if err := writeFrame(Config{Output: "x", Format: "R8Unorm"}, img); err == nil {
		t.Error("writeFrame() error = nil for an unsupported format")
	}
}

func TestRenderBoardUnknownLayer(t *testing.T) {
	b, area := demoBoard()
	opts := plot.DefaultOptions()
	opts.Layers = []string{"Top"}
	cfg := Config{Width: 10, Height: 10, Zoom: 1}
	if _, err := renderBoard(b, area, cfg, opts); err == nil {
		t.Error("renderBoard() error = nil for an unknown layer")
	}
}

func TestPlotBoard(t *testing.T) {
	b, area := demoBoard()
	cfg := Config{Width: 160, Height: 100, Zoom: 1}

	p, err := plotBoard(b, area, cfg, plot.DefaultOptions())
	if err != nil {
		t.Fatalf("plotBoard() error = %v", err)
	}
	if len(p.Metadata) == 0 || len(plot.DrawCommands(p.Recording)) != len(p.Metadata) {
		t.Fatalf("metadata = %d, draw commands = %d", len(p.Metadata), len(plot.DrawCommands(p.Recording)))
	}

	seen := map[string]bool{}
	for _, md := range p.Metadata {
		seen[attributes(md)] = true
	}
	for _, want := range []string{
		".AperFunction,ViaPad;.N,VCC",
		".AperFunction,Conductor;.N,OUT",
	} {
		if !seen[want] {
			t.Errorf("no item plotted with %q", want)
		}
	}
}
