package gal

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// newScreenContext returns a context whose world coordinates are screen
// pixels.
func newScreenContext(w, h int, opts ...Option) *Context {
	opts = append([]Option{WithLookAt(gg.Pt(float64(w)/2, float64(h)/2))}, opts...)
	return New(w, h, opts...)
}

func expectPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Errorf("panic = %v, want %v", r, want)
		}
	}()
	fn()
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func assertPixel(t *testing.T, c *Context, x, y int, want color.RGBA) {
	t.Helper()
	got := c.Image().RGBAAt(x, y)
	if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) || !near(got.A, want.A) {
		t.Errorf("pixel(%d, %d) = %v, want %v", x, y, got, want)
	}
}

var (
	rgbaBlack = color.RGBA{0, 0, 0, 255}
	rgbaRed   = color.RGBA{255, 0, 0, 255}
	rgbaGreen = color.RGBA{0, 255, 0, 255}
	rgbaBlue  = color.RGBA{0, 0, 255, 255}
)

func TestWorldScreenRoundTrip(t *testing.T) {
	ctx := New(200, 100, WithZoomFactor(4), WithLookAt(gg.Pt(-3, 7)), WithFlip(false, true))

	tests := []gg.Point{{X: 0, Y: 0}, {X: -3, Y: 7}, {X: 12.5, Y: -4}}
	for _, p := range tests {
		back := ctx.ToWorld(ctx.ToScreen(p))
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("ToWorld(ToScreen(%v)) = %v", p, back)
		}
	}
	if got := ctx.ToScreen(gg.Pt(-3, 7)); got != gg.Pt(100, 50) {
		t.Errorf("ToScreen(lookAt) = %v, want (100, 50)", got)
	}
	if got := ctx.ToScreen(gg.Pt(-3, 8)); got != gg.Pt(100, 46) {
		t.Errorf("ToScreen(lookAt + y) = %v, want (100, 46) with y flipped", got)
	}
}

func TestEffectiveLineWidth(t *testing.T) {
	tests := []struct {
		name   string
		zoom   float64
		rotate float64
		width  float64
		want   float64
	}{
		{"zero width clamps to one pixel", 50, 0, 0, 0.02},
		{"wide line unchanged", 50, 0, 1, 1},
		{"unit zoom", 1, 0, 0, 1},
		{"thin line clamps", 10, 0, 0.01, 0.1},
		{"rotated 45 degrees", 50, math.Pi / 4, 0, 0.02},
		{"rotated 30 degrees", 50, math.Pi / 6, 0, 0.02},
		{"rotated quarter turn", 10, math.Pi / 2, 0.01, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := New(100, 100, WithZoomFactor(tt.zoom))
			ctx.SetLineWidth(tt.width)
			ctx.Rotate(tt.rotate)
			if got := ctx.EffectiveLineWidth(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("EffectiveLineWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawOutsideFramePanics(t *testing.T) {
	ctx := newScreenContext(16, 16)
	expectPanic(t, ErrNotInitialized, func() {
		ctx.DrawLine(gg.Pt(0, 0), gg.Pt(4, 4))
	})
}

func TestBackgroundAndFill(t *testing.T) {
	ctx := newScreenContext(64, 64, WithBackground(PureBlue))
	ctx.BeginDrawing()
	ctx.SetIsFill(true)
	ctx.SetIsStroke(false)
	ctx.SetFillColor(PureRed)
	ctx.DrawRectangle(gg.Pt(10, 10), gg.Pt(30, 30))
	ctx.EndDrawing()

	assertPixel(t, ctx, 20, 20, rgbaRed)
	assertPixel(t, ctx, 50, 50, rgbaBlue)
}

func TestFlushBeforeColorChange(t *testing.T) {
	ctx := newScreenContext(64, 64)
	ctx.BeginDrawing()
	ctx.SetIsFill(true)
	ctx.SetIsStroke(false)
	ctx.SetFillColor(PureRed)
	ctx.DrawRectangle(gg.Pt(4, 4), gg.Pt(20, 20))
	ctx.SetFillColor(PureGreen)
	ctx.DrawRectangle(gg.Pt(40, 40), gg.Pt(60, 60))
	ctx.EndDrawing()

	assertPixel(t, ctx, 12, 12, rgbaRed)
	assertPixel(t, ctx, 50, 50, rgbaGreen)
}

func TestFillThenStroke(t *testing.T) {
	ctx := newScreenContext(64, 64)
	ctx.BeginDrawing()
	ctx.SetIsFill(true)
	ctx.SetIsStroke(true)
	ctx.SetFillColor(PureRed)
	ctx.SetStrokeColor(PureGreen)
	ctx.SetLineWidth(6)
	ctx.DrawRectangle(gg.Pt(10, 10), gg.Pt(50, 50))
	ctx.EndDrawing()

	assertPixel(t, ctx, 30, 30, rgbaRed)
	// The stroke straddles the edge and covers the fill there.
	assertPixel(t, ctx, 30, 11, rgbaGreen)
}

func TestDrawSegmentModes(t *testing.T) {
	ctx := newScreenContext(64, 64)
	ctx.BeginDrawing()
	ctx.SetIsStroke(true)
	ctx.SetStrokeColor(PureGreen)
	ctx.SetFillColor(PureRed)

	ctx.SetIsFill(true)
	ctx.DrawSegment(gg.Pt(8, 16), gg.Pt(56, 16), 10)
	if got := ctx.LineWidth(); got != 10 {
		t.Errorf("LineWidth() after filled segment = %v, want 10", got)
	}

	ctx.SetIsFill(false)
	ctx.SetLineWidth(1)
	ctx.DrawSegment(gg.Pt(8, 44.5), gg.Pt(56, 44.5), 10)
	ctx.EndDrawing()

	// Solid capsule in the fill color.
	assertPixel(t, ctx, 32, 16, rgbaRed)
	assertPixel(t, ctx, 4, 16, rgbaRed)
	// Outline only: hollow body, edges in the stroke color.
	assertPixel(t, ctx, 32, 44, rgbaBlack)
	assertPixel(t, ctx, 32, 39, rgbaGreen)
}

func TestDrawArcAnglesSwapped(t *testing.T) {
	a := newScreenContext(64, 64)
	b := newScreenContext(64, 64)
	for _, tc := range []struct {
		ctx        *Context
		start, end float64
	}{{a, 0, math.Pi / 2}, {b, math.Pi / 2, 0}} {
		tc.ctx.BeginDrawing()
		tc.ctx.SetIsFill(true)
		tc.ctx.SetFillColor(PureRed)
		tc.ctx.SetIsStroke(false)
		tc.ctx.DrawArc(gg.Pt(32, 32), 20, tc.start, tc.end)
		tc.ctx.EndDrawing()
	}

	for i := range a.Image().Pix {
		if a.Image().Pix[i] != b.Image().Pix[i] {
			t.Fatalf("swapped angles differ at byte %d", i)
		}
	}
	// Pie wedge in the +x +y quadrant.
	assertPixel(t, a, 40, 40, rgbaRed)
	assertPixel(t, a, 24, 24, rgbaBlack)
}

func TestDegeneratePolygonSkipped(t *testing.T) {
	ctx := newScreenContext(16, 16)
	ctx.BeginDrawing()
	ctx.DrawPolygon([]gg.Point{{X: 1, Y: 1}})
	ctx.DrawPolyline(nil)
	if ctx.dirty {
		t.Error("degenerate polygon left a pending path")
	}
	ctx.EndDrawing()
}

func TestPolygonWithHole(t *testing.T) {
	ctx := newScreenContext(64, 64)
	ctx.BeginDrawing()
	ctx.SetIsFill(true)
	ctx.SetIsStroke(false)
	ctx.SetFillColor(PureRed)
	outline := []gg.Point{{X: 4, Y: 4}, {X: 60, Y: 4}, {X: 60, Y: 60}, {X: 4, Y: 60}}
	// Same winding as the outline; it must still be cut out.
	hole := []gg.Point{{X: 20, Y: 20}, {X: 44, Y: 20}, {X: 44, Y: 44}, {X: 20, Y: 44}}
	ctx.DrawPolygonWithHoles(outline, [][]gg.Point{hole})
	ctx.EndDrawing()

	assertPixel(t, ctx, 10, 10, rgbaRed)
	assertPixel(t, ctx, 32, 32, rgbaBlack)
}

func TestTransformStack(t *testing.T) {
	ctx := newScreenContext(32, 32)
	ctx.BeginDrawing()
	ctx.Save()
	ctx.Translate(gg.Pt(5, 6))
	ctx.Scale(gg.Pt(2, 2))
	if got := ctx.UserMatrix().TransformPoint(gg.Pt(1, 1)); got != gg.Pt(7, 8) {
		t.Errorf("user transform of (1, 1) = %v, want (7, 8)", got)
	}
	ctx.Restore()
	if !ctx.UserMatrix().IsIdentity() {
		t.Errorf("UserMatrix() after Restore = %v, want identity", ctx.UserMatrix())
	}
	// Unbalanced restore is tolerated.
	ctx.Restore()
	ctx.EndDrawing()
}

func TestClearScreen(t *testing.T) {
	ctx := newScreenContext(16, 16)
	ctx.BeginDrawing()
	ctx.ClearScreen(PureGreen)
	ctx.EndDrawing()
	assertPixel(t, ctx, 8, 8, rgbaGreen)

	if ctx.background != PureGreen {
		t.Errorf("background = %v, want PureGreen", ctx.background)
	}
}

func TestResizeScreen(t *testing.T) {
	ctx := newScreenContext(16, 16)
	ctx.BeginDrawing()
	ctx.EndDrawing()

	ctx.ResizeScreen(40, 20)
	if b := ctx.Image().Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("Image().Bounds() = %v, want 40x20", b)
	}

	// Targets are ignored until the compositor is rebuilt.
	ctx.SetTarget(TargetOverlay)
	if ctx.Target() != TargetCached {
		t.Errorf("Target() = %v, want cached while compositor is invalid", ctx.Target())
	}

	ctx.BeginDrawing()
	ctx.SetTarget(TargetOverlay)
	if ctx.Target() != TargetOverlay {
		t.Errorf("Target() = %v, want overlay", ctx.Target())
	}
	ctx.EndDrawing()
}

func TestBitmapText(t *testing.T) {
	ctx := newScreenContext(64, 32)
	ctx.BeginDrawing()
	ctx.SetStrokeColor(White)
	ctx.BitmapText("WM", gg.Pt(32, 16), 20)
	ctx.EndDrawing()

	lit := 0
	img := ctx.Image()
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if img.RGBAAt(x, y).R > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("BitmapText drew no pixels")
	}
}
