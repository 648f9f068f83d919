package gal

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.background != Black {
		t.Errorf("background = %v, want Black", o.background)
	}
	if o.zoomFactor != 1 || o.screenDPI != 1 || o.worldUnitLength != 1 {
		t.Errorf("scale options = %v, %v, %v, want 1, 1, 1", o.zoomFactor, o.screenDPI, o.worldUnitLength)
	}
}

func TestOptionsApply(t *testing.T) {
	ctx := New(100, 100,
		WithBackground(White),
		WithZoomFactor(2),
		WithScreenDPI(3),
		WithWorldUnitLength(0.5),
		WithLookAt(gg.Pt(10, 20)),
		WithCursorColor(Red),
		WithFlip(true, false),
	)

	if ctx.background != White {
		t.Errorf("background = %v, want White", ctx.background)
	}
	if got := ctx.WorldScale(); got != 3 {
		t.Errorf("WorldScale() = %v, want 3", got)
	}
	if ctx.cursorColor != Red {
		t.Errorf("cursorColor = %v, want Red", ctx.cursorColor)
	}

	// Look-at point maps to the screen centre, x mirrored.
	if got := ctx.ToScreen(gg.Pt(10, 20)); got != gg.Pt(50, 50) {
		t.Errorf("ToScreen(lookAt) = %v, want (50, 50)", got)
	}
	if got := ctx.ToScreen(gg.Pt(11, 20)); got != gg.Pt(47, 50) {
		t.Errorf("ToScreen(lookAt+1) = %v, want (47, 50)", got)
	}
}
