package gal

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
)

// RenderTarget selects the buffer drawing goes to.
type RenderTarget uint8

const (
	// TargetCached is the main buffer, for items drawn from cached groups.
	TargetCached RenderTarget = iota
	// TargetNonCached is the main buffer, for items drawn immediately.
	TargetNonCached
	// TargetOverlay is composed on top of the main buffer.
	TargetOverlay
)

// String returns the target name.
func (t RenderTarget) String() string {
	switch t {
	case TargetCached:
		return "cached"
	case TargetNonCached:
		return "noncached"
	case TargetOverlay:
		return "overlay"
	}
	return "unknown"
}

// Cursor sizes in pixels.
const (
	cursorSize           = 80
	fullscreenCursorSize = 8000
)

// SetTarget switches the buffer subsequent drawing goes to. It has no effect
// until the compositor has been set up by BeginDrawing.
func (c *Context) SetTarget(t RenderTarget) {
	if !c.compValid {
		return
	}
	if c.initialized {
		c.flush()
	}
	c.comp.SetBuffer(c.bufferFor(t))
	c.target = t
}

// Target returns the current render target.
func (c *Context) Target() RenderTarget {
	return c.target
}

// ClearTarget clears one buffer to transparent. The current target is left
// selected.
func (c *Context) ClearTarget(t RenderTarget) {
	if !c.compValid {
		return
	}
	if c.initialized {
		c.flush()
	}
	saved := c.comp.Buffer()
	c.comp.SetBuffer(c.bufferFor(t))
	c.comp.ClearBuffer()
	if saved >= 0 {
		c.comp.SetBuffer(saved)
	}
}

func (c *Context) bufferFor(t RenderTarget) int {
	if t == TargetOverlay {
		return c.overlay
	}
	return c.mainBuffer
}

// SaveScreen copies the visible surface into the backup surface.
func (c *Context) SaveScreen() {
	c.surface.save()
}

// RestoreScreen copies the backup surface back onto the visible surface.
func (c *Context) RestoreScreen() {
	c.surface.restore()
}

// SetCursorEnabled shows or hides the cursor cross-hair.
func (c *Context) SetCursorEnabled(enabled bool) {
	c.cursorEnabled = enabled
}

// SetFullscreenCursor makes the cross-hair span the whole screen.
func (c *Context) SetFullscreenCursor(fullscreen bool) {
	c.fullscreenCursor = fullscreen
}

// SetCursorColor sets the cross-hair color. Alpha darkens the color rather
// than blending it.
func (c *Context) SetCursorColor(col Color) {
	c.cursorColor = col
}

// DrawCursor moves the cursor to a world position. It is drawn by
// EndDrawing.
func (c *Context) DrawCursor(pos gg.Point) {
	c.cursorPos = pos
}

func (c *Context) blitCursor() {
	if !c.cursorEnabled {
		return
	}

	size := cursorSize
	if c.fullscreenCursor {
		size = fullscreenCursorSize
	}

	img := c.surface.screen
	p := c.ToScreen(c.cursorPos)
	x, y := int(math.Round(p.X)), int(math.Round(p.Y))
	src := image.NewUniform(opaque(c.cursorColor))
	half := size / 2

	h := image.Rect(x-half, y, x+half, y+1).Intersect(img.Bounds())
	v := image.Rect(x, y-half, x+1, y+half).Intersect(img.Bounds())
	draw.Draw(img, h, src, image.Point{}, draw.Src)
	draw.Draw(img, v, src, image.Point{}, draw.Src)
}
