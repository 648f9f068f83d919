package gal

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
)

// Compositor owns a set of equally sized drawing buffers and merges them onto
// a main surface. Buffer handles are dense and start at zero.
//
// Buffers hold premultiplied pixels; DrawBuffer blends them source-over.
type Compositor struct {
	width, height int
	buffers       []*gg.Context
	current       int
	main          *image.RGBA
}

// NewCompositor creates a compositor without buffers.
func NewCompositor(width, height int) *Compositor {
	return &Compositor{width: width, height: height, current: -1}
}

// Size returns the buffer dimensions.
func (c *Compositor) Size() (width, height int) {
	return c.width, c.height
}

// Resize reallocates every buffer. Contents are lost.
func (c *Compositor) Resize(width, height int) {
	c.width, c.height = width, height
	for i := range c.buffers {
		c.buffers[i] = newBuffer(width, height)
	}
}

// CreateBuffer allocates a transparent buffer and returns its handle.
func (c *Compositor) CreateBuffer() int {
	c.buffers = append(c.buffers, newBuffer(c.width, c.height))
	return len(c.buffers) - 1
}

func newBuffer(width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetFillRule(gg.FillRuleNonZero)
	return dc
}

// SetBuffer selects the buffer subsequent drawing goes to.
func (c *Compositor) SetBuffer(handle int) {
	c.check(handle)
	c.current = handle
}

// Buffer returns the selected buffer handle, or -1 before the first
// SetBuffer.
func (c *Compositor) Buffer() int {
	return c.current
}

// Context returns the drawing context of the selected buffer.
func (c *Compositor) Context() *gg.Context {
	c.check(c.current)
	return c.buffers[c.current]
}

// ClearBuffer makes the selected buffer fully transparent.
func (c *Compositor) ClearBuffer() {
	c.Context().Clear()
}

// SetMainSurface sets the surface DrawBuffer composes onto.
func (c *Compositor) SetMainSurface(img *image.RGBA) {
	c.main = img
}

// DrawBuffer blends a buffer over the main surface in screen coordinates.
func (c *Compositor) DrawBuffer(handle int) {
	c.check(handle)
	if c.main == nil {
		return
	}
	draw.Draw(c.main, c.main.Bounds(), c.BufferImage(handle), image.Point{}, draw.Over)
}

// BufferImage returns a view of a buffer's pixels. The view aliases the
// buffer and is invalidated by Resize.
func (c *Compositor) BufferImage(handle int) *image.RGBA {
	c.check(handle)
	pm := c.buffers[handle].ResizeTarget()
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}

// SurfaceFormats lists the texture formats a composed frame can be copied
// into.
var SurfaceFormats = []gputypes.TextureFormat{
	gputypes.TextureFormatRGBA8Unorm,
	gputypes.TextureFormatRGBA8UnormSrgb,
	gputypes.TextureFormatBGRA8Unorm,
	gputypes.TextureFormatBGRA8UnormSrgb,
}

// ParseSurfaceFormat returns the entry of SurfaceFormats whose name matches
// s, ignoring case.
func ParseSurfaceFormat(s string) (gputypes.TextureFormat, error) {
	for _, f := range SurfaceFormats {
		if strings.EqualFold(f.String(), s) {
			return f, nil
		}
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// CopyPixels packs img into tightly packed rows laid out as format, ready
// for upload to a display texture. Pixels stay premultiplied.
func CopyPixels(img *image.RGBA, format gputypes.TextureFormat) ([]byte, error) {
	var swap bool
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		swap = true
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	b := img.Bounds()
	row := b.Dx() * 4
	out := make([]byte, row*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):][:row]
		dst := out[y*row:][:row]
		copy(dst, src)
		if swap {
			for i := 0; i < row; i += 4 {
				dst[i], dst[i+2] = dst[i+2], dst[i]
			}
		}
	}
	return out, nil
}

func (c *Compositor) check(handle int) {
	if handle < 0 || handle >= len(c.buffers) {
		precondition(ErrUnknownBuffer, "buffer %d of %d", handle, len(c.buffers))
	}
}
