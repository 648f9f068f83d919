package gal

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// BitmapText draws a single line label centred on position, height user
// units tall, in the stroke color.
func (c *Context) BitmapText(s string, position gg.Point, height float64) {
	c.flush()
	if c.grouping {
		c.record(TextCommand{Text: s, Position: position, Height: height})
		return
	}
	if !c.initialized {
		precondition(ErrNotInitialized, "BitmapText outside BeginDrawing")
	}
	c.drawText(s, position, height)
}

func (c *Context) drawText(s string, position gg.Point, height float64) {
	if s == "" {
		return
	}
	full := c.fullMatrix()
	size := int(math.Round(height * deviceScale(full)))
	if size < 1 {
		return
	}
	face := c.face(size)
	if face == nil {
		return
	}

	p := full.TransformPoint(position)
	dc := c.drawTarget()
	col := c.strokeColor
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	dc.SetFont(face)
	dc.DrawStringAnchored(s, p.X, p.Y, 0.5, 0.5)
}

// face returns the default font at a pixel size, loading Go Regular on
// first use.
func (c *Context) face(size int) text.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	if c.fontSource == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			Logger().Warn("gal: cannot load default font", "err", err)
			return nil
		}
		c.fontSource = src
	}
	f := c.fontSource.Face(float64(size))
	c.faces[size] = f
	return f
}
