package gal

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Option configures a Context during creation.
//
// Example:
//
//	ctx := gal.New(800, 600,
//	    gal.WithBackground(gal.Black),
//	    gal.WithZoomFactor(2.5),
//	)
type Option func(*options)

type options struct {
	background      Color
	worldUnitLength float64
	screenDPI       float64
	zoomFactor      float64
	lookAt          gg.Point
	flipX, flipY    bool
	cursorColor     Color
	fontSource      *text.FontSource
}

func defaultOptions() options {
	return options{
		background:      Black,
		worldUnitLength: 1,
		screenDPI:       1,
		zoomFactor:      1,
		cursorColor:     White,
	}
}

// WithBackground sets the color the visible surface is cleared to at the
// start of every frame.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithWorldUnitLength sets the physical length of one world unit in inches.
// Board views use 1/25.4e6 so that one world unit is one nanometre.
func WithWorldUnitLength(l float64) Option {
	return func(o *options) {
		o.worldUnitLength = l
	}
}

// WithScreenDPI sets the screen resolution used by the world to screen
// transform.
func WithScreenDPI(dpi float64) Option {
	return func(o *options) {
		o.screenDPI = dpi
	}
}

// WithZoomFactor sets the initial zoom.
func WithZoomFactor(z float64) Option {
	return func(o *options) {
		o.zoomFactor = z
	}
}

// WithLookAt sets the world point shown at the screen centre.
func WithLookAt(p gg.Point) Option {
	return func(o *options) {
		o.lookAt = p
	}
}

// WithFlip mirrors the view horizontally and/or vertically.
func WithFlip(x, y bool) Option {
	return func(o *options) {
		o.flipX = x
		o.flipY = y
	}
}

// WithCursorColor sets the cursor cross-hair color.
func WithCursorColor(c Color) Option {
	return func(o *options) {
		o.cursorColor = c
	}
}

// WithFontSource replaces the font used by BitmapText. The default is Go
// Regular.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.fontSource = src
	}
}
