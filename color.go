package gal

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
// Components are not validated.
//
// The zero value is Unspecified, which callers use to mean "use the current
// or default color".
type Color struct {
	R, G, B, A float64
}

// Unspecified is the sentinel for "no color given".
var Unspecified = Color{}

// Palette of the legacy board editor colors.
var (
	Black        = RGB8(0, 0, 0)
	DarkDarkGray = RGB8(72, 72, 72)
	DarkGray     = RGB8(132, 132, 132)
	LightGray    = RGB8(194, 194, 194)
	White        = RGB8(255, 255, 255)
	LightYellow  = RGB8(255, 255, 194)
	DarkBlue     = RGB8(0, 0, 72)
	DarkGreen    = RGB8(0, 72, 0)
	DarkCyan     = RGB8(0, 72, 72)
	DarkRed      = RGB8(72, 0, 0)
	DarkMagenta  = RGB8(72, 0, 72)
	DarkBrown    = RGB8(72, 72, 0)
	Blue         = RGB8(0, 0, 132)
	Green        = RGB8(0, 132, 0)
	Cyan         = RGB8(0, 132, 132)
	Red          = RGB8(132, 0, 0)
	Magenta      = RGB8(132, 0, 132)
	Brown        = RGB8(132, 132, 0)
	LightBlue    = RGB8(0, 0, 194)
	LightGreen   = RGB8(0, 194, 0)
	LightCyan    = RGB8(0, 194, 194)
	LightRed     = RGB8(194, 0, 0)
	LightMagenta = RGB8(194, 0, 194)
	Yellow       = RGB8(194, 194, 0)
	PureBlue     = RGB8(0, 0, 255)
	PureGreen    = RGB8(0, 255, 0)
	PureCyan     = RGB8(0, 255, 255)
	PureRed      = RGB8(255, 0, 0)
	PureMagenta  = RGB8(255, 0, 255)
	PureYellow   = RGB8(255, 255, 0)
)

// NewColor returns a color from float components.
func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 returns an opaque color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// FromNRGBA converts a non-premultiplied 8-bit color.
func FromNRGBA(c color.NRGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// IsUnspecified reports whether c is the Unspecified sentinel.
func (c Color) IsUnspecified() bool {
	return c == Unspecified
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Brightened mixes c towards white by factor in [0, 1].
func (c Color) Brightened(factor float64) Color {
	return Color{
		R: c.R*(1-factor) + factor,
		G: c.G*(1-factor) + factor,
		B: c.B*(1-factor) + factor,
		A: c.A,
	}
}

// Darkened mixes c towards black by factor in [0, 1].
func (c Color) Darkened(factor float64) Color {
	return Color{R: c.R * (1 - factor), G: c.G * (1 - factor), B: c.B * (1 - factor), A: c.A}
}

// ToRGBA converts c to the rasteriser color type.
func (c Color) ToRGBA() gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color with alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clampUnit(c.A)*0xffff + 0.5)
	r = uint32(clampUnit(c.R)*clampUnit(c.A)*0xffff + 0.5)
	g = uint32(clampUnit(c.G)*clampUnit(c.A)*0xffff + 0.5)
	b = uint32(clampUnit(c.B)*clampUnit(c.A)*0xffff + 0.5)
	return r, g, b, a
}

func (c Color) String() string {
	if c.IsUnspecified() {
		return "Color(unspecified)"
	}
	return fmt.Sprintf("Color(%.3g, %.3g, %.3g, %.3g)", c.R, c.G, c.B, c.A)
}

// Hex returns c as "#rrggbbaa", or "" for Unspecified.
func (c Color) Hex() string {
	if c.IsUnspecified() {
		return ""
	}
	b := func(v float64) uint8 { return uint8(math.Round(clampUnit(v) * 255)) }
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c.R), b(c.G), b(c.B), b(c.A))
}

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa". The empty
// string is Unspecified.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if h == "" {
		return Unspecified, nil
	}
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return Unspecified, fmt.Errorf("gal: invalid hex color %q", s)
	}
	if strings.IndexFunc(h, func(r rune) bool { return !strings.ContainsRune("0123456789abcdefABCDEF", r) }) >= 0 {
		return Unspecified, fmt.Errorf("gal: invalid hex color %q", s)
	}
	v := gg.Hex(h)
	return Color{R: v.R, G: v.G, B: v.B, A: v.A}, nil
}

// MarshalText implements encoding.TextMarshaler so colors read naturally in
// YAML option files.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
