package board

import (
	"image/color"

	"github.com/gogpu/gal"
)

// Board is the complete set of items plotted from one design.
type Board struct {
	Modules  []*Module
	Tracks   []*Track
	Vias     []*Via
	Drawings []Drawing
	Zones    []*Zone

	colors [LayerCount]gal.Color
}

// New returns an empty board with the default layer colors.
func New() *Board {
	b := &Board{}
	for l := range LayerCount {
		b.colors[l] = defaultLayerColor(l)
	}
	return b
}

// LayerColor returns the display color of a layer.
func (b *Board) LayerColor(l Layer) gal.Color {
	if !l.Valid() {
		return gal.White
	}
	return b.colors[l]
}

// SetLayerColor overrides the display color of a layer.
func (b *Board) SetLayerColor(l Layer, c gal.Color) {
	if l.Valid() {
		b.colors[l] = c
	}
}

// Classic board theme.
var layerColors = map[Layer]color.NRGBA{
	FCu:      {R: 200, G: 52, B: 52, A: 255},
	BCu:      {R: 77, G: 127, B: 196, A: 255},
	In1Cu:    {R: 127, G: 200, B: 127, A: 255},
	In2Cu:    {R: 206, G: 125, B: 44, A: 255},
	FSilkS:   {R: 242, G: 237, B: 161, A: 255},
	BSilkS:   {R: 232, G: 178, B: 167, A: 255},
	FMask:    {R: 216, G: 100, B: 255, A: 255},
	BMask:    {R: 2, G: 255, B: 238, A: 255},
	FPaste:   {R: 180, G: 160, B: 154, A: 255},
	BPaste:   {R: 0, G: 194, B: 194, A: 255},
	FFab:     {R: 175, G: 175, B: 175, A: 255},
	BFab:     {R: 88, G: 93, B: 132, A: 255},
	FCrtYd:   {R: 255, G: 38, B: 226, A: 255},
	BCrtYd:   {R: 38, G: 233, B: 255, A: 255},
	FAdhes:   {R: 132, G: 0, B: 132, A: 255},
	BAdhes:   {R: 0, G: 0, B: 132, A: 255},
	DwgsUser: {R: 194, G: 194, B: 194, A: 255},
	CmtsUser: {R: 89, G: 148, B: 220, A: 255},
	Eco1User: {R: 180, G: 219, B: 210, A: 255},
	Eco2User: {R: 216, G: 200, B: 82, A: 255},
	EdgeCuts: {R: 208, G: 210, B: 205, A: 255},
	Margin:   {R: 255, G: 38, B: 226, A: 255},
}

func defaultLayerColor(l Layer) gal.Color {
	if c, ok := layerColors[l]; ok {
		return gal.FromNRGBA(c)
	}
	// Inner layers past In2 cycle through the first inner colors.
	if l.IsCopper() {
		if l%2 == 1 {
			return gal.FromNRGBA(layerColors[In1Cu])
		}
		return gal.FromNRGBA(layerColors[In2Cu])
	}
	return gal.LightGray
}
