// Package board is the read-only board model consumed by the plotter:
// layers, pads, tracks, vias, zones, footprints, texts and graphic items.
//
// Coordinates are integer internal units of one nanometre. Angles are in
// tenths of a degree.
package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Internal units.
const (
	IUPerMM  = 1_000_000
	IUPerMil = 25_400

	// SmallDrill is the drill mark diameter used in small drill mark mode.
	SmallDrill = 350_000
)

// MMToIU converts millimetres to internal units.
func MMToIU(mm float64) int {
	if mm < 0 {
		return -int(-mm*IUPerMM + 0.5)
	}
	return int(mm*IUPerMM + 0.5)
}

// Layer identifies a board layer. The numbering follows the legacy board
// file order.
type Layer int8

// Copper layers.
const (
	FCu Layer = iota
	In1Cu
	In2Cu
	In3Cu
	In4Cu
	In5Cu
	In6Cu
	In7Cu
	In8Cu
	In9Cu
	In10Cu
	In11Cu
	In12Cu
	In13Cu
	In14Cu
	In15Cu
	In16Cu
	In17Cu
	In18Cu
	In19Cu
	In20Cu
	In21Cu
	In22Cu
	In23Cu
	In24Cu
	In25Cu
	In26Cu
	In27Cu
	In28Cu
	In29Cu
	In30Cu
	BCu
)

// Technical and user layers.
const (
	BAdhes Layer = BCu + 1 + iota
	FAdhes
	BPaste
	FPaste
	BSilkS
	FSilkS
	BMask
	FMask
	DwgsUser
	CmtsUser
	Eco1User
	Eco2User
	EdgeCuts
	Margin
	BCrtYd
	FCrtYd
	BFab
	FFab

	// LayerCount is the number of layers.
	LayerCount
)

// UndefinedLayer marks an item without a layer.
const UndefinedLayer Layer = -1

var techLayerNames = [...]string{
	BAdhes - BAdhes:   "B.Adhes",
	FAdhes - BAdhes:   "F.Adhes",
	BPaste - BAdhes:   "B.Paste",
	FPaste - BAdhes:   "F.Paste",
	BSilkS - BAdhes:   "B.SilkS",
	FSilkS - BAdhes:   "F.SilkS",
	BMask - BAdhes:    "B.Mask",
	FMask - BAdhes:    "F.Mask",
	DwgsUser - BAdhes: "Dwgs.User",
	CmtsUser - BAdhes: "Cmts.User",
	Eco1User - BAdhes: "Eco1.User",
	Eco2User - BAdhes: "Eco2.User",
	EdgeCuts - BAdhes: "Edge.Cuts",
	Margin - BAdhes:   "Margin",
	BCrtYd - BAdhes:   "B.CrtYd",
	FCrtYd - BAdhes:   "F.CrtYd",
	BFab - BAdhes:     "B.Fab",
	FFab - BAdhes:     "F.Fab",
}

// Valid reports whether l names a layer.
func (l Layer) Valid() bool {
	return l >= 0 && l < LayerCount
}

// IsCopper reports whether l is a copper layer.
func (l Layer) IsCopper() bool {
	return l >= FCu && l <= BCu
}

// String returns the layer name as used in board files, e.g. "F.Cu".
func (l Layer) String() string {
	switch {
	case l == FCu:
		return "F.Cu"
	case l == BCu:
		return "B.Cu"
	case l.IsCopper():
		return fmt.Sprintf("In%d.Cu", int(l))
	case l.Valid():
		return techLayerNames[l-BAdhes]
	}
	return fmt.Sprintf("Layer(%d)", int(l))
}

// ParseLayer returns the layer with the given name.
func ParseLayer(name string) (Layer, error) {
	for l := range LayerCount {
		if strings.EqualFold(l.String(), name) {
			return l, nil
		}
	}
	return UndefinedLayer, fmt.Errorf("board: unknown layer %q", name)
}

// LayerSet is a set of layers.
type LayerSet uint64

// NewLayerSet returns the set of the given layers.
func NewLayerSet(layers ...Layer) LayerSet {
	var s LayerSet
	for _, l := range layers {
		s = s.With(l)
	}
	return s
}

// With returns s with l added.
func (s LayerSet) With(l Layer) LayerSet {
	if !l.Valid() {
		return s
	}
	return s | 1<<uint(l)
}

// Has reports whether l is in s.
func (s LayerSet) Has(l Layer) bool {
	return l.Valid() && s&(1<<uint(l)) != 0
}

// Any reports whether s is not empty.
func (s LayerSet) Any() bool {
	return s != 0
}

// Count returns the number of layers in s.
func (s LayerSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

// Layers returns the layers of s in increasing order.
func (s LayerSet) Layers() []Layer {
	out := make([]Layer, 0, s.Count())
	for l := range LayerCount {
		if s.Has(l) {
			out = append(out, l)
		}
	}
	return out
}

func (s LayerSet) String() string {
	names := make([]string, 0, s.Count())
	for _, l := range s.Layers() {
		names = append(names, l.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// AllCuMask is every copper layer.
func AllCuMask() LayerSet {
	return LayerSet(1<<uint(BCu+1) - 1)
}

// ExternalCuMask is the front and back copper layers.
func ExternalCuMask() LayerSet {
	return NewLayerSet(FCu, BCu)
}

// InternalCuMask is every inner copper layer.
func InternalCuMask() LayerSet {
	return AllCuMask() &^ ExternalCuMask()
}

// AllBoardTechMask is the layers used for manufacturing besides copper:
// adhesive, paste, silk screen and solder mask on both sides.
func AllBoardTechMask() LayerSet {
	return NewLayerSet(BAdhes, FAdhes, BPaste, FPaste, BSilkS, FSilkS, BMask, FMask)
}

// AllLayersMask is every layer.
func AllLayersMask() LayerSet {
	return LayerSet(1<<uint(LayerCount) - 1)
}
