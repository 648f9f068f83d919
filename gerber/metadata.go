// Package gerber holds the manufacturing metadata attached to plotted
// primitives: the aperture function of a flash or draw and the netlist
// information of the copper it belongs to.
//
// The values mirror the Gerber X2 attribute vocabulary. Encoding them into a
// plot file is the job of a plot back end.
package gerber

import (
	"strings"
)

// NetAttrib selects which netlist fields a primitive carries.
type NetAttrib uint8

const (
	NetAttribNone NetAttrib = 0
	// NetAttribPad marks a pad: component reference and pad name.
	NetAttribPad NetAttrib = 1 << (iota - 1)
	// NetAttribNet marks copper belonging to a net.
	NetAttribNet
	// NetAttribCmp marks an item belonging to a component.
	NetAttribCmp

	NetAttribAll = NetAttribPad | NetAttribNet | NetAttribCmp
)

// Has reports whether all bits of f are set in a.
func (a NetAttrib) Has(f NetAttrib) bool {
	return a&f == f
}

func (a NetAttrib) String() string {
	if a == NetAttribNone {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		bit  NetAttrib
		name string
	}{{NetAttribPad, "pad"}, {NetAttribNet, "net"}, {NetAttribCmp, "cmp"}} {
		if a.Has(f.bit) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// ApertureAttribute is the function of the copper or graphic an aperture
// draws.
type ApertureAttribute uint8

const (
	ApertureNone ApertureAttribute = iota
	ApertureEtchedCmp
	ApertureConductor
	ApertureCutout
	ApertureNonConductor
	ApertureViaPad
	ApertureComponentPad
	ApertureSMDPadSMDef
	ApertureSMDPadCuDef
	ApertureBGAPadSMDef
	ApertureBGAPadCuDef
	ApertureConnectorPad
	ApertureWasherPad
	ApertureHeatsinkPad
	ApertureViaDrill
	ApertureComponentDrill
	ApertureSlotDrill
)

var apertureNames = [...]string{
	ApertureNone:           "",
	ApertureEtchedCmp:      "EtchedComponent",
	ApertureConductor:      "Conductor",
	ApertureCutout:         "CutOut",
	ApertureNonConductor:   "NonConductor",
	ApertureViaPad:         "ViaPad",
	ApertureComponentPad:   "ComponentPad",
	ApertureSMDPadSMDef:    "SMDPad,SMDef",
	ApertureSMDPadCuDef:    "SMDPad,CuDef",
	ApertureBGAPadSMDef:    "BGAPad,SMDef",
	ApertureBGAPadCuDef:    "BGAPad,CuDef",
	ApertureConnectorPad:   "ConnectorPad",
	ApertureWasherPad:      "WasherPad",
	ApertureHeatsinkPad:    "HeatsinkPad",
	ApertureViaDrill:       "ViaDrill",
	ApertureComponentDrill: "ComponentDrill",
	ApertureSlotDrill:      "Slot",
}

// String returns the X2 .AperFunction value, or "" for ApertureNone.
func (a ApertureAttribute) String() string {
	if int(a) < len(apertureNames) {
		return apertureNames[a]
	}
	return "Unknown"
}

// IsPad reports whether a is one of the pad functions.
func (a ApertureAttribute) IsPad() bool {
	return a >= ApertureViaPad && a <= ApertureHeatsinkPad
}

// Netlist is the netlist part of the metadata.
type Netlist struct {
	NetAttribType NetAttrib
	// NotInNet marks a pad that has no net even though it is copper.
	NotInNet bool
	PadName  string
	CmpRef   string
	NetName  string
}

// Metadata is the attribute set of one plotted primitive. The zero value
// carries nothing.
type Metadata struct {
	ApertureAttrib ApertureAttribute
	Netlist        Netlist
}

// SetApertureAttrib sets the aperture function.
func (m *Metadata) SetApertureAttrib(a ApertureAttribute) { m.ApertureAttrib = a }

// SetNetAttribType selects which netlist fields are emitted.
func (m *Metadata) SetNetAttribType(a NetAttrib) { m.Netlist.NetAttribType = a }

// SetNotInNet marks copper that belongs to no net.
func (m *Metadata) SetNotInNet(v bool) { m.Netlist.NotInNet = v }

// SetPadName sets the pad name of the .P record.
func (m *Metadata) SetPadName(name string) { m.Netlist.PadName = name }

// SetCmpReference sets the component reference, e.g. "U3".
func (m *Metadata) SetCmpReference(ref string) { m.Netlist.CmpRef = ref }

// SetNetName sets the net name of the .N record.
func (m *Metadata) SetNetName(name string) { m.Netlist.NetName = name }

// Clone returns a copy of m, or nil if m is nil.
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// Attributes returns the X2 attribute records carried by m, in the order a
// Gerber writer emits them: aperture function, pad, net, component.
// A nil Metadata has none.
func (m *Metadata) Attributes() []string {
	if m == nil {
		return nil
	}
	var out []string
	if m.ApertureAttrib != ApertureNone {
		out = append(out, ".AperFunction,"+m.ApertureAttrib.String())
	}

	nl := m.Netlist
	if nl.NetAttribType.Has(NetAttribPad) && nl.PadName != "" {
		out = append(out, ".P,"+nl.CmpRef+","+nl.PadName)
	}
	if nl.NetAttribType.Has(NetAttribNet) {
		switch {
		case nl.NotInNet:
			out = append(out, ".N,N/C")
		case nl.NetName != "":
			out = append(out, ".N,"+nl.NetName)
		}
	}
	if nl.NetAttribType.Has(NetAttribCmp) && nl.CmpRef != "" {
		out = append(out, ".C,"+nl.CmpRef)
	}
	return out
}

// String returns the attribute records joined with ";".
func (m *Metadata) String() string {
	if m == nil {
		return "<nil>"
	}
	return strings.Join(m.Attributes(), ";")
}
