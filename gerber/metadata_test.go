package gerber

import (
	"slices"
	"testing"
)

func TestNetAttrib(t *testing.T) {
	tests := []struct {
		attr NetAttrib
		want string
	}{
		{NetAttribNone, "none"},
		{NetAttribPad, "pad"},
		{NetAttribNet | NetAttribCmp, "net|cmp"},
		{NetAttribAll, "pad|net|cmp"},
	}
	for _, tt := range tests {
		if got := tt.attr.String(); got != tt.want {
			t.Errorf("NetAttrib(%d).String() = %q, want %q", tt.attr, got, tt.want)
		}
	}
	if NetAttribPad != 1 || NetAttribNet != 2 || NetAttribCmp != 4 || NetAttribAll != 7 {
		t.Errorf("flag values = %d %d %d %d, want 1 2 4 7", NetAttribPad, NetAttribNet, NetAttribCmp, NetAttribAll)
	}
}

func TestApertureAttributeString(t *testing.T) {
	tests := []struct {
		attr ApertureAttribute
		want string
	}{
		{ApertureNone, ""},
		{ApertureEtchedCmp, "EtchedComponent"},
		{ApertureViaPad, "ViaPad"},
		{ApertureSMDPadCuDef, "SMDPad,CuDef"},
		{ApertureBGAPadCuDef, "BGAPad,CuDef"},
		{ApertureWasherPad, "WasherPad"},
		{ApertureSlotDrill, "Slot"},
		{ApertureAttribute(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.attr.String(); got != tt.want {
			t.Errorf("ApertureAttribute(%d).String() = %q, want %q", tt.attr, got, tt.want)
		}
	}
	if !ApertureConnectorPad.IsPad() || ApertureConductor.IsPad() || ApertureViaDrill.IsPad() {
		t.Error("IsPad mismatch")
	}
}

func TestMetadataAttributes(t *testing.T) {
	tests := []struct {
		name string
		md   *Metadata
		want []string
	}{
		{"nil", nil, nil},
		{"empty", &Metadata{}, nil},
		{
			"component pad",
			&Metadata{
				ApertureAttrib: ApertureComponentPad,
				Netlist:        Netlist{NetAttribType: NetAttribAll, PadName: "1", CmpRef: "U1", NetName: "GND"},
			},
			[]string{".AperFunction,ComponentPad", ".P,U1,1", ".N,GND", ".C,U1"},
		},
		{
			"unconnected pad",
			&Metadata{
				ApertureAttrib: ApertureSMDPadCuDef,
				Netlist:        Netlist{NetAttribType: NetAttribAll, NotInNet: true, PadName: "3", CmpRef: "R2"},
			},
			[]string{".AperFunction,SMDPad,CuDef", ".P,R2,3", ".N,N/C", ".C,R2"},
		},
		{
			"component only",
			&Metadata{Netlist: Netlist{NetAttribType: NetAttribCmp, CmpRef: "J1", NetName: "ignored"}},
			[]string{".C,J1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.md.Attributes(); !slices.Equal(got, tt.want) {
				t.Errorf("Attributes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMetadataSettersAndClone(t *testing.T) {
	var md Metadata
	md.SetApertureAttrib(ApertureViaPad)
	md.SetNetAttribType(NetAttribNet)
	md.SetNetName("VCC")
	md.SetPadName("2")
	md.SetCmpReference("C4")
	md.SetNotInNet(true)

	c := md.Clone()
	c.SetNetName("GND")
	if md.Netlist.NetName != "VCC" {
		t.Errorf("Clone shares state: NetName = %q", md.Netlist.NetName)
	}
	if c.ApertureAttrib != ApertureViaPad || c.Netlist.PadName != "2" || !c.Netlist.NotInNet {
		t.Errorf("Clone() = %+v", c)
	}
	if (*Metadata)(nil).Clone() != nil {
		t.Error("nil Clone() != nil")
	}
	if got := md.String(); got != ".AperFunction,ViaPad;.N,N/C" {
		t.Errorf("String() = %q", got)
	}
}
