package plot

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gal"
	"github.com/gogpu/gal/board"
)

// DrillMarks selects how drill holes are marked on copper plots.
type DrillMarks uint8

const (
	NoDrillMarks DrillMarks = iota
	// SmallDrillMarks clamps round holes to board.SmallDrill.
	SmallDrillMarks
	FullDrillMarks
)

var drillMarkNames = [...]string{"none", "small", "full"}

func (d DrillMarks) String() string {
	if int(d) < len(drillMarkNames) {
		return drillMarkNames[d]
	}
	return "unknown"
}

func (d DrillMarks) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DrillMarks) UnmarshalText(b []byte) error {
	for i, n := range drillMarkNames {
		if n == string(b) {
			*d = DrillMarks(i)
			return nil
		}
	}
	return fmt.Errorf("plot: unknown drill marks %q", b)
}

func (m DrawMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *DrawMode) UnmarshalText(b []byte) error {
	for i, n := range drawModeNames {
		if n == string(b) {
			*m = DrawMode(i)
			return nil
		}
	}
	return fmt.Errorf("plot: unknown draw mode %q", b)
}

// Options are the plot parameters.
type Options struct {
	Mode       DrawMode   `yaml:"mode"`
	DrillMarks DrillMarks `yaml:"drill_marks"`
	// WidthAdjust is subtracted from drill mark sizes, in internal units.
	WidthAdjust int `yaml:"width_adjust"`

	PlotReference     bool `yaml:"plot_reference"`
	PlotValue         bool `yaml:"plot_value"`
	PlotInvisibleText bool `yaml:"plot_invisible_text"`

	// Color is the plot color restored after drill marks.
	Color gal.Color `yaml:"color"`
	// ReferenceColor and ValueColor override the layer color of footprint
	// fields when specified.
	ReferenceColor gal.Color `yaml:"reference_color,omitempty"`
	ValueColor     gal.Color `yaml:"value_color,omitempty"`

	// Layers lists the layers of a full pass by name.
	Layers []string `yaml:"layers,omitempty"`
}

// PlotLayers parses Layers, keeping their order. Layers listed first are
// plotted first.
func (o Options) PlotLayers() ([]board.Layer, error) {
	out := make([]board.Layer, 0, len(o.Layers))
	for _, name := range o.Layers {
		l, err := board.ParseLayer(name)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// DefaultOptions returns the options of a filled copper plot.
func DefaultOptions() Options {
	return Options{
		Mode:          Filled,
		DrillMarks:    SmallDrillMarks,
		PlotReference: true,
		PlotValue:     true,
		Color:         gal.Black,
		Layers:        []string{"B.Cu", "F.Cu", "F.SilkS", "Edge.Cuts"},
	}
}

// ReadOptions decodes YAML options on top of DefaultOptions.
func ReadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("plot: decode options: %w", err)
	}
	return opts, nil
}

// WriteOptions encodes opts as YAML.
func WriteOptions(w io.Writer, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return fmt.Errorf("plot: encode options: %w", err)
	}
	return enc.Close()
}
