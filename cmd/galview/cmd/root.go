package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/gal"
	"github.com/gogpu/gal/plot"
)

var (
	// Global flags
	optionsFile string
	width       int
	height      int
	zoom        float64
	output      string
	format      string
	logLevel    string
	mode        string
)

var rootCmd = &cobra.Command{
	Use:   "galview",
	Short: "galview - draw a demonstration board with gal",
	Long: `galview draws a built-in demonstration board through the board plotter.

Settings come from GALVIEW_* environment variables, an optional YAML plot
options file and flags, in increasing priority.

Examples:
  galview render -o board.png          # raster render through the drawing context
  galview plot --mode sketch           # vector plot replayed to PNG
  galview options > plot.yaml          # write the default plot options`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&optionsFile, "options", "", "YAML plot options file")
	f.IntVar(&width, "width", 0, "image width in pixels")
	f.IntVar(&height, "height", 0, "image height in pixels")
	f.Float64Var(&zoom, "zoom", 0, "zoom factor over the fitted view")
	f.StringVarP(&output, "output", "o", "", "output file")
	f.StringVar(&format, "format", "", "render output: png or a texture format (RGBA8Unorm, BGRA8Unorm, ...)")
	f.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.StringVar(&mode, "mode", "", "plot mode: filled or sketch")
}

// settings resolves the configuration of a run: environment first, then the
// options file, then any flag set on the command line.
func settings(cmd *cobra.Command) (Config, plot.Options, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return Config{}, plot.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("zoom") {
		cfg.Zoom = zoom
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, plot.Options{}, err
	}

	opts, err := LoadPlotOptions(optionsFile)
	if err != nil {
		return Config{}, plot.Options{}, err
	}
	if flags.Changed("mode") {
		if err := opts.Mode.UnmarshalText([]byte(mode)); err != nil {
			return Config{}, plot.Options{}, err
		}
	}

	if err := setupLogging(cfg.LogLevel); err != nil {
		return Config{}, plot.Options{}, err
	}
	return cfg, opts, nil
}

func setupLogging(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	gal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}
