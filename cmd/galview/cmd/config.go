package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/kelseyhightower/envconfig"

	"github.com/gogpu/gal"
	"github.com/gogpu/gal/plot"
)

// Config holds the output settings, read from GALVIEW_* variables.
type Config struct {
	Width    int     `envconfig:"WIDTH" default:"800"`
	Height   int     `envconfig:"HEIGHT" default:"600"`
	Zoom     float64 `envconfig:"ZOOM" default:"1"`
	Output   string  `envconfig:"OUTPUT" default:"board.png"`
	LogLevel string  `envconfig:"LOG_LEVEL" default:"warn"`
	// Format is "png" or a surface texture format such as BGRA8Unorm,
	// which writes the raw frame.
	Format string `envconfig:"FORMAT" default:"png"`
}

// LoadConfig reads the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("galview", &cfg); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

// Validate checks the image size, zoom and output format.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.Zoom <= 0 {
		return errors.New("zoom must be positive")
	}
	if c.Output == "" {
		return errors.New("no output file")
	}
	if _, err := c.SurfaceFormat(); err != nil {
		return err
	}
	return nil
}

// SurfaceFormat returns the texture format of a raw output, or
// TextureFormatUndefined for PNG.
func (c Config) SurfaceFormat() (gputypes.TextureFormat, error) {
	if c.Format == "" || strings.EqualFold(c.Format, "png") {
		return gputypes.TextureFormatUndefined, nil
	}
	return gal.ParseSurfaceFormat(c.Format)
}

// LoadPlotOptions reads a YAML options file. An empty path gives the
// defaults.
func LoadPlotOptions(path string) (plot.Options, error) {
	if path == "" {
		return plot.DefaultOptions(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return plot.Options{}, err
	}
	defer f.Close()

	opts, err := plot.ReadOptions(f)
	if err != nil {
		return plot.Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}
