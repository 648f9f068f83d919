package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gal/plot"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("GALVIEW_WIDTH", "320")
	t.Setenv("GALVIEW_ZOOM", "2.5")
	t.Setenv("GALVIEW_OUTPUT", "out.png")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := Config{Width: 320, Height: 600, Zoom: 2.5, Output: "out.png", LogLevel: "warn", Format: "png"}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("GALVIEW_HEIGHT", "tall")
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() error = nil for non numeric height")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{Width: 10, Height: 10, Zoom: 1, Output: "a.png"}, false},
		{"no width", Config{Height: 10, Zoom: 1, Output: "a.png"}, true},
		{"zero zoom", Config{Width: 10, Height: 10, Output: "a.png"}, true},
		{"no output", Config{Width: 10, Height: 10, Zoom: 1}, true},
		{"raw format", Config{Width: 10, Height: 10, Zoom: 1, Output: "a.raw", Format: "BGRA8Unorm"}, false},
		{"unknown format", Config{Width: 10, Height: 10, Zoom: 1, Output: "a.raw", Format: "jpeg"}, true},
	}
	for _, tt := range tests {
		if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestLoadPlotOptions(t *testing.T) {
	opts, err := LoadPlotOptions("")
	if err != nil || opts.Mode != plot.Filled {
		t.Fatalf("LoadPlotOptions(\"\") = %+v, %v, want defaults", opts, err)
	}

	path := filepath.Join(t.TempDir(), "plot.yaml")
	var buf bytes.Buffer
	want := plot.DefaultOptions()
	want.Mode = plot.Sketch
	want.Layers = []string{"F.Cu"}
	if err := plot.WriteOptions(&buf, want); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadPlotOptions(path)
	if err != nil {
		t.Fatalf("LoadPlotOptions() error = %v", err)
	}
	if got.Mode != plot.Sketch || len(got.Layers) != 1 || got.Layers[0] != "F.Cu" {
		t.Errorf("LoadPlotOptions() = %+v, want sketch on F.Cu", got)
	}

	if _, err := LoadPlotOptions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPlotOptions() error = nil for a missing file")
	}
}

func TestOptionsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"options", "--mode", "sketch"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "mode: sketch") {
		t.Errorf("output =\n%s\nwant mode: sketch", out.String())
	}
}
