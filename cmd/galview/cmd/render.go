package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/spf13/cobra"

	"github.com/gogpu/gal"
	"github.com/gogpu/gal/board"
	"github.com/gogpu/gal/geom"
	"github.com/gogpu/gal/plot"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the demo board through the drawing context",
	Long: `Draws every configured layer of the demo board into a gal drawing context
and writes the visible surface as PNG, or as raw texture rows with --format.
The board outline is cached in a group and the cursor marks the board centre.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, opts, err := settings(cmd)
	if err != nil {
		return err
	}
	b, area := demoBoard()

	img, err := renderBoard(b, area, cfg, opts)
	if err != nil {
		return err
	}
	if err := writeFrame(cfg, img); err != nil {
		return err
	}
	gal.Logger().Info("rendered", "output", cfg.Output, "format", cfg.Format,
		"width", cfg.Width, "height", cfg.Height)
	return nil
}

// writeFrame writes img as PNG, or as raw rows in the configured texture
// format.
func writeFrame(cfg Config, img *image.RGBA) error {
	format, err := cfg.SurfaceFormat()
	if err != nil {
		return err
	}
	if format == gputypes.TextureFormatUndefined {
		return writePNG(cfg.Output, img)
	}
	px, err := gal.CopyPixels(img, format)
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.Output, px, 0o644)
}

// fitScale returns the pixels per board unit that fit area in a w x h
// image with a margin.
func fitScale(area image.Rectangle, w, h int) float64 {
	sx := float64(w) / float64(area.Dx())
	sy := float64(h) / float64(area.Dy())
	return 0.9 * min(sx, sy)
}

func centre(area image.Rectangle) image.Point {
	return area.Min.Add(area.Max).Div(2)
}

func renderBoard(b *board.Board, area image.Rectangle, cfg Config, opts plot.Options) (*image.RGBA, error) {
	layers, err := opts.PlotLayers()
	if err != nil {
		return nil, err
	}

	c := geom.ToPoint(centre(area))
	ctx := gal.New(cfg.Width, cfg.Height,
		gal.WithWorldUnitLength(fitScale(area, cfg.Width, cfg.Height)),
		gal.WithZoomFactor(cfg.Zoom),
		gal.WithLookAt(c),
		gal.WithCursorColor(gal.White.WithAlpha(0.6)),
	)
	bp := plot.NewBoardPlotter(plot.NewGALPlotter(ctx), b, opts)

	// Outline first, as a cached group replayed on the overlay.
	outline := ctx.BeginGroup()
	bp.PlotLayer(board.NewLayerSet(board.EdgeCuts))
	ctx.EndGroup()

	ctx.BeginDrawing()
	for _, l := range layers {
		if l == board.EdgeCuts {
			continue
		}
		bp.PlotLayer(board.NewLayerSet(l))
	}
	ctx.SetTarget(gal.TargetOverlay)
	ctx.DrawGroup(outline)
	ctx.SetTarget(gal.TargetNonCached)

	ctx.SetCursorEnabled(true)
	ctx.DrawCursor(c)
	ctx.EndDrawing()

	gal.Logger().Debug("render", "groups", ctx.GroupCount(), "scale", ctx.WorldScale())
	return ctx.Image(), nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
