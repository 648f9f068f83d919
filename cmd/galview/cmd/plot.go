package cmd

import (
	"fmt"
	"image"

	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster"
	"github.com/spf13/cobra"

	"github.com/gogpu/gal"
	"github.com/gogpu/gal/board"
	"github.com/gogpu/gal/gerber"
	"github.com/gogpu/gal/plot"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the demo board as vector commands",
	Long: `Plots every configured layer of the demo board into a vector recording,
replays it through the raster recording backend and writes PNG. With
--attributes the fabrication attributes of each drawn item are listed.`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

var listAttributes bool

func init() {
	plotCmd.Flags().BoolVar(&listAttributes, "attributes", false, "print the attributes of each plotted item")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, _ []string) error {
	cfg, opts, err := settings(cmd)
	if err != nil {
		return err
	}
	b, area := demoBoard()

	p, err := plotBoard(b, area, cfg, opts)
	if err != nil {
		return err
	}

	backend, err := recording.NewBackend("raster")
	if err != nil {
		return err
	}
	if err := p.Recording.Playback(backend); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", "raster")
	}
	if err := fb.SaveToFile(cfg.Output); err != nil {
		return err
	}

	if listAttributes {
		out := cmd.OutOrStdout()
		for i, md := range p.Metadata {
			if s := attributes(md); s != "" {
				fmt.Fprintf(out, "%d\t%s\n", i, s)
			}
		}
	}
	gal.Logger().Info("plotted", "output", cfg.Output, "items", len(p.Metadata))
	return nil
}

func attributes(md *gerber.Metadata) string {
	if md == nil {
		return ""
	}
	return md.String()
}

// plotBoard records the configured layers, in order, on a page of the
// configured size centred on area.
func plotBoard(b *board.Board, area image.Rectangle, cfg Config, opts plot.Options) (*plot.Plot, error) {
	layers, err := opts.PlotLayers()
	if err != nil {
		return nil, err
	}

	scale := fitScale(area, cfg.Width, cfg.Height) * cfg.Zoom
	half := image.Pt(int(float64(cfg.Width)/2/scale), int(float64(cfg.Height)/2/scale))
	origin := centre(area).Sub(half)

	vp := plot.NewVectorPlotter(cfg.Width, cfg.Height, scale, origin)
	bp := plot.NewBoardPlotter(vp, b, opts)
	for _, l := range layers {
		bp.PlotLayer(board.NewLayerSet(l))
	}
	return vp.Finish(), nil
}
