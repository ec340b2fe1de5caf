package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/starkern/kernel"
	"github.com/katalvlaran/starkern/render"
)

// layerNames maps the --layer flag values to render layers.
var layerNames = map[string]render.Layer{
	"data":       render.LayerData,
	"gaussian":   render.LayerGaussian,
	"unmasked":   render.LayerUnmasked,
	"mask":       render.LayerMask,
	"elliptical": render.LayerElliptical,
	"circular":   render.LayerCircular,
}

// parseLayer resolves a --layer flag value.
func parseLayer(name string) (render.Layer, error) {
	layer, ok := layerNames[name]
	if !ok {
		return 0, fmt.Errorf("cli: unknown layer %q (want data, gaussian, unmasked, mask, elliptical, or circular)", name)
	}

	return layer, nil
}

// renderCommand builds a kernel and saves one of its layers as a heatmap PNG.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		kf    kernelFlags
		out   string
		layer string
		title string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build a kernel and save a heatmap of one of its layers",
		RunE: func(cmd *cobra.Command, args []string) error {
			fwhm, opts, err := kf.resolve(cmd)
			if err != nil {
				return err
			}
			sel, err := parseLayer(layer)
			if err != nil {
				return err
			}

			g, err := kernel.Build(fwhm, opts)
			if err != nil {
				return err
			}

			hm := render.DefaultHeatmapOptions()
			hm.Layer = sel
			hm.Title = title
			if err := render.SavePNG(g, out, hm); err != nil {
				return err
			}

			ny, nx := g.Shape()
			c.Logger.Info("heatmap saved",
				"path", out,
				"layer", layer,
				"shape", fmt.Sprintf("%dx%d", ny, nx),
			)

			return nil
		},
	}

	kf.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "kernel.png", "output PNG path")
	cmd.Flags().StringVar(&layer, "layer", "data", "grid layer to draw")
	cmd.Flags().StringVar(&title, "title", "", "plot title; defaults to a parameter summary")

	return cmd
}
