// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/starkern/kernel"
)

var (
	// ErrNilGrid indicates a nil kernel grid was supplied.
	ErrNilGrid = errors.New("render: kernel grid is nil")

	// ErrUnknownLayer indicates the Layer selector does not name a grid layer.
	ErrUnknownLayer = errors.New("render: unknown grid layer")
)

// Layer selects which field of a kernel.Grid to draw.
type Layer int

const (
	// LayerData draws the final kernel (zero-sum normalized by default).
	LayerData Layer = iota
	// LayerGaussian draws the masked Gaussian before normalization.
	LayerGaussian
	// LayerUnmasked draws exp(-g) over the full grid, ignoring the mask.
	LayerUnmasked
	// LayerMask draws the boolean inclusion mask.
	LayerMask
	// LayerElliptical draws the elliptical radius field g(x,y).
	LayerElliptical
	// LayerCircular draws the Euclidean distance from the grid center.
	LayerCircular
)

// HeatmapOptions configures Heatmap and SavePNG.
type HeatmapOptions struct {
	// Layer selects the grid field; LayerData by default.
	Layer Layer
	// Title overrides the auto-generated parameter summary when non-empty.
	Title string
	// Colors is the palette resolution; values < 2 mean the default.
	Colors int
}

// DefaultHeatmapOptions renders the final kernel with a 255-step heat palette.
func DefaultHeatmapOptions() HeatmapOptions {
	return HeatmapOptions{Layer: LayerData, Colors: 255}
}

// gridXYZ adapts a row-major *mat.Dense to the plotter.GridXYZ interface.
// Rows map to y, columns to x, both in pixel units.
type gridXYZ struct {
	m *mat.Dense
}

func (g gridXYZ) Dims() (c, r int) {
	r, c = g.m.Dims()

	return c, r
}

func (g gridXYZ) Z(c, r int) float64 { return g.m.At(r, c) }
func (g gridXYZ) X(c int) float64    { return float64(c) }
func (g gridXYZ) Y(r int) float64    { return float64(r) }

// layerOf resolves the Layer selector against a grid.
func layerOf(g *kernel.Grid, l Layer) (*mat.Dense, error) {
	switch l {
	case LayerData:
		return g.Data, nil
	case LayerGaussian:
		return g.Gaussian, nil
	case LayerUnmasked:
		return g.Unmasked, nil
	case LayerMask:
		return g.Mask, nil
	case LayerElliptical:
		return g.EllipticalRadius, nil
	case LayerCircular:
		return g.CircularRadius, nil
	default:
		return nil, fmt.Errorf("layer %d: %w", l, ErrUnknownLayer)
	}
}

// Heatmap renders one layer of g as a heatmap plot with pixel axes.
// Returns ErrNilGrid or ErrUnknownLayer on bad input.
// Complexity: O(nx·ny).
func Heatmap(g *kernel.Grid, opts HeatmapOptions) (*plot.Plot, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	layer, err := layerOf(g, opts.Layer)
	if err != nil {
		return nil, err
	}

	colors := opts.Colors
	if colors < 2 {
		colors = 255
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("kernel fwhm=%.2f ratio=%.2f theta=%.1f sigmaRadius=%.2f",
			g.FWHM, g.Ratio, g.Theta, g.SigmaRadius)
	}
	p.X.Label.Text = "x (pixels)"
	p.Y.Label.Text = "y (pixels)"

	p.Add(plotter.NewHeatMap(gridXYZ{m: layer}, palette.Heat(colors, 1)))

	return p, nil
}

// SavePNG builds the heatmap and writes it to path. The canvas is square and
// sized for comfortable inspection of small kernels.
func SavePNG(g *kernel.Grid, path string, opts HeatmapOptions) error {
	p, err := Heatmap(g, opts)
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save heatmap: %w", err)
	}

	return nil
}
