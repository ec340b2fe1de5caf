// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid is the immutable result of Build: the kernel itself plus every
// intermediate layer and statistic derived along the way. All layers share
// the Geometry shape (NY rows × NX cols) and are indexed At(y, x).
//
// Treat a Grid as read-only; recomputation means calling Build again with
// new parameters.
type Grid struct {
	Geometry

	// Input parameters as validated.
	FWHM        float64
	Ratio       float64
	Theta       float64
	SigmaRadius float64

	// CircularRadius is the Euclidean pixel distance from the center.
	CircularRadius *mat.Dense

	// EllipticalRadius is the quadratic form g(x,y) at each pixel.
	EllipticalRadius *mat.Dense

	// Mask is 1 where a pixel lies inside the ellipse boundary (g <= F) or
	// within circular radius 2 of the center, else 0. The circular fallback
	// guarantees a minimum usable footprint.
	Mask *mat.Dense

	// Unmasked is exp(-g) over the whole grid; its center pixel is exactly 1.
	Unmasked *mat.Dense

	// Gaussian is Unmasked with the mask applied.
	Gaussian *mat.Dense

	// Data is the final kernel: Gaussian rescaled to zero sum when
	// Options.NormalizeZeroSum was set, otherwise a copy of Gaussian.
	Data *mat.Dense

	// NPixels counts mask==1 pixels.
	NPixels int

	// RelErr is 1/sqrt(variance·NPixels), a relative-error estimate of the
	// kernel's statistical precision.
	RelErr float64
}

// Sum returns the sum over Data. With zero-sum normalization it is zero up
// to floating-point roundoff.
// Complexity: O(nx·ny).
func (g *Grid) Sum() float64 {
	return floats.Sum(g.Data.RawMatrix().Data)
}

// Build constructs a density-enhancement kernel from the PSF full width at
// half maximum (major axis, in pixels) and opts. Start from DefaultOptions
// and adjust.
//
// Returns ErrInvalidParameter, ErrDegenerateKernel, or ErrKernelTooLarge;
// on error no Grid is returned. Complexity: O(nx·ny) time and memory.
func Build(fwhm float64, opts Options) (*Grid, error) {
	geom, err := DeriveGeometry(fwhm, opts)
	if err != nil {
		return nil, err
	}

	// DeriveGeometry already enforced the pixel budget, so nx·ny is safe to
	// allocate.
	nx, ny := geom.NX, geom.NY
	n := nx * ny
	circ := make([]float64, n)
	ellip := make([]float64, n)
	mask := make([]float64, n)
	unmasked := make([]float64, n)
	gauss := make([]float64, n)

	npixels := 0
	for y := 0; y < ny; y++ {
		dy := float64(y - geom.YC)
		for x := 0; x < nx; x++ {
			dx := float64(x - geom.XC)
			i := y*nx + x

			r := math.Sqrt(dx*dx + dy*dy)
			e := geom.A*dx*dx + 2*geom.B*dx*dy + geom.C*dy*dy
			circ[i] = r
			ellip[i] = e
			unmasked[i] = math.Exp(-e)

			if e <= geom.F || r <= 2 {
				mask[i] = 1
				gauss[i] = unmasked[i]
				npixels++
			}
		}
	}

	if npixels <= 1 {
		return nil, fmt.Errorf("mask covers %d pixel(s), need at least 2: %w",
			npixels, ErrDegenerateKernel)
	}

	sum := floats.Sum(gauss)
	// varianceTerm = variance · npixels; the denominator of both the
	// zero-sum rescale and the relative-error estimate.
	varianceTerm := floats.Dot(gauss, gauss) - sum*sum/float64(npixels)
	if !(varianceTerm > 0) {
		return nil, fmt.Errorf("variance term %g is not positive: %w",
			varianceTerm, ErrDegenerateKernel)
	}

	data := make([]float64, n)
	if opts.NormalizeZeroSum {
		mean := sum / float64(npixels)
		for i, v := range gauss {
			if mask[i] != 0 {
				data[i] = (v - mean) / varianceTerm
			}
		}
	} else {
		copy(data, gauss)
	}

	return &Grid{
		Geometry:         geom,
		FWHM:             fwhm,
		Ratio:            opts.Ratio,
		Theta:            opts.Theta,
		SigmaRadius:      opts.SigmaRadius,
		CircularRadius:   mat.NewDense(ny, nx, circ),
		EllipticalRadius: mat.NewDense(ny, nx, ellip),
		Mask:             mat.NewDense(ny, nx, mask),
		Unmasked:         mat.NewDense(ny, nx, unmasked),
		Gaussian:         mat.NewDense(ny, nx, gauss),
		Data:             mat.NewDense(ny, nx, data),
		NPixels:          npixels,
		RelErr:           1 / math.Sqrt(varianceTerm),
	}, nil
}
