// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"
)

// Geometry holds the analytic quantities derived from the input parameters:
// axis standard deviations, the rotated quadratic-form coefficients, the
// truncation level, and the odd grid dimensions with their center indices.
// It is immutable once derived.
//
// The elliptical falloff is g(x,y) = A·dx² + 2B·dx·dy + C·dy² and the kernel
// boundary is the level set g(x,y) = F.
type Geometry struct {
	XSigma, YSigma float64 // standard deviations along the major/minor axes
	A, B, C        float64 // rotated quadratic-form coefficients
	F              float64 // truncation level: sigmaRadius²/2
	NX, NY         int     // grid dimensions, always odd and >= 5
	XC, YC         int     // center indices (NX/2, NY/2), equal to the pixel radii
}

// Shape returns the grid dimensions in (rows, cols) order.
// Complexity: O(1).
func (g Geometry) Shape() (ny, nx int) {
	return g.NY, g.NX
}

// Center returns the grid center indices in (row, col) order.
// Complexity: O(1).
func (g Geometry) Center() (yc, xc int) {
	return g.YC, g.XC
}

// DeriveGeometry validates fwhm and opts and computes the kernel geometry
// without allocating the grid. Useful for sizing cutouts and buffers before
// committing to a Build.
//
// Returns ErrInvalidParameter on constraint violations,
// ErrDegenerateKernel if the quadratic form is not positive definite, and
// ErrKernelTooLarge if the derived grid would exceed Options.MaxPixels.
// Complexity: O(1).
func DeriveGeometry(fwhm float64, opts Options) (Geometry, error) {
	if err := validate(fwhm, opts); err != nil {
		return Geometry{}, err
	}

	xsigma := fwhm * FWHMToSigma
	ysigma := xsigma * opts.Ratio

	thetaRad := opts.Theta * math.Pi / 180
	cost := math.Cos(thetaRad)
	sint := math.Sin(thetaRad)
	xsigma2 := xsigma * xsigma
	ysigma2 := ysigma * ysigma

	// Axis-rotation of the diagonal form; B carries the CCW cross term.
	a := cost*cost/(2*xsigma2) + sint*sint/(2*ysigma2)
	b := 0.5 * cost * sint * (1/xsigma2 - 1/ysigma2)
	c := sint*sint/(2*xsigma2) + cost*cost/(2*ysigma2)

	f := opts.SigmaRadius * opts.SigmaRadius / 2
	denom := a*c - b*b
	if math.IsNaN(denom) || denom <= 0 {
		return Geometry{}, fmt.Errorf("ellipse form not positive definite (a·c-b² = %g): %w",
			denom, ErrDegenerateKernel)
	}

	// Horizontal and vertical tangent extents of the ellipse g(x,y) = f.
	nxf := oddSize(math.Sqrt(c * f / denom))
	nyf := oddSize(math.Sqrt(a * f / denom))

	// The budget check runs in float space: for extreme inputs the pixel
	// count (or even a single dimension) exceeds the int range, and a
	// wrapped product would slip past the guard into allocation.
	if limit := opts.maxPixels(); nxf*nyf > float64(limit) {
		return Geometry{}, fmt.Errorf("%.0fx%.0f grid exceeds %d pixel budget: %w",
			nyf, nxf, limit, ErrKernelTooLarge)
	}

	// Safe: nxf·nyf fits the budget and each dimension is at least 5, so
	// both fit in an int.
	nx := int(nxf)
	ny := int(nyf)

	return Geometry{
		XSigma: xsigma,
		YSigma: ysigma,
		A:      a,
		B:      b,
		C:      c,
		F:      f,
		NX:     nx,
		NY:     ny,
		XC:     nx / 2,
		YC:     ny / 2,
	}, nil
}

// oddSize maps an ellipse half-extent to an odd grid dimension using the
// clamp-then-double-then-add-one rule: truncate, clamp to minHalfExtent,
// then 2·h+1. The order matters — it guarantees both odd dimensions for
// unambiguous centering and a minimum 5-pixel footprint. The result stays
// in float space so the caller can bound it before converting to int.
func oddSize(halfExtent float64) float64 {
	return 2*math.Trunc(math.Max(minHalfExtent, halfExtent)) + 1
}

// validate enforces the input constraints shared by DeriveGeometry and Build.
// Non-finite inputs are rejected here rather than left to surface later as
// degeneracy errors.
func validate(fwhm float64, opts Options) error {
	if !isFinite(fwhm) || fwhm < 0 {
		return fmt.Errorf("fwhm must be finite and non-negative, got %g: %w",
			fwhm, ErrInvalidParameter)
	}
	if !isFinite(opts.Ratio) || opts.Ratio <= 0 || opts.Ratio > 1 {
		return fmt.Errorf("ratio must be in (0, 1], got %g: %w",
			opts.Ratio, ErrInvalidParameter)
	}
	if !isFinite(opts.Theta) {
		return fmt.Errorf("theta must be finite, got %g: %w",
			opts.Theta, ErrInvalidParameter)
	}
	if !isFinite(opts.SigmaRadius) || opts.SigmaRadius <= 0 {
		return fmt.Errorf("sigmaRadius must be finite and positive, got %g: %w",
			opts.SigmaRadius, ErrInvalidParameter)
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
