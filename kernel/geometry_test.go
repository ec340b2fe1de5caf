package kernel_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starkern/kernel"
)

//----------------------------------------------------------------------------//
// DeriveGeometry Tests
//----------------------------------------------------------------------------//

// TestDeriveGeometry_Circular checks the closed-form quantities for the
// canonical circular case: fwhm=3, sigmaRadius=1.5.
func TestDeriveGeometry_Circular(t *testing.T) {
	geom, err := kernel.DeriveGeometry(3, kernel.DefaultOptions())
	require.NoError(t, err)

	wantSigma := 3 * kernel.FWHMToSigma
	require.InDelta(t, wantSigma, geom.XSigma, 1e-15)
	require.Equal(t, geom.XSigma, geom.YSigma, "ratio=1 keeps both sigmas equal")

	// Diagonal form: a = c = 1/(2σ²), b = 0.
	wantA := 1 / (2 * wantSigma * wantSigma)
	require.InDelta(t, wantA, geom.A, 1e-15)
	require.InDelta(t, wantA, geom.C, 1e-15)
	require.Zero(t, geom.B)

	require.Equal(t, 1.125, geom.F, "f = sigmaRadius²/2")
	require.Equal(t, 5, geom.NX)
	require.Equal(t, 5, geom.NY)
	require.Equal(t, 2, geom.XC)
	require.Equal(t, 2, geom.YC)
}

// TestDeriveGeometry_GridSizes pins the clamp-then-double-then-add-one
// sizing policy across FWHM values: dimensions are odd, floored at 5, and
// grow with the ellipse extent.
func TestDeriveGeometry_GridSizes(t *testing.T) {
	cases := []struct {
		name        string
		fwhm        float64
		sigmaRadius float64
		wantNX      int
	}{
		{"ClampedTiny", 0.1, 1.5, 5},
		{"ClampedSmall", 3, 1.5, 5},
		{"Medium", 10, 1.5, 13},
		{"MediumWideTruncation", 10, 3, 25},
		{"Large", 25, 1.5, 31},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := kernel.DefaultOptions()
			opts.SigmaRadius = tc.sigmaRadius
			geom, err := kernel.DeriveGeometry(tc.fwhm, opts)
			require.NoError(t, err)
			require.Equal(t, tc.wantNX, geom.NX)
			require.Equal(t, geom.NX, geom.NY, "circular kernels are square")
			require.Equal(t, 1, geom.NX%2)
		})
	}
}

// TestDeriveGeometry_RotatedElongated verifies the rotated quadratic form
// stays positive definite and the grid tracks the major axis orientation.
func TestDeriveGeometry_RotatedElongated(t *testing.T) {
	opts := kernel.DefaultOptions()
	opts.Ratio = 0.25

	// Major axis along x: wider than tall.
	opts.Theta = 0
	flat, err := kernel.DeriveGeometry(12, opts)
	require.NoError(t, err)
	require.Greater(t, flat.NX, flat.NY)
	require.Zero(t, flat.B, "no cross term without rotation")

	// Major axis along y after a 90° turn: taller than wide.
	opts.Theta = 90
	tall, err := kernel.DeriveGeometry(12, opts)
	require.NoError(t, err)
	require.Greater(t, tall.NY, tall.NX)
	require.Equal(t, flat.NX, tall.NY, "rotation by 90° swaps the extents")
	require.Equal(t, flat.NY, tall.NX)

	// Positive definiteness at an oblique angle.
	opts.Theta = 30
	oblique, err := kernel.DeriveGeometry(12, opts)
	require.NoError(t, err)
	require.Greater(t, oblique.A*oblique.C-oblique.B*oblique.B, 0.0)
	require.NotZero(t, oblique.B)
}

// TestDeriveGeometry_Errors verifies validation and degeneracy reporting.
func TestDeriveGeometry_Errors(t *testing.T) {
	cases := []struct {
		name string
		fwhm float64
		mod  func(*kernel.Options)
		err  error
	}{
		{"NegativeFWHM", -3, func(o *kernel.Options) {}, kernel.ErrInvalidParameter},
		{"RatioAboveOne", 3, func(o *kernel.Options) { o.Ratio = 2 }, kernel.ErrInvalidParameter},
		{"ZeroSigmaRadius", 3, func(o *kernel.Options) { o.SigmaRadius = 0 }, kernel.ErrInvalidParameter},
		{"ZeroFWHM", 0, func(o *kernel.Options) {}, kernel.ErrDegenerateKernel},
		{"ExtremeFWHM", 1e12, func(o *kernel.Options) {}, kernel.ErrKernelTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := kernel.DefaultOptions()
			tc.mod(&opts)
			_, err := kernel.DeriveGeometry(tc.fwhm, opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("DeriveGeometry(%g) error = %v; want %v", tc.fwhm, err, tc.err)
			}
		})
	}
}

// TestFWHMToSigma pins the conversion constant against its defining formula.
func TestFWHMToSigma(t *testing.T) {
	require.InDelta(t, 1/(2*math.Sqrt(2*math.Ln2)), kernel.FWHMToSigma, 1e-16)
}
