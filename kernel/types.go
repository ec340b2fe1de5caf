// Package kernel defines options, defaults, and shared constants for
// elliptical Gaussian enhancement kernels.
package kernel

// FWHMToSigma converts a Gaussian full width at half maximum to a standard
// deviation: 1 / (2·sqrt(2·ln 2)).
const FWHMToSigma = 0.42466090014400953

// Defaults for Options; see DefaultOptions.
const (
	// DefaultRatio is a circular kernel (minor/major axis ratio of 1).
	DefaultRatio = 1.0

	// DefaultSigmaRadius truncates the kernel at 1.5 standard deviations.
	DefaultSigmaRadius = 1.5

	// DefaultMaxPixels caps the grid at 2048×2048 pixels (~33 MB per float64
	// layer). Override per call via Options.MaxPixels.
	DefaultMaxPixels = 1 << 22
)

// minHalfExtent is the smallest pixel half-extent per axis. Combined with the
// 2·h+1 sizing rule it forces every kernel to be at least 5×5 and odd-sized.
const minHalfExtent = 2

// Options configures kernel construction.
//
// Fields:
//   - Ratio            — minor/major axis standard-deviation ratio in (0, 1].
//     1 produces a circular kernel.
//   - Theta            — position angle of the major axis in degrees,
//     counter-clockwise from the positive x axis.
//   - SigmaRadius      — truncation radius in standard-deviation units; must
//     be positive.
//   - NormalizeZeroSum — rescale the masked kernel to zero sum, turning the
//     smoothing kernel into a density-enhancement (high-pass) filter.
//   - MaxPixels        — upper bound on nx·ny before allocation. A value of
//     0 (or negative) means DefaultMaxPixels.
//
// Example:
//
//	opts := kernel.DefaultOptions()
//	opts.Ratio = 0.5   // elongated PSF
//	opts.Theta = 30    // rotated 30° CCW
//
//	g, err := kernel.Build(4.2, opts)
//	if err != nil {
//	  // handle ErrInvalidParameter / ErrDegenerateKernel / ErrKernelTooLarge
//	}
//	_ = g.Data // convolve the image with this
type Options struct {
	Ratio            float64
	Theta            float64
	SigmaRadius      float64
	NormalizeZeroSum bool
	MaxPixels        int
}

// DefaultOptions returns the canonical starting configuration: a circular
// kernel truncated at 1.5 sigma with zero-sum normalization enabled.
func DefaultOptions() Options {
	return Options{
		Ratio:            DefaultRatio,
		SigmaRadius:      DefaultSigmaRadius,
		NormalizeZeroSum: true,
		MaxPixels:        DefaultMaxPixels,
	}
}

// maxPixels resolves the effective pixel budget.
func (o Options) maxPixels() int {
	if o.MaxPixels <= 0 {
		return DefaultMaxPixels
	}

	return o.MaxPixels
}
