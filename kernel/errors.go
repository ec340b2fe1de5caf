// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", Err) for context) and tests match them via errors.Is.
// No operation panics on user-triggered conditions.

package kernel

import "errors"

var (
	// ErrInvalidParameter indicates an input constraint violation: fwhm < 0,
	// ratio outside (0, 1], sigmaRadius <= 0, or a non-finite value. The
	// wrapped message names the offending field and value.
	ErrInvalidParameter = errors.New("kernel: invalid parameter")

	// ErrDegenerateKernel indicates the derived ellipse or mask cannot produce
	// a usable kernel: the quadratic form is not positive definite, the mask
	// covers at most one pixel, or the variance term is not positive. Commonly
	// caused by a near-zero fwhm or ratio.
	ErrDegenerateKernel = errors.New("kernel: degenerate kernel")

	// ErrKernelTooLarge indicates the derived grid exceeds Options.MaxPixels.
	// Guards against unbounded allocation from extreme parameter combinations.
	ErrKernelTooLarge = errors.New("kernel: grid exceeds pixel budget")
)
