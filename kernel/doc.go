// Package kernel builds discrete 2D elliptical Gaussian density-enhancement
// kernels for matched-filter point-source detection.
//
// What:
//
//   - Build derives the rotated elliptical quadratic form from a PSF width
//     (FWHM), minor/major axis ratio, and position angle.
//   - The minimal odd-sized grid containing the truncated kernel is derived
//     from the ellipse's axis-aligned tangent extents.
//   - An inclusion mask combines elliptical truncation with a circular
//     fallback around the center, guaranteeing a usable footprint even for
//     extremely eccentric or tiny kernels.
//   - With zero-sum normalization (the default) the kernel has negative
//     wings and sums to zero, acting as a high-pass enhancement filter that
//     responds to local contrast rather than local brightness.
//
// Why:
//
//   - Star finding: convolve an image with Grid.Data and search the filtered
//     response for local maxima above a threshold.
//   - PSF photometry prep: Geometry gives kernel extents without allocating
//     the grid, useful for sizing cutouts and padding.
//
// Algorithm Outline:
//
//  1. xsigma = fwhm · 1/(2·sqrt(2·ln2)); ysigma = xsigma · ratio.
//  2. Rotate by theta (CCW, degrees) into quadratic-form coefficients a, b, c
//     of g(x,y) = a·dx² + 2b·dx·dy + c·dy².
//  3. Threshold f = sigmaRadius²/2; the level set g(x,y)=f bounds the ellipse.
//  4. Half-extents hx = sqrt(c·f/(ac−b²)), hy = sqrt(a·f/(ac−b²)); grid size
//     is 2·int(max(2,h))+1 per axis, so nx and ny are odd and at least 5.
//  5. Evaluate exp(−g) on the integer grid centered at (ny/2, nx/2), mask by
//     g ≤ f OR circular radius ≤ 2, and optionally rescale the masked kernel
//     to zero sum using its variance term.
//
// Errors:
//
//   - ErrInvalidParameter: fwhm < 0, ratio outside (0,1], sigmaRadius ≤ 0,
//     or a non-finite input.
//   - ErrDegenerateKernel: ellipse form not positive definite, mask covering
//     ≤ 1 pixel, or non-positive variance term.
//   - ErrKernelTooLarge: derived grid exceeds Options.MaxPixels.
//
// Complexity:
//
//   - DeriveGeometry: O(1) time and memory.
//   - Build: O(nx·ny) time and memory; single pass, no iteration.
//
// Construction is pure and all-or-nothing: no I/O, no global state, and a
// failed Build never yields a partially populated Grid. Distinct Build calls
// are safe to run concurrently.
package kernel
