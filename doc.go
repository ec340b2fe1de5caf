// Package starkern builds matched-filter kernels for point-source
// detection in astronomical images.
//
// 🚀 What is starkern?
//
//	A small, deterministic library that turns PSF shape parameters into a
//	discrete 2D elliptical Gaussian "density-enhancement" kernel:
//		• FWHM, axis ratio and position angle → rotated quadratic form
//		• Minimal odd-sized grid from the ellipse's tangent extents
//		• Elliptical truncation with a circular fallback mask
//		• Zero-sum normalization: a high-pass filter, not a smoother
//
// ✨ Why choose starkern?
//
//   - Pure construction – no I/O, no global state, safe to call concurrently
//   - Explicit failure modes – sentinel errors matched with errors.Is
//   - gonum-native – grids are *mat.Dense, ready for convolution pipelines
//   - Inspectable – every intermediate layer (radii, mask, unmasked
//     Gaussian) is kept on the result
//
// Everything is organized under two subpackages plus a developer CLI:
//
//	kernel/ — the kernel builder: options, geometry derivation, Build
//	render/ — heatmap plots of kernel layers via gonum/plot
//	cmd/    — the starkern CLI: describe and render commands
//
// Quick sketch (5×5 default kernel, mask shown):
//
//	. . 1 . .
//	. 1 1 1 .
//	1 1 1 1 1
//	. 1 1 1 .
//	. . 1 . .
//
// A detection pipeline convolves its image with kernel.Grid.Data and looks
// for local maxima above a threshold in the filtered response.
//
//	go get github.com/katalvlaran/starkern/kernel
package starkern
