// Package render draws kernel grids as heatmaps for visual inspection.
//
// What:
//
//   - Heatmap turns any layer of a kernel.Grid (final data, masked or
//     unmasked Gaussian, mask, radius fields) into a *plot.Plot.
//   - SavePNG is the one-call path from a built kernel to a PNG on disk.
//
// Why:
//
//   - Eyeballing the negative wings of a zero-sum kernel is the fastest way
//     to sanity-check ratio/theta parameters before a detection run.
//   - Mask plots make the elliptical-OR-circular truncation visible.
//
// Errors:
//
//   - ErrNilGrid: a nil *kernel.Grid was supplied.
//   - ErrUnknownLayer: the Layer selector is out of range.
//
// The kernel package never imports render; rendering is strictly a
// development aid layered on top of the pure core.
package render
