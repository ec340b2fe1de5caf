package kernel_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/starkern/kernel"
)

// ExampleBuild builds the default circular enhancement kernel for a 3-pixel
// FWHM point-spread function. The grid is the minimal odd size containing
// the truncated Gaussian, the unmasked peak is exactly 1, and zero-sum
// normalization leaves a kernel that responds to contrast, not brightness.
func ExampleBuild() {
	g, err := kernel.Build(3.0, kernel.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	ny, nx := g.Shape()
	yc, xc := g.Center()
	fmt.Printf("shape=%dx%d\n", ny, nx)
	fmt.Printf("npixels=%d\n", g.NPixels)
	fmt.Printf("peak=%.1f\n", g.Unmasked.At(yc, xc))
	fmt.Println("zero-sum:", math.Abs(g.Sum()) < 1e-10)
	// Output:
	// shape=5x5
	// npixels=13
	// peak=1.0
	// zero-sum: true
}

// ExampleDeriveGeometry sizes a kernel without allocating its grid.
func ExampleDeriveGeometry() {
	opts := kernel.DefaultOptions()
	opts.Ratio = 0.25 // elongated PSF, major axis along x

	geom, err := kernel.DeriveGeometry(12, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("grid=%dx%d center=(%d,%d)\n", geom.NY, geom.NX, geom.YC, geom.XC)
	// Output:
	// grid=5x15 center=(2,7)
}
