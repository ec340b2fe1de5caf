package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/starkern/kernel"
)

// describeCommand reports the geometry and statistics of a kernel without
// writing anything to disk.
func (c *CLI) describeCommand() *cobra.Command {
	var kf kernelFlags

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Build a kernel and report its geometry and statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			fwhm, opts, err := kf.resolve(cmd)
			if err != nil {
				return err
			}

			g, err := kernel.Build(fwhm, opts)
			if err != nil {
				return err
			}

			ny, nx := g.Shape()
			yc, xc := g.Center()
			c.Logger.Info("kernel built",
				"shape", fmt.Sprintf("%dx%d", ny, nx),
				"center", fmt.Sprintf("(%d,%d)", yc, xc),
				"npixels", g.NPixels,
				"relerr", g.RelErr,
				"sum", g.Sum(),
			)
			c.Logger.Debug("derived geometry",
				"xsigma", g.XSigma,
				"ysigma", g.YSigma,
				"a", g.A,
				"b", g.B,
				"c", g.C,
				"f", g.F,
			)

			return nil
		},
	}

	kf.register(cmd)

	return cmd
}
