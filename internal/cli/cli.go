// Package cli implements the starkern command-line interface.
//
// This package provides small developer commands around the kernel core:
// describing the geometry and statistics of a kernel for given PSF
// parameters, and rendering kernel layers as heatmap PNGs. The CLI is built
// using cobra with structured logging via the charmbracelet/log library.
//
// # Commands
//
//   - describe: build a kernel and log its geometry, npixels, relerr, and sum
//   - render: build a kernel and save a heatmap of one of its layers
//
// # Parameters
//
// Both commands share the kernel parameter flags (--fwhm, --ratio, --theta,
// --sigma-radius, --no-normalize, --max-pixels). A TOML file passed with
// --config supplies defaults; explicit flags always win.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the binary name used in help output.
const appName = "starkern"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "starkern builds elliptical Gaussian enhancement kernels",
		Long:         `Starkern is a developer tool around the starkern kernel library: it derives matched-filter kernels for point-source detection from PSF shape parameters, reports their geometry and statistics, and renders their layers as heatmaps.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.describeCommand())
	root.AddCommand(c.renderCommand())

	return root
}
