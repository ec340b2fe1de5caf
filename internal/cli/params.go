package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/starkern/kernel"
)

// kernelFlags is the parameter surface shared by describe and render.
type kernelFlags struct {
	fwhm        float64
	ratio       float64
	theta       float64
	sigmaRadius float64
	noNormalize bool
	maxPixels   int
	configPath  string
}

// register wires the shared kernel flags onto cmd.
func (kf *kernelFlags) register(cmd *cobra.Command) {
	defaults := kernel.DefaultOptions()
	cmd.Flags().Float64Var(&kf.fwhm, "fwhm", 3, "PSF full width at half maximum of the major axis, in pixels")
	cmd.Flags().Float64Var(&kf.ratio, "ratio", defaults.Ratio, "minor/major axis standard-deviation ratio in (0,1]")
	cmd.Flags().Float64Var(&kf.theta, "theta", defaults.Theta, "position angle in degrees, CCW from the positive x axis")
	cmd.Flags().Float64Var(&kf.sigmaRadius, "sigma-radius", defaults.SigmaRadius, "truncation radius in standard deviations")
	cmd.Flags().BoolVar(&kf.noNormalize, "no-normalize", false, "skip zero-sum normalization and keep the plain Gaussian")
	cmd.Flags().IntVar(&kf.maxPixels, "max-pixels", defaults.MaxPixels, "upper bound on the grid pixel count")
	cmd.Flags().StringVar(&kf.configPath, "config", "", "TOML file with kernel parameters; explicit flags win")
}

// fileParams mirrors the kernel parameter surface in a TOML config file.
// Pointer fields distinguish "absent" from zero values.
type fileParams struct {
	FWHM             *float64 `toml:"fwhm"`
	Ratio            *float64 `toml:"ratio"`
	Theta            *float64 `toml:"theta"`
	SigmaRadius      *float64 `toml:"sigma_radius"`
	NormalizeZeroSum *bool    `toml:"normalize_zerosum"`
	MaxPixels        *int     `toml:"max_pixels"`
}

// loadParams decodes a TOML parameter file.
func loadParams(path string) (fileParams, error) {
	var fp fileParams
	if _, err := toml.DecodeFile(path, &fp); err != nil {
		return fileParams{}, fmt.Errorf("cli: load config %s: %w", path, err)
	}

	return fp, nil
}

// resolve merges the config file (when given) under the explicit flags and
// returns the fwhm plus kernel options for a Build call. A value from the
// file applies only when the corresponding flag was not set on cmd.
func (kf *kernelFlags) resolve(cmd *cobra.Command) (float64, kernel.Options, error) {
	opts := kernel.DefaultOptions()
	opts.Ratio = kf.ratio
	opts.Theta = kf.theta
	opts.SigmaRadius = kf.sigmaRadius
	opts.NormalizeZeroSum = !kf.noNormalize
	opts.MaxPixels = kf.maxPixels
	fwhm := kf.fwhm

	if kf.configPath == "" {
		return fwhm, opts, nil
	}

	fp, err := loadParams(kf.configPath)
	if err != nil {
		return 0, kernel.Options{}, err
	}

	flags := cmd.Flags()
	if fp.FWHM != nil && !flags.Changed("fwhm") {
		fwhm = *fp.FWHM
	}
	if fp.Ratio != nil && !flags.Changed("ratio") {
		opts.Ratio = *fp.Ratio
	}
	if fp.Theta != nil && !flags.Changed("theta") {
		opts.Theta = *fp.Theta
	}
	if fp.SigmaRadius != nil && !flags.Changed("sigma-radius") {
		opts.SigmaRadius = *fp.SigmaRadius
	}
	if fp.NormalizeZeroSum != nil && !flags.Changed("no-normalize") {
		opts.NormalizeZeroSum = *fp.NormalizeZeroSum
	}
	if fp.MaxPixels != nil && !flags.Changed("max-pixels") {
		opts.MaxPixels = *fp.MaxPixels
	}

	return fwhm, opts, nil
}
