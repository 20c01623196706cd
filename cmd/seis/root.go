package main

import (
	"github.com/spf13/cobra"

	"github.com/mhbaharuddin/seis2d/internal/seismic"
	"github.com/mhbaharuddin/seis2d/internal/version"
)

var (
	// Field selection flags, shared by load/render/serve.
	xField      int
	yField      int
	cdpField    int
	scalarField int

	// Manual adjustments.
	overrideScale float64
	xOffset       float64
	yOffset       float64
	units         string

	rootCmd = &cobra.Command{
		Use:   "seis",
		Short: "SEG-Y 2D line loading and inspection",
		Long: `seis loads 2D seismic lines from SEG-Y files and exposes them for
inspection and visualization.

Examples:
  seis fields                           # List selectable trace-header fields
  seis info line.sgy --text-header      # Inspect file structure
  seis preview line.sgy --field 73      # Preview raw SourceX values
  seis load a.sgy b.sgy                 # Load lines and print summaries
  seis render a.sgy --section-dir out/  # Render cross-section PNGs
  seis serve a.sgy b.sgy --listen :8080 # Serve the viewer API`,
		Version:      version.String(),
		SilenceUsage: true,
	}
)

// addFieldFlags registers the field-selection and adjustment flags on a
// command. A negative cdp-field or scalar-field disables that field.
func addFieldFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&xField, "x-field", seismic.DefaultFieldConfig().XField, "trace header byte offset for X coordinates")
	flags.IntVar(&yField, "y-field", seismic.DefaultFieldConfig().YField, "trace header byte offset for Y coordinates")
	flags.IntVar(&cdpField, "cdp-field", *seismic.DefaultFieldConfig().CDPField, "trace header byte offset for CDP (negative: synthesize trace indices)")
	flags.IntVar(&scalarField, "scalar-field", *seismic.DefaultFieldConfig().ScalarField, "trace header byte offset for the coordinate scalar (negative: no scaling)")
	flags.Float64Var(&overrideScale, "scale", 1.0, "override XY scale factor applied after scalar normalization")
	flags.Float64Var(&xOffset, "x-offset", 0, "additive X offset")
	flags.Float64Var(&yOffset, "y-offset", 0, "additive Y offset")
	flags.StringVar(&units, "units", "m", "coordinate unit label")
}

// fieldConfig assembles a FieldConfig from the registered flags. The
// override factor is only recorded when the operator actually set it, so
// the metadata distinguishes "default 1.0" from "explicitly 1.0".
func fieldConfig(cmd *cobra.Command) seismic.FieldConfig {
	cfg := seismic.FieldConfig{
		XField:          xField,
		YField:          yField,
		XOffset:         xOffset,
		YOffset:         yOffset,
		CoordinateUnits: units,
	}
	if cdpField >= 0 {
		cdp := cdpField
		cfg.CDPField = &cdp
	}
	if scalarField >= 0 {
		scalar := scalarField
		cfg.ScalarField = &scalar
	}
	if cmd.Flags().Changed("scale") {
		override := overrideScale
		cfg.ScalarOverride = &override
	}
	return cfg
}
