package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhbaharuddin/seis2d/internal/seismic"
)

var (
	previewField  int
	previewTraces int
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Preview raw values of one trace-header field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preview, err := seismic.PreviewHeader(args[0], previewField, previewTraces)
		if err != nil {
			return err
		}
		fmt.Printf("Field %d (%s):\n", preview.Field, preview.Name)
		if len(preview.Values) == 0 {
			fmt.Println("  no data to preview")
			return nil
		}
		for i, v := range preview.Values {
			fmt.Printf("  trace %3d: %g\n", i, v)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewField, "field", seismic.DefaultFieldConfig().XField, "trace header byte offset to preview")
	previewCmd.Flags().IntVar(&previewTraces, "traces", 10, "number of traces to preview")
	rootCmd.AddCommand(previewCmd)
}
