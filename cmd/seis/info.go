package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mhbaharuddin/seis2d/internal/seismic"
)

var showTextHeader bool

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Inspect a SEG-Y file's structure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := seismic.Inspect(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Path:            %s\n", info.Path)
		fmt.Printf("Traces:          %d\n", info.TraceCount)
		fmt.Printf("Samples/trace:   %d\n", info.SampleCount)
		fmt.Printf("Interval (us):   %g\n", info.SampleIntervalMicros)

		keys := make([]string, 0, len(info.BinaryHeader))
		for k := range info.BinaryHeader {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println("Binary header:")
		for _, k := range keys {
			fmt.Printf("  %-16s %d\n", k, info.BinaryHeader[k])
		}

		if showTextHeader {
			fmt.Println("Text header:")
			fmt.Print(info.TextHeader)
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVar(&showTextHeader, "text-header", false, "print the decoded 3200-byte text header")
	rootCmd.AddCommand(infoCmd)
}
