package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhbaharuddin/seis2d/internal/segy"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List selectable trace-header fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, f := range segy.AvailableFields() {
			fmt.Printf("%3d  %-40s %d bytes\n", f.Code, f.Name, f.Size)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
