package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mhbaharuddin/seis2d/internal/render"
	"github.com/mhbaharuddin/seis2d/internal/seismic"
)

var (
	sectionDir string
	mapOut     string
)

var renderCmd = &cobra.Command{
	Use:   "render <files...>",
	Short: "Render cross-sections and a map view of loaded lines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if sectionDir == "" && mapOut == "" {
			return fmt.Errorf("nothing to render; pass --section-dir and/or --map")
		}

		lines, failures := seismic.LoadMany(args, fieldConfig(cmd))
		if len(failures) > 0 {
			// Rendering is all-or-nothing: partial output is misleading.
			return fmt.Errorf("load: %v", failures[0])
		}

		if sectionDir != "" {
			if err := os.MkdirAll(sectionDir, 0755); err != nil {
				return fmt.Errorf("create section dir: %w", err)
			}
			for name, line := range lines {
				out := filepath.Join(sectionDir, name+".png")
				if err := render.Section(line, out); err != nil {
					return err
				}
				fmt.Printf("section written to %s\n", out)
			}
		}

		if mapOut != "" {
			f, err := os.Create(mapOut)
			if err != nil {
				return fmt.Errorf("create map file: %w", err)
			}
			defer f.Close()
			if err := render.Map(lines, f); err != nil {
				return err
			}
			fmt.Printf("map written to %s\n", mapOut)
		}
		return nil
	},
}

func init() {
	addFieldFlags(renderCmd)
	renderCmd.Flags().StringVar(&sectionDir, "section-dir", "", "directory for per-line cross-section PNGs")
	renderCmd.Flags().StringVar(&mapOut, "map", "", "path for the map view HTML")
	rootCmd.AddCommand(renderCmd)
}
