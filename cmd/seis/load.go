package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mhbaharuddin/seis2d/internal/project"
	"github.com/mhbaharuddin/seis2d/internal/seismic"
)

var (
	projectOut  string
	projectName string
)

var loadCmd = &cobra.Command{
	Use:   "load <files...>",
	Short: "Load SEG-Y lines and print summaries",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := fieldConfig(cmd)
		lines, failures := seismic.LoadMany(args, cfg)

		names := make([]string, 0, len(lines))
		for name := range lines {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			l := lines[name]
			lo, hi := l.AmplitudeRange()
			fmt.Printf("%s: %d traces x %d samples, dt=%g us, length=%.1f %s, amplitude [%g, %g]\n",
				name, l.Metadata.TraceCount, l.Metadata.SampleCount,
				l.Metadata.SampleIntervalMicros, l.Length(),
				l.Metadata.CoordinateUnits, lo, hi)
		}

		for _, f := range failures {
			log.Printf("failed to load %s: %v", f.Path, f.Err)
		}

		if projectOut != "" {
			p := project.New(projectName)
			for _, name := range names {
				p.Add(lines[name], cfg)
			}
			if err := p.Save(projectOut); err != nil {
				return err
			}
			fmt.Printf("project written to %s\n", projectOut)
		}

		if len(failures) > 0 {
			return fmt.Errorf("%d of %d file(s) failed to load", len(failures), len(args))
		}
		return nil
	},
}

func init() {
	addFieldFlags(loadCmd)
	loadCmd.Flags().StringVar(&projectOut, "project", "", "write a project JSON document to this path")
	loadCmd.Flags().StringVar(&projectName, "project-name", "Untitled", "project name to record")
	rootCmd.AddCommand(loadCmd)
}
