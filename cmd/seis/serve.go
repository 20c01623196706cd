package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mhbaharuddin/seis2d/internal/api"
	"github.com/mhbaharuddin/seis2d/internal/seismic"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <files...>",
	Short: "Serve a read-only viewer API over loaded lines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, failures := seismic.LoadMany(args, fieldConfig(cmd))
		for _, f := range failures {
			log.Printf("failed to load %s: %v", f.Path, f.Err)
		}
		if len(lines) == 0 {
			return fmt.Errorf("no lines loaded")
		}

		log.Printf("serving %d line(s) on %s", len(lines), listenAddr)
		return http.ListenAndServe(listenAddr, api.NewServer(lines))
	},
}

func init() {
	addFieldFlags(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
