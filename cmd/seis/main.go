// seis is a command-line front end for the SEG-Y line loading core:
// inspect files, preview header fields, load lines, render sections and
// maps, and serve a read-only viewer API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
