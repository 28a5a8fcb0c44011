// Package main provides the entry point for the OMR workbench command line.
package main

import (
	"fmt"
	"log"
	"os"

	"omr-workbench/internal/cli"
	"omr-workbench/internal/scan"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := cli.NewRootCmd(scan.Open).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Message(err))
		os.Exit(cli.ExitCode(err))
	}
}
