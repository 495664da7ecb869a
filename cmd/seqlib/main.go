package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info
var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// Global flags
var (
	noColor bool
	quiet   bool
	verbose bool
	debug   bool
)

// Root command
var rootCmd = &cobra.Command{
	Use:   "seqlib",
	Short: "ENCODE sequencing metadata client",
	Long: `seqlib fetches sequencing experiment and file metadata from the ENCODE
project over HTTP/JSON.

It resolves records by accession, classifies experiment files as raw or
processed output, filters processed files by type, and can store fetched
records in a local catalog for offline inspection.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Example: `  # Fetch an experiment and list its raw files
  seqlib experiment ENCSR362AIZ --raw

  # List only bam and bigWig files
  seqlib experiment ENCSR362AIZ --file-type bam --file-type bigWig

  # Fetch individual file records
  seqlib file ENCFF037JQC ENCFF281ENU --format json

  # Store experiments in the local catalog
  seqlib catalog add ENCSR362AIZ`,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}
