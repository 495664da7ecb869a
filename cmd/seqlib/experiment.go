package main

import (
	"context"

	"github.com/kepbod/seqlib/internal/encode"
	"github.com/spf13/cobra"
)

var experimentCmd = &cobra.Command{
	Use:   "experiment <accession>",
	Short: "Fetch an experiment and list its files",
	Long: `Retrieve an experiment record and list its associated files.

By default the processed files are listed; --raw switches to the raw
sequencing output instead (raw files are always FASTQ, so --file-type
has no effect there). --file-type may be given multiple times to admit
several processed file types.`,
	Example: `  seqlib experiment ENCSR362AIZ
  seqlib experiment ENCSR362AIZ --raw
  seqlib experiment ENCSR362AIZ --file-type bam --format accession
  seqlib experiment ENCSR362AIZ --file-type bam --file-type bigWig --output files.json --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runExperiment,
}

var (
	expRaw       bool
	expFileTypes []string
	expFormat    string
	expOutput    string
)

func init() {
	experimentCmd.Flags().BoolVar(&expRaw, "raw", false, "List raw files instead of processed files")
	experimentCmd.Flags().StringArrayVar(&expFileTypes, "file-type", nil, "Admit only processed files of this type (repeatable)")
	experimentCmd.Flags().StringVarP(&expFormat, "format", "f", "table", "Output format (table|json|accession)")
	experimentCmd.Flags().StringVarP(&expOutput, "output", "o", "", "Save results to file instead of stdout")

	rootCmd.AddCommand(experimentCmd)
}

func runExperiment(cmd *cobra.Command, args []string) error {
	c, _, err := newServiceClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	exp, err := encode.FetchExperiment(ctx, c, args[0])
	if err != nil {
		return err
	}

	printInfo("%s: %s (%s)", exp.Accession, exp.Description, exp.Assay)
	if verbose {
		printInfo("url: %s", exp.URL)
	}

	files, err := exp.ListFiles(expRaw, encode.MatchTypes(expFileTypes...))
	if err != nil {
		return err
	}
	if expRaw && len(expFileTypes) > 0 {
		printDebug("--file-type is ignored for raw files")
	}

	rows := make([]fileRow, 0, len(files))
	for _, f := range files {
		rows = append(rows, newFileRow(f))
	}

	out, err := openOutput(expOutput)
	if err != nil {
		return err
	}
	defer out.Close()

	return writeRows(out, expFormat, rows)
}
