package main

import (
	"context"
	"os"

	"github.com/kepbod/seqlib/internal/encode"
	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file <accession> [accessions...]",
	Short: "Fetch file records by accession",
	Long: `Retrieve one or more file records directly by accession. Each record is
classified as raw or processed output and projected accordingly.

Pass "-" as the only accession to read accessions from stdin, one per
line (lines starting with # are skipped).`,
	Example: `  seqlib file ENCFF037JQC
  seqlib file ENCFF037JQC ENCFF281ENU --format json
  cat accessions.txt | seqlib file -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFile,
}

var (
	fileFormat string
	fileOutput string
)

func init() {
	fileCmd.Flags().StringVarP(&fileFormat, "format", "f", "table", "Output format (table|json|accession)")
	fileCmd.Flags().StringVarP(&fileOutput, "output", "o", "", "Save results to file instead of stdout")

	rootCmd.AddCommand(fileCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	accessions := args
	if len(args) == 1 && args[0] == "-" {
		var err error
		accessions, err = readAccessionsFromReader(os.Stdin)
		if err != nil {
			return err
		}
	}

	c, _, err := newServiceClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	rows := make([]fileRow, 0, len(accessions))
	failed := 0
	for _, acc := range accessions {
		f, err := encode.FetchFile(ctx, c, acc)
		if err != nil {
			printError("failed to fetch %s: %v", acc, err)
			failed++
			continue
		}
		rows = append(rows, newFileRow(f))
	}

	out, err := openOutput(fileOutput)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := writeRows(out, fileFormat, rows); err != nil {
		return err
	}
	if failed > 0 {
		printWarning("%d of %d accessions failed", failed, len(accessions))
	}
	return nil
}
