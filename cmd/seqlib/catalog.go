package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/kepbod/seqlib/internal/catalog"
	"github.com/kepbod/seqlib/internal/encode"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the local metadata catalog",
	Long: `The catalog is a local SQLite database of fetched experiment and file
records, for offline inspection of file listings.`,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <accession> [accessions...]",
	Short: "Fetch experiments and store them in the catalog",
	Example: `  seqlib catalog add ENCSR362AIZ
  seqlib catalog add ENCSR362AIZ ENCSR000AJW`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCatalogAdd,
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show catalog statistics",
	Args:  cobra.NoArgs,
	RunE:  runCatalogInfo,
}

var catalogFilesCmd = &cobra.Command{
	Use:   "files <experiment-accession>",
	Short: "List stored files of an experiment",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogFiles,
}

func init() {
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogInfoCmd)
	catalogCmd.AddCommand(catalogFilesCmd)
	rootCmd.AddCommand(catalogCmd)
}

func openCatalog() (*catalog.DB, error) {
	_, cfg, err := newServiceClient()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Catalog.Path), 0755); err != nil {
		return nil, err
	}
	printDebug("using catalog %s", cfg.Catalog.Path)
	return catalog.Initialize(cfg.Catalog.Path)
}

func runCatalogAdd(cmd *cobra.Command, args []string) error {
	c, cfg, err := newServiceClient()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Catalog.Path), 0755); err != nil {
		return err
	}
	db, err := catalog.Initialize(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	failed := 0
	for _, acc := range args {
		exp, err := encode.FetchExperiment(ctx, c, acc)
		if err != nil {
			printError("failed to fetch %s: %v", acc, err)
			failed++
			continue
		}

		raw, err := exp.ListFiles(true, encode.MatchAny())
		if err != nil {
			printError("failed to list raw files of %s: %v", acc, err)
			failed++
			continue
		}
		processed, err := exp.ListFiles(false, encode.MatchAny())
		if err != nil {
			printError("failed to list processed files of %s: %v", acc, err)
			failed++
			continue
		}

		files := append(raw, processed...)
		if err := db.StoreExperiment(exp, files); err != nil {
			printError("failed to store %s: %v", acc, err)
			failed++
			continue
		}
		printSuccess("stored %s (%d raw, %d processed files)", acc, len(raw), len(processed))
	}

	if failed > 0 {
		printWarning("%d of %d experiments failed", failed, len(args))
	}
	return nil
}

func runCatalogInfo(cmd *cobra.Command, args []string) error {
	db, err := openCatalog()
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := db.GetStats()
	if err != nil {
		return err
	}

	printInfo("experiments: %d", stats.Experiments)
	printInfo("files:       %d", stats.Files)
	return nil
}

func runCatalogFiles(cmd *cobra.Command, args []string) error {
	db, err := openCatalog()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.GetExperiment(args[0]); err != nil {
		return err
	}

	files, err := db.ListFiles(args[0])
	if err != nil {
		return err
	}

	rows := make([]fileRow, 0, len(files))
	for _, f := range files {
		rows = append(rows, fileRow{
			Accession:           f.Accession,
			Class:               f.Class,
			FileType:            f.FileType,
			Status:              f.Status,
			Size:                f.Size,
			BiologicalReplicate: f.BiologicalReplicate,
			TechnicalReplicate:  f.TechnicalReplicate,
			Stranded:            f.Stranded,
			RunType:             f.RunType,
			ReadLength:          f.ReadLength,
			Assembly:            f.Assembly,
			OutputType:          f.OutputType,
			URL:                 f.URL,
			MD5:                 f.MD5,
		})
	}

	return writeRows(os.Stdout, "table", rows)
}
