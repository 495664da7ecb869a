package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// openOutput returns stdout or the named file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeRows renders file rows in the requested format.
func writeRows(w io.Writer, format string, rows []fileRow) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case "accession":
		for _, row := range rows {
			fmt.Fprintln(w, row.Accession)
		}
		return nil
	case "table":
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "ACCESSION\tCLASS\tTYPE\tSTATUS\tREPLICATE\tSIZE")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s/%s\t%d\n",
				row.Accession, row.Class, row.FileType, row.Status,
				row.BiologicalReplicate, row.TechnicalReplicate, row.Size)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
