package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kepbod/seqlib/internal/client"
	"github.com/kepbod/seqlib/internal/config"
	"github.com/kepbod/seqlib/internal/encode"
)

// Color codes for terminal output
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// Check if output is to terminal
func isTerminal() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Apply color if terminal output and color enabled
func colorize(color, text string) string {
	if !noColor && isTerminal() && os.Getenv("NO_COLOR") == "" {
		return color + text + colorReset
	}
	return text
}

// Print error message in user-friendly format
func printError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", colorize(colorRed, "✗"), msg)
}

// Print success message
func printSuccess(format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		fmt.Printf("%s %s\n", colorize(colorGreen, "✓"), msg)
	}
}

// Print info message
func printInfo(format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		fmt.Printf("%s\n", colorize(colorCyan, msg))
	}
}

// Print warning message
func printWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", colorize(colorYellow, "⚠"), msg)
}

// Print debug message
func printDebug(format string, args ...interface{}) {
	if debug {
		msg := fmt.Sprintf(format, args...)
		fmt.Fprintf(os.Stderr, "%s %s\n", colorize(colorGray, "[DEBUG]"), msg)
	}
}

// newServiceClient loads the configuration and builds a metadata client.
func newServiceClient() (*client.Client, *config.Config, error) {
	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		return nil, nil, err
	}
	printDebug("using service %s", cfg.Service.BaseURL)

	c, err := client.New(cfg.Service.BaseURL, cfg.Timeout())
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

// Helper function to read accessions from file or stdin
func readAccessionsFromReader(r io.Reader) ([]string, error) {
	accessions := make([]string, 0)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			accessions = append(accessions, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return accessions, nil
}

// fileRow is the flat output shape for file records across formats.
type fileRow struct {
	Accession           string `json:"accession"`
	Class               string `json:"class"`
	FileType            string `json:"file_type"`
	Status              string `json:"status"`
	Size                int64  `json:"size"`
	BiologicalReplicate string `json:"biological_replicate"`
	TechnicalReplicate  string `json:"technical_replicate"`
	Stranded            bool   `json:"stranded"`
	RunType             string `json:"run_type,omitempty"`
	ReadLength          int64  `json:"read_length,omitempty"`
	Assembly            string `json:"assembly,omitempty"`
	OutputType          string `json:"output_type,omitempty"`
	URL                 string `json:"url"`
	MD5                 string `json:"md5"`
}

func newFileRow(f encode.File) fileRow {
	common := f.Common()
	row := fileRow{
		Accession:           common.Accession,
		Class:               f.Class().String(),
		FileType:            common.FileType,
		Status:              common.Status,
		Size:                common.FileSize,
		BiologicalReplicate: common.Replicate.Biological,
		TechnicalReplicate:  common.Replicate.Technical,
		Stranded:            common.Replicate.Stranded,
		URL:                 common.FileURL,
		MD5:                 common.FileMD5,
	}

	switch v := f.(type) {
	case *encode.RawFile:
		row.RunType = v.RunType
		row.ReadLength = v.ReadLength
	case *encode.ProcessedFile:
		row.Assembly = v.Assembly
		row.OutputType = v.OutputType
	}
	return row
}
