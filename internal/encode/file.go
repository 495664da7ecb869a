package encode

import (
	"context"

	"github.com/kepbod/seqlib/internal/client"
	"github.com/kepbod/seqlib/internal/errors"
)

// Class partitions files into raw sequencing output and downstream
// processed output. Every file document falls into exactly one class.
type Class uint8

const (
	ClassRaw Class = iota
	ClassProcessed
)

// String returns the string representation of the class.
func (c Class) String() string {
	if c == ClassRaw {
		return "raw"
	}
	return "processed"
}

// rawOutputCategory is the output_category value that marks raw data.
const rawOutputCategory = "raw data"

// Classify reports whether a file document describes raw or processed
// data. The partition is binary: raw iff output_category is "raw data".
func Classify(doc map[string]interface{}) Class {
	if cat, ok := doc["output_category"].(string); ok && cat == rawOutputCategory {
		return ClassRaw
	}
	return ClassProcessed
}

// File is a sequencing file record of either class. The concrete types
// are *RawFile and *ProcessedFile.
type File interface {
	Class() Class
	// Common returns the fields shared by both classes.
	Common() *SeqFile
}

// SeqFile carries the fields common to every file record, projected from
// the backing document at construction time. Instances are read-only.
type SeqFile struct {
	Entry
	ExperimentRef string // resource path of the parent experiment
	Replicate     Replicate
	FileType      string
	Status        string
	FileURL       string // absolute download URL
	FileMD5       string
	FileSize      int64
}

// RawFile is primary sequencing output (FASTQ).
type RawFile struct {
	SeqFile
	RunType    string
	ReadLength int64
}

// Class implements File.
func (f *RawFile) Class() Class { return ClassRaw }

// Common implements File.
func (f *RawFile) Common() *SeqFile { return &f.SeqFile }

// ProcessedFile is downstream derived output (alignments, signal tracks).
type ProcessedFile struct {
	SeqFile
	Assembly   string
	OutputType string
}

// Class implements File.
func (f *ProcessedFile) Class() Class { return ClassProcessed }

// Common implements File.
func (f *ProcessedFile) Common() *SeqFile { return &f.SeqFile }

// parseSeqFile projects the common file fields out of an entry's document.
func parseSeqFile(c *client.Client, e Entry, op errors.Op) (SeqFile, error) {
	doc := e.Document

	exp, err := getString(doc, "dataset")
	if err != nil {
		return SeqFile{}, errors.Wrap(op, err)
	}

	rep, err := decodeReplicate(doc)
	if err != nil {
		return SeqFile{}, errors.Wrap(op, err)
	}

	fileType, err := getString(doc, "file_type")
	if err != nil {
		return SeqFile{}, errors.Wrap(op, err)
	}
	status, err := getString(doc, "status")
	if err != nil {
		return SeqFile{}, errors.Wrap(op, err)
	}
	href, err := getString(doc, "href")
	if err != nil {
		return SeqFile{}, errors.Wrap(op, err)
	}
	md5, err := getString(doc, "md5sum")
	if err != nil {
		return SeqFile{}, errors.Wrap(op, err)
	}
	size, err := getInt(doc, "file_size")
	if err != nil {
		return SeqFile{}, errors.Wrap(op, err)
	}

	return SeqFile{
		Entry:         e,
		ExperimentRef: exp,
		Replicate:     rep,
		FileType:      fileType,
		Status:        status,
		FileURL:       c.ResolveURL(href), // hrefs are relative, always resolve
		FileMD5:       md5,
		FileSize:      size,
	}, nil
}

// newRawFile constructs a raw file from an accession and an optional
// pre-fetched document.
func newRawFile(ctx context.Context, c *client.Client, accession string, doc map[string]interface{}) (*RawFile, error) {
	const op = errors.Op("encode.newRawFile")

	e, err := newEntry(ctx, c, segmentFile, accession, doc)
	if err != nil {
		return nil, err
	}

	sf, err := parseSeqFile(c, e, op)
	if err != nil {
		return nil, err
	}

	runType, err := getString(e.Document, "run_type")
	if err != nil {
		return nil, errors.Wrap(op, err)
	}
	readLength, err := getInt(e.Document, "read_length")
	if err != nil {
		return nil, errors.Wrap(op, err)
	}

	return &RawFile{
		SeqFile:    sf,
		RunType:    runType,
		ReadLength: readLength,
	}, nil
}

// newProcessedFile constructs a processed file from an accession and an
// optional pre-fetched document.
func newProcessedFile(ctx context.Context, c *client.Client, accession string, doc map[string]interface{}) (*ProcessedFile, error) {
	const op = errors.Op("encode.newProcessedFile")

	e, err := newEntry(ctx, c, segmentFile, accession, doc)
	if err != nil {
		return nil, err
	}

	sf, err := parseSeqFile(c, e, op)
	if err != nil {
		return nil, err
	}

	assembly, err := getString(e.Document, "assembly")
	if err != nil {
		return nil, errors.Wrap(op, err)
	}
	outputType, err := getString(e.Document, "output_type")
	if err != nil {
		return nil, errors.Wrap(op, err)
	}

	return &ProcessedFile{
		SeqFile:    sf,
		Assembly:   assembly,
		OutputType: outputType,
	}, nil
}

// FetchRawFile retrieves and projects a raw file record by accession.
func FetchRawFile(ctx context.Context, c *client.Client, accession string) (*RawFile, error) {
	return newRawFile(ctx, c, accession, nil)
}

// FetchProcessedFile retrieves and projects a processed file record by
// accession.
func FetchProcessedFile(ctx context.Context, c *client.Client, accession string) (*ProcessedFile, error) {
	return newProcessedFile(ctx, c, accession, nil)
}

// FetchFile retrieves a file record by accession and constructs the
// subtype matching its classification.
func FetchFile(ctx context.Context, c *client.Client, accession string) (File, error) {
	doc, err := c.FetchDocument(ctx, segmentFile, accession)
	if err != nil {
		return nil, err
	}
	if Classify(doc) == ClassRaw {
		return newRawFile(ctx, c, accession, doc)
	}
	return newProcessedFile(ctx, c, accession, doc)
}
