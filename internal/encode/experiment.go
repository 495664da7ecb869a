package encode

import (
	"context"

	"github.com/kepbod/seqlib/internal/client"
	"github.com/kepbod/seqlib/internal/errors"
)

// Experiment is a sequencing experiment record. Its document embeds the
// full metadata of every associated file, so iterating over files never
// issues another request.
type Experiment struct {
	Entry
	Description string
	Assay       string

	client *client.Client
	files  []map[string]interface{} // embedded file documents, in document order
}

// FetchExperiment retrieves an experiment record by accession. Experiments
// are always fetched; there is no pre-supplied-document path.
func FetchExperiment(ctx context.Context, c *client.Client, accession string) (*Experiment, error) {
	const op = errors.Op("encode.FetchExperiment")

	e, err := newEntry(ctx, c, segmentExperiment, accession, nil)
	if err != nil {
		return nil, err
	}

	description, err := getString(e.Document, "description")
	if err != nil {
		return nil, errors.Wrap(op, err)
	}
	assay, err := getString(e.Document, "assay_term_name")
	if err != nil {
		return nil, errors.Wrap(op, err)
	}

	list, err := getList(e.Document, "files")
	if err != nil {
		return nil, errors.Wrap(op, err)
	}
	files := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		doc, ok := item.(map[string]interface{})
		if !ok {
			return nil, errors.E(op, errors.KindSchema, "files entry is not an object")
		}
		files = append(files, doc)
	}

	return &Experiment{
		Entry:       e,
		Description: description,
		Assay:       assay,
		client:      c,
		files:       files,
	}, nil
}

// Files returns an iterator over the experiment's file list. When raw is
// true every raw-classified entry is yielded and the filter is ignored
// (raw files are always FASTQ, so type filtering is not meaningful for
// them); when raw is false, processed entries matching the filter are
// yielded. Entries come out in document order and each one is built from
// the embedded sub-document without a network fetch. The iterator is not
// restartable; calling Files again walks the list from the start, which
// repeats no I/O.
func (e *Experiment) Files(raw bool, filter TypeFilter) *FileIterator {
	return &FileIterator{exp: e, raw: raw, filter: filter}
}

// ListFiles collects the iterator into a slice.
func (e *Experiment) ListFiles(raw bool, filter TypeFilter) ([]File, error) {
	var files []File
	it := e.Files(raw, filter)
	for it.Next() {
		files = append(files, it.File())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

// FileIterator walks an experiment's embedded file list lazily. Usage
// follows the scanner pattern: Next advances to the next admitted file,
// File returns it, and Err reports the error that stopped iteration, if
// any. Stopping early is just ceasing to call Next.
type FileIterator struct {
	exp    *Experiment
	raw    bool
	filter TypeFilter
	pos    int
	cur    File
	err    error
}

// Next advances to the next admitted file. It returns false when the list
// is exhausted or an entry fails to project; Err distinguishes the two.
func (it *FileIterator) Next() bool {
	const op = errors.Op("encode.FileIterator.Next")

	if it.err != nil {
		return false
	}
	it.cur = nil

	for it.pos < len(it.exp.files) {
		doc := it.exp.files[it.pos]
		it.pos++

		class := Classify(doc)
		if (class == ClassRaw) != it.raw {
			continue
		}

		if class == ClassProcessed && !it.filter.IsAny() {
			fileType, err := getString(doc, "file_type")
			if err != nil {
				it.err = errors.Wrap(op, err)
				return false
			}
			if !it.filter.Match(fileType) {
				continue
			}
		}

		accession, err := getString(doc, "accession")
		if err != nil {
			it.err = errors.Wrap(op, err)
			return false
		}

		// The embedded sub-document carries the full file metadata,
		// so construction never refetches.
		var f File
		if class == ClassRaw {
			f, err = newRawFile(context.Background(), it.exp.client, accession, doc)
		} else {
			f, err = newProcessedFile(context.Background(), it.exp.client, accession, doc)
		}
		if err != nil {
			it.err = err
			return false
		}

		it.cur = f
		return true
	}

	return false
}

// File returns the file produced by the last successful call to Next.
func (it *FileIterator) File() File {
	return it.cur
}

// Err returns the error that stopped iteration, or nil on normal
// exhaustion.
func (it *FileIterator) Err() error {
	return it.err
}
