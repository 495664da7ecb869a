// Package encode models records served by the ENCODE metadata service:
// experiments and their sequencing files. Each record is backed by the
// JSON document the service returns; typed entities project fixed field
// sets out of that document.
package encode

import (
	"context"

	"github.com/kepbod/seqlib/internal/client"
	"github.com/kepbod/seqlib/internal/errors"
)

// Entry type segments on the service.
const (
	segmentFile       = "file"
	segmentExperiment = "experiments"
)

// Entry is the common part of every record: its accession, canonical
// resource path and URL, and the backing JSON document. Entries are
// immutable after construction.
type Entry struct {
	Accession string
	ID        string // resource path, /<segment>/<accession>/
	URL       string
	Document  map[string]interface{}
}

// newEntry builds an Entry for the given accession. When doc is nil the
// document is fetched from the service; otherwise the supplied document
// is used as-is and no request is issued.
func newEntry(ctx context.Context, c *client.Client, segment, accession string, doc map[string]interface{}) (Entry, error) {
	const op = errors.Op("encode.newEntry")

	if segment == "" {
		return Entry{}, errors.E(op, errors.KindConfig, "entry type segment must not be empty")
	}
	if accession == "" {
		return Entry{}, errors.E(op, errors.KindValidation, "accession must not be empty")
	}

	id := client.ResourcePath(segment, accession)
	e := Entry{
		Accession: accession,
		ID:        id,
		URL:       c.ResolveURL(id),
	}

	if doc == nil {
		fetched, err := c.FetchDocument(ctx, segment, accession)
		if err != nil {
			return Entry{}, err
		}
		e.Document = fetched
	} else {
		e.Document = doc
	}

	return e, nil
}
