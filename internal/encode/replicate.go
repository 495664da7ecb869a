package encode

import (
	"strings"

	"github.com/kepbod/seqlib/internal/errors"
)

// ReplicateSource identifies which document shape a replicate was
// decoded from.
type ReplicateSource uint8

const (
	// ReplicateFromObject means the document carried a "replicate"
	// object with explicit replicate numbers and library metadata.
	ReplicateFromObject ReplicateSource = iota
	// ReplicateFromPair means the document carried only a
	// "technical_replicates" list whose first element is a
	// "<bio>_<tech>" pair string.
	ReplicateFromPair
)

// Replicate identifies the biological/technical repetition a file belongs
// to. Stranded reports library strand specificity; it is only derivable
// from the object shape and defaults to false otherwise.
type Replicate struct {
	Biological string
	Technical  string
	Stranded   bool
	Source     ReplicateSource
}

// decodeReplicate extracts replicate metadata from a file document. Two
// shapes occur in the wild: a "replicate" object, or a
// "technical_replicates" pair list on older records. The object shape is
// tried first; any missing key there falls back to the pair shape. A
// document matching neither shape is a schema error.
func decodeReplicate(doc map[string]interface{}) (Replicate, error) {
	const op = errors.Op("encode.decodeReplicate")

	if r, ok := decodeReplicateObject(doc); ok {
		return r, nil
	}

	if r, err := decodeReplicatePair(doc); err == nil {
		return r, nil
	}

	return Replicate{}, errors.E(op, errors.KindSchema,
		"document has neither a replicate object nor technical_replicates")
}

func decodeReplicateObject(doc map[string]interface{}) (Replicate, bool) {
	rep, ok := getObject(doc, "replicate")
	if !ok {
		return Replicate{}, false
	}

	bio, ok := rep["biological_replicate_number"].(float64)
	if !ok {
		return Replicate{}, false
	}
	tech, ok := rep["technical_replicate_number"].(float64)
	if !ok {
		return Replicate{}, false
	}
	lib, ok := getObject(rep, "library")
	if !ok {
		return Replicate{}, false
	}
	ss, ok := lib["strand_specificity"]
	if !ok {
		return Replicate{}, false
	}

	return Replicate{
		Biological: numberString(bio),
		Technical:  numberString(tech),
		Stranded:   strandSpecific(ss),
		Source:     ReplicateFromObject,
	}, true
}

func decodeReplicatePair(doc map[string]interface{}) (Replicate, error) {
	const op = errors.Op("encode.decodeReplicatePair")

	list, err := getList(doc, "technical_replicates")
	if err != nil {
		return Replicate{}, err
	}
	if len(list) == 0 {
		return Replicate{}, errors.E(op, errors.KindSchema, "technical_replicates is empty")
	}
	pair, ok := list[0].(string)
	if !ok {
		return Replicate{}, errors.E(op, errors.KindSchema, "technical_replicates[0] is not a string")
	}

	parts := strings.SplitN(pair, "_", 2)
	if len(parts) != 2 {
		return Replicate{}, errors.E(op, errors.KindSchema,
			"technical_replicates[0] is not a <bio>_<tech> pair")
	}

	return Replicate{
		Biological: parts[0],
		Technical:  parts[1],
		Stranded:   false, // not derivable from this shape
		Source:     ReplicateFromPair,
	}, nil
}

// strandSpecific normalizes the strand_specificity value. The service
// serves it as a boolean on some records and as a label ("strand-specific",
// "unstranded", ...) on others.
func strandSpecific(v interface{}) bool {
	switch s := v.(type) {
	case bool:
		return s
	case string:
		return s != "" && !strings.EqualFold(s, "unstranded")
	default:
		return false
	}
}
