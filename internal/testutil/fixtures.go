// Package testutil provides testing utilities for seqlib packages:
// fixture metadata documents and a fake metadata server.
package testutil

// Fixture documents mirror what the ENCODE service returns after JSON
// decoding, so numbers are float64 and nested values are generic maps.

// ExperimentAccession is the accession of the fixture experiment.
const ExperimentAccession = "ENCSR362AIZ"

// RawAccessions lists the fixture's raw files in document order.
var RawAccessions = []string{
	"ENCFF447EXU", "ENCFF037JQC", "ENCFF458NWF", "ENCFF358MFI",
}

// processedTypes lists the fixture's processed files in document order
// with their file types.
var processedTypes = []struct {
	Accession string
	FileType  string
}{
	{"ENCFF428JNJ", "bam"},
	{"ENCFF503VVW", "bigWig"},
	{"ENCFF592ZRF", "bigWig"},
	{"ENCFF112PJJ", "bam"},
	{"ENCFF694GJR", "bam"},
	{"ENCFF941BPF", "bigWig"},
	{"ENCFF285HFJ", "bigWig"},
	{"ENCFF738MJJ", "bam"},
	{"ENCFF100LGI", "bigWig"},
	{"ENCFF249QVN", "bam"},
	{"ENCFF380XIS", "bam"},
	{"ENCFF623UHM", "bigWig"},
	{"ENCFF461GSJ", "bigWig"},
	{"ENCFF010GFV", "bigWig"},
	{"ENCFF047GZO", "bam"},
	{"ENCFF811VPO", "bam"},
	{"ENCFF281ENU", "bam"},
	{"ENCFF916AXO", "bam"},
	{"ENCFF190EHR", "bigWig"},
	{"ENCFF564LUK", "bigWig"},
	{"ENCFF372TAA", "bigWig"},
	{"ENCFF326RPH", "bigWig"},
	{"ENCFF999TSV", "tsv"},
}

// ProcessedAccessions returns the accessions of the fixture's processed
// files whose type is admitted by the given set, in document order. An
// empty set admits everything.
func ProcessedAccessions(types ...string) []string {
	var out []string
	for _, p := range processedTypes {
		if len(types) == 0 {
			out = append(out, p.Accession)
			continue
		}
		for _, t := range types {
			if p.FileType == t {
				out = append(out, p.Accession)
				break
			}
		}
	}
	return out
}

func fileExtension(fileType string) string {
	switch fileType {
	case "fastq":
		return "fastq.gz"
	default:
		return fileType
	}
}

// baseFileDoc returns the fields common to every fixture file document.
// Replicate metadata is the pair shape; callers override for the object
// shape.
func baseFileDoc(accession, category, fileType string) map[string]interface{} {
	return map[string]interface{}{
		"accession":            accession,
		"dataset":              "/experiments/" + ExperimentAccession + "/",
		"output_category":      category,
		"file_type":            fileType,
		"status":               "released",
		"href":                 "/files/" + accession + "/@@download/" + accession + "." + fileExtension(fileType),
		"md5sum":               "e5f5ef9f88ef582526cf1a54023f5ad0",
		"file_size":            float64(1925682263),
		"technical_replicates": []interface{}{"1_1"},
	}
}

// RawFileDoc returns a raw file document with pair-shape replicate
// metadata.
func RawFileDoc(accession string) map[string]interface{} {
	doc := baseFileDoc(accession, "raw data", "fastq")
	doc["run_type"] = "single-ended"
	doc["read_length"] = float64(101)
	return doc
}

// ProcessedFileDoc returns a processed file document with pair-shape
// replicate metadata.
func ProcessedFileDoc(accession, fileType string) map[string]interface{} {
	doc := baseFileDoc(accession, "alignment", fileType)
	doc["assembly"] = "mm10"
	doc["output_type"] = "alignments"
	return doc
}

// WithObjectReplicate replaces a document's replicate metadata with the
// object shape.
func WithObjectReplicate(doc map[string]interface{}, bio, tech float64, strandSpecificity interface{}) map[string]interface{} {
	delete(doc, "technical_replicates")
	doc["replicate"] = map[string]interface{}{
		"biological_replicate_number": bio,
		"technical_replicate_number":  tech,
		"library": map[string]interface{}{
			"strand_specificity": strandSpecificity,
		},
	}
	return doc
}

// ExperimentDoc returns the fixture experiment document: four raw FASTQ
// files followed by the processed files, all embedded in document order.
func ExperimentDoc() map[string]interface{} {
	var files []interface{}
	for _, acc := range RawAccessions {
		files = append(files, RawFileDoc(acc))
	}
	for _, p := range processedTypes {
		files = append(files, ProcessedFileDoc(p.Accession, p.FileType))
	}

	return map[string]interface{}{
		"accession":       ExperimentAccession,
		"description":     "Total RNA-Seq on postnatal 0 day mouse forebrain",
		"assay_term_name": "RNA-seq",
		"files":           files,
	}
}
