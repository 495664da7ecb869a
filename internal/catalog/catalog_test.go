package catalog

import (
	"path/filepath"
	"testing"

	"github.com/kepbod/seqlib/internal/encode"
	"github.com/kepbod/seqlib/internal/errors"
)

func setupTestCatalog(t *testing.T) *DB {
	t.Helper()

	dir := t.TempDir()
	db, err := Initialize(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize catalog: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testExperiment() *encode.Experiment {
	return &encode.Experiment{
		Entry: encode.Entry{
			Accession: "ENCSR362AIZ",
			ID:        "/experiments/ENCSR362AIZ/",
			URL:       "https://www.encodeproject.org/experiments/ENCSR362AIZ/",
		},
		Description: "Total RNA-Seq on postnatal 0 day mouse forebrain",
		Assay:       "RNA-seq",
	}
}

func testFiles() []encode.File {
	common := encode.SeqFile{
		Entry: encode.Entry{
			Accession: "ENCFF037JQC",
			ID:        "/file/ENCFF037JQC/",
		},
		ExperimentRef: "/experiments/ENCSR362AIZ/",
		Replicate:     encode.Replicate{Biological: "1", Technical: "1"},
		FileType:      "fastq",
		Status:        "released",
		FileURL:       "https://www.encodeproject.org/files/ENCFF037JQC/@@download/ENCFF037JQC.fastq.gz",
		FileMD5:       "e5f5ef9f88ef582526cf1a54023f5ad0",
		FileSize:      1925682263,
	}
	raw := &encode.RawFile{SeqFile: common, RunType: "single-ended", ReadLength: 101}

	procCommon := common
	procCommon.Accession = "ENCFF281ENU"
	procCommon.ID = "/file/ENCFF281ENU/"
	procCommon.FileType = "bam"
	proc := &encode.ProcessedFile{SeqFile: procCommon, Assembly: "mm10", OutputType: "alignments"}

	return []encode.File{raw, proc}
}

func TestInitializeInvalidPath(t *testing.T) {
	if _, err := Initialize("/nonexistent/dir/test.db"); err == nil {
		t.Error("expected error for invalid database path")
	}
}

func TestStoreAndGetExperiment(t *testing.T) {
	db := setupTestCatalog(t)

	if err := db.StoreExperiment(testExperiment(), testFiles()); err != nil {
		t.Fatalf("StoreExperiment failed: %v", err)
	}

	exp, err := db.GetExperiment("ENCSR362AIZ")
	if err != nil {
		t.Fatalf("GetExperiment failed: %v", err)
	}
	if exp.Description != "Total RNA-Seq on postnatal 0 day mouse forebrain" {
		t.Errorf("unexpected description %q", exp.Description)
	}
	if exp.Assay != "RNA-seq" {
		t.Errorf("unexpected assay %q", exp.Assay)
	}
	if exp.FetchedAt.IsZero() {
		t.Error("expected fetched_at to be set")
	}
}

func TestGetExperimentNotFound(t *testing.T) {
	db := setupTestCatalog(t)

	_, err := db.GetExperiment("ENCSR000000")
	if err == nil {
		t.Fatal("expected error for unknown experiment")
	}
	if !errors.IsKind(err, errors.KindDatabase) {
		t.Errorf("expected KindDatabase, got %v", errors.GetKind(err))
	}
}

func TestListFiles(t *testing.T) {
	db := setupTestCatalog(t)

	if err := db.StoreExperiment(testExperiment(), testFiles()); err != nil {
		t.Fatalf("StoreExperiment failed: %v", err)
	}

	files, err := db.ListFiles("ENCSR362AIZ")
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}

	// Raw sorts before processed.
	raw, proc := files[0], files[1]
	if raw.Class != "raw" {
		t.Errorf("expected first file to be raw, got %q", raw.Class)
	}
	if raw.RunType != "single-ended" || raw.ReadLength != 101 {
		t.Errorf("raw subtype fields not stored: %+v", raw)
	}
	if raw.ExperimentAccession != "ENCSR362AIZ" {
		t.Errorf("expected parent accession from resource path, got %q", raw.ExperimentAccession)
	}
	if proc.Class != "processed" {
		t.Errorf("expected second file to be processed, got %q", proc.Class)
	}
	if proc.Assembly != "mm10" || proc.OutputType != "alignments" {
		t.Errorf("processed subtype fields not stored: %+v", proc)
	}
}

func TestStoreExperimentIsIdempotent(t *testing.T) {
	db := setupTestCatalog(t)

	exp := testExperiment()
	if err := db.StoreExperiment(exp, testFiles()); err != nil {
		t.Fatalf("first StoreExperiment failed: %v", err)
	}

	exp.Description = "updated description"
	if err := db.StoreExperiment(exp, testFiles()); err != nil {
		t.Fatalf("second StoreExperiment failed: %v", err)
	}

	stored, err := db.GetExperiment("ENCSR362AIZ")
	if err != nil {
		t.Fatalf("GetExperiment failed: %v", err)
	}
	if stored.Description != "updated description" {
		t.Errorf("expected upsert to replace description, got %q", stored.Description)
	}

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Experiments != 1 {
		t.Errorf("expected 1 experiment after re-store, got %d", stats.Experiments)
	}
	if stats.Files != 2 {
		t.Errorf("expected 2 files after re-store, got %d", stats.Files)
	}
}

func TestGetStatsEmpty(t *testing.T) {
	db := setupTestCatalog(t)

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Experiments != 0 || stats.Files != 0 {
		t.Errorf("expected empty catalog, got %+v", stats)
	}
}

func TestAccessionFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/experiments/ENCSR362AIZ/", "ENCSR362AIZ"},
		{"/file/ENCFF037JQC/", "ENCFF037JQC"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := accessionFromPath(tt.path); got != tt.want {
			t.Errorf("accessionFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
