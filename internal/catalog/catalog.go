// Package catalog provides SQLite-backed storage for fetched metadata
// records, so experiment file listings can be inspected offline.
package catalog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kepbod/seqlib/internal/encode"
	"github.com/kepbod/seqlib/internal/errors"
)

// DB wraps the SQL database connection
type DB struct {
	*sql.DB
	path string
}

// Experiment is a stored experiment record.
type Experiment struct {
	Accession   string    `json:"accession"`
	Description string    `json:"description"`
	Assay       string    `json:"assay"`
	URL         string    `json:"url"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// File is a stored file record. Subtype fields are empty/zero for the
// class they do not apply to.
type File struct {
	Accession           string `json:"accession"`
	ExperimentAccession string `json:"experiment_accession"`
	Class               string `json:"class"`
	FileType            string `json:"file_type"`
	Status              string `json:"status"`
	URL                 string `json:"url"`
	MD5                 string `json:"md5"`
	Size                int64  `json:"size"`
	BiologicalReplicate string `json:"biological_replicate"`
	TechnicalReplicate  string `json:"technical_replicate"`
	Stranded            bool   `json:"stranded"`
	RunType             string `json:"run_type,omitempty"`
	ReadLength          int64  `json:"read_length,omitempty"`
	Assembly            string `json:"assembly,omitempty"`
	OutputType          string `json:"output_type,omitempty"`
}

// Stats holds catalog row counts.
type Stats struct {
	Experiments int64 `json:"experiments"`
	Files       int64 `json:"files"`
}

// Initialize creates and configures the catalog database
func Initialize(path string) (*DB, error) {
	const op = errors.Op("catalog.Initialize")

	db, err := sql.Open("sqlite3", path+"?_journal=WAL&_timeout=5000&_sync=NORMAL")
	if err != nil {
		return nil, errors.E(op, errors.KindDatabase, err, "failed to open database")
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, errors.E(op, errors.KindDatabase, err,
				fmt.Sprintf("failed to set pragma %s", pragma))
		}
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, errors.E(op, errors.KindDatabase, err, "failed to create tables")
	}

	return &DB{
		DB:   db,
		path: path,
	}, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS experiments (
		accession TEXT PRIMARY KEY,
		description TEXT,
		assay TEXT,
		url TEXT,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS files (
		accession TEXT PRIMARY KEY,
		experiment_accession TEXT REFERENCES experiments(accession),
		class TEXT NOT NULL,
		file_type TEXT,
		status TEXT,
		url TEXT,
		md5 TEXT,
		size INTEGER,
		biological_replicate TEXT,
		technical_replicate TEXT,
		stranded INTEGER,
		run_type TEXT,
		read_length INTEGER,
		assembly TEXT,
		output_type TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_files_experiment ON files(experiment_accession);
	CREATE INDEX IF NOT EXISTS idx_files_type ON files(file_type);
	CREATE INDEX IF NOT EXISTS idx_files_class ON files(class);
	`

	_, err := db.Exec(schema)
	return err
}

// StoreExperiment stores an experiment and its files in one transaction.
// Re-storing an accession replaces the previous rows.
func (db *DB) StoreExperiment(exp *encode.Experiment, files []encode.File) error {
	const op = errors.Op("catalog.StoreExperiment")

	tx, err := db.Begin()
	if err != nil {
		return errors.E(op, errors.KindDatabase, err, "failed to begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO experiments (accession, description, assay, url, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(accession) DO UPDATE SET
			description = excluded.description,
			assay = excluded.assay,
			url = excluded.url,
			fetched_at = excluded.fetched_at`,
		exp.Accession, exp.Description, exp.Assay, exp.URL, time.Now().UTC())
	if err != nil {
		return errors.E(op, errors.KindDatabase, err, "failed to insert experiment")
	}

	for _, f := range files {
		if err := insertFile(tx, f); err != nil {
			return errors.Wrap(op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.E(op, errors.KindDatabase, err, "failed to commit")
	}
	return nil
}

func insertFile(tx *sql.Tx, f encode.File) error {
	const op = errors.Op("catalog.insertFile")

	common := f.Common()
	rec := File{
		Accession:           common.Accession,
		ExperimentAccession: accessionFromPath(common.ExperimentRef),
		Class:               f.Class().String(),
		FileType:            common.FileType,
		Status:              common.Status,
		URL:                 common.FileURL,
		MD5:                 common.FileMD5,
		Size:                common.FileSize,
		BiologicalReplicate: common.Replicate.Biological,
		TechnicalReplicate:  common.Replicate.Technical,
		Stranded:            common.Replicate.Stranded,
	}

	switch v := f.(type) {
	case *encode.RawFile:
		rec.RunType = v.RunType
		rec.ReadLength = v.ReadLength
	case *encode.ProcessedFile:
		rec.Assembly = v.Assembly
		rec.OutputType = v.OutputType
	}

	_, err := tx.Exec(`
		INSERT INTO files (
			accession, experiment_accession, class, file_type, status,
			url, md5, size, biological_replicate, technical_replicate,
			stranded, run_type, read_length, assembly, output_type
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(accession) DO UPDATE SET
			experiment_accession = excluded.experiment_accession,
			class = excluded.class,
			file_type = excluded.file_type,
			status = excluded.status,
			url = excluded.url,
			md5 = excluded.md5,
			size = excluded.size,
			biological_replicate = excluded.biological_replicate,
			technical_replicate = excluded.technical_replicate,
			stranded = excluded.stranded,
			run_type = excluded.run_type,
			read_length = excluded.read_length,
			assembly = excluded.assembly,
			output_type = excluded.output_type`,
		rec.Accession, rec.ExperimentAccession, rec.Class, rec.FileType,
		rec.Status, rec.URL, rec.MD5, rec.Size, rec.BiologicalReplicate,
		rec.TechnicalReplicate, rec.Stranded, rec.RunType, rec.ReadLength,
		rec.Assembly, rec.OutputType)
	if err != nil {
		return errors.E(op, errors.KindDatabase, err,
			fmt.Sprintf("failed to insert file %s", rec.Accession))
	}
	return nil
}

// GetExperiment retrieves a stored experiment by accession.
func (db *DB) GetExperiment(accession string) (*Experiment, error) {
	const op = errors.Op("catalog.GetExperiment")

	var exp Experiment
	err := db.QueryRow(`
		SELECT accession, description, assay, url, fetched_at
		FROM experiments WHERE accession = ?`, accession).
		Scan(&exp.Accession, &exp.Description, &exp.Assay, &exp.URL, &exp.FetchedAt)
	if err == sql.ErrNoRows {
		return nil, errors.E(op, errors.KindDatabase,
			fmt.Sprintf("experiment %s not found", accession))
	}
	if err != nil {
		return nil, errors.E(op, errors.KindDatabase, err, "query failed")
	}
	return &exp, nil
}

// ListFiles retrieves the stored files of an experiment, raw first then
// processed, each group ordered by accession.
func (db *DB) ListFiles(experimentAccession string) ([]File, error) {
	const op = errors.Op("catalog.ListFiles")

	rows, err := db.Query(`
		SELECT accession, experiment_accession, class, file_type, status,
			url, md5, size, biological_replicate, technical_replicate,
			stranded, run_type, read_length, assembly, output_type
		FROM files WHERE experiment_accession = ?
		ORDER BY class DESC, accession`, experimentAccession)
	if err != nil {
		return nil, errors.E(op, errors.KindDatabase, err, "query failed")
	}
	defer rows.Close()

	var files []File
	for rows.Next() {
		var f File
		if err := rows.Scan(
			&f.Accession, &f.ExperimentAccession, &f.Class, &f.FileType,
			&f.Status, &f.URL, &f.MD5, &f.Size, &f.BiologicalReplicate,
			&f.TechnicalReplicate, &f.Stranded, &f.RunType, &f.ReadLength,
			&f.Assembly, &f.OutputType,
		); err != nil {
			return nil, errors.E(op, errors.KindDatabase, err, "scan failed")
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.E(op, errors.KindDatabase, err, "iteration failed")
	}
	return files, nil
}

// GetStats returns catalog row counts.
func (db *DB) GetStats() (*Stats, error) {
	const op = errors.Op("catalog.GetStats")

	var stats Stats
	if err := db.QueryRow("SELECT COUNT(*) FROM experiments").Scan(&stats.Experiments); err != nil {
		return nil, errors.E(op, errors.KindDatabase, err, "failed to count experiments")
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM files").Scan(&stats.Files); err != nil {
		return nil, errors.E(op, errors.KindDatabase, err, "failed to count files")
	}
	return &stats, nil
}

// accessionFromPath extracts the accession from a resource path such as
// /experiments/ENCSR362AIZ/.
func accessionFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
