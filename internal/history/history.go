// Package history persists scan results to a local SQLite database so
// past scans can be listed and compared.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pr0nt0-Zz/StorageCleaner/internal/advisor"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/platform"
)

const schema = `
CREATE TABLE IF NOT EXISTS scans (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	root TEXT NOT NULL,
	started_at TEXT NOT NULL,
	files_scanned INTEGER NOT NULL,
	files_returned INTEGER NOT NULL,
	duplicates_found INTEGER NOT NULL,
	duplicate_reclaimable INTEGER NOT NULL,
	total_reclaimable INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS scan_files (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	scan_id INTEGER NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
	path TEXT NOT NULL,
	size INTEGER NOT NULL,
	category TEXT NOT NULL,
	safety TEXT NOT NULL,
	score INTEGER NOT NULL,
	confidence TEXT NOT NULL,
	recommendation TEXT NOT NULL,
	reasons TEXT NOT NULL,
	duplicate_group INTEGER NOT NULL,
	is_newest_in_group INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scan_files_scan_id ON scan_files(scan_id);
`

// ScanRecord summarizes one persisted scan
type ScanRecord struct {
	ID               int64
	Root             string
	StartedAt        time.Time
	FilesScanned     int
	FilesReturned    int
	DuplicatesFound  int
	DupReclaimable   int64
	TotalReclaimable int64
}

// Store is a SQLite-backed scan history store
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default history database path
func DefaultPath() (string, error) {
	dataDir, err := platform.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "history.db"), nil
}

// Open opens (and if needed initializes) a history store at dbPath
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;
		PRAGMA foreign_keys = ON;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set database pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveScan persists a scan result and returns its id
func (s *Store) SaveScan(root string, startedAt time.Time, result *advisor.ScanResult) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO scans (root, started_at, files_scanned, files_returned,
			duplicates_found, duplicate_reclaimable, total_reclaimable)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		root, startedAt.Format(time.RFC3339),
		result.Stats.FilesScanned, result.Stats.FilesReturned,
		result.DuplicatesFound, result.DuplicateSpaceReclaimable,
		result.TotalReclaimable,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan: %w", err)
	}

	scanID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO scan_files (scan_id, path, size, category, safety, score,
			confidence, recommendation, reasons, duplicate_group, is_newest_in_group)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, fi := range result.Files {
		newest := 0
		if fi.IsNewestInGroup {
			newest = 1
		}
		if _, err := stmt.Exec(scanID, fi.Path, fi.Size, fi.Category,
			string(fi.Safety), fi.Score, fi.Confidence, fi.Recommendation,
			strings.Join(fi.Reasons, ", "), fi.DuplicateGroup, newest); err != nil {
			return 0, fmt.Errorf("failed to insert scan file: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return scanID, nil
}

// ListScans returns the most recent scans, newest first
func (s *Store) ListScans(limit int) ([]ScanRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, root, started_at, files_scanned, files_returned,
			duplicates_found, duplicate_reclaimable, total_reclaimable
		FROM scans ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		var r ScanRecord
		var startedAt string
		if err := rows.Scan(&r.ID, &r.Root, &startedAt, &r.FilesScanned,
			&r.FilesReturned, &r.DuplicatesFound, &r.DupReclaimable,
			&r.TotalReclaimable); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		records = append(records, r)
	}
	return records, rows.Err()
}
