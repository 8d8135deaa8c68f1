// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists extracted page text in a SQLite database and
// serves full-text search over it.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdftext/internal/extract"
	"github.com/pdiddy/pdftext/pkg/types"
)

const dbFile = "catalog.db"

// Store manages the extraction catalog SQLite database.
type Store struct {
	db         *sql.DB
	catalogDir string
	maxResults int
}

// NewStore opens or creates the catalog database at catalogDir/catalog.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	catalogDir := cfg.CatalogDir
	if catalogDir == "" {
		catalogDir = "catalog"
	}
	if err := os.MkdirAll(catalogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(catalogDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		catalogDir: catalogDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			page_count INTEGER,
			text_pages INTEGER,
			backend TEXT,
			status TEXT,
			extracted_at TEXT,
			file_mod_time TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS pages (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			document_id TEXT NOT NULL REFERENCES documents(id),
			page_no INTEGER NOT NULL,
			text TEXT NOT NULL,
			UNIQUE(document_id, page_no)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pages_document_id ON pages(document_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync. Requires go-sqlite3 to be
	// compiled with the sqlite_fts5 build tag (mage Build/Test pass it).
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='pages_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE pages_fts USING fts5(text, content=pages, content_rowid=rowid)`,
			`CREATE TRIGGER pages_ai AFTER INSERT ON pages BEGIN
				INSERT INTO pages_fts(rowid, text) VALUES (new.rowid, new.text);
			END`,
			`CREATE TRIGGER pages_ad AFTER DELETE ON pages BEGIN
				INSERT INTO pages_fts(pages_fts, rowid, text) VALUES('delete', old.rowid, old.text);
			END`,
			`CREATE TRIGGER pages_au AFTER UPDATE ON pages BEGIN
				INSERT INTO pages_fts(pages_fts, rowid, text) VALUES('delete', old.rowid, old.text);
				INSERT INTO pages_fts(rowid, text) VALUES (new.rowid, new.text);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IndexSummary holds counts from a catalog indexing run.
type IndexSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of files processed.
func (s IndexSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Index extracts each file with ext and stores its pages. Files whose
// modification time matches the last indexed run are skipped, so re-running
// over an unchanged set is cheap. Per-file failures are reported to w and
// counted; they never abort the run.
func (s *Store) Index(ctx context.Context, ext extract.Extractor, files []string, w io.Writer) (IndexSummary, error) {
	var summary IndexSummary

	for _, path := range files {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM documents WHERE id = ?`, path,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", path)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		res := extract.Collect(ext, path)
		if res.Err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, res.Err)
			summary.Failed++
			continue
		}

		if err := s.indexDocument(ctx, res, ext.Name(), modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d pages, %d with text)\n", path, res.NumPages, len(res.Pages))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d pages, %d with text)\n", path, res.NumPages, len(res.Pages))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) indexDocument(ctx context.Context, res extract.FileResult, backend, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM pages WHERE document_id = ?`, res.Path); err != nil {
			return fmt.Errorf("deleting old pages: %w", err)
		}
	}

	extractedAt := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, page_count, text_pages, backend, status, extracted_at, file_mod_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			page_count=excluded.page_count, text_pages=excluded.text_pages,
			backend=excluded.backend, status=excluded.status,
			extracted_at=excluded.extracted_at, file_mod_time=excluded.file_mod_time`,
		res.Path, res.NumPages, len(res.Pages), backend, string(res.Status()), extractedAt, modTime,
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO pages (document_id, page_no, text) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, page := range res.Pages {
		if _, err := stmt.ExecContext(ctx, res.Path, page.Number, page.Text); err != nil {
			return fmt.Errorf("inserting page %d: %w", page.Number, err)
		}
	}

	return tx.Commit()
}
