// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string.
	Query string

	// Document restricts results to a single document path.
	Document string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Document == ""
}

// QueryResult is one matching page with its document path.
type QueryResult struct {
	DocumentID string `json:"document" yaml:"document"`
	PageNo     int    `json:"page" yaml:"page"`
	Text       string `json:"text" yaml:"text"`
}

// Search queries the catalog. With a full-text query, results are ranked by
// FTS5 relevance; with only a document filter they are ordered by document
// path and page number.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT p.document_id, p.page_no, p.text
			FROM pages_fts
			JOIN pages p ON p.rowid = pages_fts.rowid
			WHERE pages_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT p.document_id, p.page_no, p.text
			FROM pages p
			WHERE 1=1`)
	}

	if opts.Document != "" {
		qb.WriteString(` AND p.document_id = ?`)
		args = append(args, opts.Document)
	}

	if useFTS {
		qb.WriteString(` ORDER BY pages_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY p.document_id, p.page_no`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var qr QueryResult
		if err := rows.Scan(&qr.DocumentID, &qr.PageNo, &qr.Text); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, qr)
	}

	return results, rows.Err()
}

// Documents lists every cataloged document with its extraction status.
func (s *Store) Documents(ctx context.Context) ([]DocumentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, page_count, text_pages, backend, status, extracted_at
		 FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentRecord
	for rows.Next() {
		var (
			d         DocumentRecord
			backend   sql.NullString
			status    sql.NullString
			extracted sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.PageCount, &d.TextPages, &backend, &status, &extracted); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		d.Backend = backend.String
		d.Status = status.String
		d.ExtractedAt = extracted.String
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

// DocumentRecord is a cataloged document's stored state.
type DocumentRecord struct {
	ID          string `json:"id" yaml:"id"`
	PageCount   int    `json:"page_count" yaml:"page_count"`
	TextPages   int    `json:"text_pages" yaml:"text_pages"`
	Backend     string `json:"backend" yaml:"backend"`
	Status      string `json:"status" yaml:"status"`
	ExtractedAt string `json:"extracted_at" yaml:"extracted_at"`
}
