package explorer

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "github.com/agbru/litperf/internal/errors"
)

// unknownDOI is stored when a paper is ingested without an identifier.
const unknownDOI = "unknown"

const createPapers = `
CREATE TABLE IF NOT EXISTS papers (
	doi         TEXT PRIMARY KEY,
	title       TEXT NOT NULL DEFAULT '',
	authors     TEXT NOT NULL DEFAULT '',
	content     TEXT NOT NULL DEFAULT '',
	citations   TEXT NOT NULL DEFAULT '',
	concepts    TEXT NOT NULL DEFAULT '',
	source      TEXT NOT NULL DEFAULT '',
	ingested_at TEXT NOT NULL
)`

// IngestResult reports the outcome of Store.Ingest.
type IngestResult struct {
	Status string `json:"status"`
	DOI    string `json:"doi"`
	Title  string `json:"title"`
}

// Store persists papers in a SQLite database. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// OpenStore opens (creating if needed) the SQLite database at path.
// Use ":memory:" for a throwaway store.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, apperrors.WrapError(err, "open paper store %s", path)
	}
	// A single connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(createPapers); err != nil {
		db.Close()
		return nil, apperrors.WrapError(err, "create papers table")
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ingest inserts p, replacing any paper with the same DOI. A paper without a
// DOI is stored under "unknown".
func (s *Store) Ingest(ctx context.Context, p Paper) (IngestResult, error) {
	if p.DOI == "" {
		p.DOI = unknownDOI
	}
	ingested := p.IngestedAt
	if ingested.IsZero() {
		ingested = s.now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO papers
			(doi, title, authors, content, citations, concepts, source, ingested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.DOI, p.Title, joinList(p.Authors), p.Content, joinList(p.Citations),
		joinList(p.Concepts), p.Source, ingested.UTC().Format(time.RFC3339))
	if err != nil {
		return IngestResult{Status: "error"}, apperrors.WrapError(err, "ingest %s", p.DOI)
	}
	return IngestResult{Status: "success", DOI: p.DOI, Title: p.Title}, nil
}

// Load returns every stored paper ordered by ingestion time then DOI.
func (s *Store) Load(ctx context.Context) ([]Paper, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT doi, title, authors, content, citations, concepts, source, ingested_at
		FROM papers ORDER BY ingested_at, doi`)
	if err != nil {
		return nil, apperrors.WrapError(err, "load papers")
	}
	defer rows.Close()

	var papers []Paper
	for rows.Next() {
		var (
			p                            Paper
			authors, citations, concepts string
			ingested                     string
		)
		if err := rows.Scan(&p.DOI, &p.Title, &authors, &p.Content, &citations, &concepts, &p.Source, &ingested); err != nil {
			return nil, apperrors.WrapError(err, "scan paper")
		}
		p.Authors = splitList(authors)
		p.Citations = splitList(citations)
		p.Concepts = splitList(concepts)
		if p.IngestedAt, err = time.Parse(time.RFC3339, ingested); err != nil {
			return nil, fmt.Errorf("paper %s: bad ingestion time %q: %w", p.DOI, ingested, err)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

// Count returns the number of stored papers.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM papers`).Scan(&n); err != nil {
		return 0, apperrors.WrapError(err, "count papers")
	}
	return n, nil
}

func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
