// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal persists conversion history in a SQLite database.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/office-convert/pkg/types"
)

const defaultMaxResults = 20

// Store manages the conversion journal database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Entry is one recorded conversion.
type Entry struct {
	ID          int64     `json:"id" yaml:"id"`
	Source      string    `json:"source" yaml:"source"`
	Destination string    `json:"destination" yaml:"destination"`
	Format      string    `json:"format" yaml:"format"`
	Success     bool      `json:"success" yaml:"success"`
	ExitCode    int       `json:"exit_code" yaml:"exit_code"`
	Stderr      string    `json:"stderr,omitempty" yaml:"stderr,omitempty"`
	StartedAt   time.Time `json:"started_at" yaml:"started_at"`
	DurationMS  int64     `json:"duration_ms" yaml:"duration_ms"`
}

// Open opens or creates the journal database at cfg.Path, creating parent
// directories and the schema as needed.
func Open(cfg types.JournalConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("journal path not configured")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			destination TEXT NOT NULL,
			format TEXT,
			success INTEGER NOT NULL,
			exit_code INTEGER,
			stderr TEXT,
			started_at TEXT NOT NULL,
			duration_ms INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_started_at ON conversions(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts the outcome of one conversion.
func (s *Store) Record(ctx context.Context, res types.Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (source, destination, format, success, exit_code, stderr, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		res.Task.Source,
		res.Task.Destination,
		res.Format,
		res.Success,
		res.ExitCode,
		res.Stderr,
		res.StartedAt.UTC().Format(time.RFC3339Nano),
		res.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. A limit of 0 uses the
// store's configured maximum.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, destination, format, success, exit_code, stderr, started_at, duration_ms
		 FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var startedAt string
		if err := rows.Scan(&e.ID, &e.Source, &e.Destination, &e.Format, &e.Success,
			&e.ExitCode, &e.Stderr, &startedAt, &e.DurationMS); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			e.StartedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
