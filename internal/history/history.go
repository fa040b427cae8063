// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records completed generation runs in a local SQLite
// ledger. The ledger is advisory bookkeeping: the pipeline never depends on
// it, so a recording failure is surfaced as a warning rather than an error.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/blog-engine/pkg/types"
)

// Run is one recorded generation run.
type Run struct {
	ID           int64     `json:"id"`
	TopicID      string    `json:"topic_id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Model        string    `json:"model"`
	TokensInput  int       `json:"tokens_input"`
	TokensOutput int       `json:"tokens_output"`
	WordCount    int       `json:"word_count"`
	DraftPath    string    `json:"draft_path"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store manages the generation-run SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the ledger database at cfg.DBPath, creating the
// schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		topic_id TEXT NOT NULL,
		title TEXT,
		category TEXT,
		model TEXT,
		tokens_input INTEGER,
		tokens_output INTEGER,
		word_count INTEGER,
		draft_path TEXT,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Record inserts one completed run into the ledger.
func (s *Store) Record(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (topic_id, title, category, model, tokens_input, tokens_output, word_count, draft_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.TopicID, run.Title, run.Category, run.Model,
		run.TokensInput, run.TokensOutput, run.WordCount, run.DraftPath,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A limit of 0 uses 20.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic_id, title, category, model, tokens_input, tokens_output, word_count, draft_path, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.ID, &r.TopicID, &r.Title, &r.Category, &r.Model,
			&r.TokensInput, &r.TokensOutput, &r.WordCount, &r.DraftPath, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
