// Package history keeps a local log of past generations. The log is
// write-only bookkeeping for the user; it is never fed back into prompts.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Record is one completed generation.
type Record struct {
	ID        string
	Directive string
	Prompt    string
	Response  string
	CreatedAt time.Time
}

// Store abstracts generation-history persistence.
type Store interface {
	Add(directive, prompt, response string) (*Record, error)
	List(limit int) ([]Record, error)
	Close() error
}

// NullStore is a no-op implementation used when the database cannot be
// opened; history is best-effort and never blocks a completion.
type NullStore struct{}

func (NullStore) Add(string, string, string) (*Record, error) { return nil, nil }
func (NullStore) List(int) ([]Record, error)                  { return nil, nil }
func (NullStore) Close() error                                { return nil }

const createTableSQL = `
CREATE TABLE IF NOT EXISTS generations (
    id         TEXT PRIMARY KEY,
    directive  TEXT NOT NULL,
    prompt     TEXT NOT NULL,
    response   TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_generations_created_at ON generations(created_at);
`

// SQLiteStore implements Store backed by SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// DefaultDBPath returns ~/.config/ghostwriter/history.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ghostwriter", "history.db"), nil
}

// NewSQLiteStore opens (creating if needed) the history database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create generations table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Add(directive, prompt, response string) (*Record, error) {
	r := &Record{
		ID:        uuid.New().String()[:8],
		Directive: directive,
		Prompt:    prompt,
		Response:  response,
		CreatedAt: time.Now(),
	}

	_, err := s.db.Exec(`
		INSERT INTO generations (id, directive, prompt, response, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Directive, r.Prompt, r.Response,
		r.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert generation: %w", err)
	}
	return r, nil
}

func (s *SQLiteStore) List(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, directive, prompt, response, created_at
		FROM generations ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var created string
		if err := rows.Scan(&r.ID, &r.Directive, &r.Prompt, &r.Response, &created); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
