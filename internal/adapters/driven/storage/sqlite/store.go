// Package sqlite provides a SQLite-backed implementation of the blob
// store underneath the session cache.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO. It exists for users who want their session to
// survive process restarts: pointing the session backend at a file
// turns the per-process cache into a per-machine one.
//
// By default the database is stored at ~/.octoview/data/session.db.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/octoview/octoview-cli/internal/core/ports/driven"
	"github.com/octoview/octoview-cli/internal/logger"
)

// schema is the full blob table definition. The table is tiny (one row
// per cache partition), so versioned migrations would be overkill.
const schema = `
CREATE TABLE IF NOT EXISTS blobs (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Ensure Store implements the interface.
var _ driven.BlobStore = (*Store)(nil)

// Store is a SQLite-backed blob store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store under the given data directory.
// If dataDir is empty, defaults to ~/.octoview/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".octoview", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "session.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating blobs table: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the blob stored under key. Read failures are reported as
// absent so a damaged database degrades to an empty cache instead of
// breaking lookups.
func (s *Store) Get(key string) ([]byte, bool) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Warn("session db read failed for %q: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

// Set stores the blob under key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing blob %q: %w", key, err)
	}
	return nil
}

// Delete removes the blob stored under key, if any.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM blobs WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting blob %q: %w", key, err)
	}
	return nil
}
