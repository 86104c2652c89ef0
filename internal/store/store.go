package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the SQLite handle and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// KV returns the key-value repository backed by this store.
func (s *Store) KV() KV {
	return &kvRepo{db: s.db}
}

// SessionRepo returns the session event repository backed by this store.
func (s *Store) SessionRepo() SessionRepo {
	return &sessionRepo{db: s.db, now: time.Now}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS session_events (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence         INTEGER NOT NULL UNIQUE,
		timestamp        TIMESTAMP NOT NULL,
		session_id       TEXT NOT NULL,
		action           TEXT NOT NULL,
		range_descriptor TEXT NOT NULL DEFAULT 'all',
		questions_total  INTEGER NOT NULL DEFAULT 0,
		correct_answers  INTEGER NOT NULL DEFAULT 0,
		skipped          INTEGER NOT NULL DEFAULT 0,
		completed        BOOLEAN NOT NULL DEFAULT 0,
		duration_secs    INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS session_events_session_id ON session_events (session_id)`,
	`CREATE INDEX IF NOT EXISTS session_events_action ON session_events (action)`,
}

func migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. BINOMEN_DB environment variable
// 2. $XDG_DATA_HOME/binomen/binomen.db
// 3. ~/.local/share/binomen/binomen.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("BINOMEN_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "binomen", "binomen.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
