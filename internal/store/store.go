// Package store persists lesson attempts and progress records in a local
// SQLite database. One attempt row exists per (learner, lesson) pair; saves
// replace the row wholesale, so a load always sees a consistent snapshot of
// state plus transcript.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection and hands out repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies recommended pragmas,
// and creates the schema if missing.
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
		return nil, fmt.Errorf("migrate: %w", err)
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

// SavedStates returns the attempt repository backed by this store.
func (s *Store) SavedStates() SavedStateRepo {
	return &savedStateRepo{db: s.db}
}

// Progress returns the progress repository backed by this store.
func (s *Store) Progress() ProgressRepo {
	return &progressRepo{db: s.db}
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

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS saved_states (
			learner_id     TEXT NOT NULL,
			lesson_id      TEXT NOT NULL,
			schema_version TEXT NOT NULL,
			state          TEXT NOT NULL,
			transcript     TEXT NOT NULL,
			updated_at     TIMESTAMP NOT NULL,
			PRIMARY KEY (learner_id, lesson_id)
		)`,
		`CREATE TABLE IF NOT EXISTS progress (
			learner_id   TEXT NOT NULL,
			lesson_id    TEXT NOT NULL,
			best_score   INTEGER NOT NULL,
			best_total   INTEGER NOT NULL,
			attempts     INTEGER NOT NULL DEFAULT 0,
			completed_at TIMESTAMP NOT NULL,
			PRIMARY KEY (learner_id, lesson_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. FINMENTOR_DB environment variable
// 2. $XDG_DATA_HOME/finmentor/finmentor.db
// 3. ~/.local/share/finmentor/finmentor.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("FINMENTOR_DB"); p != "" {
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

	p := filepath.Join(dataHome, "finmentor", "finmentor.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
