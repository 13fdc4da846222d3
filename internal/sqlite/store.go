// Package sqlite implements the SQLite persistence layer for Cadence:
// connection ownership, the schema migration engine, the pre-migration
// backup guard, and the entity stores.
// See docs/ARCHITECTURE.md § Persistence Core.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/cadence/pkg/types"
)

// DBFileName is the database file created under the data directory.
const DBFileName = "cadence.db"

// Store owns the single database connection shared by all entity stores.
// Every operation serializes on the connection mutex; the stores returned
// by Tasks, Blocks, and Settings are thin handles bound to this owner.
type Store struct {
	mu     sync.Mutex
	open   bool
	config types.Config
	db     *sql.DB
}

// New creates a Store. The store is not open; call Open with a Config.
func New() *Store {
	return &Store{}
}

// Open initializes the store: creates the data directory if needed, backs
// up any existing database file, opens the connection, and brings the
// schema up to date. Backup or migration failure is fatal: the store
// stays closed and the database is left as the backup snapshotted it.
// Returns ErrAlreadyOpen if called while open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, DBFileName)

	// Snapshot before the schema can change (fail closed).
	if _, err := backupDatabase(dbPath); err != nil {
		return fmt.Errorf("backup database: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return fmt.Errorf("run migrations: %w", err)
	}

	s.db = db
	s.config = config
	s.open = true

	return nil
}

// Close releases the connection. Idempotent: closing a closed store
// succeeds. After Close, entity operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}

	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	s.open = false

	return nil
}

// Tasks returns the task store bound to this connection owner.
func (s *Store) Tasks() *TaskStore {
	return &TaskStore{store: s}
}

// Blocks returns the day-block store bound to this connection owner.
func (s *Store) Blocks() *DayBlockStore {
	return &DayBlockStore{store: s}
}

// Settings returns the settings store bound to this connection owner.
func (s *Store) Settings() *SettingsStore {
	return &SettingsStore{store: s}
}

// Purge deletes every day block and task in one transaction. Settings and
// the migration ledger survive; this is the "start over" operation, not a
// schema reset.
func (s *Store) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return storageErr("purge", err)
	}
	defer tx.Rollback()

	// Blocks reference tasks, so they go first.
	if _, err := tx.Exec("DELETE FROM day_blocks"); err != nil {
		return storageErr("purge", err)
	}
	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return storageErr("purge", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("purge", err)
	}
	return nil
}

// storageErr wraps a driver failure in a typed StorageError carrying the
// engine's diagnostic text.
func storageErr(op string, err error) error {
	return &types.StorageError{Op: op, Err: err}
}
