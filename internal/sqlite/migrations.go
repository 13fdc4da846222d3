// Schema migration catalog and engine. The catalog is append-only: ids
// are permanent, start at 1, and never reuse or reorder. Each entry runs
// at most once per database; the schema_migrations ledger records what ran.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"
)

// Migration is one released schema change. SQL is forward-only; there is
// no down path.
type Migration struct {
	ID   int64
	Name string
	SQL  string

	// Probe identifies a column whose presence proves this migration's
	// effect already exists in a pre-tracking database. Entries without a
	// probe are never baselined.
	Probe *ColumnProbe
}

// ColumnProbe names a column the baseline step looks for in the live schema.
type ColumnProbe struct {
	Table  string
	Column string
}

// Initial schema (migration 1). est_minutes is nullable: an estimate is
// optional, and legacy rows may carry values that readers see verbatim.
const migrationInit = `CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    done INTEGER NOT NULL DEFAULT 0,
    est_minutes INTEGER,
    notes TEXT,
    project TEXT,
    tags TEXT,
    created_at TEXT
);
CREATE TABLE IF NOT EXISTS day_blocks (
    id TEXT PRIMARY KEY,
    task_id TEXT,
    date TEXT NOT NULL,
    start_slot INTEGER NOT NULL,
    end_slot INTEGER NOT NULL,
    FOREIGN KEY (task_id) REFERENCES tasks (id)
);
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT
);`

const migrationAddIsToday = `ALTER TABLE tasks ADD COLUMN is_today INTEGER NOT NULL DEFAULT 0;`

const migrationAddDue = `ALTER TABLE tasks ADD COLUMN due TEXT;`

// catalog lists every released migration in id order. Migration 1 carries
// no probe: its DDL is guarded with IF NOT EXISTS, so re-running it
// against a legacy database is harmless and a probe would add nothing.
var catalog = []Migration{
	{ID: 1, Name: "init", SQL: migrationInit},
	{ID: 2, Name: "add_is_today", SQL: migrationAddIsToday, Probe: &ColumnProbe{Table: "tasks", Column: "is_today"}},
	{ID: 3, Name: "add_due", SQL: migrationAddDue, Probe: &ColumnProbe{Table: "tasks", Column: "due"}},
}

// createSchemaMigrations bootstraps the ledger. It sits outside the
// catalog because the catalog cannot describe its own tracking table.
const createSchemaMigrations = `CREATE TABLE IF NOT EXISTS schema_migrations (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at INTEGER NOT NULL
);`

// Connection hardening applied on every start. These are baseline engine
// settings, not migrations.
var startupPragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
}

// runMigrations brings the schema up to the latest catalog version. All
// pending migrations, plus the one-time baseline step, run in a single
// transaction: either every pending migration commits or none do. Safe to
// call on every start; a second run is a no-op.
func runMigrations(db *sql.DB) error {
	for _, pragma := range startupPragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(createSchemaMigrations); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration transaction: %w", err)
	}
	defer tx.Rollback()

	if err := baselineIfNeeded(tx); err != nil {
		return fmt.Errorf("baseline: %w", err)
	}

	applied, err := appliedIDs(tx)
	if err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}

	for _, m := range catalog {
		if applied[m.ID] {
			continue
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			return fmt.Errorf("apply migration %d %s: %w", m.ID, m.Name, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO schema_migrations (id, name, applied_at) VALUES (?, ?, ?)",
			m.ID, m.Name, time.Now().Unix(),
		); err != nil {
			return fmt.Errorf("record migration %d %s: %w", m.ID, m.Name, err)
		}
	}

	return tx.Commit()
}

// baselineIfNeeded reconciles databases that predate migration tracking.
// It runs only when the ledger is empty: for each probed catalog entry
// whose column already exists in the live schema, a ledger row is inserted
// without executing the migration's SQL. Detection reads actual table
// metadata, never prior state.
func baselineIfNeeded(tx *sql.Tx) error {
	var count int64
	if err := tx.QueryRow("SELECT count(*) FROM schema_migrations").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		// Already tracked (or already baselined on a previous start).
		return nil
	}

	now := time.Now().Unix()
	for _, m := range catalog {
		if m.Probe == nil {
			continue
		}
		present, err := columnExists(tx, m.Probe.Table, m.Probe.Column)
		if err != nil {
			return fmt.Errorf("probe %s.%s: %w", m.Probe.Table, m.Probe.Column, err)
		}
		if !present {
			continue
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO schema_migrations (id, name, applied_at) VALUES (?, ?, ?)",
			m.ID, m.Name, now,
		); err != nil {
			return fmt.Errorf("record baseline %d %s: %w", m.ID, m.Name, err)
		}
	}

	return nil
}

// appliedIDs returns the set of migration ids recorded in the ledger.
func appliedIDs(tx *sql.Tx) (map[int64]bool, error) {
	rows, err := tx.Query("SELECT id FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		applied[id] = true
	}
	return applied, rows.Err()
}
