// Settings store: a flat key/value table. Values are opaque here; the
// assist layer, for example, reads its credential by the well-known key
// without this layer knowing what the string means.
package sqlite

import (
	"database/sql"

	"github.com/dukaforge/cadence/pkg/types"
)

// SettingsStore provides settings operations against the owning store's
// connection.
type SettingsStore struct {
	store *Store
}

// All returns the full key→value mapping.
func (ss *SettingsStore) All() (map[string]string, error) {
	ss.store.mu.Lock()
	defer ss.store.mu.Unlock()

	if !ss.store.open {
		return nil, types.ErrStoreClosed
	}

	rows, err := ss.store.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, storageErr("list settings", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, storageErr("list settings", err)
		}
		settings[key] = value.String
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list settings", err)
	}

	return settings, nil
}

// Get returns the value stored under key. Returns ErrNotFound if the key
// has never been set.
func (ss *SettingsStore) Get(key string) (string, error) {
	if key == "" {
		return "", types.ErrInvalidKey
	}

	ss.store.mu.Lock()
	defer ss.store.mu.Unlock()

	if !ss.store.open {
		return "", types.ErrStoreClosed
	}

	var value sql.NullString
	err := ss.store.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", types.ErrNotFound
		}
		return "", storageErr("get setting", err)
	}
	return value.String, nil
}

// Set upserts a value under key. No validation of the value occurs at
// this layer.
func (ss *SettingsStore) Set(key, value string) error {
	if key == "" {
		return types.ErrInvalidKey
	}

	ss.store.mu.Lock()
	defer ss.store.mu.Unlock()

	if !ss.store.open {
		return types.ErrStoreClosed
	}

	if _, err := ss.store.db.Exec(
		"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
		key, value,
	); err != nil {
		return storageErr("set setting", err)
	}
	return nil
}
