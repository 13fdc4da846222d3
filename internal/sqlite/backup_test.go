package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/cadence/pkg/types"
)

func TestBackupDatabaseFreshInstall(t *testing.T) {
	// No database file yet means nothing to protect.
	path := filepath.Join(t.TempDir(), DBFileName)
	backupPath, err := backupDatabase(path)
	require.NoError(t, err)
	assert.Empty(t, backupPath)
}

func TestBackupDatabaseCopiesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DBFileName)
	require.NoError(t, os.WriteFile(path, []byte("database bytes"), 0o644))

	backupPath, err := backupDatabase(path)
	require.NoError(t, err)
	require.NotEmpty(t, backupPath)

	copied, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("database bytes"), copied)

	// The original is untouched.
	original, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("database bytes"), original)
}

func TestBackupPathFor(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 42, 57, 0, time.UTC)
	got := backupPathFor("/data/cadence.db", at)
	assert.Equal(t, "/data/cadence.backup.202403150942.db", got)
}

func TestOpenBacksUpExistingDatabase(t *testing.T) {
	dataDir := t.TempDir()

	store := New()
	require.NoError(t, store.Open(types.Config{DataDir: dataDir}))
	require.NoError(t, store.Tasks().Save(types.Task{ID: "t1", Title: "Before backup"}))
	require.NoError(t, store.Close())

	again := New()
	require.NoError(t, again.Open(types.Config{DataDir: dataDir}))
	defer again.Close()

	backups, err := filepath.Glob(filepath.Join(dataDir, "cadence.backup.*.db"))
	require.NoError(t, err)
	require.Len(t, backups, 1)

	info, err := os.Stat(backups[0])
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestOpenFreshInstallWritesNoBackup(t *testing.T) {
	dataDir := t.TempDir()

	store := New()
	require.NoError(t, store.Open(types.Config{DataDir: dataDir}))
	defer store.Close()

	backups, err := filepath.Glob(filepath.Join(dataDir, "cadence.backup.*.db"))
	require.NoError(t, err)
	assert.Empty(t, backups)
}
