// Backup guard: snapshots the database file before each migration run so
// a failed or unwanted migration can be recovered from manually.
package sqlite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// backupTimeFormat is minute-granular. Two runs within the same minute
// overwrite the earlier snapshot, which is acceptable.
const backupTimeFormat = "200601021504"

// backupDatabase copies the database file at dbPath to a timestamped
// sibling (cadence.db → cadence.backup.<stamp>.db) and returns the backup
// path. A missing file (a fresh install) is not an error and returns "".
// Any other failure is: migrating a schema that could not be snapshotted
// risks unrecoverable data loss.
func backupDatabase(dbPath string) (string, error) {
	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat %s: %w", dbPath, err)
	}

	backupPath := backupPathFor(dbPath, time.Now())

	src, err := os.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", dbPath, err)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", backupPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("copy to %s: %w", backupPath, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", backupPath, err)
	}

	return backupPath, nil
}

// backupPathFor derives the sibling backup path for a database file at the
// given instant.
func backupPathFor(dbPath string, now time.Time) string {
	ext := filepath.Ext(dbPath)
	base := strings.TrimSuffix(dbPath, ext)
	return base + ".backup." + now.Format(backupTimeFormat) + ext
}
