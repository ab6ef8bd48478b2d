// Package snapshot creates verified backup copies of the catalog database
// before a reconciliation run mutates it.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"mediasweep/internal/fileutil"
)

// Create copies dbPath into backupDir under a timestamped, collision-free
// name and returns the backup path. The directory is created when missing.
func Create(dbPath, backupDir string) (string, error) {
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	ext := filepath.Ext(dbPath)
	base := strings.TrimSuffix(filepath.Base(dbPath), ext)
	if base == "" {
		base = "catalog"
	}
	stamp := time.Now().UTC().Format("20060102T150405Z")
	name := fmt.Sprintf("%s-%s-%s%s", base, stamp, uuid.NewString()[:8], ext)

	dst := filepath.Join(backupDir, name)
	if err := fileutil.CopyVerified(dbPath, dst); err != nil {
		return "", fmt.Errorf("snapshot catalog: %w", err)
	}
	return dst, nil
}
