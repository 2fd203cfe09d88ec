// internal/cleanup/cleanup.go
package cleanup

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/IvanLyVodka11/hotel-management/internal/logger"
)

// PruneBackups deletes backup files older than retentionDays from the backup
// directory. Only timestamped .json backups are touched; anything else in the
// directory is left alone. Returns the number of files deleted.
func PruneBackups(backupDir string, retentionDays int) (int, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	logger.LogInfo("Pruning backups older than %d days (before %v)",
		retentionDays, cutoff.Format("2006-01-02 15:04:05"))

	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logger.LogWarn("Failed to stat backup %s: %v", entry.Name(), err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		if err := os.Remove(path); err != nil {
			logger.LogError("Failed to delete backup %s: %v", path, err)
			continue
		}
		deleted++
	}

	if deleted > 0 {
		logger.LogInfo("Pruned %d old backup files from %s", deleted, backupDir)
	}
	return deleted, nil
}
