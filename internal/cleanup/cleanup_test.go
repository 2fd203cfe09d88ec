package cleanup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneBackupsDeletesOnlyOldJSONFiles(t *testing.T) {
	dir := t.TempDir()

	oldFile := filepath.Join(dir, "rooms.20250101-120000.json")
	freshFile := filepath.Join(dir, "rooms.20260830-120000.json")
	otherFile := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(oldFile, []byte("[]"), 0664))
	require.NoError(t, os.WriteFile(freshFile, []byte("[]"), 0664))
	require.NoError(t, os.WriteFile(otherFile, []byte("keep"), 0664))

	stale := time.Now().AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(oldFile, stale, stale))
	require.NoError(t, os.Chtimes(otherFile, stale, stale))

	deleted, err := PruneBackups(dir, 14)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(freshFile)
	assert.NoError(t, err)
	_, err = os.Stat(otherFile)
	assert.NoError(t, err)
}

func TestPruneBackupsMissingDirIsNotAnError(t *testing.T) {
	deleted, err := PruneBackups(filepath.Join(t.TempDir(), "does-not-exist"), 14)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
