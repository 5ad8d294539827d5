package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCopy_CreatesDirAndCopies(t *testing.T) {
	srcDir := t.TempDir()
	src := writeFile(t, srcDir, "IMG_0001.heic", "original bytes")
	backupDir := filepath.Join(t.TempDir(), "heic-backup")

	require.NoError(t, Copy(src, backupDir))

	got, err := os.ReadFile(filepath.Join(backupDir, "IMG_0001.heic"))
	require.NoError(t, err)
	assert.Equal(t, "original bytes", string(got))
}

func TestCopy_PreservesModeAndModTime(t *testing.T) {
	srcDir := t.TempDir()
	src := writeFile(t, srcDir, "IMG_0002.heic", "data")
	require.NoError(t, os.Chmod(src, 0o600))
	past := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, past, past))

	backupDir := filepath.Join(t.TempDir(), "bk")
	require.NoError(t, Copy(src, backupDir))

	info, err := os.Stat(filepath.Join(backupDir, "IMG_0002.heic"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(past), "mod time %v, want %v", info.ModTime(), past)
}

func TestCopy_Idempotent(t *testing.T) {
	srcDir := t.TempDir()
	src := writeFile(t, srcDir, "IMG_0003.heic", "v1")
	backupDir := filepath.Join(t.TempDir(), "bk")

	require.NoError(t, Copy(src, backupDir))
	require.NoError(t, Copy(src, backupDir))

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	got, err := os.ReadFile(filepath.Join(backupDir, "IMG_0003.heic"))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))
}

// First write wins even across different source directories: a second
// source with a colliding base name silently keeps the first backup. The
// test pins that policy down.
func TestCopy_CollidingNamesKeepFirstBackup(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	srcA := writeFile(t, dirA, "IMG_0004.heic", "from A")
	srcB := writeFile(t, dirB, "IMG_0004.heic", "from B")
	backupDir := filepath.Join(t.TempDir(), "bk")

	require.NoError(t, Copy(srcA, backupDir))
	require.NoError(t, Copy(srcB, backupDir))

	got, err := os.ReadFile(filepath.Join(backupDir, "IMG_0004.heic"))
	require.NoError(t, err)
	assert.Equal(t, "from A", string(got))
}

func TestCopy_MissingSource(t *testing.T) {
	backupDir := filepath.Join(t.TempDir(), "bk")
	err := Copy(filepath.Join(t.TempDir(), "absent.heic"), backupDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.heic")
}

func TestCopy_BackupDirIsAFile(t *testing.T) {
	srcDir := t.TempDir()
	src := writeFile(t, srcDir, "IMG_0005.heic", "data")
	notADir := writeFile(t, t.TempDir(), "blocker", "in the way")

	err := Copy(src, notADir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backup directory")
}
