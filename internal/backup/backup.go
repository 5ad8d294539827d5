// Package backup preserves originals before conversion. Copies keep the
// source's permissions and timestamps, and an existing backup is never
// overwritten (first write wins).
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Copy places a copy of src into backupDir, creating the directory (and
// parents) if needed. If backupDir already holds a file with the same base
// name the copy is skipped entirely, including when the existing file came
// from a different source directory. Returns an I/O error naming the
// offending path on failure.
func Copy(src, backupDir string) error {
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return fmt.Errorf("create backup directory %s: %w", backupDir, err)
	}

	dst := filepath.Join(backupDir, filepath.Base(src))
	if _, err := os.Stat(dst); err == nil {
		return nil
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("backup %s: %w", src, err)
	}

	if err := copyFile(src, dst, info.Mode()); err != nil {
		return fmt.Errorf("backup %s: %w", src, err)
	}

	// Preserve timestamps the way cp -p / shutil.copy2 do. Best effort for
	// access time (not all filesystems track it); mod time must stick.
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("backup %s: %w", src, err)
	}
	return nil
}

// copyFile copies src to dst with the given mode. dst is truncated if it
// appeared between the existence check and the open (no locking; external
// writers are out of scope).
func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}
