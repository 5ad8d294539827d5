package pipeline

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/tkarwowski/heicfit/internal/naming"
)

// Discover lists the HEIC/HEIF files directly inside dir that do not yet
// have a .jpg/.jpeg counterpart, sorted lexicographically for deterministic
// processing order. The scan is non-recursive; a missing or non-directory
// path yields an empty list rather than an error.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !naming.IsSource(path) {
			continue
		}
		if hasJPEGSibling(path) {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

func hasJPEGSibling(src string) bool {
	for _, sibling := range naming.JPEGSiblings(src) {
		if _, err := os.Stat(sibling); err == nil {
			return true
		}
	}
	return false
}
