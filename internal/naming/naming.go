// Package naming derives output and sibling paths for conversion sources.
package naming

import (
	"path/filepath"
	"strings"
)

// Source extensions this tool converts (lowercase, with leading dot).
var sourceExtensions = map[string]bool{
	".heic": true,
	".heif": true,
}

// IsSource reports whether path has a HEIC/HEIF extension, case-insensitively.
func IsSource(path string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(path))]
}

// TargetPath returns the JPEG output path for a source: the same path with
// the extension replaced by ".jpg". The extension is always the normalized
// lowercase form regardless of the source's casing (IMG_1.HEIC becomes IMG_1.jpg).
func TargetPath(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + ".jpg"
}

// JPEGSiblings returns the two paths whose existence marks a source as
// already converted: the ".jpg" and ".jpeg" variants next to it.
func JPEGSiblings(src string) []string {
	ext := filepath.Ext(src)
	stem := strings.TrimSuffix(src, ext)
	return []string{stem + ".jpg", stem + ".jpeg"}
}
