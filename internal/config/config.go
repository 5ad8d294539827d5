// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation. Defaults: a 1 to 2 MB output window at JPEG qualities
// 40 to 95, originals kept in a backup folder.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Size window and quality range defaults. The window is decimal (1 MB =
// 1,000,000 bytes), matching how photo upload limits are usually stated.
const (
	DefaultMinBytes   = 1_000_000
	DefaultMaxBytes   = 2_000_000
	DefaultQualityMin = 40
	DefaultQualityMax = 95
)

// DefaultBackupDirName is the folder (under the working directory) that
// receives a copy of every original before it is converted.
const DefaultBackupDirName = "heic-backup"

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Working directory (positional arg, default ".").
	WorkDir string

	// Conversion behavior.
	BackupDirName string // Folder under WorkDir for original copies.
	RemoveSource  bool   // Delete the HEIC original after a successful conversion.
	DryRun        bool   // List candidates only; do not convert.

	// Output size window and quality bounds.
	MinBytes   int64
	MaxBytes   int64
	QualityMin int
	QualityMax int

	// Display and logging.
	Verbose    bool
	NoProgress bool // Suppress the terminal progress bar.
	ColorMode  ColorMode
	LogFile    string // Optional log file path.
	CheckOnly  bool   // Run --check diagnostics and exit.

	// Size overrides as given on the command line (e.g. "1.5M"), kept for
	// error messages; MinBytes/MaxBytes hold the parsed values.
	MinSizeArg string
	MaxSizeArg string
}

// DefaultConfig returns a Config with all defaults applied. Used as the
// base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		WorkDir:       ".",
		BackupDirName: DefaultBackupDirName,
		MinBytes:      DefaultMinBytes,
		MaxBytes:      DefaultMaxBytes,
		QualityMin:    DefaultQualityMin,
		QualityMax:    DefaultQualityMax,
		ColorMode:     ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks cross-field consistency: quality bounds must form a
// non-empty range inside [1,100], the size window must be positive and
// ordered, and the backup folder name must be a plain name (no separators).
func (c *Config) Validate() error {
	if c.QualityMin < 1 || c.QualityMax > 100 || c.QualityMin > c.QualityMax {
		return fmt.Errorf("quality range %d..%d is invalid (need 1 <= min <= max <= 100)",
			c.QualityMin, c.QualityMax)
	}
	if c.MinBytes <= 0 || c.MaxBytes <= 0 || c.MinBytes > c.MaxBytes {
		return fmt.Errorf("size window %d..%d bytes is invalid (need 0 < min <= max)",
			c.MinBytes, c.MaxBytes)
	}
	if c.BackupDirName == "" {
		return errors.New("backup folder name must not be empty")
	}
	if strings.ContainsAny(c.BackupDirName, `/\`) {
		return fmt.Errorf("backup folder name %q must not contain path separators", c.BackupDirName)
	}
	if c.CheckOnly {
		return nil
	}
	if c.WorkDir == "" {
		return errors.New("working directory must not be empty")
	}
	return nil
}

// ParseSizeArg parses a human size string into bytes. Accepted forms:
// plain bytes ("1500000"), kilobytes ("800k", "800K", "800kb"), and
// megabytes ("1.5M", "2m", "2mb"). Units are decimal (k = 1000).
func ParseSizeArg(raw string) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, errors.New("size must not be empty")
	}

	mult := int64(1)
	switch {
	case strings.HasSuffix(s, "kb"):
		mult, s = 1_000, strings.TrimSuffix(s, "kb")
	case strings.HasSuffix(s, "k"):
		mult, s = 1_000, strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "mb"):
		mult, s = 1_000_000, strings.TrimSuffix(s, "mb")
	case strings.HasSuffix(s, "m"):
		mult, s = 1_000_000, strings.TrimSuffix(s, "m")
	}
	s = strings.TrimSpace(s)

	// Allow fractional values for unit-suffixed sizes ("1.5M").
	if strings.Contains(s, ".") && mult > 1 {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f <= 0 {
			return 0, fmt.Errorf("invalid size %q (use e.g. 800k or 1.5M)", raw)
		}
		return int64(f * float64(mult)), nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid size %q (use e.g. 800k or 1.5M)", raw)
	}
	return n * mult, nil
}
