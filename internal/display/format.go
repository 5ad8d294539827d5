// Package display provides terminal output helpers: the startup banner,
// size formatting, and the progress-bar sink used by the CLI.
package display

import "fmt"

// FormatSize returns a human-readable decimal size (B, kB, MB, GB). Decimal
// units match how the size window is specified (1 MB = 1,000,000 bytes).
func FormatSize(bytes int64) string {
	switch {
	case bytes < 1_000:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1_000_000:
		return fmt.Sprintf("%.0f kB", float64(bytes)/1_000)
	case bytes < 1_000_000_000:
		return fmt.Sprintf("%.2f MB", float64(bytes)/1_000_000)
	default:
		return fmt.Sprintf("%.2f GB", float64(bytes)/1_000_000_000)
	}
}

// FormatDelta prefixes a size with its sign for space-saved display.
func FormatDelta(bytes int64) string {
	if bytes < 0 {
		return "-" + FormatSize(-bytes)
	}
	return FormatSize(bytes)
}
