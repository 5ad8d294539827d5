package display

import (
	"fmt"
	"os"

	"github.com/tkarwowski/heicfit/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, logging.Magenta)
	}
	fmt.Fprint(os.Stdout, ` _          _       __ _ _
| |__   ___(_) ___ / _(_) |_
| '_ \ / _ \ |/ __| |_| | __|
| | | |  __/ | (__|  _| | |_
|_| |_|\___|_|\___|_| |_|\__|
`)
	if logging.Magenta != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
