package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into conversion, size window, display, and utility.
// Boolean overrides (e.g. --no-color) are applied after Parse so Config
// defaults hold unless the flag is set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, bad size value).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("heicfit", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var over overrideFlags

	defineConversionFlags(fs, cfg)
	defineWindowFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &over)
	defineUtilityFlags(fs, &over)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyOverrideFlags(cfg, &over)

	if over.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if over.showVersion {
		fmt.Fprintln(os.Stdout, "heicfit v"+version)
		os.Exit(0)
	}

	if err := parsePositionalArgs(fs, cfg); err != nil {
		return err
	}
	return applySizeArgs(cfg)
}

// overrideFlags holds boolean flags that are applied after Parse. These
// either invert a default (noColor) or trigger exit (showHelp, showVersion).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineConversionFlags registers --backup-name, -r/--remove-source, -d/--dry-run.
func defineConversionFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.BackupDirName, "backup-name", cfg.BackupDirName, "Backup folder name under the working directory")
	fs.BoolVar(&cfg.RemoveSource, "remove-source", false, "Delete originals after successful conversion")
	fs.BoolVar(&cfg.RemoveSource, "r", false, "Same as --remove-source")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "List files that would be converted and exit")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
}

// defineWindowFlags registers --min-size, --max-size, --quality-min, --quality-max.
func defineWindowFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.MinSizeArg, "min-size", "", "Lower output size bound (e.g. 800k, 1M; default 1M)")
	fs.StringVar(&cfg.MaxSizeArg, "max-size", "", "Upper output size bound (e.g. 2M; default 2M)")
	fs.IntVar(&cfg.QualityMin, "quality-min", cfg.QualityMin, "Lowest JPEG quality to try")
	fs.IntVar(&cfg.QualityMax, "quality-max", cfg.QualityMax, "Highest JPEG quality to try")
}

// defineDisplayFlags registers --color, --no-color, --no-progress, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, o *overrideFlags) {
	fs.BoolVar(&o.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.NoProgress, "no-progress", false, "Disable the terminal progress bar")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (per-attempt quality search details)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run codec diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, o *overrideFlags) {
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&o.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&o.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&o.showHelp, "h", false, "Same as --help")
}

// applyOverrideFlags copies override flag values into cfg.
func applyOverrideFlags(cfg *Config, o *overrideFlags) {
	if o.noColor {
		cfg.ColorMode = ColorNever
	} else if o.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets WorkDir from the optional positional argument.
// With no argument the current directory is used.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.WorkDir = NormalizeDirArg(args[0])
		return nil
	default:
		return fmt.Errorf("expected at most one directory argument, got %d", len(args))
	}
}

// applySizeArgs parses --min-size/--max-size values into MinBytes/MaxBytes.
func applySizeArgs(cfg *Config) error {
	if cfg.MinSizeArg != "" {
		n, err := ParseSizeArg(cfg.MinSizeArg)
		if err != nil {
			return fmt.Errorf("--min-size: %w", err)
		}
		cfg.MinBytes = n
	}
	if cfg.MaxSizeArg != "" {
		n, err := ParseSizeArg(cfg.MaxSizeArg)
		if err != nil {
			return fmt.Errorf("--max-size: %w", err)
		}
		cfg.MaxBytes = n
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "heicfit v" + version + " - size-targeted HEIC to JPEG converter"},
		{"", ""},
		{"  heicfit [OPTIONS] [dir]", ""},
		{"", ""},
		{"", "Converts every HEIC/HEIF file in dir (default: current directory)"},
		{"", "that has no JPEG counterpart yet. Originals are copied into the"},
		{"", "backup folder first; output lands next to the source as .jpg."},
		{"", ""},
		{"Conversion", ""},
		{"  --backup-name <name>", "Backup folder name (default: " + DefaultBackupDirName + ")"},
		{"  -r, --remove-source", "Delete originals after successful conversion"},
		{"  -d, --dry-run", "List candidates only; do not convert"},
		{"", ""},
		{"Size window", ""},
		{"  --min-size <size>", "Lower output bound, e.g. 800k (default: 1M)"},
		{"  --max-size <size>", "Upper output bound, e.g. 2M (default: 2M)"},
		{"  --quality-min <1-100>", "Lowest JPEG quality to try (default: 40)"},
		{"  --quality-max <1-100>", "Highest JPEG quality to try (default: 95)"},
		{"", ""},
		{"Display", ""},
		{"  --no-progress", "Disable the terminal progress bar"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Codec diagnostics (HEIF decode, JPEG encode)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
