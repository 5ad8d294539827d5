// Command heicfit converts the HEIC/HEIF photos in a directory to JPEG
// files sized for upload limits: each output is encoded at the highest
// quality that stays inside the configured byte window. Originals are
// copied into a backup folder before anything touches them.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tkarwowski/heicfit/internal/check"
	"github.com/tkarwowski/heicfit/internal/codec"
	"github.com/tkarwowski/heicfit/internal/config"
	"github.com/tkarwowski/heicfit/internal/display"
	"github.com/tkarwowski/heicfit/internal/logging"
	"github.com/tkarwowski/heicfit/internal/pipeline"
	"github.com/tkarwowski/heicfit/internal/sizer"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr. Once NewLogger succeeds, all output goes through it.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "heicfit: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "heicfit: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "heicfit: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	heif := codec.NewHEIF()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log, heif) {
			return 1
		}
		return 0
	}

	workDir, err := filepath.Abs(cfg.WorkDir)
	if err != nil {
		log.Error("Cannot resolve working directory: %s", cfg.WorkDir)
		return 1
	}
	if info, err := os.Stat(workDir); err != nil || !info.IsDir() {
		log.Error("Not a directory: %s", workDir)
		return 1
	}

	log.Info("=== heicfit v%s (%s) ===", version, commit)
	log.Info("Dir:    %s", workDir)
	log.Info("Window: %s .. %s (quality %d..%d)",
		display.FormatSize(cfg.MinBytes), display.FormatSize(cfg.MaxBytes),
		cfg.QualityMin, cfg.QualityMax)
	log.Info("Backup: %s", filepath.Join(workDir, cfg.BackupDirName))
	if cfg.RemoveSource {
		log.Warn("Originals will be deleted after conversion (backups are kept)")
	}
	log.Info("")

	files, err := pipeline.Discover(workDir)
	if err != nil {
		log.Error("Directory scan failed: %v", err)
		return 1
	}
	if len(files) == 0 {
		log.Info("Nothing to do: no unconverted HEIC/HEIF files found")
		return 0
	}
	log.Info("Found %d files to convert", len(files))

	if cfg.DryRun {
		for _, f := range files {
			log.Info("  would convert %s", filepath.Base(f))
		}
		return 0
	}

	runner := pipeline.NewRunner(heif, log, sizer.Window{
		MinBytes:   cfg.MinBytes,
		MaxBytes:   cfg.MaxBytes,
		MinQuality: cfg.QualityMin,
		MaxQuality: cfg.QualityMax,
	})

	outcome, err := runner.Run(pipeline.Request{
		Paths:         files,
		WorkDir:       workDir,
		BackupDirName: cfg.BackupDirName,
		RemoveSource:  cfg.RemoveSource,
		Progress:      progressSink(&cfg, len(files)),
	})
	if err != nil {
		// The only batch-level failure: the decoder could not be set up.
		log.Error("%v", err)
		return 1
	}

	logSummary(log, &outcome)

	if outcome.Stats.Failed > 0 {
		return 1
	}
	return 0
}

// progressSink returns the terminal progress bar unless it would fight with
// other output (verbose mode, non-TTY, or explicitly disabled).
func progressSink(cfg *config.Config, total int) pipeline.ProgressSink {
	if cfg.NoProgress || cfg.Verbose || !logging.IsTerminal(os.Stderr) {
		return nil
	}
	return display.NewBarSink(total)
}

func logSummary(log *logging.Logger, out *pipeline.Outcome) {
	s := &out.Stats
	log.Info("==============================")
	log.Info("Done: %d converted, %d failed", s.Converted, s.Failed)

	for _, fe := range out.Errors {
		switch fe.Kind {
		case pipeline.KindCleanup:
			log.Warn("  %s: %s", filepath.Base(fe.Source), fe.Message)
		default:
			log.Error("  %s: %s", filepath.Base(fe.Source), fe.Message)
		}
	}

	if s.Converted == 0 {
		return
	}
	saved := s.SpaceSaved()
	if saved >= 0 {
		log.Success("Space saved: %s (input %s -> output %s)",
			display.FormatDelta(saved),
			display.FormatSize(s.SourceBytes),
			display.FormatSize(s.OutputBytes))
	} else {
		log.Warn("Output grew by %s (input %s -> output %s)",
			display.FormatSize(-saved),
			display.FormatSize(s.SourceBytes),
			display.FormatSize(s.OutputBytes))
	}
}
