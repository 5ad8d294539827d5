// Package pipeline orchestrates the conversion batch: candidate discovery,
// per-file backup, conversion, optional source removal, progress reporting,
// and aggregate stats. Files are processed strictly sequentially; a failure
// is recorded against its file and never aborts the batch.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tkarwowski/heicfit/internal/backup"
	"github.com/tkarwowski/heicfit/internal/codec"
	"github.com/tkarwowski/heicfit/internal/display"
	"github.com/tkarwowski/heicfit/internal/logging"
	"github.com/tkarwowski/heicfit/internal/sizer"
)

// Runner executes conversion batches with a fixed codec and size window.
type Runner struct {
	codec  codec.Codec
	log    *logging.Logger
	window sizer.Window

	// remove deletes a source file; overridable in tests to provoke
	// cleanup failures without filesystem tricks.
	remove func(path string) error
}

// NewRunner builds a Runner. The window is typically derived from config
// (defaults: 1 to 2 MB at qualities 40 to 95).
func NewRunner(c codec.Codec, log *logging.Logger, w sizer.Window) *Runner {
	return &Runner{codec: c, log: log, window: w, remove: removeSourceFile}
}

// Run processes req. An empty request returns an empty Outcome immediately,
// touching neither the filesystem nor the codec. The only fatal error is an
// unavailable decoder, surfaced before any file is processed; every other
// failure is recorded per-file in the Outcome.
//
// There is no cancellation: once started, the full list is drained.
func (r *Runner) Run(req Request) (Outcome, error) {
	var out Outcome
	if len(req.Paths) == 0 {
		return out, nil
	}

	if err := r.codec.Ready(); err != nil {
		return out, err
	}

	backupDir := filepath.Join(req.WorkDir, req.BackupDirName)
	total := len(req.Paths)
	out.Stats.Total = total

	for i, src := range req.Paths {
		r.log.Info("[%d/%d] %s", i+1, total, filepath.Base(src))
		r.processFile(src, backupDir, req.RemoveSource, &out)

		out.Stats.Done++
		notifyProgress(req.Progress, out.Stats.Done, total)
	}

	return out, nil
}

// processFile runs the per-file state machine:
//
//	backup -> convert -> (if removeSource) delete
//
// Backup or convert failures record one FileError and skip the rest. A
// delete failure after a successful conversion keeps the Result and adds a
// distinct cleanup FileError for the same path.
func (r *Runner) processFile(src, backupDir string, removeSource bool, out *Outcome) {
	var srcSize int64
	if info, err := os.Stat(src); err == nil {
		srcSize = info.Size()
	}

	if err := backup.Copy(src, backupDir); err != nil {
		r.log.Error("  %v", err)
		out.Errors = append(out.Errors, FileError{Source: src, Kind: KindBackup, Message: err.Error()})
		out.Stats.Failed++
		return
	}

	res, kind, err := r.convertFile(src)
	if err != nil {
		r.log.Error("  %v", err)
		out.Errors = append(out.Errors, FileError{Source: src, Kind: kind, Message: err.Error()})
		out.Stats.Failed++
		return
	}

	out.Results = append(out.Results, res)
	out.Stats.Converted++
	out.Stats.SourceBytes += srcSize
	out.Stats.OutputBytes += res.SizeBytes
	r.log.Success("  -> %s (quality %d, %s)",
		filepath.Base(res.Target), res.Quality, display.FormatSize(res.SizeBytes))

	if !removeSource {
		return
	}
	if err := r.remove(src); err != nil {
		msg := fmt.Sprintf("converted, but removing the original failed: %v", err)
		r.log.Warn("  %s", msg)
		out.Errors = append(out.Errors, FileError{Source: src, Kind: KindCleanup, Message: msg})
		out.Stats.CleanupFailures++
	}
}

// removeSourceFile deletes src; a source that already vanished is fine.
func removeSourceFile(src string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(src)
}
