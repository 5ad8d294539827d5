package pipeline

// Request describes one batch invocation. Paths are processed in the given
// order and are not deduplicated; callers usually obtain them from
// [Discover] but any list of HEIC/HEIF paths works.
type Request struct {
	Paths         []string
	WorkDir       string
	BackupDirName string // Resolved against WorkDir.
	RemoveSource  bool
	Progress      ProgressSink // Optional; invoked once per input file.
}

// ErrorKind classifies a per-file failure.
type ErrorKind string

const (
	KindBackup  ErrorKind = "backup"  // Copy into the backup folder failed.
	KindDecode  ErrorKind = "decode"  // Source could not be opened or decoded.
	KindEncode  ErrorKind = "encode"  // JPEG encoding failed mid-search.
	KindWrite   ErrorKind = "write"   // Target file could not be written.
	KindCleanup ErrorKind = "cleanup" // Conversion succeeded; removing the original failed.
)

// Result records one successful conversion.
type Result struct {
	Source    string
	Target    string
	Quality   int
	SizeBytes int64
}

// FileError records one per-file failure with its classification and the
// underlying message. A KindCleanup error accompanies a Result for the same
// source; every other kind excludes one.
type FileError struct {
	Source  string
	Kind    ErrorKind
	Message string
}

// Outcome aggregates a batch run: results and errors in input order, plus
// run counters for the summary. Each input path yields at most one Result
// and at most one FileError.
type Outcome struct {
	Results []Result
	Errors  []FileError
	Stats   RunStats
}
