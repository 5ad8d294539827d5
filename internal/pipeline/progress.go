package pipeline

// ProgressSink observes batch progress. Progress is invoked exactly once
// per input file, after that file's outcome is settled, with the number of
// files finished so far and the batch total.
type ProgressSink interface {
	Progress(done, total int)
}

// ProgressFunc adapts a plain function to a ProgressSink.
type ProgressFunc func(done, total int)

// Progress implements ProgressSink.
func (f ProgressFunc) Progress(done, total int) { f(done, total) }

// notifyProgress invokes the sink best-effort: a panicking sink must never
// unwind the batch loop.
func notifyProgress(s ProgressSink, done, total int) {
	if s == nil {
		return
	}
	defer func() { _ = recover() }()
	s.Progress(done, total)
}
