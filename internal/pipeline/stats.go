package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
// Done counts terminal dispositions and always reaches Total; a cleanup
// failure leaves Converted intact.
type RunStats struct {
	Total           int
	Done            int
	Converted       int
	Failed          int
	CleanupFailures int
	SourceBytes     int64 // Input bytes of successfully converted files.
	OutputBytes     int64 // Bytes written for successfully converted files.
}

// SpaceSaved returns the byte difference between converted inputs and their
// outputs. Positive means the JPEGs are smaller than the originals.
func (s *RunStats) SpaceSaved() int64 {
	return s.SourceBytes - s.OutputBytes
}
