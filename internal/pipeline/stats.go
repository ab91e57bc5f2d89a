package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total            int
	Current          int
	Stamped          int
	Skipped          int
	Failed           int
	TotalInputBytes  int64
	TotalOutputBytes int64
}

// BytesDelta returns the aggregate size difference between outputs and
// inputs. Positive means the stamped files are larger than their sources.
func (s *RunStats) BytesDelta() int64 {
	return s.TotalOutputBytes - s.TotalInputBytes
}
