package compose

// CandidateItem is one row of the host's candidate popup.
type CandidateItem struct {
	Index  int
	Output string
}

// Effects is what one transition asks the host to apply. Display and
// Candidates describe the composition to render (empty Candidates means hide
// the popup); Commit is only meaningful when Committed is set and holds the
// exact string to insert in place of the composition range. Ended signals
// that the composition closed and the underline should clear. Consumed is
// false for events the machine did not handle, letting the host pass the raw
// key through.
type Effects struct {
	Display    string
	Boundaries []int
	Candidates []CandidateItem
	Commit     string
	Committed  bool
	Consumed   bool
	Ended      bool
}

// unconsumed is the no-op result for events the machine does not handle.
func unconsumed() Effects {
	return Effects{}
}
