package compose

import "github.com/bastiangx/sitelen/pkg/suggest"

// Session is the single mutable composition record. Exactly one exists per
// machine and it is only touched inside a transition, under the machine's
// lock. Spelling holds raw unresolved input, Selected holds output already
// chosen within this composition but not yet sent to the host.
type Session struct {
	Spelling    string
	Selected    string
	Suggestions []suggest.Suggestion
	Active      bool

	// quoteUse counts uses per paired-quote character so repeated presses
	// alternate open/close. It survives composition resets; only a process
	// restart clears it.
	quoteUse map[rune]int
}

// reset ends the composition, clearing everything except the quote counters.
func (s *Session) reset() {
	s.Spelling = ""
	s.Selected = ""
	s.Suggestions = nil
	s.Active = false
}

// nextQuoteUse returns the current use count for a quote character and
// advances it.
func (s *Session) nextQuoteUse(r rune) int {
	if s.quoteUse == nil {
		s.quoteUse = make(map[rune]int)
	}
	n := s.quoteUse[r]
	s.quoteUse[r] = n + 1
	return n
}
