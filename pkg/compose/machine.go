package compose

import (
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/sitelen/pkg/suggest"
)

// Machine is the two-state composition driver: Idle until a letter opens a
// Session, Composing until the session commits, releases or aborts. Every
// transition runs to completion under the machine's lock; there is no
// cancellation of an in-flight transition.
type Machine struct {
	mu      sync.Mutex
	engine  *suggest.Engine
	session Session
}

// NewMachine creates an idle machine over a suggestion engine.
func NewMachine(engine *suggest.Engine) *Machine {
	return &Machine{engine: engine}
}

// Handle runs one transition for a normalized event, blocking on the
// machine's lock for the duration. Safe to retry after a host-side failure:
// an unconsumed event leaves the session untouched.
func (m *Machine) Handle(ev Event) Effects {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transition(ev)
}

// NotifyFocusLost is the try-variant entry point for the host's termination
// notification path, which may run inside a callback that already holds a
// conflicting route to the same lock. It returns false without touching the
// session when the lock cannot be acquired immediately.
func (m *Machine) NotifyFocusLost() (Effects, bool) {
	if !m.mu.TryLock() {
		log.Debug("Focus-lost notification skipped: transition in flight")
		return Effects{}, false
	}
	defer m.mu.Unlock()
	return m.transition(FocusLost()), true
}

// SwapEngine replaces the suggestion engine, e.g. after a dictionary reload.
// An open composition recomputes its candidates against the new engine.
func (m *Machine) SwapEngine(engine *suggest.Engine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engine = engine
	if m.session.Active {
		m.session.Suggestions = m.engine.Suggest(m.session.Spelling)
	}
}

// Composing reports whether a composition is open.
func (m *Machine) Composing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Active
}

// Words returns the number of spellings in the current index.
func (m *Machine) Words() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.engine.Index().Words()
}

func (m *Machine) transition(ev Event) Effects {
	if !m.session.Active {
		if ev.Kind == EventLetter {
			m.session.Active = true
			m.session.Spelling = string(ev.Rune)
			return m.refresh()
		}
		// Idle ignores everything else; the host passes the key through.
		return unconsumed()
	}

	switch ev.Kind {
	case EventLetter:
		m.session.Spelling += string(ev.Rune)
		return m.refresh()

	case EventBackspace:
		_, size := utf8.DecodeLastRuneInString(m.session.Spelling)
		m.session.Spelling = m.session.Spelling[:len(m.session.Spelling)-size]
		if m.session.Spelling == "" {
			return m.endDiscard()
		}
		return m.refresh()

	case EventNumber:
		return m.applySelect(ev.Index)

	case EventSpace:
		return m.applySelect(0)

	case EventEnter:
		text := m.session.Spelling
		if m.session.Selected != "" {
			text = m.session.Selected + " " + m.session.Spelling
		}
		return m.endCommit(text)

	case EventPunct:
		if m.engine.Index().Joiner(ev.Rune) {
			m.session.Spelling += string(ev.Rune)
			return m.refresh()
		}
		return m.endCommit(m.session.Selected + m.session.Spelling + m.remapPunct(ev.Rune))

	case EventDisable, EventFocusLost:
		// Abort semantics: the unresolved tail goes out verbatim.
		return m.endCommit(m.session.Selected + m.session.Spelling)
	}

	return unconsumed()
}

// applySelect applies the suggestion at index i, or releases the pending
// text when there is nothing to select. Out-of-range indexes are a no-op and
// the event is reported unconsumed.
func (m *Machine) applySelect(i int) Effects {
	if len(m.session.Suggestions) == 0 {
		if i == 0 {
			// Output chosen earlier in this composition goes out with the
			// unmatched remainder.
			return m.endCommit(m.session.Selected + m.session.Spelling)
		}
		return unconsumed()
	}
	if i < 0 || i >= len(m.session.Suggestions) {
		return unconsumed()
	}

	chosen := m.session.Suggestions[i]
	consumed := chosen.Consumed()
	m.session.Selected += chosen.Output

	if consumed == len(m.session.Spelling) {
		return m.endCommit(m.session.Selected)
	}
	m.session.Spelling = m.session.Spelling[consumed:]
	return m.refresh()
}

// remapPunct resolves a terminator-class punctuation character: paired
// quotes alternate via the session counter, remapped punctuation uses the
// dictionary table, anything else passes through unchanged.
func (m *Machine) remapPunct(r rune) string {
	idx := m.engine.Index()
	if _, isQuote := idx.Quote(r, 0); isQuote {
		out, _ := idx.Quote(r, m.session.nextQuoteUse(r))
		return out
	}
	if out, ok := idx.Punctuation(r); ok {
		return out
	}
	return string(r)
}

// refresh recomputes suggestions from the current spelling and builds the
// render effects. Calling it twice without a mutation yields identical
// output; it touches no host resource.
func (m *Machine) refresh() Effects {
	m.session.Suggestions = m.engine.Suggest(m.session.Spelling)

	eff := Effects{
		Display:  m.session.Selected + m.session.Spelling,
		Consumed: true,
	}
	if len(m.session.Suggestions) > 0 {
		first := m.session.Suggestions[0]
		eff.Boundaries = append([]int(nil), first.Boundaries...)
		eff.Candidates = make([]CandidateItem, len(m.session.Suggestions))
		for i, s := range m.session.Suggestions {
			eff.Candidates[i] = CandidateItem{Index: i, Output: s.Output}
		}
	}
	log.Debugf("Composing %q: %d candidates", m.session.Spelling, len(eff.Candidates))
	return eff
}

// endCommit closes the composition and hands the final text to the host.
func (m *Machine) endCommit(text string) Effects {
	m.session.reset()
	return Effects{
		Commit:    text,
		Committed: true,
		Consumed:  true,
		Ended:     true,
	}
}

// endDiscard closes the composition without emitting text (backspace on the
// last remaining character).
func (m *Machine) endDiscard() Effects {
	m.session.reset()
	return Effects{
		Consumed: true,
		Ended:    true,
	}
}
