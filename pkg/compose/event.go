// Package compose owns the composition session and the state machine that
// turns normalized input events into display, candidate and commit effects.
// The host delivers decoded events; all rendering stays on the host side.
package compose

import "fmt"

// EventKind tags the normalized input events the machine understands.
type EventKind int

const (
	EventLetter EventKind = iota
	EventNumber
	EventPunct
	EventSpace
	EventBackspace
	EventEnter
	EventDisable
	EventFocusLost
)

// Event is one normalized input event. The host is responsible for raw
// keycode decoding and modifier policy; only these shapes reach the machine.
type Event struct {
	Kind EventKind
	// Rune carries the character for EventLetter and EventPunct.
	Rune rune
	// Index is the zero-based candidate index for EventNumber.
	Index int
}

// Letter builds a letter keystroke event.
func Letter(r rune) Event {
	return Event{Kind: EventLetter, Rune: r}
}

// Number builds a candidate selection event from the pressed digit (1-based,
// as shown in the host's popup).
func Number(n int) Event {
	return Event{Kind: EventNumber, Index: n - 1}
}

// Punct builds a punctuation keystroke event.
func Punct(r rune) Event {
	return Event{Kind: EventPunct, Rune: r}
}

// Space builds the confirm event.
func Space() Event {
	return Event{Kind: EventSpace}
}

// Backspace builds the delete-last-character event.
func Backspace() Event {
	return Event{Kind: EventBackspace}
}

// Enter builds the release event committing raw input verbatim.
func Enter() Event {
	return Event{Kind: EventEnter}
}

// Disable builds the toggle-off/capslock event.
func Disable() Event {
	return Event{Kind: EventDisable}
}

// FocusLost builds the focus-loss lifecycle event.
func FocusLost() Event {
	return Event{Kind: EventFocusLost}
}

func (k EventKind) String() string {
	switch k {
	case EventLetter:
		return "letter"
	case EventNumber:
		return "number"
	case EventPunct:
		return "punct"
	case EventSpace:
		return "space"
	case EventBackspace:
		return "backspace"
	case EventEnter:
		return "enter"
	case EventDisable:
		return "disable"
	case EventFocusLost:
		return "focus_lost"
	}
	return "unknown"
}

func (e Event) String() string {
	switch e.Kind {
	case EventLetter, EventPunct:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Rune)
	case EventNumber:
		return fmt.Sprintf("number(%d)", e.Index)
	}
	return e.Kind.String()
}
