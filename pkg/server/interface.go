/*
Package server implements msgpack IPC for the composition engine.

The server exposes the state machine to a host process over stdin/stdout
using binary msgpack messages with short field tags. Each request carries an
ID and an op; responses echo the ID and include per-request timing.

An input event request:

	{"id": "ev_001", "op": "event", "k": "letter", "ch": "l"}

and its response, carrying the render and commit effects of the transition:

	{"id": "ev_001", "d": "li", "s": [{"i": 0, "o": "A"}], "ok": true, "t": 12}

Candidate selection uses the digit the host popup shows (1-based):

	{"id": "ev_002", "op": "event", "k": "number", "i": 1}

Dictionary reload and health checks round out the protocol:

	{"id": "dict_001", "op": "reload"}
	{"id": "hb_001", "op": "health"}

Messages are processed synchronously, one transition at a time; the machine
runs each transition to completion before the next request is read. The
`focus_lost` event goes through the machine's non-blocking entry point and
reports the event unconsumed when a transition is already in flight, so the
host can retry from its termination callback without deadlocking.
*/
package server

// Request is an incoming IPC message. Op selects the handler; the remaining
// fields are op-specific.
type Request struct {
	ID string `msgpack:"id"`
	Op string `msgpack:"op"`
	// Kind is the event kind for "event" ops: letter, number, punct, space,
	// backspace, enter, disable, focus_lost.
	Kind string `msgpack:"k,omitempty"`
	// Char carries the character for letter and punct events.
	Char string `msgpack:"ch,omitempty"`
	// Index is the 1-based candidate digit for number events.
	Index int `msgpack:"i,omitempty"`
}

// CandidateItem is one row of the candidate popup.
type CandidateItem struct {
	Index  int    `msgpack:"i"`
	Output string `msgpack:"o"`
}

// EventResponse carries the effects of one transition back to the host.
type EventResponse struct {
	ID         string          `msgpack:"id"`
	Display    string          `msgpack:"d"`
	Boundaries []int           `msgpack:"b,omitempty"`
	Candidates []CandidateItem `msgpack:"s,omitempty"`
	Commit     string          `msgpack:"c,omitempty"`
	Committed  bool            `msgpack:"cm,omitempty"`
	Consumed   bool            `msgpack:"ok"`
	Ended      bool            `msgpack:"e,omitempty"`
	TimeTaken  int64           `msgpack:"t"`
}

// StatusResponse answers reload and health ops.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
	Words  int    `msgpack:"w,omitempty"`
}

// ErrorResponse reports a malformed or unknown request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
