package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/sitelen/pkg/compose"
	"github.com/bastiangx/sitelen/pkg/config"
	"github.com/bastiangx/sitelen/pkg/dictionary"
	"github.com/bastiangx/sitelen/pkg/suggest"
)

// Server handles the IPC between a host process and the composition machine.
type Server struct {
	machine  *compose.Machine
	cfg      *config.Config
	dictPath string

	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates a server speaking msgpack over stdin/stdout.
func NewServer(machine *compose.Machine, cfg *config.Config, dictPath string) *Server {
	return NewServerIO(machine, cfg, dictPath, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over explicit streams.
func NewServerIO(machine *compose.Machine, cfg *config.Config, dictPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		machine:  machine,
		cfg:      cfg,
		dictPath: dictPath,
		dec:      msgpack.NewDecoder(r),
		enc:      msgpack.NewEncoder(w),
	}
}

// Start begins reading requests. Requests are handled synchronously in
// arrival order; the loop returns on EOF.
func (s *Server) Start() error {
	log.Debug("Starting IPC server.")
	s.send(StatusResponse{Status: "ready", Words: s.machine.Words()})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Op {
	case "event":
		s.handleEvent(req)
	case "reload":
		s.handleReload(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok", Words: s.machine.Words()})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
	}
}

// handleEvent decodes one normalized event, runs the transition and sends
// the effects back with timing info.
func (s *Server) handleEvent(req Request) {
	ev, err := decodeEvent(req)
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}

	start := time.Now()

	var eff compose.Effects
	if ev.Kind == compose.EventFocusLost {
		// Termination path: non-blocking attempt, host may retry.
		var acquired bool
		eff, acquired = s.machine.NotifyFocusLost()
		if !acquired {
			log.Debug("focus_lost dropped: machine busy")
		}
	} else {
		eff = s.machine.Handle(ev)
	}

	resp := EventResponse{
		ID:         req.ID,
		Display:    eff.Display,
		Boundaries: eff.Boundaries,
		Commit:     eff.Commit,
		Committed:  eff.Committed,
		Consumed:   eff.Consumed,
		Ended:      eff.Ended,
		TimeTaken:  time.Since(start).Microseconds(),
	}
	if len(eff.Candidates) > 0 {
		resp.Candidates = make([]CandidateItem, len(eff.Candidates))
		for i, c := range eff.Candidates {
			resp.Candidates[i] = CandidateItem{Index: c.Index, Output: c.Output}
		}
	}
	s.send(resp)
}

// handleReload rebuilds the index from the dictionary file and swaps it into
// the machine under its transition lock.
func (s *Server) handleReload(req Request) {
	if err := s.Reload(); err != nil {
		s.send(StatusResponse{ID: req.ID, Status: "error", Error: err.Error()})
		return
	}
	s.send(StatusResponse{ID: req.ID, Status: "ok", Words: s.machine.Words()})
}

// Reload reloads the dictionary from disk. Also used as the fsnotify watcher
// callback.
func (s *Server) Reload() error {
	table, err := dictionary.Load(s.dictPath)
	if err != nil {
		return err
	}
	index, err := dictionary.BuildIndex(table)
	if err != nil {
		return err
	}
	engine := suggest.NewEngine(index, s.cfg.Engine.MaxCandidates, s.cfg.Engine.Sentence)
	s.machine.SwapEngine(engine)
	log.Debugf("Dictionary reloaded: %d words", index.Words())
	return nil
}

func decodeEvent(req Request) (compose.Event, error) {
	switch req.Kind {
	case "letter", "punct":
		r, size := utf8.DecodeRuneInString(req.Char)
		if size == 0 || r == utf8.RuneError {
			return compose.Event{}, fmt.Errorf("event %q needs a valid char", req.Kind)
		}
		if req.Kind == "letter" {
			return compose.Letter(r), nil
		}
		return compose.Punct(r), nil
	case "number":
		if req.Index < 1 || req.Index > 9 {
			return compose.Event{}, fmt.Errorf("number event index out of range: %d", req.Index)
		}
		return compose.Number(req.Index), nil
	case "space":
		return compose.Space(), nil
	case "backspace":
		return compose.Backspace(), nil
	case "enter":
		return compose.Enter(), nil
	case "disable":
		return compose.Disable(), nil
	case "focus_lost":
		return compose.FocusLost(), nil
	}
	return compose.Event{}, fmt.Errorf("unknown event kind: %q", req.Kind)
}

func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
