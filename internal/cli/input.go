// Package cli handles cmd line input and composition display for DBG and
// testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/sitelen/internal/logger"
	"github.com/bastiangx/sitelen/internal/utils"
	"github.com/bastiangx/sitelen/pkg/compose"
)

// InputHandler drives the composition machine from stdin lines. Each rune of
// a line becomes one event, so typing `lilonsewi` then `:sp` mirrors the
// keystroke sequence a host would deliver.
type InputHandler struct {
	machine        *compose.Machine
	log            *log.Logger
	showBoundaries bool
	showTiming     bool
	eventCount     int
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(machine *compose.Machine, showBoundaries, showTiming bool) *InputHandler {
	return &InputHandler{
		machine:        machine,
		log:            logger.Default("cli"),
		showBoundaries: showBoundaries,
		showTiming:     showTiming,
	}
}

// Start begins the interface loop.
// It reads a line from stdin, feeds it to the machine rune by rune and
// prints the resulting display text, candidates and commits. Command lines
// starting with ':' map to the non-letter events.
// Loop terminates on stdin EOF or :q
func (h *InputHandler) Start() error {
	h.log.Print("sitelen CLI [DBG]")
	h.log.Print("type letters to compose; commands: :sp (space) :cr (enter) :bs (backspace) :off (disable) :q (quit)")
	reader := bufio.NewReader(os.Stdin)

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimRight(line, "\r\n")
		if line == ":q" {
			h.log.Debugf("Session done: %d events", h.eventCount)
			return nil
		}
		h.handleLine(line)
	}
}

// handleLine translates one input line into events and applies them.
func (h *InputHandler) handleLine(line string) {
	if strings.HasPrefix(line, ":") {
		switch line {
		case ":sp":
			h.apply(compose.Space())
		case ":cr":
			h.apply(compose.Enter())
		case ":bs":
			h.apply(compose.Backspace())
		case ":off":
			h.apply(compose.Disable())
		default:
			h.log.Warnf("Unknown command: %s", line)
		}
		return
	}

	for _, r := range line {
		switch {
		case utils.IsLatinLetter(r):
			h.apply(compose.Letter(r))
		case utils.IsSelectDigit(r):
			h.apply(compose.Number(int(r - '0')))
		case r == ' ':
			h.apply(compose.Space())
		default:
			h.apply(compose.Punct(r))
		}
	}
}

// apply runs one event and prints its effects.
func (h *InputHandler) apply(ev compose.Event) {
	h.eventCount++
	start := time.Now()
	eff := h.machine.Handle(ev)
	elapsed := time.Since(start)

	if h.showTiming {
		h.log.Debugf("Took [ %v ] for event %v", elapsed, ev)
	}

	if !eff.Consumed {
		h.log.Warnf("Event not consumed: %v", ev)
		return
	}
	if eff.Committed {
		h.log.Printf("commit: %q", eff.Commit)
		return
	}
	if eff.Ended {
		h.log.Print("composition discarded")
		return
	}

	if h.showBoundaries && len(eff.Boundaries) > 0 {
		h.log.Printf("compose: %s  %v", eff.Display, eff.Boundaries)
	} else {
		h.log.Printf("compose: %s", eff.Display)
	}
	for _, c := range eff.Candidates {
		clOutput := fmt.Sprintf("\033[38;5;75m%s\033[0m", c.Output)
		h.log.Printf("%2d. %s", c.Index+1, clOutput)
	}
}
