package suggest

import (
	"github.com/bastiangx/sitelen/pkg/dictionary"
)

// DefaultLimit caps the candidate list when no limit is configured.
const DefaultLimit = 5

// Suggestion is one proposed rendering of some prefix of the spelling
// buffer. Boundaries holds one byte offset per matched word, ascending; the
// last offset marks how much of the buffer the suggestion consumes.
type Suggestion struct {
	Output     string
	Boundaries []int
}

// Consumed returns the byte offset of input the suggestion resolves.
func (s Suggestion) Consumed() int {
	if len(s.Boundaries) == 0 {
		return 0
	}
	return s.Boundaries[len(s.Boundaries)-1]
}

// Engine answers candidate queries against one immutable index. A new Engine
// is built when the dictionary reloads; the Engine itself never mutates.
type Engine struct {
	index    *dictionary.Index
	limit    int
	sentence bool
}

var _ ISuggester = (*Engine)(nil)

// NewEngine creates an engine over an index. A non-positive limit falls back
// to DefaultLimit; sentence toggles multi-word matching.
func NewEngine(index *dictionary.Index, limit int, sentence bool) *Engine {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Engine{index: index, limit: limit, sentence: sentence}
}

// Index exposes the underlying dictionary index for flat punctuation, quote
// and joiner lookups.
func (e *Engine) Index() *dictionary.Index {
	return e.index
}

// Limit returns the configured candidate cap.
func (e *Engine) Limit() int {
	return e.limit
}

// SuggestWord returns single-word candidates for the spelling buffer.
// Prefix lengths are tried from the full buffer down to one character, so
// longer matches strictly outrank shorter ones. At a given length, an exact
// spelling emits its primary output then alternatives in declared order, and
// an ambiguous prefix emits every sharing word in discovery order. The scan
// stops once the limit is reached. An empty result is a normal outcome.
func (e *Engine) SuggestWord(spelling string) []Suggestion {
	if spelling == "" {
		return nil
	}
	var out []Suggestion
	for l := len(spelling); l >= 1 && len(out) < e.limit; l-- {
		switch c := e.index.Lookup(spelling[:l]).(type) {
		case nil:
			continue
		case dictionary.Exact:
			for _, o := range c.Entry.Outputs() {
				out = append(out, Suggestion{Output: o, Boundaries: []int{l}})
				if len(out) == e.limit {
					break
				}
			}
		case dictionary.Unique:
			out = append(out, Suggestion{Output: c.Entry.Output, Boundaries: []int{l}})
		case dictionary.Duplicates:
			for _, entry := range c.Entries {
				out = append(out, Suggestion{Output: entry.Output, Boundaries: []int{l}})
				if len(out) == e.limit {
					break
				}
			}
		}
	}
	return out
}

// Suggest builds the combined candidate list: the sentence decomposition
// first when present, then word candidates until the cap is reached. The
// sentence suggestion occupies one of the limit slots.
func (e *Engine) Suggest(spelling string) []Suggestion {
	var out []Suggestion
	if s, ok := e.SuggestSentence(spelling); ok {
		out = append(out, s)
	}
	for _, w := range e.SuggestWord(spelling) {
		if len(out) >= e.limit {
			break
		}
		out = append(out, w)
	}
	return out
}
