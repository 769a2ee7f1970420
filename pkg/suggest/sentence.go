package suggest

import (
	"sort"
	"strings"

	"github.com/bastiangx/sitelen/pkg/dictionary"
)

// stepMatch is one candidate resolution of a prefix of the remaining input
// during sentence matching.
type stepMatch struct {
	output string
	length int
	score  int
}

// SuggestSentence tries to decompose the whole spelling buffer into two or
// more consecutive dictionary words and returns the combined candidate.
//
// The search is recursive backtracking over prefix lengths, longest first,
// and accepts the first branch that consumes the entire buffer with at least
// two words. The per-step score (+20*len for a unique continuation, +10+len
// otherwise) only biases the order candidates are tried within one step; it
// never compares complete decompositions, so the result is first-fit.
func (e *Engine) SuggestSentence(spelling string) (Suggestion, bool) {
	if !e.sentence || spelling == "" {
		return Suggestion{}, false
	}

	var outputs []string
	var bounds []int

	var walk func(pos int) bool
	walk = func(pos int) bool {
		for _, m := range e.stepMatches(spelling[pos:]) {
			outputs = append(outputs, m.output)
			bounds = append(bounds, pos+m.length)
			if pos+m.length == len(spelling) {
				if len(bounds) >= 2 {
					return true
				}
			} else if walk(pos + m.length) {
				return true
			}
			outputs = outputs[:len(outputs)-1]
			bounds = bounds[:len(bounds)-1]
		}
		return false
	}

	if !walk(0) {
		return Suggestion{}, false
	}
	return Suggestion{
		Output:     strings.Join(outputs, ""),
		Boundaries: append([]int(nil), bounds...),
	}, true
}

// stepMatches resolves every prefix length of the remaining input, longest
// first, then stable-sorts by score so higher-scoring matches are tried
// earlier while equal scores keep the longest-first order.
func (e *Engine) stepMatches(rem string) []stepMatch {
	var matches []stepMatch
	for l := len(rem); l >= 1; l-- {
		switch c := e.index.Lookup(rem[:l]).(type) {
		case nil:
			continue
		case dictionary.Exact:
			for _, o := range c.Entry.Outputs() {
				matches = append(matches, stepMatch{output: o, length: l, score: 10 + l})
			}
		case dictionary.Unique:
			matches = append(matches, stepMatch{output: c.Entry.Output, length: l, score: 20 * l})
		case dictionary.Duplicates:
			for _, entry := range c.Entries {
				matches = append(matches, stepMatch{output: entry.Output, length: l, score: 10 + l})
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	return matches
}
