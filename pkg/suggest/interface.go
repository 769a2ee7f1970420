// Package suggest is the core ranking engine, turning a raw spelling buffer
// into ordered transliteration candidates via prefix lookups on the index.
package suggest

// ISuggester defines the interface the composition machine and CLI query.
type ISuggester interface {
	// Suggest returns the combined candidate list for a spelling buffer:
	// the sentence decomposition first when one exists, then single-word
	// candidates, capped at the configured limit.
	Suggest(spelling string) []Suggestion

	// SuggestWord returns single-word candidates, longest prefix first.
	SuggestWord(spelling string) []Suggestion

	// SuggestSentence attempts a >=2 word decomposition of the whole buffer.
	SuggestSentence(spelling string) (Suggestion, bool)
}
