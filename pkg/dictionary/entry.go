// Package dictionary loads transliteration entries from line-oriented text
// files and builds the immutable prefix index the suggestion engine queries.
package dictionary

// Entry is one loaded word: a lowercase Latin spelling mapped to its primary
// output plus any alternative renderings sharing the same spelling.
type Entry struct {
	Spelling     string
	Output       string
	Alternatives []string
}

// Outputs returns the primary output followed by the alternatives, in the
// order they were declared.
func (e *Entry) Outputs() []string {
	out := make([]string, 0, 1+len(e.Alternatives))
	out = append(out, e.Output)
	out = append(out, e.Alternatives...)
	return out
}

// extend appends outputs that the entry does not carry yet. Later definitions
// of the same spelling extend the alternative list, they never replace it.
func (e *Entry) extend(outputs []string) {
	for _, o := range outputs {
		if o == e.Output {
			continue
		}
		seen := false
		for _, alt := range e.Alternatives {
			if alt == o {
				seen = true
				break
			}
		}
		if !seen {
			e.Alternatives = append(e.Alternatives, o)
		}
	}
}

// QuotePair holds the two renderings of a paired quote character. Repeated
// use of the source character alternates between Open and Close.
type QuotePair struct {
	Open  string
	Close string
}

// Table is the raw result of loading a dictionary file, before indexing.
// Entries preserve load order; punctuation and quote remaps are flat lookups.
type Table struct {
	Entries []*Entry
	Puncts  map[rune]string
	Quotes  map[rune]QuotePair

	bySpelling map[string]*Entry
}

// NewTable returns an empty table ready for Add calls.
func NewTable() *Table {
	return &Table{
		Puncts:     make(map[rune]string),
		Quotes:     make(map[rune]QuotePair),
		bySpelling: make(map[string]*Entry),
	}
}

// Add inserts a word entry or extends the existing entry for the same
// spelling with any new outputs.
func (t *Table) Add(spelling string, outputs []string) {
	if existing, ok := t.bySpelling[spelling]; ok {
		existing.extend(outputs)
		return
	}
	e := &Entry{Spelling: spelling, Output: outputs[0]}
	if len(outputs) > 1 {
		e.Alternatives = append(e.Alternatives, outputs[1:]...)
	}
	t.bySpelling[spelling] = e
	t.Entries = append(t.Entries, e)
}

// Len returns the number of distinct spellings loaded.
func (t *Table) Len() int {
	return len(t.Entries)
}
