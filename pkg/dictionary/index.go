package dictionary

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Candidate classifies what a prefix string can continue into. It is a closed
// sum: a prefix is either a complete spelling (Exact), the unambiguous start
// of exactly one spelling (Unique), or shared by several distinct spellings
// (Duplicates). Callers dispatch once per lookup with a type switch.
type Candidate interface {
	candidate()
}

// Exact marks a prefix that is itself a loaded spelling. The entry carries
// the primary output and any alternatives, in declared order.
type Exact struct {
	Entry *Entry
}

// Unique marks a prefix continued by exactly one loaded spelling.
type Unique struct {
	Entry *Entry
}

// Duplicates marks a prefix shared by two or more distinct spellings, listed
// in the order they were discovered during index construction.
type Duplicates struct {
	Entries []*Entry
}

func (Exact) candidate()      {}
func (Unique) candidate()     {}
func (Duplicates) candidate() {}

// Index is the immutable lookup structure built once from a loaded Table.
// Every prefix of every spelling has exactly one Candidate entry, stored in
// a patricia trie keyed by the prefix string.
type Index struct {
	trie    *patricia.Trie
	puncts  map[rune]string
	quotes  map[rune]QuotePair
	joiners map[rune]struct{}
	words   int
}

// protoNode accumulates per-prefix state during construction.
type protoNode struct {
	entries []*Entry
	exact   *Entry
}

// BuildIndex classifies every prefix of every loaded spelling and stores the
// result. It fails only on malformed entries; duplicate spellings have been
// merged by the Table already.
func BuildIndex(table *Table) (*Index, error) {
	proto := make(map[string]*protoNode)
	joiners := make(map[rune]struct{})

	for _, entry := range table.Entries {
		if entry.Spelling == "" || entry.Output == "" {
			return nil, fmt.Errorf("malformed dictionary entry %q -> %q", entry.Spelling, entry.Output)
		}
		for _, r := range entry.Spelling {
			if !(r >= 'a' && r <= 'z') {
				joiners[r] = struct{}{}
			}
		}
		for i := 1; i <= len(entry.Spelling); i++ {
			prefix := entry.Spelling[:i]
			node := proto[prefix]
			if node == nil {
				node = &protoNode{}
				proto[prefix] = node
			}
			node.entries = append(node.entries, entry)
			if i == len(entry.Spelling) {
				node.exact = entry
			}
		}
	}

	trie := patricia.NewTrie()
	for prefix, node := range proto {
		var c Candidate
		switch {
		case node.exact != nil:
			c = Exact{Entry: node.exact}
		case len(node.entries) == 1:
			c = Unique{Entry: node.entries[0]}
		default:
			c = Duplicates{Entries: node.entries}
		}
		trie.Set(patricia.Prefix(prefix), c)
	}

	log.Debugf("Index built: %d words, %d prefixes", table.Len(), len(proto))
	return &Index{
		trie:    trie,
		puncts:  table.Puncts,
		quotes:  table.Quotes,
		joiners: joiners,
		words:   table.Len(),
	}, nil
}

// Lookup returns the Candidate entry for a prefix, or nil when the string is
// not a prefix of any loaded spelling. Cost is bounded by the prefix length.
func (ix *Index) Lookup(prefix string) Candidate {
	if prefix == "" {
		return nil
	}
	item := ix.trie.Get(patricia.Prefix(prefix))
	if item == nil {
		return nil
	}
	return item.(Candidate)
}

// Punctuation returns the remapped output for a punctuation character.
func (ix *Index) Punctuation(r rune) (string, bool) {
	out, ok := ix.puncts[r]
	return out, ok
}

// Quote returns the rendering of a paired quote character for its nth use.
// Even counts open, odd counts close; the counter lives in the Session since
// the index is immutable.
func (ix *Index) Quote(r rune, n int) (string, bool) {
	pair, ok := ix.quotes[r]
	if !ok {
		return "", false
	}
	if n%2 == 0 {
		return pair.Open, true
	}
	return pair.Close, true
}

// Joiner reports whether a non-letter rune occurs inside at least one loaded
// spelling. Joiner characters compose like letters instead of terminating.
func (ix *Index) Joiner(r rune) bool {
	_, ok := ix.joiners[r]
	return ok
}

// Words returns the number of distinct spellings indexed.
func (ix *Index) Words() int {
	return ix.words
}
