package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Load reads a dictionary file into a Table. The format is line-oriented:
//
//	# comment
//	toki      word      alt1 alt2    (word entry: spelling, output, alternatives)
//	.         。                     (punctuation remap: source -> output)
//	"         「 」                  (paired quote: source -> open, close)
//
// Fields are whitespace separated. A line whose first field is a single
// non-letter character is a punctuation or quote remap depending on how many
// output fields follow. Malformed lines are skipped with a warning; loading
// only fails when the file cannot be read at all.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer file.Close()

	table := NewTable()
	scanner := bufio.NewScanner(file)
	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++
		if !parseLine(table, scanner.Text()) {
			skipped++
			log.Warnf("Skipping malformed dictionary line %s:%d: %q", path, lineNo, scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}

	log.Debugf("Loaded dictionary %s: %d words, %d puncts, %d quote pairs, %d lines skipped",
		path, table.Len(), len(table.Puncts), len(table.Quotes), skipped)
	return table, nil
}

// parseLine adds one line to the table. Returns false when the line is
// malformed; comments and blank lines count as parsed.
func parseLine(t *Table, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return true
	}

	fields := strings.Fields(line)
	key := fields[0]

	if r, size := utf8.DecodeRuneInString(key); size == len(key) && !isSpellingRune(r) {
		switch len(fields) {
		case 2:
			t.Puncts[r] = fields[1]
			return true
		case 3:
			t.Quotes[r] = QuotePair{Open: fields[1], Close: fields[2]}
			return true
		default:
			return false
		}
	}

	if len(fields) < 2 {
		return false
	}
	spelling := strings.ToLower(key)
	for _, r := range spelling {
		if !isSpellingRune(r) {
			return false
		}
	}
	t.Add(spelling, fields[1:])
	return true
}

// isSpellingRune reports whether a rune may appear in a spelling key.
// Spellings are lowercase Latin letters, optionally joined by hyphens or
// apostrophes inside a word.
func isSpellingRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == '-' || r == '\'':
		return true
	}
	return false
}
