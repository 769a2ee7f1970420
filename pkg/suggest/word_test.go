package suggest

import (
	"reflect"
	"testing"

	"github.com/bastiangx/sitelen/pkg/dictionary"
)

func mustIndex(t *testing.T, entries [][]string) *dictionary.Index {
	t.Helper()
	table := dictionary.NewTable()
	for _, e := range entries {
		table.Add(e[0], e[1:])
	}
	index, err := dictionary.BuildIndex(table)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	return index
}

func TestSuggestWordOrdering(t *testing.T) {
	index := mustIndex(t, [][]string{
		{"li", "A"},
		{"lon", "B"},
		{"lipu", "D"},
	})
	engine := NewEngine(index, 5, false)

	// "lil": l=3 no match, l=2 "li" Exact, l=1 "l" Duplicates (li, lon, lipu)
	got := engine.SuggestWord("lil")
	want := []Suggestion{
		{Output: "A", Boundaries: []int{2}},
		{Output: "A", Boundaries: []int{1}},
		{Output: "B", Boundaries: []int{1}},
		{Output: "D", Boundaries: []int{1}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestWord(lil) = %v, want %v", got, want)
	}

	// longer boundary lengths always come first
	for i := 1; i < len(got); i++ {
		if got[i].Consumed() > got[i-1].Consumed() {
			t.Errorf("suggestion %d consumes more than %d: %v", i, i-1, got)
		}
	}
}

func TestSuggestWordExactAlternatives(t *testing.T) {
	index := mustIndex(t, [][]string{
		{"sewi", "C", "C2", "C3"},
	})
	engine := NewEngine(index, 5, false)

	got := engine.SuggestWord("sewi")
	want := []Suggestion{
		{Output: "C", Boundaries: []int{4}},
		{Output: "C2", Boundaries: []int{4}},
		{Output: "C3", Boundaries: []int{4}},
		{Output: "C", Boundaries: []int{3}},
		{Output: "C", Boundaries: []int{2}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestWord(sewi) = %v, want %v", got, want)
	}
}

func TestSuggestWordCap(t *testing.T) {
	index := mustIndex(t, [][]string{
		{"ta", "T1"},
		{"te", "T2"},
		{"ti", "T3"},
		{"to", "T4"},
		{"tu", "T5"},
		{"tan", "T6"},
	})

	for _, limit := range []int{1, 2, 3, 5} {
		engine := NewEngine(index, limit, false)
		got := engine.SuggestWord("t")
		if len(got) != limit {
			t.Errorf("limit %d: got %d suggestions", limit, len(got))
		}
	}

	// non-positive limit falls back to the default
	engine := NewEngine(index, 0, false)
	if got := engine.SuggestWord("t"); len(got) != DefaultLimit {
		t.Errorf("default limit: got %d suggestions", len(got))
	}
}

func TestSuggestWordNoMatch(t *testing.T) {
	index := mustIndex(t, [][]string{{"li", "A"}})
	engine := NewEngine(index, 5, false)

	if got := engine.SuggestWord("xyz"); len(got) != 0 {
		t.Errorf("SuggestWord(xyz) = %v, want empty", got)
	}
	if got := engine.SuggestWord(""); len(got) != 0 {
		t.Errorf("SuggestWord(\"\") = %v, want empty", got)
	}
}

func TestSuggestWordFallsBackToShorterPrefix(t *testing.T) {
	index := mustIndex(t, [][]string{{"jan", "J"}})
	engine := NewEngine(index, 5, false)

	// "janx" matches nothing at full length; "jan" still matches
	got := engine.SuggestWord("janx")
	if len(got) == 0 {
		t.Fatal("expected fallback suggestions for janx")
	}
	if got[0].Output != "J" || got[0].Consumed() != 3 {
		t.Errorf("SuggestWord(janx)[0] = %v, want J consuming 3", got[0])
	}
}

func TestSuggestIdempotent(t *testing.T) {
	index := mustIndex(t, [][]string{
		{"li", "A"},
		{"lon", "B"},
	})
	engine := NewEngine(index, 5, true)

	first := engine.Suggest("lilon")
	second := engine.Suggest("lilon")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Suggest not idempotent: %v then %v", first, second)
	}
}

func TestSuggestSentenceOccupiesOneSlot(t *testing.T) {
	index := mustIndex(t, [][]string{
		{"li", "A"},
		{"lon", "B"},
	})
	engine := NewEngine(index, 2, true)

	got := engine.Suggest("lilon")
	if len(got) != 2 {
		t.Fatalf("Suggest(lilon) returned %d candidates, want 2", len(got))
	}
	// sentence candidate first, covering the whole buffer
	if got[0].Output != "AB" || got[0].Consumed() != 5 {
		t.Errorf("sentence candidate = %v, want AB consuming 5", got[0])
	}
	// the remaining slot goes to the best word candidate
	if got[1].Output != "A" || got[1].Consumed() != 2 {
		t.Errorf("word candidate = %v, want A consuming 2", got[1])
	}
}
