package spell

import (
	"testing"

	"github.com/Aquaduckd/pinchordlookup/pkg/layout"
)

func TestIndexMatchesLongestFirst(t *testing.T) {
	idx := NewIndex(buildTables(
		[]layout.Candidate{{ID: "T", Text: "t"}},
		[]layout.Candidate{{ID: "IA", Text: "ia"}},
		nil, nil,
	))

	ms := idx.Matches("tian")
	// candidates prefixing "tian": "tia" (T+IA) and "t" (T); "ia" does not
	if len(ms) != 2 {
		t.Fatalf("expected 2 matches, got %+v", ms)
	}
	if ms[0].Output != "tia" || ms[1].Output != "t" {
		t.Errorf("matches not longest-first: %+v", ms)
	}
}

func TestIndexMatchesStrokeOrder(t *testing.T) {
	idx := NewIndex(buildTables(
		[]layout.Candidate{{ID: "T", Text: "t"}, {ID: "D", Text: "t"}},
		nil, nil, nil,
	))

	ms := idx.Matches("to")
	if len(ms) != 1 || ms[0].Output != "t" {
		t.Fatalf("matches = %+v", ms)
	}
	strokes := ms[0].Strokes
	if len(strokes) != 2 || strokes[0][0] != "T" || strokes[1][0] != "D" {
		t.Errorf("homophone strokes out of enumeration order: %+v", strokes)
	}
}

func TestIndexMatchesEmptyCases(t *testing.T) {
	idx := NewIndex(buildTables(
		[]layout.Candidate{{ID: "T", Text: "t"}},
		nil, nil, nil,
	))

	if ms := idx.Matches(""); ms != nil {
		t.Errorf("empty rest must have no matches, got %+v", ms)
	}
	if ms := idx.Matches("xyz"); ms != nil {
		t.Errorf("unmatched rest must have no matches, got %+v", ms)
	}
}

func TestIndexMatchCalls(t *testing.T) {
	idx := NewIndex(buildTables(nil, nil, nil, nil))
	if idx.MatchCalls() != 0 {
		t.Fatalf("new index has %d calls", idx.MatchCalls())
	}
	idx.Matches("a")
	idx.Matches("b")
	if idx.MatchCalls() != 2 {
		t.Errorf("expected 2 calls, got %d", idx.MatchCalls())
	}
}
