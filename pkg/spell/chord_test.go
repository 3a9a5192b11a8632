package spell

import (
	"testing"

	"github.com/Aquaduckd/pinchordlookup/pkg/layout"
)

func buildTables(initials, vowels, finals, suffixes []layout.Candidate) *layout.Tables {
	return layout.Build(layout.RawTables{
		Initials: initials,
		Vowels:   vowels,
		Finals:   finals,
		Suffixes: suffixes,
	})
}

func collectChords(t *layout.Tables) []Chord {
	var chords []Chord
	Enumerate(t, func(ch Chord) bool {
		chords = append(chords, ch)
		return true
	})
	return chords
}

func TestEnumerateOrderAndOutputs(t *testing.T) {
	tables := buildTables(
		[]layout.Candidate{{ID: "T", Text: "t"}},
		[]layout.Candidate{{ID: "A", Text: "a"}},
		nil, nil,
	)

	want := []Chord{
		{Output: "", Stroke: Stroke{"", "", "", ""}},
		{Output: "a", Stroke: Stroke{"", "A", "", ""}},
		{Output: "t", Stroke: Stroke{"T", "", "", ""}},
		{Output: "ta", Stroke: Stroke{"T", "A", "", ""}},
	}

	chords := collectChords(tables)
	if len(chords) != len(want) {
		t.Fatalf("expected %d chords, got %d", len(want), len(chords))
	}
	for i, w := range want {
		if chords[i] != w {
			t.Errorf("chord[%d] = %+v, want %+v", i, chords[i], w)
		}
	}
}

func TestEnumerateNonLiteralFragments(t *testing.T) {
	tables := buildTables(
		[]layout.Candidate{{ID: "T", Text: "t"}},
		nil, nil,
		[]layout.Candidate{{ID: "BK", Text: "{bksp}"}},
	)

	chords := collectChords(tables)
	// the templated suffix still pairs with every initial but adds no text
	var found bool
	for _, ch := range chords {
		if ch.Stroke == (Stroke{"T", "", "", "BK"}) {
			found = true
			if ch.Output != "t" {
				t.Errorf("templated fragment leaked into output: %q", ch.Output)
			}
		}
	}
	if !found {
		t.Error("templated candidate missing from enumeration")
	}
}

func TestEnumerateKeepsDuplicateOutputs(t *testing.T) {
	tables := buildTables(
		[]layout.Candidate{{ID: "T", Text: "t"}, {ID: "D", Text: "t"}},
		nil, nil, nil,
	)

	var strokes []Stroke
	Enumerate(tables, func(ch Chord) bool {
		if ch.Output == "t" {
			strokes = append(strokes, ch.Stroke)
		}
		return true
	})
	if len(strokes) != 2 {
		t.Fatalf("homophone chords collapsed: %+v", strokes)
	}
	if strokes[0][0] != "T" || strokes[1][0] != "D" {
		t.Errorf("homophones out of enumeration order: %+v", strokes)
	}
}
