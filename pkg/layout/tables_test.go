package layout

import "testing"

func TestBuildPrependsEmptyCandidate(t *testing.T) {
	tables := Build(RawTables{
		Initials: []Candidate{{ID: "T", Text: "t"}, {ID: "K", Text: "k"}},
	})

	if len(tables.Initials) != 3 {
		t.Fatalf("expected 3 initials, got %d", len(tables.Initials))
	}
	if tables.Initials[0] != (Candidate{}) {
		t.Errorf("expected empty candidate first, got %+v", tables.Initials[0])
	}
	if tables.Initials[1].ID != "T" || tables.Initials[2].ID != "K" {
		t.Errorf("entry order not preserved: %+v", tables.Initials)
	}
	// absent tables still get the empty option
	if len(tables.Vowels) != 1 || tables.Vowels[0] != (Candidate{}) {
		t.Errorf("missing table should become a bare empty list, got %+v", tables.Vowels)
	}
}

func TestBuildKeepsExistingEmptyCandidate(t *testing.T) {
	tables := Build(RawTables{
		Vowels: []Candidate{{ID: "A", Text: "a"}, {ID: "", Text: ""}},
	})

	if len(tables.Vowels) != 2 {
		t.Fatalf("empty candidate duplicated: %+v", tables.Vowels)
	}
	// the existing entry keeps its position, nothing is prepended
	if tables.Vowels[0].ID != "A" {
		t.Errorf("entry order changed: %+v", tables.Vowels)
	}
}

func TestBuildSuffixPrecedence(t *testing.T) {
	testCases := []struct {
		name    string
		raw     RawTables
		wantID  string
		wantLen int
	}{
		{
			name: "suffix wins when present",
			raw: RawTables{
				Suffix:   []Candidate{{ID: "S", Text: "s"}},
				Suffixes: []Candidate{{ID: "X", Text: "x"}},
			},
			wantID:  "S",
			wantLen: 2,
		},
		{
			name: "suffixes used when suffix empty",
			raw: RawTables{
				Suffixes: []Candidate{{ID: "X", Text: "x"}},
			},
			wantID:  "X",
			wantLen: 2,
		},
		{
			name:    "both absent",
			raw:     RawTables{},
			wantLen: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tables := Build(tc.raw)
			if len(tables.Suffixes) != tc.wantLen {
				t.Fatalf("expected %d suffixes, got %+v", tc.wantLen, tables.Suffixes)
			}
			if tc.wantID != "" && tables.Suffixes[1].ID != tc.wantID {
				t.Errorf("expected suffix %q, got %+v", tc.wantID, tables.Suffixes[1])
			}
		})
	}
}

func TestCandidateLiteral(t *testing.T) {
	testCases := []struct {
		text     string
		literal  bool
		fragment string
	}{
		{"t", true, "t"},
		{"", true, ""},
		{"{bksp}", false, ""},
		{"a{sp}", false, ""},
	}

	for _, tc := range testCases {
		c := Candidate{ID: "X", Text: tc.text}
		if c.Literal() != tc.literal {
			t.Errorf("Literal(%q) = %v, want %v", tc.text, c.Literal(), tc.literal)
		}
		if c.Fragment() != tc.fragment {
			t.Errorf("Fragment(%q) = %q, want %q", tc.text, c.Fragment(), tc.fragment)
		}
	}
}
