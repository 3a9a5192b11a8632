/*
Package layout loads and normalizes chord component tables.

A layout version is a JSON file mapping chord identifiers to the text
fragment each one produces, split across four component roles: initials,
vowels, finals and suffixes. The package preserves the file's entry order,
guarantees every role has a "no chord" option, and caches built tables per
version for the lifetime of the process.
*/
package layout

import "strings"

// templateMarkers flag fragments whose text is expanded at input time
// rather than typed literally. They still match structurally but
// contribute no text to a chord's output.
const templateMarkers = "{}"

// Candidate is one component-table entry: a chord identifier and the
// fragment it produces.
type Candidate struct {
	ID   string
	Text string
}

// Literal reports whether the candidate's fragment is plain text,
// free of template markers.
func (c Candidate) Literal() bool {
	return !strings.ContainsAny(c.Text, templateMarkers)
}

// Fragment returns the text the candidate contributes to a chord's
// output: its fragment when literal, "" otherwise.
func (c Candidate) Fragment() string {
	if c.Literal() {
		return c.Text
	}
	return ""
}

// RawTables holds the decoded per-version file, entries in file order.
// Both legacy suffix field names are retained until Build resolves them.
type RawTables struct {
	Initials []Candidate
	Vowels   []Candidate
	Finals   []Candidate
	Suffix   []Candidate
	Suffixes []Candidate
}

// Tables holds the four normalized candidate lists. Every list starts
// with (or contains) the empty candidate, so "skip this component" is
// always a branch during enumeration.
type Tables struct {
	Initials []Candidate
	Vowels   []Candidate
	Finals   []Candidate
	Suffixes []Candidate
}

// Build normalizes raw tables into ordered candidate lists.
// The `suffix` field wins over `suffixes` when it has entries; missing
// tables become a bare empty-candidate list.
func Build(raw RawTables) *Tables {
	suffixes := raw.Suffix
	if len(suffixes) == 0 {
		suffixes = raw.Suffixes
	}
	return &Tables{
		Initials: withEmpty(raw.Initials),
		Vowels:   withEmpty(raw.Vowels),
		Finals:   withEmpty(raw.Finals),
		Suffixes: withEmpty(suffixes),
	}
}

// withEmpty prepends the ("", "") candidate unless the list already
// carries an entry with the empty identifier.
func withEmpty(list []Candidate) []Candidate {
	for _, c := range list {
		if c.ID == "" {
			return list
		}
	}
	out := make([]Candidate, 0, len(list)+1)
	out = append(out, Candidate{})
	return append(out, list...)
}
