/*
Package spell enumerates every way a target word can be spelled as a
sequence of chords drawn from a layout's component tables.

A chord combines up to one candidate from each of the four component
roles (initial, vowel, final, suffix); its output is the concatenation of
the candidates' literal fragments. The search decomposes a target into
chord outputs that concatenate back to exactly the target, longest match
first, memoizing sub-results per remaining suffix.
*/
package spell

import "github.com/Aquaduckd/pinchordlookup/pkg/layout"

// Stroke is the four raw chord identifiers of one chord, in role order
// initial, vowel, final, suffix. It is what downstream display and
// highlighting need, as opposed to the chord's textual output.
type Stroke [4]string

// Chord pairs a stroke with its concatenated literal output.
type Chord struct {
	Output string
	Stroke Stroke
}

// Enumerate produces every chord of the tables in the canonical nested
// order: initials outermost, then vowels, finals, suffixes. This order is
// the tie-break for all downstream result ordering. Distinct chords may
// share an output; both are kept as distinct branches. Enumeration stops
// early when visit returns false.
func Enumerate(t *layout.Tables, visit func(Chord) bool) {
	for _, ini := range t.Initials {
		for _, vow := range t.Vowels {
			for _, fin := range t.Finals {
				for _, suf := range t.Suffixes {
					ch := Chord{
						Output: ini.Fragment() + vow.Fragment() + fin.Fragment() + suf.Fragment(),
						Stroke: Stroke{ini.ID, vow.ID, fin.ID, suf.ID},
					}
					if !visit(ch) {
						return
					}
				}
			}
		}
	}
}
