package spell

import "strings"

const (
	// finalMarker prefixes final-component identifiers in the tables.
	finalMarker = "-"
	// variantSep separates multi-variant identifiers in the tables and
	// is reserved, so rendered output substitutes variantDisplay.
	variantSep     = "|"
	variantDisplay = "∙"
	// emptyChord stands in for a chord whose rendered form is empty.
	emptyChord = "∅"
	// chordSep joins the chords of one spelling.
	chordSep = " "
)

// RenderStroke formats one stroke for display. The final identifier's
// leading marker is stripped when an initial or vowel precedes it;
// a final-only chord keeps the marker to signal there is nothing before
// the final.
func RenderStroke(st Stroke) string {
	ini, vow, fin, suf := st[0], st[1], st[2], st[3]
	if strings.HasPrefix(fin, finalMarker) && (ini != "" || vow != "") {
		fin = fin[len(finalMarker):]
	}
	s := ini + vow + fin + suf
	s = strings.ReplaceAll(s, variantSep, variantDisplay)
	if s == "" {
		return emptyChord
	}
	return s
}

// Render formats a whole spelling, one rendered chord per part.
func Render(sp Spelling) string {
	parts := make([]string, len(sp))
	for i, p := range sp {
		parts[i] = RenderStroke(p.Stroke)
	}
	return strings.Join(parts, chordSep)
}
