package spell

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/Aquaduckd/pinchordlookup/pkg/layout"
)

// Match groups every chord sharing one output that prefixes the
// remaining target. Strokes are in enumeration order.
type Match struct {
	Output  string
	Strokes []Stroke
}

// Index holds one full chord enumeration keyed by output, so each
// remaining suffix of a search is matched with a trie walk instead of
// re-enumerating the whole chord space. It is pure derived data: safe to
// build once per layout version and reuse across jobs.
type Index struct {
	trie  *patricia.Trie
	calls int
}

// NewIndex enumerates every chord of the tables into a patricia trie.
// Chords with an empty output can never consume target text and are not
// indexed.
func NewIndex(t *layout.Tables) *Index {
	trie := patricia.NewTrie()
	Enumerate(t, func(ch Chord) bool {
		if ch.Output == "" {
			return true
		}
		key := patricia.Prefix(ch.Output)
		if item := trie.Get(key); item != nil {
			trie.Set(key, append(item.([]Stroke), ch.Stroke))
		} else {
			trie.Insert(key, []Stroke{ch.Stroke})
		}
		return true
	})
	return &Index{trie: trie}
}

// Matches returns every indexed output that is a non-empty prefix of
// rest, longest output first. Two distinct equal-length outputs cannot
// both prefix the same string, so within one match the stroke order is
// exactly enumeration order and the overall ordering contract holds.
func (ix *Index) Matches(rest string) []Match {
	ix.calls++
	if rest == "" {
		return nil
	}
	var ms []Match
	ix.trie.VisitPrefixes(patricia.Prefix(rest), func(p patricia.Prefix, item patricia.Item) error {
		ms = append(ms, Match{Output: string(p), Strokes: item.([]Stroke)})
		return nil
	})
	sort.SliceStable(ms, func(i, j int) bool {
		return len(ms[i].Output) > len(ms[j].Output)
	})
	return ms
}

// MatchCalls returns how many times Matches has run, used to verify
// that memoized suffixes are replayed without re-matching.
func (ix *Index) MatchCalls() int {
	return ix.calls
}
