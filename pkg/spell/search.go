package spell

// Part is one consumed chord of a spelling: the text it produced and the
// stroke that produced it.
type Part struct {
	Output string
	Stroke Stroke
}

// Spelling is an ordered chord sequence whose outputs concatenate to
// exactly the searched target.
type Spelling []Part

// Strokes returns just the stroke of each part, in order.
func (sp Spelling) Strokes() []Stroke {
	strokes := make([]Stroke, len(sp))
	for i, p := range sp {
		strokes[i] = p.Stroke
	}
	return strokes
}

// memoEntry accumulates every spelling found for one remaining suffix.
// Only entries marked done are replayed: an unfinished entry can exist
// only after an aborted walk, and the memo dies with its job.
type memoEntry struct {
	spellings []Spelling
	done      bool
}

// Search is one job's decomposition state: the shared chord index plus a
// memo keyed by remaining suffix. A Search must not be driven from two
// call sites at once; create a fresh one per job.
type Search struct {
	index *Index
	memo  map[string]*memoEntry
}

// NewSearch creates a search over the given chord index with an empty memo.
func NewSearch(index *Index) *Search {
	return &Search{
		index: index,
		memo:  make(map[string]*memoEntry),
	}
}

// Walk yields every spelling of target depth-first, in deterministic
// order: matches longest output first, stroke ties in enumeration order,
// each spelling emitted the moment its last chord is placed. Returning
// false from yield aborts the walk; Walk reports whether it ran to
// exhaustion. An empty target has exactly one spelling, the empty
// sequence; an unspellable target yields nothing.
func (s *Search) Walk(target string, yield func(Spelling) bool) bool {
	return s.walk(target, yield)
}

func (s *Search) walk(t string, yield func(Spelling) bool) bool {
	if e, ok := s.memo[t]; ok && e.done {
		for _, sp := range e.spellings {
			if !yield(sp) {
				return false
			}
		}
		return true
	}

	e := &memoEntry{}
	s.memo[t] = e

	if t == "" {
		sp := Spelling{}
		e.spellings = append(e.spellings, sp)
		e.done = true
		return yield(sp)
	}

	for _, m := range s.index.Matches(t) {
		rest := t[len(m.Output):]
		for _, stroke := range m.Strokes {
			part := Part{Output: m.Output, Stroke: stroke}
			ok := s.walk(rest, func(sub Spelling) bool {
				sp := make(Spelling, 0, len(sub)+1)
				sp = append(sp, part)
				sp = append(sp, sub...)
				e.spellings = append(e.spellings, sp)
				return yield(sp)
			})
			if !ok {
				return false
			}
		}
	}
	e.done = true
	return true
}
