// Package enumerator generates the deletion-edit neighborhood of a word,
// the building block the symmetric-delete index uses both to populate
// and to query its posting lists.
package enumerator

// Enumerator produces DeletionKeys for words at a fixed build depth,
// optionally truncating to a prefix cap before enumerating. The zero
// value (PrefixCap == 0) enumerates the whole word at every depth.
type Enumerator struct {
	Depth          int
	MaxBuildDepth  int
	PrefixCap      int
}

// New returns an Enumerator that enumerates deletions up to depth,
// includes the empty key for words no longer than maxBuildDepth (the
// depth the index was built at), and truncates to prefixCap code units
// before enumerating deletions when prefixCap > 0.
func New(depth, maxBuildDepth, prefixCap int) *Enumerator {
	return &Enumerator{Depth: depth, MaxBuildDepth: maxBuildDepth, PrefixCap: prefixCap}
}

// Enumerate returns the set of deletion keys for word: the word itself,
// the empty string when |word| <= MaxBuildDepth, and every string
// obtainable by removing 1..Depth distinct positions from the
// (possibly prefix-truncated) word.
//
// Truncate-then-enumerate: if a prefix cap is configured and the word
// exceeds it, deletions are enumerated over the truncated prefix only,
// but the untruncated word is still added as a key afterward. This is
// the choice documented for the "truncate before or after enumeration"
// ambiguity: truncate first, then always re-add the full word.
func (e *Enumerator) Enumerate(word string) map[string]struct{} {
	out := make(map[string]struct{})

	runes := []rune(word)
	if len(runes) <= e.MaxBuildDepth {
		out[""] = struct{}{}
	}

	working := word
	if e.PrefixCap > 0 && len(runes) > e.PrefixCap {
		working = string(runes[:e.PrefixCap])
	}

	e.deletions(working, e.Depth, out)

	out[word] = struct{}{}
	return out
}

// deletions performs the depth-first walk: for the current string s, it
// emits every 1-position deletion, and recurses on each newly-seen
// deletion with depth-1. The visited set doubles as memoization so no
// sub-tree is explored twice for the same string.
func (e *Enumerator) deletions(s string, depth int, out map[string]struct{}) {
	out[s] = struct{}{}
	if depth <= 0 {
		return
	}
	r := []rune(s)
	for i := range r {
		edit := string(r[:i]) + string(r[i+1:])
		if _, seen := out[edit]; !seen {
			e.deletions(edit, depth-1, out)
		}
	}
}
