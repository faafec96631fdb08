// Package symdelete implements the symmetric-delete index: a mapping
// from deletion-edit keys to the dictionary words that generate them,
// built once and read many times.
package symdelete

import (
	"fmt"
	"sort"

	"github.com/dmitry-maltsev/spelling-corrector/internal/enumerator"
)

// KeyScheme controls how a deletion-edit string is turned into the key
// used for posting-list lookups. Two schemes are supported: exact-
// string keys (zero false-positive candidates) and length-salted
// fingerprint keys (smaller memory, some false-positive candidates
// that the edit-distance verifier must filter out).
type KeyScheme interface {
	Key(edit string) string
	// Name identifies the scheme for diagnostics/config round-tripping.
	Name() string
}

// ErrDuplicateWord is returned by Add when the word is already present.
type ErrDuplicateWord struct{ Word string }

func (e *ErrDuplicateWord) Error() string {
	return fmt.Sprintf("symdelete: duplicate word %q", e.Word)
}

// ErrUnknownWord is returned by FrequencyOf for a word never added.
type ErrUnknownWord struct{ Word string }

func (e *ErrUnknownWord) Error() string {
	return fmt.Sprintf("symdelete: unknown word %q", e.Word)
}

// Index is the symmetric-delete index. It is mutable only during the
// build phase (via Add); after that, Lookup/FrequencyOf/Size/Words are
// safe to call concurrently from multiple readers since no further
// writes occur.
type Index struct {
	depth     int
	prefixCap int
	scheme    KeyScheme
	enum      *enumerator.Enumerator

	freq    map[string]int64
	order   map[string]int
	posting map[string][]string
}

// New builds an empty index at the given build depth (the
// maxEditDistance every word will be indexed at) and optional prefix
// cap (0 disables truncation), using scheme for key derivation.
func New(depth, prefixCap int, scheme KeyScheme) *Index {
	return &Index{
		depth:     depth,
		prefixCap: prefixCap,
		scheme:    scheme,
		enum:      enumerator.New(depth, depth, prefixCap),
		freq:      make(map[string]int64),
		order:     make(map[string]int),
		posting:   make(map[string][]string),
	}
}

// Depth returns the build depth (maxEditDistance) the index was
// constructed with.
func (ix *Index) Depth() int { return ix.depth }

// Scheme returns the key scheme in use.
func (ix *Index) Scheme() KeyScheme { return ix.scheme }

// Add inserts word with frequency, enumerating its deletion-edit keys
// at the index's build depth and appending word to each key's posting
// list. Fails with ErrDuplicateWord if word is already present.
func (ix *Index) Add(word string, frequency int64) error {
	if _, exists := ix.freq[word]; exists {
		return &ErrDuplicateWord{Word: word}
	}
	ix.freq[word] = frequency
	ix.order[word] = len(ix.order)

	// A single word's own deletion-key set is already deduplicated by
	// the enumerator (it returns a set), so no per-list membership
	// check is needed here to keep posting lists free of duplicates.
	for edit := range ix.enum.Enumerate(word) {
		key := ix.scheme.Key(edit)
		// Store the (possibly reallocated) slice back under the key:
		// append may grow the backing array, and the old header living
		// only in the local variable would otherwise be discarded
		// silently.
		ix.posting[key] = append(ix.posting[key], word)
	}
	return nil
}

// Lookup returns the posting list for key, or nil if the key is absent.
// The returned slice must not be mutated by the caller.
func (ix *Index) Lookup(key string) []string {
	return ix.posting[key]
}

// KeysFor returns the deletion keys for a query word at the given
// query depth (which must be <= the index's build depth) and the
// index's own prefix cap, ready to feed into Lookup. Keys are returned
// in a fixed (sorted) order so that callers which dedupe candidates as
// they walk keys get a deterministic "first-seen" order across runs,
// rather than one that follows Go's randomized map iteration.
func (ix *Index) KeysFor(word string, queryDepth int) []string {
	qe := enumerator.New(queryDepth, ix.depth, ix.prefixCap)
	edits := qe.Enumerate(word)
	keys := make([]string, 0, len(edits))
	seen := make(map[string]struct{}, len(edits))
	for edit := range edits {
		k := ix.scheme.Key(edit)
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// FrequencyOf returns the frequency of word, or ErrUnknownWord if it
// was never added.
func (ix *Index) FrequencyOf(word string) (int64, error) {
	f, ok := ix.freq[word]
	if !ok {
		return 0, &ErrUnknownWord{Word: word}
	}
	return f, nil
}

// InsertionOrder returns the 0-based position word was added at, used
// by the corrector as the tie-break for equal (distance, frequency)
// pairs. Using build-time insertion order rather than the order a
// query happens to encounter candidates in is what makes the
// symmetric-delete corrector's output identical to the linear oracle's
// regardless of key iteration order.
func (ix *Index) InsertionOrder(word string) int {
	return ix.order[word]
}

// Has reports whether word is present in the index.
func (ix *Index) Has(word string) bool {
	_, ok := ix.freq[word]
	return ok
}

// Size returns the number of distinct deletion keys.
func (ix *Index) Size() int { return len(ix.posting) }

// Words returns the number of distinct words added.
func (ix *Index) Words() int { return len(ix.freq) }
