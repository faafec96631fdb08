package symdelete

import "testing"

func buildIndex(t *testing.T, scheme KeyScheme, words map[string]int64) *Index {
	t.Helper()
	ix := New(2, 0, scheme)
	for w, f := range words {
		if err := ix.Add(w, f); err != nil {
			t.Fatalf("Add(%q, %d) failed: %v", w, f, err)
		}
	}
	return ix
}

func TestAddDuplicateWordFails(t *testing.T) {
	ix := New(2, 0, ExactScheme{})
	if err := ix.Add("cat", 1); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := ix.Add("cat", 2); err == nil {
		t.Error("second Add of the same word must fail")
	}
}

func TestFrequencyOfUnknownWord(t *testing.T) {
	ix := New(2, 0, ExactScheme{})
	if _, err := ix.FrequencyOf("ghost"); err == nil {
		t.Error("FrequencyOf must fail for a word never added")
	}
}

func TestRecallExactScheme(t *testing.T) {
	ix := buildIndex(t, ExactScheme{}, map[string]int64{"cat": 10, "cats": 5, "bat": 3, "dog": 1})
	// "cot" is distance 1 from "cat" and "bot"-like; verify it recalls cat via keys.
	found := map[string]bool{}
	for _, key := range ix.KeysFor("cot", 2) {
		for _, cand := range ix.Lookup(key) {
			found[cand] = true
		}
	}
	if !found["cat"] {
		t.Errorf("expected cat to be recalled as a candidate for cot, got %v", found)
	}
}

func TestRecallFingerprintSchemeSuperset(t *testing.T) {
	words := map[string]int64{"cat": 10, "cats": 5, "bat": 3, "dog": 1}
	exact := buildIndex(t, ExactScheme{}, words)
	fp := buildIndex(t, FingerprintScheme{}, words)

	query := "cot"
	exactSet := map[string]bool{}
	for _, key := range exact.KeysFor(query, 2) {
		for _, cand := range exact.Lookup(key) {
			exactSet[cand] = true
		}
	}
	fpSet := map[string]bool{}
	for _, key := range fp.KeysFor(query, 2) {
		for _, cand := range fp.Lookup(key) {
			fpSet[cand] = true
		}
	}
	for w := range exactSet {
		if !fpSet[w] {
			t.Errorf("fingerprint scheme candidate set missing %q present in exact scheme (fingerprint must be a superset, verified downstream by edit distance)", w)
		}
	}
}

func TestKeysForDeterministicOrder(t *testing.T) {
	ix := buildIndex(t, ExactScheme{}, map[string]int64{"cat": 1, "bat": 1, "cot": 1})
	first := ix.KeysFor("cat", 2)
	second := ix.KeysFor("cat", 2)
	if len(first) != len(second) {
		t.Fatalf("repeated KeysFor calls returned different lengths: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("KeysFor is not deterministic across calls at index %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestInsertionOrderTracksBuildOrder(t *testing.T) {
	ix := New(2, 0, ExactScheme{})
	words := []string{"zebra", "apple", "mango"}
	for _, w := range words {
		if err := ix.Add(w, 1); err != nil {
			t.Fatalf("Add(%q) failed: %v", w, err)
		}
	}
	for i, w := range words {
		if got := ix.InsertionOrder(w); got != i {
			t.Errorf("InsertionOrder(%q) = %d, want %d", w, got, i)
		}
	}
}

func TestSizeAndWords(t *testing.T) {
	ix := buildIndex(t, ExactScheme{}, map[string]int64{"cat": 1, "bat": 1})
	if got := ix.Words(); got != 2 {
		t.Errorf("Words() = %d, want 2", got)
	}
	if got := ix.Size(); got == 0 {
		t.Error("Size() must be nonzero once words are indexed")
	}
}

func TestHas(t *testing.T) {
	ix := buildIndex(t, ExactScheme{}, map[string]int64{"cat": 1})
	if !ix.Has("cat") {
		t.Error("Has(cat) should be true")
	}
	if ix.Has("dog") {
		t.Error("Has(dog) should be false")
	}
}
