package corrector

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDict(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture dictionary: %v", err)
	}
	return path
}

func TestEndToEndScenarios(t *testing.T) {
	path := writeDict(t, "a 1", "b 1", "c 1")
	c, err := LoadDictionary(path, WithConfig(Config{
		BuildMaxEditDistance:   2,
		PrefixLength:           7,
		KeyScheme:              "exact",
		DefaultMaxEditDistance: 2,
		DefaultTopK:            2,
	}))
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}

	got, err := c.Correct("a", 2, 2)
	if err != nil {
		t.Fatalf("Correct failed: %v", err)
	}
	want := []Suggestion{{Word: "a", Distance: 0, Frequency: 1}, {Word: "b", Distance: 1, Frequency: 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d suggestions, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestion %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestExactMatchRanksFirst(t *testing.T) {
	path := writeDict(t, "cat 100", "bat 1000")
	c, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	got, err := c.Correct("cat", 2, 10)
	if err != nil {
		t.Fatalf("Correct failed: %v", err)
	}
	if len(got) == 0 || got[0].Word != "cat" || got[0].Distance != 0 {
		t.Errorf("exact match must rank first regardless of frequency, got %+v", got)
	}
}

func TestFrequencyBreaksDistanceTies(t *testing.T) {
	path := writeDict(t, "cot 5", "bat 50")
	c, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	got, err := c.Correct("cat", 2, 10)
	if err != nil {
		t.Fatalf("Correct failed: %v", err)
	}
	if len(got) < 2 {
		t.Fatalf("expected at least 2 suggestions, got %+v", got)
	}
	if got[0].Word != "bat" {
		t.Errorf("higher frequency must rank first among equal distances, got order %+v", got)
	}
}

func TestDistanceOutOfRangeRejected(t *testing.T) {
	path := writeDict(t, "cat 1")
	c, err := LoadDictionary(path, WithConfig(Config{BuildMaxEditDistance: 2, PrefixLength: 7, KeyScheme: "exact", DefaultMaxEditDistance: 2, DefaultTopK: 3}))
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	if _, err := c.Correct("cat", 3, 3); err == nil {
		t.Error("maxEditDistance beyond build depth must fail")
	}
	if _, err := c.Correct("cat", -1, 3); err == nil {
		t.Error("negative maxEditDistance must fail")
	}
}

func TestDuplicateWordInDictionaryFails(t *testing.T) {
	path := writeDict(t, "cat 1", "cat 2")
	if _, err := LoadDictionary(path); err == nil {
		t.Error("duplicate word in dictionary file must fail to load")
	}
}

func TestMalformedLineFails(t *testing.T) {
	path := writeDict(t, "cat notanumber")
	if _, err := LoadDictionary(path); err == nil {
		t.Error("unparsable frequency must fail to load")
	}
}

func TestMissingFileFails(t *testing.T) {
	if _, err := LoadDictionary(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("missing dictionary file must fail to load")
	}
}

// TestOracleEquivalence verifies Corrector (index-backed) and
// LinearCorrector (brute-force reference) produce byte-for-byte
// identical ranked output for every query, for both key schemes.
func TestOracleEquivalence(t *testing.T) {
	path := writeDict(t,
		"the 1000", "there 500", "their 500", "here 400", "hear 400",
		"cat 10", "cats 9", "bat 3", "bot 3", "cot 3", "dog 1", "fog 1",
	)

	schemes := []string{"exact", "fingerprint"}
	queries := []string{"the", "ther", "hear", "cat", "cot", "xyz", "dg"}

	for _, scheme := range schemes {
		cfg := Config{BuildMaxEditDistance: 2, PrefixLength: 7, KeyScheme: scheme, DefaultMaxEditDistance: 2, DefaultTopK: 10}

		idx, err := LoadDictionary(path, WithConfig(cfg))
		if err != nil {
			t.Fatalf("[%s] LoadDictionary failed: %v", scheme, err)
		}
		lin, err := NewLinearCorrector(path, WithConfig(cfg))
		if err != nil {
			t.Fatalf("[%s] NewLinearCorrector failed: %v", scheme, err)
		}

		for _, q := range queries {
			got, err := idx.Correct(q, 2, 10)
			if err != nil {
				t.Fatalf("[%s] Corrector.Correct(%q) failed: %v", scheme, q, err)
			}
			want, err := lin.Correct(q, 2, 10)
			if err != nil {
				t.Fatalf("[%s] LinearCorrector.Correct(%q) failed: %v", scheme, q, err)
			}
			if len(got) != len(want) {
				t.Fatalf("[%s] query %q: got %d suggestions, want %d\n got=%+v\nwant=%+v", scheme, q, len(got), len(want), got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("[%s] query %q suggestion %d = %+v, want %+v", scheme, q, i, got[i], want[i])
				}
			}
		}
	}
}

func TestTopKTruncates(t *testing.T) {
	path := writeDict(t, "cat 1", "cot 1", "bat 1", "bot 1")
	c, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	got, err := c.Correct("cat", 2, 1)
	if err != nil {
		t.Fatalf("Correct failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("topK=1 must truncate to 1 result, got %d", len(got))
	}
}

func TestZeroMaxEditDistanceOnlyExactMatch(t *testing.T) {
	path := writeDict(t, "cat 1", "cot 1")
	c, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	got, err := c.Correct("cat", 0, 10)
	if err != nil {
		t.Fatalf("Correct failed: %v", err)
	}
	if len(got) != 1 || got[0].Word != "cat" {
		t.Errorf("maxEditDistance=0 must only return the exact match, got %+v", got)
	}
}
