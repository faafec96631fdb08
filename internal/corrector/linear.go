package corrector

import (
	"fmt"
	"sort"

	"github.com/dmitry-maltsev/spelling-corrector/internal/editdistance"
)

// LinearCorrector is the brute-force reference implementation: it
// shares Corrector's exact contract but scans every dictionary word
// instead of consulting a SymDeleteIndex. It exists as a correctness
// oracle for property tests.
type LinearCorrector struct {
	cfg      Config
	words    []entry
	freq     map[string]int64
	order    map[string]int
	verifier *editdistance.Verifier
}

var _ Engine = (*LinearCorrector)(nil)

// NewLinearCorrector builds a LinearCorrector over the same dictionary
// file LoadDictionary would read, with the same fail-fast load errors.
func NewLinearCorrector(path string, opts ...configurator) (*LinearCorrector, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o.configure(&cfg)
	}

	entries, err := parseDictionaryFile(path)
	if err != nil {
		return nil, err
	}

	freq := make(map[string]int64, len(entries))
	order := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, dup := freq[e.word]; dup {
			return nil, &Error{Kind: DuplicateWord, Word: e.word, Err: fmt.Errorf("word already loaded")}
		}
		freq[e.word] = e.frequency
		order[e.word] = i
	}

	return &LinearCorrector{cfg: cfg, words: entries, freq: freq, order: order, verifier: editdistance.NewVerifier()}, nil
}

// EntriesCount returns 0: a LinearCorrector has no deletion-key index.
func (l *LinearCorrector) EntriesCount() int { return 0 }

// WordsCount returns the number of distinct dictionary words.
func (l *LinearCorrector) WordsCount() int { return len(l.words) }

// Correct scans every dictionary word, exactly mirroring Corrector's
// algorithm minus the SymDeleteIndex candidate-generation step.
func (l *LinearCorrector) Correct(input string, maxEditDistance, topK int) ([]Suggestion, error) {
	if maxEditDistance < 0 || maxEditDistance > l.cfg.BuildMaxEditDistance {
		return nil, &Error{Kind: DistanceOutOfRange, Err: fmt.Errorf("maxEditDistance %d out of [0, %d]", maxEditDistance, l.cfg.BuildMaxEditDistance)}
	}

	type ranked struct {
		Suggestion
		order int
	}
	var out []ranked
	seen := make(map[string]struct{})

	if freq, ok := l.freq[input]; ok {
		out = append(out, ranked{Suggestion{Word: input, Distance: 0, Frequency: freq}, l.order[input]})
		seen[input] = struct{}{}
	}

	if maxEditDistance > 0 {
		inputLen := len([]rune(input))
		for i, e := range l.words {
			if _, dup := seen[e.word]; dup {
				continue
			}
			seen[e.word] = struct{}{}

			candLen := len([]rune(e.word))
			if abs(candLen-inputLen) > maxEditDistance {
				continue
			}

			dist := l.verifier.Distance(input, e.word, maxEditDistance)
			if dist < 0 {
				continue
			}
			out = append(out, ranked{Suggestion{Word: e.word, Distance: dist, Frequency: e.frequency}, i})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].order < out[j].order
	})

	if topK >= 0 && len(out) > topK {
		out = out[:topK]
	}

	result := make([]Suggestion, len(out))
	for i, r := range out {
		result[i] = r.Suggestion
	}
	return result, nil
}
