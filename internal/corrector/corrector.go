package corrector

import (
	"fmt"
	"sort"

	"github.com/dmitry-maltsev/spelling-corrector/internal/editdistance"
	"github.com/dmitry-maltsev/spelling-corrector/internal/symdelete"
)

// Corrector orchestrates candidate generation via a SymDeleteIndex,
// verification via a bounded OSA Verifier, and ranking. It never
// mutates the index it was built with.
type Corrector struct {
	cfg      Config
	index    *symdelete.Index
	verifier *editdistance.Verifier
}

var _ Engine = (*Corrector)(nil)

// LoadDictionary loads and parses the dictionary file at path, applies
// opts on top of the defaults, builds the SymDeleteIndex, and returns a
// ready Corrector. The file handle (and its memory mapping) is released
// before this function returns on every exit path, including error.
func LoadDictionary(path string, opts ...configurator) (*Corrector, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o.configure(&cfg)
	}

	entries, err := parseDictionaryFile(path)
	if err != nil {
		return nil, err
	}

	scheme, err := schemeFor(cfg.KeyScheme)
	if err != nil {
		return nil, err
	}

	index := symdelete.New(cfg.BuildMaxEditDistance, cfg.PrefixLength, scheme)
	for _, e := range entries {
		if err := index.Add(e.word, e.frequency); err != nil {
			return nil, &Error{Kind: DuplicateWord, Word: e.word, Err: err}
		}
	}

	return &Corrector{cfg: cfg, index: index, verifier: editdistance.NewVerifier()}, nil
}

// Word is a (word, frequency) pair, the shape both the dictionary file
// parser and an external overlay source (internal/customdict) produce,
// so the two can be merged before a single BuildFromWords call.
type Word struct {
	Word      string
	Frequency int64
}

// BuildFromWords builds a Corrector directly from an in-memory word
// list instead of a dictionary file, applying the same duplicate-word
// fail-fast rule LoadDictionary does. It is how a host folds a runtime
// extra-word overlay into a fresh index: load the base file, append
// the overlay's entries, and rebuild, since the index is only ever
// mutable during its initial build and never afterward.
func BuildFromWords(words []Word, opts ...configurator) (*Corrector, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o.configure(&cfg)
	}

	scheme, err := schemeFor(cfg.KeyScheme)
	if err != nil {
		return nil, err
	}

	index := symdelete.New(cfg.BuildMaxEditDistance, cfg.PrefixLength, scheme)
	for _, w := range words {
		if err := index.Add(w.Word, w.Frequency); err != nil {
			return nil, &Error{Kind: DuplicateWord, Word: w.Word, Err: err}
		}
	}

	return &Corrector{cfg: cfg, index: index, verifier: editdistance.NewVerifier()}, nil
}

// LoadDictionaryWords parses path exactly as LoadDictionary does but
// returns the raw entries instead of a built Corrector, so a caller
// can merge in an overlay before building.
func LoadDictionaryWords(path string) ([]Word, error) {
	entries, err := parseDictionaryFile(path)
	if err != nil {
		return nil, err
	}
	words := make([]Word, len(entries))
	for i, e := range entries {
		words[i] = Word{Word: e.word, Frequency: e.frequency}
	}
	return words, nil
}

// configurator lets LoadDictionary/BuildFromWords accept either a
// one-shot Config (via WithConfig) or an ad-hoc function, without an
// import cycle: pkg/options depends on this package, not the reverse,
// so a pkg/options.Option list is folded into one Config by
// options.Apply first, then handed in through WithConfig.
type configurator interface {
	configure(cfg *Config)
}

type configFunc func(cfg *Config)

func (f configFunc) configure(cfg *Config) { f(cfg) }

// WithConfig returns a configurator applying the given full Config,
// letting callers (e.g. cmd/repl, with a Config folded by
// pkg/options.Apply) hand a pre-built Config to LoadDictionary in one
// shot.
func WithConfig(cfg Config) configurator {
	return configFunc(func(dst *Config) { *dst = cfg })
}

func schemeFor(name string) (symdelete.KeyScheme, error) {
	switch name {
	case "", "exact":
		return symdelete.ExactScheme{}, nil
	case "fingerprint":
		return symdelete.FingerprintScheme{}, nil
	default:
		return nil, &Error{Kind: MalformedLine, Err: fmt.Errorf("unknown key scheme %q", name)}
	}
}

// EntriesCount returns the number of distinct deletion keys.
func (c *Corrector) EntriesCount() int { return c.index.Size() }

// WordsCount returns the number of distinct dictionary words.
func (c *Corrector) WordsCount() int { return c.index.Words() }

// Correct generates candidates from the index, verifies each with the
// bounded OSA distance, and returns them ranked by ascending distance,
// then descending frequency, then insertion order.
func (c *Corrector) Correct(input string, maxEditDistance, topK int) ([]Suggestion, error) {
	if maxEditDistance < 0 || maxEditDistance > c.cfg.BuildMaxEditDistance {
		return nil, &Error{Kind: DistanceOutOfRange, Err: fmt.Errorf("maxEditDistance %d out of [0, %d]", maxEditDistance, c.cfg.BuildMaxEditDistance)}
	}

	type ranked struct {
		Suggestion
		order int
	}
	var out []ranked
	seen := make(map[string]struct{})

	if freq, err := c.index.FrequencyOf(input); err == nil {
		out = append(out, ranked{Suggestion{Word: input, Distance: 0, Frequency: freq}, c.index.InsertionOrder(input)})
		seen[input] = struct{}{}
	}

	if maxEditDistance > 0 {
		inputLen := len([]rune(input))
		for _, key := range c.index.KeysFor(input, maxEditDistance) {
			for _, cand := range c.index.Lookup(key) {
				if _, dup := seen[cand]; dup {
					continue
				}
				seen[cand] = struct{}{}

				candLen := len([]rune(cand))
				if abs(candLen-inputLen) > maxEditDistance {
					continue
				}

				dist := c.verifier.Distance(input, cand, maxEditDistance)
				if dist < 0 {
					continue
				}

				freq, err := c.index.FrequencyOf(cand)
				if err != nil {
					continue
				}
				out = append(out, ranked{Suggestion{Word: cand, Distance: dist, Frequency: freq}, c.index.InsertionOrder(cand)})
			}
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

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
