package corrector

// Config holds the build-time tunables of a symmetric-delete engine:
// a flat struct of knobs applied through functional options (see
// pkg/options).
type Config struct {
	// BuildMaxEditDistance is the depth the index is constructed at;
	// queries may ask for any maxEditDistance <= this value.
	BuildMaxEditDistance int
	// PrefixLength caps the number of leading code units considered
	// when enumerating a word's deletion neighborhood. 0 disables
	// truncation.
	PrefixLength int
	// KeyScheme selects "exact" or "fingerprint" posting-list keys.
	KeyScheme string
	// DefaultMaxEditDistance and DefaultTopK are applied by callers
	// (e.g. the REPL) that don't pass explicit per-query values.
	DefaultMaxEditDistance int
	DefaultTopK            int
}

// DefaultConfig returns build depth 2, prefix cap 7, exact keys,
// default query maxEditDistance 2, topK 3.
func DefaultConfig() Config {
	return Config{
		BuildMaxEditDistance:   2,
		PrefixLength:           7,
		KeyScheme:              "exact",
		DefaultMaxEditDistance: 2,
		DefaultTopK:            3,
	}
}
