package corrector

// Suggestion is a ranked correction candidate: a dictionary word, its
// OSA edit distance from the query, and its corpus frequency.
type Suggestion struct {
	Word      string
	Distance  int
	Frequency int64
}

// Engine is the shared contract both Corrector and LinearCorrector
// satisfy, so a host can select a strategy without caring which one it
// got.
type Engine interface {
	// Correct returns up to topK Suggestions for input, ranked by
	// ascending distance then descending frequency, ties broken by
	// dictionary insertion order. Fails with a DistanceOutOfRange *Error if
	// maxEditDistance is negative or exceeds the build depth.
	Correct(input string, maxEditDistance, topK int) ([]Suggestion, error)
	// EntriesCount returns the number of distinct deletion keys the
	// engine's index holds (0 for LinearCorrector, which has none).
	EntriesCount() int
	// WordsCount returns the number of distinct dictionary words.
	WordsCount() int
}
