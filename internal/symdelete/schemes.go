package symdelete

import "github.com/cespare/xxhash/v2"

// ExactScheme uses the edit string itself as the key: zero false-positive
// candidates (modulo the symmetric-delete technique's own pruning).
type ExactScheme struct{}

func (ExactScheme) Key(edit string) string { return edit }
func (ExactScheme) Name() string           { return "exact" }

// FingerprintScheme folds a 32-bit xxhash digest of the edit string's
// code units with the edit's rune length tagged into the low byte, so
// edits of different lengths cannot collide structurally even when
// their hashes do. The fold is a pure function of the input, so it is
// stable across runs and processes.
//
// A candidate returned via a fingerprint-keyed posting list is not
// guaranteed to be an exact neighborhood match; the edit-distance
// verifier downstream is the sole gatekeeper of correctness.
type FingerprintScheme struct{}

func (FingerprintScheme) Key(edit string) string {
	sum := xxhash.Sum64String(edit)
	hash32 := uint32(sum ^ (sum >> 32))
	length := byte(len([]rune(edit)))
	folded := uint32(length) | hash32<<8
	return string(encodeUint32(folded))
}

func (FingerprintScheme) Name() string { return "fingerprint" }

func encodeUint32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}
