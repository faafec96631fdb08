// Package customdict persists a set of runtime-added extra words in
// Redis, layered on top of the build-time dictionary file as an
// overlay that gets folded into a freshly rebuilt Corrector rather
// than mutating a frozen SymDeleteIndex in place.
package customdict

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultFrequency int64 = 1

// Store wraps a Redis client to track custom dictionary words and
// their frequencies as a Redis hash, so they survive a process
// restart independently of the build-time dictionary file.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store backed by client, using key as the Redis hash
// name (all words share one hash: field = word, value = frequency).
func New(client *redis.Client, key string) *Store {
	if key == "" {
		key = "custom_dict"
	}
	return &Store{client: client, key: key}
}

// Add inserts word with the given frequency into the overlay. A
// frequency <= 0 (including 0, which the build-time dictionary file
// accepts) is replaced by defaultFrequency.
func (s *Store) Add(ctx context.Context, word string, frequency int64) error {
	if frequency <= 0 {
		frequency = defaultFrequency
	}
	return s.client.HSet(ctx, s.key, word, frequency).Err()
}

// Remove deletes word from the overlay.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.HDel(ctx, s.key, word).Err()
}

// All returns every (word, frequency) pair currently in the overlay,
// in the same (word, frequency) shape as corrector.Word so a caller
// can merge them with a base dictionary's words before an index
// rebuild. Fields whose value does not parse as an integer are skipped.
func (s *Store) All(ctx context.Context) ([]Entry, error) {
	raw, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(raw))
	for word, freqStr := range raw {
		var freq int64
		if _, err := fmt.Sscanf(freqStr, "%d", &freq); err != nil {
			continue
		}
		entries = append(entries, Entry{Word: word, Frequency: freq})
	}
	return entries, nil
}

// Entry mirrors the (word, frequency) shape the dictionary file
// parser produces, so overlay entries and base dictionary entries can
// be merged uniformly when rebuilding a Corrector.
type Entry struct {
	Word      string
	Frequency int64
}
