package cliapp

import (
	"strings"
	"testing"

	"github.com/dmitry-maltsev/spelling-corrector/internal/corrector"
)

type stubEngine struct {
	calls []string
}

func (s *stubEngine) Correct(input string, maxEditDistance, topK int) ([]corrector.Suggestion, error) {
	s.calls = append(s.calls, input)
	if input == "known" {
		return []corrector.Suggestion{{Word: "known", Distance: 0, Frequency: 5}}, nil
	}
	return nil, nil
}
func (s *stubEngine) EntriesCount() int { return 0 }
func (s *stubEngine) WordsCount() int   { return 0 }

func TestRunProcessesEachLine(t *testing.T) {
	engine := &stubEngine{}
	h := New(engine, 2, 3)
	input := strings.NewReader("known\nunknown\n\n")
	if err := h.Run(input); err != nil {
		t.Fatalf("Run returned an error on clean EOF: %v", err)
	}
	if len(engine.calls) != 2 {
		t.Errorf("expected 2 non-blank lines processed, got %d: %v", len(engine.calls), engine.calls)
	}
}

func TestRunExitsCleanlyOnImmediateEOF(t *testing.T) {
	h := New(&stubEngine{}, 2, 3)
	if err := h.Run(strings.NewReader("")); err != nil {
		t.Errorf("Run on empty input should return nil, got %v", err)
	}
}
