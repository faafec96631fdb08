// Package cliapp provides a line-oriented input loop over a
// corrector.Engine, for interactive debugging of correction output.
package cliapp

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dmitry-maltsev/spelling-corrector/internal/corrector"
)

// Handler reads one query per line from r and prints ranked
// suggestions, mirroring the wordserve pack's CLI input handler style.
type Handler struct {
	engine          corrector.Engine
	maxEditDistance int
	topK            int
}

// New builds a Handler over engine using maxEditDistance and topK as
// the per-query parameters for every line read.
func New(engine corrector.Engine, maxEditDistance, topK int) *Handler {
	return &Handler{engine: engine, maxEditDistance: maxEditDistance, topK: topK}
}

// Run reads lines from r until EOF, treating each non-blank line as a
// query. It returns nil on clean EOF, and a non-nil error only if r
// itself fails.
func (h *Handler) Run(r io.Reader) error {
	reader := bufio.NewReader(r)
	log.Print("spelling corrector REPL — type a word, Ctrl+D to exit")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			h.handleLine(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (h *Handler) handleLine(input string) {
	start := time.Now()
	suggestions, err := h.engine.Correct(input, h.maxEditDistance, h.topK)
	elapsed := time.Since(start)

	if err != nil {
		log.Errorf("query failed: %v", err)
		return
	}

	if len(suggestions) == 0 {
		log.Warnf("no suggestions for %q (%v)", input, elapsed)
		return
	}

	log.Printf("took %v for %q", elapsed, input)
	for _, s := range suggestions {
		log.Printf("%s - %d - %d", s.Word, s.Distance, s.Frequency)
	}
}
