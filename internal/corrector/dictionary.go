package corrector

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// entry is a single parsed (word, frequency) dictionary line.
type entry struct {
	word      string
	frequency int64
}

// parseDictionaryFile memory-maps path and parses it: UTF-8 text, one
// entry per line, each line split on whitespace runs into (word,
// frequency) fields. The first malformed or duplicate line aborts the
// load (fail-fast); the mapping is always unmapped before returning,
// on every exit path.
//
// Memory-mapping trades a page-cache-backed read for a buffered
// bufio.Scanner: the dictionary file is read once at startup and
// never again, so there is no benefit to copying it through a
// scanner's internal buffer, and the resulting resident set more
// faithfully reflects just the built index once the mapping is
// released.
func parseDictionaryFile(path string) ([]entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: FileMissing, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &Error{Kind: FileMissing, Err: err}
	}
	if info.Size() == 0 {
		return nil, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, &Error{Kind: FileMissing, Err: err}
	}
	defer m.Unmap()

	return parseDictionaryBytes(m)
}

func parseDictionaryBytes(data []byte) ([]entry, error) {
	text := string(data)
	lines := strings.Split(text, "\n")

	// A trailing "\n" produces one empty final element from Split; drop
	// it, but a genuinely blank line anywhere else is rejected below.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	seen := make(map[string]struct{}, len(lines))
	entries := make([]entry, 0, len(lines))

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			return nil, &Error{Kind: MalformedLine, Line: lineNo, Err: fmt.Errorf("blank line")}
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &Error{Kind: MalformedLine, Line: lineNo, Err: fmt.Errorf("expected word and frequency fields")}
		}

		word := fields[0]
		freq, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || freq < 0 {
			return nil, &Error{Kind: MalformedLine, Line: lineNo, Word: word, Err: fmt.Errorf("invalid frequency %q", fields[1])}
		}

		if _, dup := seen[word]; dup {
			return nil, &Error{Kind: DuplicateWord, Line: lineNo, Word: word, Err: fmt.Errorf("word already loaded")}
		}
		seen[word] = struct{}{}

		entries = append(entries, entry{word: word, frequency: freq})
	}

	return entries, nil
}
