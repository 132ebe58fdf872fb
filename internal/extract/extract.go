// Package extract turns uploaded document bytes into ordered text lines.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Extraction failure sentinels.
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrEmptyDocument     = errors.New("document is empty")
)

// Error wraps an extraction failure for a named document. It aborts the
// whole analysis: without paper text no alignment is possible.
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Extractor pulls text lines out of document bytes. maxPages caps
// extraction to the first N pages when positive; implementations without a
// page structure ignore it.
type Extractor interface {
	Extract(data []byte, maxPages int) (lines []string, pages int, err error)
}

// ForFile selects an extractor by file extension.
func ForFile(name string) (Extractor, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return PDF{}, nil
	case ".txt", ".md":
		return Plain{}, nil
	}
	return nil, ErrUnsupportedFormat
}

// splitLines normalizes text into ordered lines, trimming carriage returns
// and trailing whitespace per line.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimRight(l, " \t\r"))
	}
	// Drop trailing empty lines so identical content always yields
	// identical line sequences regardless of final-newline style.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
