package extract

import "unicode/utf8"

// Plain treats the document bytes as UTF-8 text. It has no page structure,
// so maxPages is ignored and the reported page count is 0.
type Plain struct{}

func (Plain) Extract(data []byte, _ int) ([]string, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptyDocument
	}
	if !utf8.Valid(data) {
		return nil, 0, ErrUnsupportedFormat
	}
	return splitLines(string(data)), 0, nil
}
