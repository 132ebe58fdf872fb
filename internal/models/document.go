package models

import "strings"

// Document represents the uploaded paper after text extraction.
// It is created once per analysis request and discarded with the request.
type Document struct {
	Name      string   `json:"name"`
	Pages     int      `json:"pages"`      // pages in the source document, 0 when unknown
	PageLimit int      `json:"page_limit"` // page cap applied during extraction, 0 = no cap
	Lines     []string `json:"lines"`      // extracted text in document order
}

// Text returns the extracted text as a single string.
func (d *Document) Text() string {
	return strings.Join(d.Lines, "\n")
}

// Preview returns up to n lines of extracted text for display.
func (d *Document) Preview(n int) []string {
	if n <= 0 || n >= len(d.Lines) {
		return d.Lines
	}
	return d.Lines[:n]
}
