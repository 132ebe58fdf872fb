package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF extracts plain text from PDF bytes, page by page.
type PDF struct{}

// Extract returns the text lines of the first maxPages pages (all pages when
// maxPages <= 0). Returns an error for documents the PDF parser rejects.
// The parser panics on some malformed inputs, so panics are converted to
// errors here.
func (PDF) Extract(data []byte, maxPages int) (lines []string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines, pages = nil, 0
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	if len(data) == 0 {
		return nil, 0, ErrEmptyDocument
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, 0, err
	}

	pages = r.NumPage()
	n := pages
	if maxPages > 0 && maxPages < n {
		n = maxPages
	}

	var sb strings.Builder
	extracted := false
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not invalidate the document.
			continue
		}
		if text != "" {
			extracted = true
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if !extracted {
		return nil, pages, errors.New("no extractable text")
	}
	return splitLines(sb.String()), pages, nil
}
