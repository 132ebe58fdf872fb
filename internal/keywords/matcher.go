// Package keywords scans text for a fixed vocabulary of domain terms and for
// hyperparameter values written in prose.
package keywords

import (
	"regexp"
	"strings"
)

// DefaultVocabulary is the built-in term list checked for presence in both
// paper and code.
var DefaultVocabulary = []string{
	"attention",
	"transformer",
	"embedding",
	"optimizer",
	"layer",
	"model",
	"token",
	"prediction",
	"loss",
}

// Matcher reports literal presence of vocabulary terms in text. Matching is
// case-insensitive and word-boundary based; there is no stemming or synonym
// resolution.
type Matcher struct {
	vocab    []string
	patterns map[string]*regexp.Regexp
}

// NewMatcher compiles a matcher for the given vocabulary. Terms are
// normalized to lower case and deduplicated, preserving first-seen order.
func NewMatcher(vocab []string) *Matcher {
	m := &Matcher{patterns: make(map[string]*regexp.Regexp, len(vocab))}
	seen := make(map[string]bool, len(vocab))
	for _, term := range vocab {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		m.vocab = append(m.vocab, term)
		m.patterns[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return m
}

// Vocabulary returns the matcher's terms in declared order.
func (m *Matcher) Vocabulary() []string {
	out := make([]string, len(m.vocab))
	copy(out, m.vocab)
	return out
}

// Match returns a term -> presence mapping for the given text. Same text and
// vocabulary always yield the same mapping.
func (m *Matcher) Match(text string) map[string]bool {
	hits := make(map[string]bool, len(m.vocab))
	for _, term := range m.vocab {
		hits[term] = m.patterns[term].MatchString(text)
	}
	return hits
}
