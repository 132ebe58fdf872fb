package align

import (
	"strconv"
	"strings"
)

// valuesEqual compares a paper-reported value with a code-assigned literal.
// Numeric values compare after normalization, so "1e-3" equals "0.001".
// Non-numeric values compare as case-folded strings with quotes stripped.
func valuesEqual(a, b string) bool {
	a, b = stripQuotes(a), stripQuotes(b)
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa == fb
	}
	return strings.EqualFold(a, b)
}

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
