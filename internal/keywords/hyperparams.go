package keywords

import (
	"regexp"
	"strings"

	"reprocheck/internal/models"
)

// numericLiteral matches integers, decimals and scientific notation.
const numericLiteral = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`

// connector words that may sit between a hyperparameter phrase and its value
// in prose, e.g. "learning rate of 0.001", "batch size was set to 32".
const connectors = `(?:\s+(?:of|is|was|to|at|set|equal|equals))*\s*[=:]?\s*`

// ExtractHyperparams scans paper text for hyperparameter values using the
// same regex heuristic as the code-side scan: for each configured
// hyperparameter, the first prose occurrence of one of its phrases next to
// a numeric literal wins. Later occurrences are ignored.
func ExtractHyperparams(text string, hps []models.Hyperparameter) map[string]string {
	found := make(map[string]string)
	for _, hp := range hps {
		if value, ok := firstPhraseValue(text, hp.Phrases); ok {
			found[hp.Name] = value
		}
	}
	return found
}

// firstPhraseValue returns the value of the earliest phrase match in text.
// Both orders are tried: value after the phrase ("learning rate of 0.001")
// and value before it ("trained for 100 epochs").
func firstPhraseValue(text string, phrases []string) (string, bool) {
	best := -1
	value := ""
	scan := func(re *regexp.Regexp) {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			return
		}
		if best == -1 || loc[0] < best {
			best = loc[0]
			value = text[loc[2]:loc[3]]
		}
	}
	for _, phrase := range phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		quoted := regexp.QuoteMeta(phrase)
		scan(regexp.MustCompile(`(?i)\b` + quoted + `\b` + connectors + `(` + numericLiteral + `)`))
		scan(regexp.MustCompile(`(?i)\b(` + numericLiteral + `)\s+` + quoted + `\b`))
	}
	return value, best >= 0
}
