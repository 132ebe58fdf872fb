package codescan

import (
	"regexp"

	"reprocheck/internal/models"
)

// DefaultHyperparameters lists the named values expected to appear in both
// paper and code, with their code identifier aliases and prose phrases.
var DefaultHyperparameters = []models.Hyperparameter{
	{Name: "learning_rate", Aliases: []string{"learning_rate", "lr"}, Phrases: []string{"learning rate", "lr"}},
	{Name: "batch_size", Aliases: []string{"batch_size", "bs"}, Phrases: []string{"batch size"}},
	{Name: "epochs", Aliases: []string{"epochs", "num_epochs", "n_epochs"}, Phrases: []string{"epochs"}},
	{Name: "dropout", Aliases: []string{"dropout", "dropout_rate"}, Phrases: []string{"dropout", "dropout rate"}},
}

// DefaultSeedCalls lists known seed-setting call signatures.
var DefaultSeedCalls = []string{
	"random.seed",
	"np.random.seed",
	"numpy.random.seed",
	"torch.manual_seed",
	"torch.cuda.manual_seed_all",
	"tf.random.set_seed",
}

const numericLiteral = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`

// literalValue matches numeric and quoted string literals on the right-hand
// side of an assignment.
const literalValue = numericLiteral + `|"[^"\n]*"|'[^'\n]*'`

type seedPattern struct {
	name string
	re   *regexp.Regexp
}

// compileSeedPatterns builds one pattern per call signature capturing the
// first call argument, plus the non-call determinism markers Python code
// commonly uses.
func compileSeedPatterns(calls []string) []seedPattern {
	patterns := make([]seedPattern, 0, len(calls)+2)
	for _, call := range calls {
		// The leading class keeps shorter signatures from matching inside
		// longer dotted ones, e.g. random.seed inside np.random.seed.
		patterns = append(patterns, seedPattern{
			name: call,
			re:   regexp.MustCompile(`(?:^|[^.\w])` + regexp.QuoteMeta(call) + `\s*\(\s*([^)\s,]*)`),
		})
	}
	patterns = append(patterns,
		seedPattern{
			name: "PYTHONHASHSEED",
			re:   regexp.MustCompile(`os\.environ\[\s*['"]PYTHONHASHSEED['"]\s*\]\s*=\s*(\S*)`),
		},
		seedPattern{
			name: "torch.backends.cudnn.deterministic",
			re:   regexp.MustCompile(`torch\.backends\.cudnn\.deterministic\s*=\s*(\w*)`),
		},
	)
	return patterns
}

// compileHyperparamPatterns builds one assignment pattern per hyperparameter,
// matching any of its aliases followed by = or : and a literal value.
func compileHyperparamPatterns(hps []models.Hyperparameter) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(hps))
	for _, hp := range hps {
		alts := ""
		for i, alias := range hp.Aliases {
			if i > 0 {
				alts += "|"
			}
			alts += regexp.QuoteMeta(alias)
		}
		if alts == "" {
			alts = regexp.QuoteMeta(hp.Name)
		}
		patterns[hp.Name] = regexp.MustCompile(`\b(?:self\.)?(?:` + alts + `)\b\s*[=:]\s*(` + literalValue + `)`)
	}
	return patterns
}

var isLiteral = regexp.MustCompile(`^(?:` + literalValue + `)$`)

// literalArg filters a captured call argument down to numeric or quoted
// literals. Identifier arguments are dropped since only the literal value is
// meaningful for the report.
func literalArg(tok string) string {
	if isLiteral.MatchString(tok) {
		return tok
	}
	return ""
}
