package align

import (
	"testing"

	"reprocheck/internal/codescan"
	"reprocheck/internal/keywords"
	"reprocheck/internal/models"
)

func buildSample(t *testing.T, paperText string, units []models.CodeUnit) *models.AuditReport {
	t.Helper()
	vocab := keywords.DefaultVocabulary
	matcher := keywords.NewMatcher(vocab)
	paperHits := matcher.Match(paperText)
	paperValues := keywords.ExtractHyperparams(paperText, codescan.DefaultHyperparameters)
	return Build(vocab, paperHits, codescan.DefaultHyperparameters, paperValues, units, nil)
}

func TestBuildOneFindingPerVocabularyTerm(t *testing.T) {
	rep := buildSample(t, "We study the transformer.", nil)

	var keywordFindings int
	for _, f := range rep.Findings {
		if f.Kind == models.FindingKeywordPresent || f.Kind == models.FindingKeywordMissing {
			keywordFindings++
		}
	}
	if keywordFindings != len(keywords.DefaultVocabulary) {
		t.Errorf("keyword findings = %d, want one per term (%d)", keywordFindings, len(keywords.DefaultVocabulary))
	}
}

func TestBuildFindingOrder(t *testing.T) {
	paper := "The transformer model uses a learning rate of 0.001."
	units := []models.CodeUnit{{
		FileName:    "train.py",
		Source:      "learning_rate = 0.001\ntorch.manual_seed(1)\n",
		Hyperparams: map[string]string{"learning_rate": "0.001"},
		Seeds:       []models.SeedCall{{Name: "torch.manual_seed", Arg: "1"}},
	}}
	rep := buildSample(t, paper, units)

	n := len(rep.Findings)
	if n < 2 {
		t.Fatalf("Findings = %v, want keywords then hyperparams then seed", rep.Findings)
	}
	last := rep.Findings[n-1]
	if last.Kind != models.FindingSeedPresent && last.Kind != models.FindingSeedAbsent {
		t.Errorf("last finding = %+v, want seed status", last)
	}
	// Vocabulary findings come first, in vocabulary order.
	for i, term := range keywords.DefaultVocabulary {
		if rep.Findings[i].Subject != term {
			t.Errorf("Findings[%d].Subject = %q, want %q", i, rep.Findings[i].Subject, term)
		}
	}
	// Hyperparameter findings sit between keywords and the seed finding.
	for _, f := range rep.Findings[len(keywords.DefaultVocabulary) : n-1] {
		if f.Kind != models.FindingHyperparamMatch && f.Kind != models.FindingHyperparamMismatch {
			t.Errorf("middle finding = %+v, want hyperparameter kind", f)
		}
	}
}

func TestBuildHyperparamNormalization(t *testing.T) {
	paper := "a learning rate of 1e-3 and a batch size of 32"
	units := []models.CodeUnit{{
		FileName:    "train.py",
		Hyperparams: map[string]string{"learning_rate": "0.001", "batch_size": "64"},
	}}
	rep := buildSample(t, paper, units)

	got := make(map[string]models.FindingKind)
	for _, f := range rep.Findings {
		if f.Kind == models.FindingHyperparamMatch || f.Kind == models.FindingHyperparamMismatch {
			got[f.Subject] = f.Kind
		}
	}
	if got["learning_rate"] != models.FindingHyperparamMatch {
		t.Errorf("learning_rate finding = %v, want match for 1e-3 vs 0.001", got["learning_rate"])
	}
	if got["batch_size"] != models.FindingHyperparamMismatch {
		t.Errorf("batch_size finding = %v, want mismatch for 32 vs 64", got["batch_size"])
	}
}

func TestBuildHyperparamRequiresBothSides(t *testing.T) {
	paper := "a learning rate of 0.001"
	units := []models.CodeUnit{{
		FileName:    "train.py",
		Hyperparams: map[string]string{"batch_size": "32"},
	}}
	rep := buildSample(t, paper, units)

	for _, f := range rep.Findings {
		if f.Kind == models.FindingHyperparamMatch || f.Kind == models.FindingHyperparamMismatch {
			t.Errorf("unexpected hyperparameter finding %+v for one-sided values", f)
		}
	}
}

func TestBuildKeywordInCodeOnly(t *testing.T) {
	// The term appears in the code but not in the paper.
	units := []models.CodeUnit{{
		FileName: "opt.py",
		Source:   "optimizer = Adam(model.parameters())\n",
	}}
	rep := buildSample(t, "No relevant terms here.", units)

	var found *models.AlignmentFinding
	for i := range rep.Findings {
		if rep.Findings[i].Subject == "optimizer" {
			found = &rep.Findings[i]
		}
	}
	if found == nil {
		t.Fatal("no finding for optimizer")
	}
	if found.PaperValue != "absent" || found.CodeValue != "present" {
		t.Errorf("optimizer finding = %+v, want paper=absent code=present", found)
	}
}

func TestBuildSeedAbsent(t *testing.T) {
	rep := buildSample(t, "transformer", []models.CodeUnit{{FileName: "a.py", Source: "x = 1\n"}})

	last := rep.Findings[len(rep.Findings)-1]
	if last.Kind != models.FindingSeedAbsent {
		t.Errorf("last finding = %+v, want seed-absent", last)
	}
	if rep.SeedsUsed {
		t.Error("SeedsUsed = true, want false")
	}
}

func TestBuildKeywordBuckets(t *testing.T) {
	paper := "The transformer uses attention and an optimizer."
	units := []models.CodeUnit{{
		FileName: "train.py",
		Source:   "optimizer = Adam()\n",
	}}
	rep := buildSample(t, paper, units)

	wantPaper := []string{"attention", "transformer", "optimizer"}
	if len(rep.PaperKeywords) != len(wantPaper) {
		t.Errorf("PaperKeywords = %v, want %v", rep.PaperKeywords, wantPaper)
	}
	if len(rep.MatchedKeywords) != 1 || rep.MatchedKeywords[0] != "optimizer" {
		t.Errorf("MatchedKeywords = %v, want [optimizer]", rep.MatchedKeywords)
	}
	if len(rep.MissingKeywords) != 2 {
		t.Errorf("MissingKeywords = %v, want attention and transformer", rep.MissingKeywords)
	}
}

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical numbers", a: "0.001", b: "0.001", want: true},
		{name: "scientific notation", a: "1e-3", b: "0.001", want: true},
		{name: "different numbers", a: "32", b: "64", want: false},
		{name: "quoted string", a: `"adam"`, b: "'Adam'", want: true},
		{name: "non-numeric mismatch", a: "adam", b: "sgd", want: false},
		{name: "integer and float", a: "32", b: "32.0", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valuesEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("valuesEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
