// Package align compares paper-derived signals against code-derived signals.
package align

import (
	"strings"

	"reprocheck/internal/keywords"
	"reprocheck/internal/models"
)

const (
	present = "present"
	absent  = "absent"
)

// Build is a pure function from the keyword matcher output, the paper-side
// hyperparameter values and the analyzed code units to an AuditReport.
// Findings are emitted in fixed order: vocabulary terms in vocabulary order,
// then hyperparameters in configured order, then seed status, so the report
// is stable across runs for identical input.
func Build(
	vocab []string,
	paperHits map[string]bool,
	hps []models.Hyperparameter,
	paperValues map[string]string,
	units []models.CodeUnit,
	fileErrs []models.FileError,
) *models.AuditReport {
	rep := &models.AuditReport{
		Units:      units,
		FileErrors: fileErrs,
	}

	// Merge code-side text: raw sources plus function and import names, so
	// a term counts as present in code wherever it literally occurs.
	var merged []string
	for _, u := range units {
		merged = append(merged, u.Source)
		merged = append(merged, u.Functions...)
		merged = append(merged, u.Imports...)
		rep.Functions = append(rep.Functions, u.Functions...)
		for _, imp := range u.Imports {
			rep.Imports = appendUnique(rep.Imports, imp)
		}
		if len(u.Seeds) > 0 {
			rep.SeedsUsed = true
		}
	}
	codeMatcher := keywords.NewMatcher(vocab)
	codeHits := codeMatcher.Match(strings.Join(merged, "\n"))

	// Keyword findings, one per vocabulary term.
	for _, term := range codeMatcher.Vocabulary() {
		finding := models.AlignmentFinding{
			Kind:       models.FindingKeywordMissing,
			Subject:    term,
			PaperValue: absent,
			CodeValue:  absent,
		}
		if paperHits[term] {
			finding.PaperValue = present
			rep.PaperKeywords = append(rep.PaperKeywords, term)
		}
		if codeHits[term] {
			finding.Kind = models.FindingKeywordPresent
			finding.CodeValue = present
		}
		if paperHits[term] {
			if codeHits[term] {
				rep.MatchedKeywords = append(rep.MatchedKeywords, term)
			} else {
				rep.MissingKeywords = append(rep.MissingKeywords, term)
			}
		}
		rep.Findings = append(rep.Findings, finding)
	}

	// Hyperparameter findings for names present on both sides, in
	// configured order. The code value is the first file's match, in upload
	// order, mirroring the first-match-wins scan within a file.
	for _, hp := range hps {
		paperValue, inPaper := paperValues[hp.Name]
		codeValue, inCode := firstCodeValue(units, hp.Name)
		if !inPaper || !inCode {
			continue
		}
		kind := models.FindingHyperparamMismatch
		if valuesEqual(paperValue, codeValue) {
			kind = models.FindingHyperparamMatch
		}
		rep.Findings = append(rep.Findings, models.AlignmentFinding{
			Kind:       kind,
			Subject:    hp.Name,
			PaperValue: paperValue,
			CodeValue:  codeValue,
		})
	}

	// Seed status, last.
	seedFinding := models.AlignmentFinding{
		Kind:    models.FindingSeedAbsent,
		Subject: "random seed",
	}
	if rep.SeedsUsed {
		seedFinding.Kind = models.FindingSeedPresent
		seedFinding.CodeValue = strings.Join(seedCallNames(units), ", ")
	}
	rep.Findings = append(rep.Findings, seedFinding)

	for _, f := range rep.Findings {
		if f.Kind.IsMatch() {
			rep.Matches++
		} else {
			rep.Mismatches++
		}
	}
	return rep
}

func firstCodeValue(units []models.CodeUnit, name string) (string, bool) {
	for _, u := range units {
		if v, ok := u.Hyperparams[name]; ok {
			return v, true
		}
	}
	return "", false
}

func seedCallNames(units []models.CodeUnit) []string {
	var names []string
	for _, u := range units {
		for _, s := range u.Seeds {
			names = appendUnique(names, s.Name)
		}
	}
	return names
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}
