// Package report serializes an AuditReport for display and download. It
// contains no analysis logic.
package report

import (
	"fmt"
	"strings"

	"reprocheck/internal/models"
)

// Row is one finding prepared for tabular display.
type Row struct {
	Kind       string
	Subject    string
	PaperValue string
	CodeValue  string
	Status     string // "match" or "mismatch"
}

// rows flattens the report findings in emission order.
func rows(r *models.AuditReport) []Row {
	out := make([]Row, 0, len(r.Findings))
	for _, f := range r.Findings {
		out = append(out, Row{
			Kind:       string(f.Kind),
			Subject:    f.Subject,
			PaperValue: f.PaperValue,
			CodeValue:  f.CodeValue,
			Status:     status(f.Kind),
		})
	}
	return out
}

// KeywordRows returns only the keyword findings, in vocabulary order.
func KeywordRows(r *models.AuditReport) []Row {
	return filterRows(r, models.FindingKeywordPresent, models.FindingKeywordMissing)
}

// HyperparamRows returns only the hyperparameter findings, in configured order.
func HyperparamRows(r *models.AuditReport) []Row {
	return filterRows(r, models.FindingHyperparamMatch, models.FindingHyperparamMismatch)
}

// SeedRow returns the seed-detection finding.
func SeedRow(r *models.AuditReport) Row {
	rows := filterRows(r, models.FindingSeedPresent, models.FindingSeedAbsent)
	if len(rows) == 0 {
		return Row{}
	}
	return rows[0]
}

func filterRows(r *models.AuditReport, kinds ...models.FindingKind) []Row {
	var out []Row
	for _, row := range rows(r) {
		for _, k := range kinds {
			if row.Kind == string(k) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// Render produces the downloadable plaintext report. The layout is fixed and
// carries no timestamp, so byte-identical inputs yield byte-identical output.
func Render(r *models.AuditReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Reproducibility Audit Report\n")
	fmt.Fprintf(&b, "Paper: %s\n", r.PaperName)
	b.WriteString("\n")

	b.WriteString("Keywords:\n")
	for _, f := range r.Findings {
		if f.Kind != models.FindingKeywordPresent && f.Kind != models.FindingKeywordMissing {
			continue
		}
		fmt.Fprintf(&b, "  %s: paper=%s code=%s [%s]\n", f.Subject, f.PaperValue, f.CodeValue, status(f.Kind))
	}
	b.WriteString("\n")

	b.WriteString("Hyperparameters:\n")
	compared := false
	for _, f := range r.Findings {
		if f.Kind != models.FindingHyperparamMatch && f.Kind != models.FindingHyperparamMismatch {
			continue
		}
		compared = true
		fmt.Fprintf(&b, "  %s:\n", f.Subject)
		fmt.Fprintf(&b, "    paper: %s\n", f.PaperValue)
		fmt.Fprintf(&b, "    code: %s\n", f.CodeValue)
		fmt.Fprintf(&b, "    status: %s\n", status(f.Kind))
	}
	if !compared {
		b.WriteString("  none found in both paper and code\n")
	}
	b.WriteString("\n")

	if r.SeedsUsed {
		fmt.Fprintf(&b, "Random seed: detected (%s)\n", seedNames(r))
	} else {
		b.WriteString("Random seed: not detected\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Functions detected: %s\n", joinOrNone(r.Functions))
	fmt.Fprintf(&b, "Imports detected: %s\n", joinOrNone(r.Imports))
	fmt.Fprintf(&b, "Paper keywords: %s\n", joinOrNone(r.PaperKeywords))
	fmt.Fprintf(&b, "Matched keywords in code: %s\n", joinOrNone(r.MatchedKeywords))
	fmt.Fprintf(&b, "Missing keywords from paper: %s\n", joinOrNone(r.MissingKeywords))
	b.WriteString("\n")

	b.WriteString("Files:\n")
	for _, u := range r.Units {
		if u.Degraded {
			fmt.Fprintf(&b, "  %s: degraded parse (%s)\n", u.FileName, u.DegradedReason)
		} else {
			fmt.Fprintf(&b, "  %s: ok\n", u.FileName)
		}
	}
	for _, fe := range r.FileErrors {
		fmt.Fprintf(&b, "  %s: skipped (%s)\n", fe.FileName, fe.Err)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Summary: %d match(es), %d mismatch(es)\n", r.Matches, r.Mismatches)
	return b.String()
}

func status(k models.FindingKind) string {
	if k.IsMatch() {
		return "match"
	}
	return "mismatch"
}

func seedNames(r *models.AuditReport) string {
	var names []string
	seen := make(map[string]bool)
	for _, u := range r.Units {
		for _, s := range u.Seeds {
			if !seen[s.Name] {
				seen[s.Name] = true
				names = append(names, s.Name)
			}
		}
	}
	return strings.Join(names, ", ")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
