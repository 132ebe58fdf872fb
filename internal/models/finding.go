package models

// FindingKind classifies one alignment finding.
type FindingKind string

const (
	FindingKeywordPresent     FindingKind = "keyword-present-in-code"
	FindingKeywordMissing     FindingKind = "keyword-missing-in-code"
	FindingHyperparamMatch    FindingKind = "hyperparameter-match"
	FindingHyperparamMismatch FindingKind = "hyperparameter-mismatch"
	FindingSeedPresent        FindingKind = "seed-present"
	FindingSeedAbsent         FindingKind = "seed-absent"
)

// IsMatch reports whether the kind counts as a confirmation rather than a
// discrepancy in the report summary.
func (k FindingKind) IsMatch() bool {
	switch k {
	case FindingKeywordPresent, FindingHyperparamMatch, FindingSeedPresent:
		return true
	}
	return false
}

// AlignmentFinding is one unit of comparison output between paper-derived
// and code-derived signals.
type AlignmentFinding struct {
	Kind       FindingKind `json:"kind"`
	Subject    string      `json:"subject"`     // vocabulary term, hyperparameter name, or "random seed"
	PaperValue string      `json:"paper_value"` // value or presence on the paper side
	CodeValue  string      `json:"code_value"`  // value or presence on the code side
}
