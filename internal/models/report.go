package models

import "github.com/google/uuid"

// AuditReport is the full outcome of one analysis run. It is immutable once
// generated and discarded when the request ends.
type AuditReport struct {
	ID        uuid.UUID `json:"id"`
	PaperName string    `json:"paper_name"`

	// Findings in fixed order: vocabulary terms, then hyperparameters in
	// configured order, then seed status.
	Findings   []AlignmentFinding `json:"findings"`
	Matches    int                `json:"matches"`
	Mismatches int                `json:"mismatches"`

	// Merged code-side signals across all uploaded files.
	Functions []string `json:"functions"` // upload then source order
	Imports   []string `json:"imports"`   // deduplicated, first-seen order
	SeedsUsed bool     `json:"seeds_used"`

	// Paper-side keyword view.
	PaperKeywords   []string `json:"paper_keywords"`   // vocabulary terms found in the paper
	MatchedKeywords []string `json:"matched_keywords"` // paper terms also found in code
	MissingKeywords []string `json:"missing_keywords"` // paper terms absent from code

	Units      []CodeUnit  `json:"units"`
	FileErrors []FileError `json:"file_errors,omitempty"`
}
