package models

// SeedCall is one detected seed-setting call site in a source file.
type SeedCall struct {
	Name string `json:"name"` // e.g. "torch.manual_seed"
	Arg  string `json:"arg"`  // literal argument when present, "" otherwise
}

// CodeUnit is the analysis result for one uploaded source file.
type CodeUnit struct {
	FileName       string            `json:"file_name"`
	Functions      []string          `json:"functions"` // top-level and nested defs, source order
	Imports        []string          `json:"imports"`   // imported module names, source order
	Seeds          []SeedCall        `json:"seeds"`
	Hyperparams    map[string]string `json:"hyperparams"` // canonical name -> first literal value
	Degraded       bool              `json:"degraded"`    // structural parse failed, regex fallback used
	DegradedReason string            `json:"degraded_reason,omitempty"`

	// Source is the raw file text, kept for keyword presence lookups.
	Source string `json:"-"`
}

// FileError records a code file that could not be read. The file is skipped
// and the rest of the analysis continues.
type FileError struct {
	FileName string `json:"file_name"`
	Err      string `json:"error"`
}
