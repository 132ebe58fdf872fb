package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

var paperExts = map[string]bool{
	".pdf": true,
	".txt": true,
	".md":  true,
}

var codeExts = map[string]bool{
	".py":  true,
	".pyw": true,
}

// ValidatePaperFile checks the uploaded paper's name and size.
func ValidatePaperFile(name string, size, maxSize int64) (bool, string) {
	if name == "" {
		return false, "paper file is required"
	}
	if !paperExts[strings.ToLower(filepath.Ext(name))] {
		return false, "paper must be a .pdf, .txt or .md file"
	}
	if size <= 0 {
		return false, "paper file is empty"
	}
	if maxSize > 0 && size > maxSize {
		return false, fmt.Sprintf("paper file exceeds the %d byte limit", maxSize)
	}
	return true, ""
}

// ValidateCodeFile checks one uploaded source file's name and size.
func ValidateCodeFile(name string, size, maxSize int64) (bool, string) {
	if name == "" {
		return false, "code file name is required"
	}
	if !codeExts[strings.ToLower(filepath.Ext(name))] {
		return false, fmt.Sprintf("%s: code files must be Python (.py)", name)
	}
	if maxSize > 0 && size > maxSize {
		return false, fmt.Sprintf("%s: exceeds the %d byte limit", name, maxSize)
	}
	return true, ""
}

// ValidateCodeCount checks the number of uploaded code files.
func ValidateCodeCount(n, max int) (bool, string) {
	if n == 0 {
		return false, "at least one code file is required"
	}
	if max > 0 && n > max {
		return false, fmt.Sprintf("at most %d code files per analysis", max)
	}
	return true, ""
}

// IsCodeFile reports whether a path looks like an analyzable source file.
// Used by the directory auditor when walking a repository.
func IsCodeFile(path string) bool {
	return codeExts[strings.ToLower(filepath.Ext(path))]
}
