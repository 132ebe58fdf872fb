package codescan

import (
	"regexp"
	"strings"

	"reprocheck/internal/models"
)

// Line-based fallback for files the structural parser rejects. Seed and
// hyperparameter scanning are regex-based already, so only functions and
// imports need recovering here.
var (
	defRe        = regexp.MustCompile(`(?m)^[ \t]*(?:async[ \t]+)?def[ \t]+([A-Za-z_]\w*)`)
	importRe     = regexp.MustCompile(`(?m)^[ \t]*import[ \t]+([^\n#]+)`)
	fromImportRe = regexp.MustCompile(`(?m)^[ \t]*from[ \t]+([.\w]+)[ \t]+import\b`)
)

func scanStructureFallback(unit *models.CodeUnit) {
	type hit struct {
		pos  int
		name string
		fn   bool
	}
	var hits []hit

	for _, loc := range defRe.FindAllStringSubmatchIndex(unit.Source, -1) {
		hits = append(hits, hit{pos: loc[0], name: unit.Source[loc[2]:loc[3]], fn: true})
	}
	for _, loc := range importRe.FindAllStringSubmatchIndex(unit.Source, -1) {
		for _, module := range splitImportList(unit.Source[loc[2]:loc[3]]) {
			hits = append(hits, hit{pos: loc[0], name: module})
		}
	}
	for _, loc := range fromImportRe.FindAllStringSubmatchIndex(unit.Source, -1) {
		hits = append(hits, hit{pos: loc[0], name: unit.Source[loc[2]:loc[3]]})
	}

	// FindAll returns matches in source order per pattern; interleave by
	// position so the fallback preserves the same ordering the structural
	// walk would produce.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	for _, h := range hits {
		if h.fn {
			unit.Functions = append(unit.Functions, h.name)
		} else {
			unit.Imports = append(unit.Imports, h.name)
		}
	}
}

// splitImportList handles "import a, b as c" lines from the fallback scan.
func splitImportList(list string) []string {
	var modules []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if idx := strings.Index(part, " as "); idx > 0 {
			part = strings.TrimSpace(part[:idx])
		}
		if part != "" {
			modules = append(modules, part)
		}
	}
	return modules
}
