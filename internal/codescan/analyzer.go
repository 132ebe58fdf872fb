// Package codescan analyzes uploaded Python source files for functions,
// imports, seed-setting calls and hyperparameter assignments.
package codescan

import (
	"context"
	"regexp"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"reprocheck/internal/models"
)

// Analyzer produces one CodeUnit per source file. Each analysis request owns
// its own Analyzer; nothing is shared between requests.
type Analyzer struct {
	parser       *sitter.Parser
	hyperparams  []models.Hyperparameter
	hpPatterns   map[string]*regexp.Regexp
	seedPatterns []seedPattern
}

// NewAnalyzer compiles scanning patterns for the given hyperparameters and
// seed call signatures. Nil slices select the defaults.
func NewAnalyzer(hps []models.Hyperparameter, seedCalls []string) *Analyzer {
	if hps == nil {
		hps = DefaultHyperparameters
	}
	if seedCalls == nil {
		seedCalls = DefaultSeedCalls
	}
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	return &Analyzer{
		parser:       parser,
		hyperparams:  hps,
		hpPatterns:   compileHyperparamPatterns(hps),
		seedPatterns: compileSeedPatterns(seedCalls),
	}
}

// AnalyzeFile scans one source file. It never fails: an empty file yields a
// CodeUnit with empty collections, and a file the structural parser rejects
// falls back to line-based regex scanning with the Degraded flag set.
func (a *Analyzer) AnalyzeFile(name string, src []byte) models.CodeUnit {
	unit := models.CodeUnit{
		FileName:    name,
		Source:      string(src),
		Hyperparams: make(map[string]string),
	}

	a.scanSeeds(&unit)
	a.scanHyperparams(&unit)

	tree, err := a.parser.ParseCtx(context.Background(), nil, src)
	if err != nil || tree == nil {
		unit.Degraded = true
		unit.DegradedReason = "structural parse failed"
		scanStructureFallback(&unit)
		return unit
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		unit.Degraded = true
		unit.DegradedReason = "syntax errors in source"
		scanStructureFallback(&unit)
		return unit
	}

	a.walk(root, src, &unit)
	return unit
}

// walk collects function definitions and imports in source order, recursing
// into nested scopes the way ast.walk would.
func (a *Analyzer) walk(node *sitter.Node, src []byte, unit *models.CodeUnit) {
	text := func(n *sitter.Node) string {
		return string(src[n.StartByte():n.EndByte()])
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "function_definition":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				unit.Functions = append(unit.Functions, text(nameNode))
			}
			a.walk(child, src, unit)

		case "import_statement":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				target := child.NamedChild(j)
				switch target.Type() {
				case "dotted_name":
					unit.Imports = append(unit.Imports, text(target))
				case "aliased_import":
					if nameNode := target.ChildByFieldName("name"); nameNode != nil {
						unit.Imports = append(unit.Imports, text(nameNode))
					}
				}
			}

		case "import_from_statement":
			if module := child.ChildByFieldName("module_name"); module != nil {
				unit.Imports = append(unit.Imports, text(module))
			}

		default:
			a.walk(child, src, unit)
		}
	}
}

// scanSeeds records seed-setting call sites in source order, deduplicating
// identical (name, arg) pairs.
func (a *Analyzer) scanSeeds(unit *models.CodeUnit) {
	type hit struct {
		pos  int
		call models.SeedCall
	}
	var hits []hit
	for _, pattern := range a.seedPatterns {
		for _, loc := range pattern.re.FindAllStringSubmatchIndex(unit.Source, -1) {
			arg := ""
			if loc[2] >= 0 {
				arg = literalArg(unit.Source[loc[2]:loc[3]])
			}
			hits = append(hits, hit{pos: loc[0], call: models.SeedCall{Name: pattern.name, Arg: arg}})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	seen := make(map[models.SeedCall]bool)
	for _, h := range hits {
		if seen[h.call] {
			continue
		}
		seen[h.call] = true
		unit.Seeds = append(unit.Seeds, h.call)
	}
}

// scanHyperparams records the first assigned literal per hyperparameter.
// Later duplicate assignments are ignored.
func (a *Analyzer) scanHyperparams(unit *models.CodeUnit) {
	for _, hp := range a.hyperparams {
		if m := a.hpPatterns[hp.Name].FindStringSubmatch(unit.Source); m != nil {
			unit.Hyperparams[hp.Name] = m[1]
		}
	}
}
