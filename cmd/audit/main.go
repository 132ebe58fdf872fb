// Command audit runs the reproducibility pipeline against a paper and a
// local code directory, without the web UI.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/spf13/pflag"

	"reprocheck/internal/audit"
	"reprocheck/internal/config"
	"reprocheck/internal/validation"
)

func main() {
	fs := pflag.NewFlagSet("reprocheck-audit", pflag.ExitOnError)
	paperPath := fs.String("paper", "", "Path to the paper (.pdf, .txt or .md)")
	codeDir := fs.String("code-dir", ".", "Directory to scan for Python source files")
	outPath := fs.String("out", "", "Write the plaintext report here (default: stdout)")
	pages := fs.Int("pages", 0, "Limit PDF extraction to the first N pages (0 = config default)")
	rulesPath := fs.String("rules", "", "Path to a rules.yaml overriding vocabulary/hyperparameters/seed calls")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	if *paperPath == "" {
		fmt.Fprintln(os.Stderr, "usage: audit --paper paper.pdf [--code-dir ./src] [--out report.txt]")
		fs.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.Load()
	if *pages > 0 {
		cfg.PreviewPages = *pages
	}

	var rules *config.RulesConfig
	var err error
	if *rulesPath != "" {
		rules, err = config.LoadRulesFile(*rulesPath)
	} else {
		rules, err = config.LoadRulesConfig()
	}
	if err != nil {
		log.Fatalf("Failed to load rules config: %v", err)
	}

	paperData, err := os.ReadFile(*paperPath)
	if err != nil {
		log.Fatalf("Failed to read paper: %v", err)
	}

	files := collectCodeFiles(*codeDir)
	if len(files) == 0 {
		log.Fatalf("No Python source files found under %s", *codeDir)
	}
	log.Printf("Analyzing %d code file(s) against %s", len(files), *paperPath)

	svc := audit.NewService(cfg, rules)
	res, err := svc.Run(*paperPath, paperData, files)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if *outPath == "" {
		fmt.Print(res.ReportText)
		return
	}
	if err := os.WriteFile(*outPath, []byte(res.ReportText), 0o644); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	log.Printf("Report written to %s (%d match(es), %d mismatch(es))",
		*outPath, res.Report.Matches, res.Report.Mismatches)
}

// collectCodeFiles walks the directory for Python sources. Unreadable files
// are carried with their read error so the pipeline records the skip.
func collectCodeFiles(root string) []audit.CodeFile {
	var files []audit.CodeFile
	err := godirwalk.Walk(root, &godirwalk.Options{
		Unsorted: false,
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			if shouldSkip(path) || !validation.IsCodeFile(path) {
				return nil
			}
			data, err := os.ReadFile(path)
			files = append(files, audit.CodeFile{Name: path, Data: data, ReadErr: err})
			return nil
		},
	})
	if err != nil {
		log.Fatalf("Failed to walk %s: %v", root, err)
	}
	return files
}

// shouldSkip returns true if the file at path should be skipped.
func shouldSkip(path string) bool {
	p := strings.ToLower(path)
	return strings.Contains(p, "/.git/") ||
		strings.Contains(p, "/node_modules/") ||
		strings.Contains(p, "/.venv/") ||
		strings.Contains(p, "/venv/") ||
		strings.Contains(p, "/__pycache__/") ||
		strings.Contains(p, "/.pytest_cache/") ||
		strings.Contains(p, "/build/") ||
		strings.Contains(p, "/dist/")
}
