// Package audit runs the full analysis pipeline for one request:
// extraction, keyword matching, code analysis, alignment and rendering.
package audit

import (
	"strings"

	"github.com/google/uuid"

	"reprocheck/internal/align"
	"reprocheck/internal/codescan"
	"reprocheck/internal/config"
	"reprocheck/internal/extract"
	"reprocheck/internal/keywords"
	"reprocheck/internal/models"
	"reprocheck/internal/report"
)

// CodeFile is one uploaded source file. ReadErr marks a file that could not
// be read; it is skipped and recorded, the rest of the analysis continues.
type CodeFile struct {
	Name    string
	Data    []byte
	ReadErr error
}

// Result is everything one analysis run produces.
type Result struct {
	Document   *models.Document
	Report     *models.AuditReport
	ReportText string
}

// Service holds the configured rule sets. It is safe for concurrent use:
// Run builds a fresh pipeline per invocation and shares no mutable state
// between invocations.
type Service struct {
	vocab        []string
	hyperparams  []models.Hyperparameter
	seedCalls    []string
	previewPages int
}

// NewService builds a service from the app config and an optional rules
// file. A rules file replaces whichever lists it sets; the rest keep their
// defaults.
func NewService(cfg *config.Config, rules *config.RulesConfig) *Service {
	s := &Service{
		vocab:        keywords.DefaultVocabulary,
		hyperparams:  codescan.DefaultHyperparameters,
		seedCalls:    codescan.DefaultSeedCalls,
		previewPages: cfg.PreviewPages,
	}
	if rules != nil {
		if len(rules.Vocabulary) > 0 {
			s.vocab = rules.Vocabulary
		}
		if len(rules.Hyperparameters) > 0 {
			s.hyperparams = normalizeHyperparams(rules.Hyperparameters)
		}
		if len(rules.SeedCalls) > 0 {
			s.seedCalls = rules.SeedCalls
		}
	}
	return s
}

// Run executes the pipeline: Extracting -> Analyzing -> Aligning -> Rendered.
// It fails only when the paper cannot be extracted; code file problems are
// recorded per file and do not abort the run.
func (s *Service) Run(paperName string, paperData []byte, files []CodeFile) (*Result, error) {
	ex, err := extract.ForFile(paperName)
	if err != nil {
		return nil, &extract.Error{Name: paperName, Err: err}
	}
	lines, pages, err := ex.Extract(paperData, s.previewPages)
	if err != nil {
		return nil, &extract.Error{Name: paperName, Err: err}
	}
	doc := &models.Document{
		Name:      paperName,
		Pages:     pages,
		PageLimit: s.previewPages,
		Lines:     lines,
	}

	matcher := keywords.NewMatcher(s.vocab)
	hits := matcher.Match(doc.Text())
	paperValues := keywords.ExtractHyperparams(doc.Text(), s.hyperparams)

	analyzer := codescan.NewAnalyzer(s.hyperparams, s.seedCalls)
	var units []models.CodeUnit
	var fileErrs []models.FileError
	for _, f := range files {
		if f.ReadErr != nil {
			fileErrs = append(fileErrs, models.FileError{FileName: f.Name, Err: f.ReadErr.Error()})
			continue
		}
		units = append(units, analyzer.AnalyzeFile(f.Name, f.Data))
	}

	rep := align.Build(matcher.Vocabulary(), hits, s.hyperparams, paperValues, units, fileErrs)
	rep.ID = uuid.New()
	rep.PaperName = paperName

	return &Result{
		Document:   doc,
		Report:     rep,
		ReportText: report.Render(rep),
	}, nil
}

// normalizeHyperparams fills in missing alias and phrase lists for entries
// from a rules file, so a bare name is enough to configure one.
func normalizeHyperparams(hps []models.Hyperparameter) []models.Hyperparameter {
	out := make([]models.Hyperparameter, 0, len(hps))
	for _, hp := range hps {
		if hp.Name == "" {
			continue
		}
		if len(hp.Aliases) == 0 {
			hp.Aliases = []string{hp.Name}
		}
		if len(hp.Phrases) == 0 {
			hp.Phrases = []string{strings.ReplaceAll(hp.Name, "_", " ")}
		}
		out = append(out, hp)
	}
	return out
}
