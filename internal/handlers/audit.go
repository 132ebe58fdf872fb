package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v3"

	"reprocheck/internal/audit"
	"reprocheck/internal/config"
	"reprocheck/internal/extract"
	"reprocheck/internal/metrics"
	"reprocheck/internal/report"
	"reprocheck/internal/validation"
)

// previewLines caps the extracted-text preview on the results page.
const previewLines = 40

// AuditHandler handles the upload form, the analysis request and the report
// download.
type AuditHandler struct {
	svc *audit.Service
	cfg *config.Config
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(svc *audit.Service, cfg *config.Config) *AuditHandler {
	return &AuditHandler{svc: svc, cfg: cfg}
}

// Index renders the upload form.
func (h *AuditHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title": "Upload",
	}, h.cfg))
}

// Analyze runs the full pipeline for one paper plus one or more code files
// and renders the comparison page. Each request runs its own independent
// pipeline; nothing is retained afterwards.
func (h *AuditHandler) Analyze(c fiber.Ctx) error {
	start := time.Now()

	paperHeader, err := c.FormFile("paper")
	if err != nil {
		metrics.RecordAnalysis("invalid_input", 0)
		return fiber.NewError(fiber.StatusBadRequest, "paper file is required")
	}
	if ok, msg := validation.ValidatePaperFile(paperHeader.Filename, paperHeader.Size, h.cfg.MaxUploadBytes); !ok {
		metrics.RecordAnalysis("invalid_input", 0)
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	form, err := c.MultipartForm()
	if err != nil {
		metrics.RecordAnalysis("invalid_input", 0)
		return fiber.NewError(fiber.StatusBadRequest, "invalid upload")
	}
	codeHeaders := form.File["code"]
	if ok, msg := validation.ValidateCodeCount(len(codeHeaders), h.cfg.MaxCodeFiles); !ok {
		metrics.RecordAnalysis("invalid_input", 0)
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}
	for _, fh := range codeHeaders {
		if ok, msg := validation.ValidateCodeFile(fh.Filename, fh.Size, h.cfg.MaxUploadBytes); !ok {
			metrics.RecordAnalysis("invalid_input", 0)
			return fiber.NewError(fiber.StatusBadRequest, msg)
		}
	}

	paperData, err := readUpload(paperHeader)
	if err != nil {
		metrics.RecordAnalysis("invalid_input", 0)
		return fiber.NewError(fiber.StatusBadRequest, "could not read paper upload")
	}

	// A code file that fails to read is recorded and skipped; the rest of
	// the upload is still analyzed.
	files := make([]audit.CodeFile, 0, len(codeHeaders))
	for _, fh := range codeHeaders {
		data, err := readUpload(fh)
		files = append(files, audit.CodeFile{Name: fh.Filename, Data: data, ReadErr: err})
	}

	res, err := h.svc.Run(paperHeader.Filename, paperData, files)
	if err != nil {
		var exErr *extract.Error
		if errors.As(err, &exErr) {
			metrics.RecordAnalysis("extraction_error", 0)
			return fiber.NewError(fiber.StatusUnprocessableEntity, exErr.Error())
		}
		return err
	}

	metrics.RecordAnalysis("ok", time.Since(start))
	metrics.RecordFindings(res.Report.Findings)

	return c.Render("results", MergeBranding(fiber.Map{
		"Title":          "Results",
		"Document":       res.Document,
		"Preview":        res.Document.Preview(previewLines),
		"Report":         res.Report,
		"KeywordRows":    report.KeywordRows(res.Report),
		"HyperparamRows": report.HyperparamRows(res.Report),
		"SeedRow":        report.SeedRow(res.Report),
		"ReportText":     res.ReportText,
		"GeneratedAt":    time.Now().Format("2006-01-02 15:04"),
	}, h.cfg))
}

// Download echoes the rendered report back as a plaintext attachment. The
// report is carried in the form so no state survives the analysis request.
func (h *AuditHandler) Download(c fiber.Ctx) error {
	text := c.FormValue("report")
	if text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no report to download")
	}
	name := reportFilename(c.FormValue("paper"))

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.SendString(text)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
