package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Extractor is the text extraction boundary: PDF bytes -> plain text.
// Implementations are constructed once at process start and shared; they
// hold no per-call state.
type Extractor interface {
	ExtractText(ctx context.Context, data []byte) (Result, error)
}

// Result is the concatenated text of all pages in document order,
// pages separated by newlines.
type Result struct {
	Text     string
	Pages    int
	Duration time.Duration
}

// ExtractionError reports a document that could not be read at all
// (corrupt, encrypted, not a PDF). Field extraction never produces this;
// it is the only error the invoice parser propagates.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdf text extraction: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("pdf text extraction: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

type Config struct {
	MaxPages     int   // 0 = no limit
	MaxFileBytes int64 // 0 = no limit
}

// Reader extracts embedded text streams. It does no OCR: scanned PDFs with
// no text layer yield an empty Result, not an error.
type Reader struct {
	cfg    Config
	vconf  *model.Configuration
	logger *slog.Logger
}

func NewReader(cfg Config, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	vconf := model.NewDefaultConfiguration()
	vconf.ValidationMode = model.ValidationRelaxed
	return &Reader{cfg: cfg, vconf: vconf, logger: logger}
}

// ExtractText returns the newline-joined text of every page, in order.
func (r *Reader) ExtractText(ctx context.Context, data []byte) (Result, error) {
	start := time.Now()

	if len(data) == 0 {
		return Result{}, &ExtractionError{Reason: "empty document"}
	}
	if r.cfg.MaxFileBytes > 0 && int64(len(data)) > r.cfg.MaxFileBytes {
		return Result{}, &ExtractionError{Reason: fmt.Sprintf("document too large: %d bytes", len(data))}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// Structural validation first: pdfcpu rejects corrupt, encrypted and
	// non-PDF payloads with a usable error before we touch text streams.
	if _, err := api.ReadValidateAndOptimize(bytes.NewReader(data), r.vconf); err != nil {
		r.logger.Warn("pdf validation failed", "bytes", len(data), "error", err)
		return Result{}, &ExtractionError{Reason: "invalid document", Err: err}
	}

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, &ExtractionError{Reason: "open document", Err: err}
	}

	pages := doc.NumPage()
	if r.cfg.MaxPages > 0 && pages > r.cfg.MaxPages {
		pages = r.cfg.MaxPages
	}

	var b strings.Builder
	for n := 1; n <= pages; n++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		page := doc.Page(n)
		if page.V.IsNull() {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pageText(page))
	}

	res := Result{Text: b.String(), Pages: pages, Duration: time.Since(start)}
	r.logger.Debug("pdf text extracted", "pages", res.Pages, "bytes", len(res.Text), "duration_ms", res.Duration.Milliseconds())
	return res, nil
}

// pageText joins words with spaces and rows with newlines, preserving the
// reading order the library reports.
func pageText(p pdf.Page) string {
	rows, err := p.GetTextByRow()
	if err != nil {
		return ""
	}
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, word := range row.Content {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(word.S)
		}
	}
	return b.String()
}
