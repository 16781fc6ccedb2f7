package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// Processor coordinates staging, expense analysis, extraction and the
// payment-terms recovery decision for one document at a time.
type Processor struct {
	Logger    *slog.Logger
	Store     DocumentStore
	Analysis  AnalysisClient
	Extractor *extract.Extractor

	// KeepRemote skips deleting the staged object after processing.
	KeepRemote bool
}

func NewProcessor(logger *slog.Logger, store DocumentStore, analysis AnalysisClient, ex *extract.Extractor) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if ex == nil {
		ex = extract.NewExtractor(logger)
	}
	return &Processor{Logger: logger, Store: store, Analysis: analysis, Extractor: ex}
}

// ProcessFile stages a local document, runs the primary analysis, extracts
// normalized records and resolves payment terms per record. The staged
// object is removed in all cases unless KeepRemote is set; cleanup failure
// is logged, not returned.
func (p *Processor) ProcessFile(ctx context.Context, path string) ([]entity.InvoiceRecord, error) {
	loc, err := p.Store.Upload(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("stage document: %w", err)
	}
	defer func() {
		if p.KeepRemote {
			return
		}
		if err := p.Store.Remove(context.WithoutCancel(ctx), loc); err != nil {
			p.Logger.Warn("could not remove staged document", "bucket", loc.Bucket, "key", loc.Key, "error", err)
		}
	}()

	res, err := p.Analysis.AnalyzeExpense(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("expense analysis: %w", err)
	}

	return p.ProcessResult(ctx, res, &loc), nil
}

// ProcessResult extracts records from an already-terminal analysis result.
// When loc is nil there is no raw-text source to fall back on, so a missing
// payment terms value goes straight to the sentinel. Used directly by the
// JSON replay path.
func (p *Processor) ProcessResult(ctx context.Context, res entity.AnalysisResult, loc *entity.DocumentLocation) []entity.InvoiceRecord {
	records := p.Extractor.ExtractInvoices(res)
	for i := range records {
		p.resolvePaymentTerms(ctx, loc, &records[i])
	}
	return records
}

// resolvePaymentTerms runs the raw-text fallback only when the structured
// extraction produced nothing. A structured value always passes through
// unchanged.
func (p *Processor) resolvePaymentTerms(ctx context.Context, loc *entity.DocumentLocation, rec *entity.InvoiceRecord) {
	if rec.PaymentTerms != nil {
		return
	}

	if loc == nil || p.Analysis == nil {
		p.Logger.Info("no raw-text source available for payment terms, marking not available")
		rec.PaymentTerms = sentinel()
		return
	}

	p.Logger.Warn("structured extraction missed payment terms, running text-detection fallback",
		"invoice_number", rec.InvoiceNumber)

	lines, err := p.Analysis.DetectTextLines(ctx, *loc)
	if err != nil {
		p.Logger.Error("payment terms fallback failed", "error", err)
		rec.PaymentTerms = sentinel()
		return
	}

	if terms := extract.FindPaymentTerms(lines); terms != nil {
		p.Logger.Info("recovered payment terms from raw text", "invoice_number", rec.InvoiceNumber)
		rec.PaymentTerms = terms
		return
	}
	rec.PaymentTerms = sentinel()
}

func sentinel() *string {
	s := entity.TermsNotAvailable
	return &s
}
