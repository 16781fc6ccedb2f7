package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
)

type fakeAnalysis struct {
	result      entity.AnalysisResult
	analyzeErr  error
	lines       []string
	linesErr    error
	detectCalls int
}

func (f *fakeAnalysis) AnalyzeExpense(_ context.Context, _ entity.DocumentLocation) (entity.AnalysisResult, error) {
	return f.result, f.analyzeErr
}

func (f *fakeAnalysis) DetectTextLines(_ context.Context, _ entity.DocumentLocation) ([]string, error) {
	f.detectCalls++
	return f.lines, f.linesErr
}

type fakeStore struct {
	uploadErr   error
	removeErr   error
	removeCalls int
}

func (f *fakeStore) Upload(_ context.Context, path string) (entity.DocumentLocation, error) {
	if f.uploadErr != nil {
		return entity.DocumentLocation{}, f.uploadErr
	}
	return entity.DocumentLocation{Bucket: "staging", Key: "run/" + path}, nil
}

func (f *fakeStore) Remove(_ context.Context, _ entity.DocumentLocation) error {
	f.removeCalls++
	return f.removeErr
}

func sectionWithTerms(terms string) entity.DocumentSection {
	fields := []entity.RawField{
		{Type: constants.FieldInvoiceReceiptID, Value: "INV-1"},
		{Type: constants.FieldTotal, Value: "100.00"},
	}
	if terms != "" {
		fields = append(fields, entity.RawField{Type: constants.FieldPaymentTerms, Value: terms})
	}
	return entity.DocumentSection{SummaryFields: fields}
}

func TestProcessFileRecoversPaymentTerms(t *testing.T) {
	analysis := &fakeAnalysis{
		result: entity.AnalysisResult{Sections: []entity.DocumentSection{sectionWithTerms("")}},
		lines: []string{
			"Invoice INV-1",
			"Payment is due within 15 days of invoice",
		},
	}
	store := &fakeStore{}
	p := NewProcessor(nil, store, analysis, nil)

	records, err := p.ProcessFile(context.Background(), "invoice.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if analysis.detectCalls != 1 {
		t.Errorf("detect calls = %d, want 1", analysis.detectCalls)
	}
	got := records[0].PaymentTerms
	if got == nil || *got != "Payment is due within 15 days of invoice" {
		t.Errorf("payment terms: %v", got)
	}
	if store.removeCalls != 1 {
		t.Errorf("staged document not cleaned up: remove calls = %d", store.removeCalls)
	}
}

func TestProcessFileSentinelWhenRecoveryFindsNothing(t *testing.T) {
	analysis := &fakeAnalysis{
		result: entity.AnalysisResult{Sections: []entity.DocumentSection{sectionWithTerms("")}},
		lines:  []string{"Invoice INV-1", "Total: 100.00"},
	}
	p := NewProcessor(nil, &fakeStore{}, analysis, nil)

	records, err := p.ProcessFile(context.Background(), "invoice.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := records[0].PaymentTerms
	if got == nil || *got != entity.TermsNotAvailable {
		t.Errorf("payment terms: %v, want sentinel", got)
	}
}

func TestProcessFileSentinelWhenRecoveryFails(t *testing.T) {
	analysis := &fakeAnalysis{
		result:   entity.AnalysisResult{Sections: []entity.DocumentSection{sectionWithTerms("")}},
		linesErr: errors.New("text detection unavailable"),
	}
	p := NewProcessor(nil, &fakeStore{}, analysis, nil)

	records, err := p.ProcessFile(context.Background(), "invoice.pdf")
	if err != nil {
		t.Fatalf("recovery failure must not fail the record: %v", err)
	}
	got := records[0].PaymentTerms
	if got == nil || *got != entity.TermsNotAvailable {
		t.Errorf("payment terms: %v, want sentinel", got)
	}
}

func TestProcessFileSkipsRecoveryWhenTermsPresent(t *testing.T) {
	analysis := &fakeAnalysis{
		result: entity.AnalysisResult{Sections: []entity.DocumentSection{sectionWithTerms("Net 30")}},
		lines:  []string{"net 90 lurking in raw text"},
	}
	p := NewProcessor(nil, &fakeStore{}, analysis, nil)

	records, err := p.ProcessFile(context.Background(), "invoice.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.detectCalls != 0 {
		t.Errorf("recovery ran despite structured terms: %d calls", analysis.detectCalls)
	}
	got := records[0].PaymentTerms
	if got == nil || *got != "Net 30" {
		t.Errorf("structured terms must pass through unchanged: %v", got)
	}
}

func TestProcessFileCleansUpOnAnalysisFailure(t *testing.T) {
	analysis := &fakeAnalysis{analyzeErr: errors.New("job failed")}
	store := &fakeStore{}
	p := NewProcessor(nil, store, analysis, nil)

	if _, err := p.ProcessFile(context.Background(), "invoice.pdf"); err == nil {
		t.Fatal("expected analysis error")
	}
	if store.removeCalls != 1 {
		t.Errorf("staged document not cleaned up after failure: %d", store.removeCalls)
	}
}

func TestProcessFileKeepRemote(t *testing.T) {
	analysis := &fakeAnalysis{
		result: entity.AnalysisResult{Sections: []entity.DocumentSection{sectionWithTerms("Net 30")}},
	}
	store := &fakeStore{}
	p := NewProcessor(nil, store, analysis, nil)
	p.KeepRemote = true

	if _, err := p.ProcessFile(context.Background(), "invoice.pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.removeCalls != 0 {
		t.Errorf("remove called with KeepRemote set: %d", store.removeCalls)
	}
}

func TestProcessResultWithoutTextSource(t *testing.T) {
	p := NewProcessor(nil, nil, nil, nil)
	res := entity.AnalysisResult{Sections: []entity.DocumentSection{sectionWithTerms("")}}

	records := p.ProcessResult(context.Background(), res, nil)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0].PaymentTerms
	if got == nil || *got != entity.TermsNotAvailable {
		t.Errorf("payment terms: %v, want sentinel without a text source", got)
	}
}
