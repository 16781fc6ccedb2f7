package pipeline

import (
	"context"

	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
)

// AnalysisClient runs document-analysis jobs to a terminal state. The
// pipeline only ever sees complete results; polling, pagination and
// non-terminal statuses stay behind this interface.
type AnalysisClient interface {
	// AnalyzeExpense returns the merged, fully paginated expense analysis
	// for a staged document, or an error when the job reached a failed
	// terminal state.
	AnalyzeExpense(ctx context.Context, loc entity.DocumentLocation) (entity.AnalysisResult, error)

	// DetectTextLines returns the document's raw text as ordered lines.
	// Used only by the payment-terms fallback.
	DetectTextLines(ctx context.Context, loc entity.DocumentLocation) ([]string, error)
}

// DocumentStore stages local files where the analysis service can read them.
type DocumentStore interface {
	Upload(ctx context.Context, path string) (entity.DocumentLocation, error)
	Remove(ctx context.Context, loc entity.DocumentLocation) error
}
