package textract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awstextract "github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"github.com/joseph-ayodele/invoice-extractor/internal/common"
	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
)

// api is the slice of the Textract SDK the client needs. Lets us stub AWS in
// tests.
type api interface {
	StartExpenseAnalysis(ctx context.Context, in *awstextract.StartExpenseAnalysisInput, opts ...func(*awstextract.Options)) (*awstextract.StartExpenseAnalysisOutput, error)
	GetExpenseAnalysis(ctx context.Context, in *awstextract.GetExpenseAnalysisInput, opts ...func(*awstextract.Options)) (*awstextract.GetExpenseAnalysisOutput, error)
	StartDocumentTextDetection(ctx context.Context, in *awstextract.StartDocumentTextDetectionInput, opts ...func(*awstextract.Options)) (*awstextract.StartDocumentTextDetectionOutput, error)
	GetDocumentTextDetection(ctx context.Context, in *awstextract.GetDocumentTextDetectionInput, opts ...func(*awstextract.Options)) (*awstextract.GetDocumentTextDetectionOutput, error)
}

// Config holds polling behavior for asynchronous Textract jobs.
type Config struct {
	PollInterval time.Duration // default 5s
	JobTimeout   time.Duration // default 10m, 0 = no limit
}

// Client runs Textract expense-analysis and text-detection jobs to a
// terminal state and folds their paginated output into complete results.
type Client struct {
	api    api
	cfg    Config
	logger *slog.Logger
}

func NewClient(awsCfg aws.Config, cfg Config, logger *slog.Logger) *Client {
	return newClient(awstextract.NewFromConfig(awsCfg), cfg, logger)
}

func newClient(a api, cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.JobTimeout < 0 {
		cfg.JobTimeout = 0
	}
	return &Client{api: a, cfg: cfg, logger: logger}
}

// AnalyzeExpense starts an asynchronous expense-analysis job, polls it to a
// terminal state and accumulates every result page. A terminal status other
// than SUCCEEDED is an error, never a partial result.
func (c *Client) AnalyzeExpense(ctx context.Context, loc entity.DocumentLocation) (entity.AnalysisResult, error) {
	start, err := c.api.StartExpenseAnalysis(ctx, &awstextract.StartExpenseAnalysisInput{
		DocumentLocation: documentLocation(loc),
	})
	if err != nil {
		return entity.AnalysisResult{}, fmt.Errorf("start expense analysis: %w", err)
	}
	jobID := aws.ToString(start.JobId)
	c.logger.Info("expense analysis job started", "job_id", jobID, "key", loc.Key)

	poll := func(ctx context.Context) (types.JobStatus, error) {
		out, err := c.api.GetExpenseAnalysis(ctx, &awstextract.GetExpenseAnalysisInput{JobId: &jobID})
		if err != nil {
			return "", err
		}
		return out.JobStatus, nil
	}
	if err := c.waitForJob(ctx, jobID, poll); err != nil {
		return entity.AnalysisResult{}, err
	}

	// Fold the paginated pages into one list of sections.
	var docs []types.ExpenseDocument
	var next *string
	for {
		out, err := c.api.GetExpenseAnalysis(ctx, &awstextract.GetExpenseAnalysisInput{
			JobId:     &jobID,
			NextToken: next,
		})
		if err != nil {
			return entity.AnalysisResult{}, fmt.Errorf("get expense analysis: %w", err)
		}
		docs = append(docs, out.ExpenseDocuments...)
		next = out.NextToken
		if next == nil {
			break
		}
	}

	c.logger.Info("expense analysis job complete", "job_id", jobID, "sections", len(docs))
	return entity.AnalysisResult{Sections: toSections(docs)}, nil
}

// DetectTextLines starts a text-detection job for the same document and
// returns every LINE block's text in detection order. This is the raw-text
// signal the payment-terms fallback scans.
func (c *Client) DetectTextLines(ctx context.Context, loc entity.DocumentLocation) ([]string, error) {
	start, err := c.api.StartDocumentTextDetection(ctx, &awstextract.StartDocumentTextDetectionInput{
		DocumentLocation: documentLocation(loc),
	})
	if err != nil {
		return nil, fmt.Errorf("start text detection: %w", err)
	}
	jobID := aws.ToString(start.JobId)
	c.logger.Info("text detection job started", "job_id", jobID, "key", loc.Key)

	poll := func(ctx context.Context) (types.JobStatus, error) {
		out, err := c.api.GetDocumentTextDetection(ctx, &awstextract.GetDocumentTextDetectionInput{JobId: &jobID})
		if err != nil {
			return "", err
		}
		return out.JobStatus, nil
	}
	if err := c.waitForJob(ctx, jobID, poll); err != nil {
		return nil, err
	}

	var lines []string
	var next *string
	for {
		out, err := c.api.GetDocumentTextDetection(ctx, &awstextract.GetDocumentTextDetectionInput{
			JobId:     &jobID,
			NextToken: next,
		})
		if err != nil {
			return nil, fmt.Errorf("get text detection: %w", err)
		}
		lines = append(lines, lineBlocks(out.Blocks)...)
		next = out.NextToken
		if next == nil {
			break
		}
	}

	c.logger.Info("text detection job complete", "job_id", jobID, "lines", len(lines))
	return lines, nil
}

// waitForJob polls until the job leaves IN_PROGRESS. Sleeps are
// context-aware so cancellation is honored between polls.
func (c *Client) waitForJob(ctx context.Context, jobID string, poll func(context.Context) (types.JobStatus, error)) error {
	if c.cfg.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, c.cfg.JobTimeout, common.ErrJobTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for job %s: %w", jobID, context.Cause(ctx))
		case <-ticker.C:
		}

		status, err := poll(ctx)
		if err != nil {
			return fmt.Errorf("poll job %s: %w", jobID, err)
		}
		c.logger.Debug("job status", "job_id", jobID, "status", status)

		switch status {
		case types.JobStatusInProgress:
			continue
		case types.JobStatusSucceeded:
			return nil
		default:
			return common.NewAppError("ANALYSIS_FAILED",
				fmt.Sprintf("job %s ended with status %s", jobID, status), common.ErrJobFailed)
		}
	}
}

func documentLocation(loc entity.DocumentLocation) *types.DocumentLocation {
	return &types.DocumentLocation{
		S3Object: &types.S3Object{
			Bucket: aws.String(loc.Bucket),
			Name:   aws.String(loc.Key),
		},
	}
}
