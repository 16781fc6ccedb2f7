package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/joseph-ayodele/invoice-extractor/internal/common"
	"github.com/joseph-ayodele/invoice-extractor/internal/display"
	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
	"github.com/joseph-ayodele/invoice-extractor/internal/export"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
	"github.com/joseph-ayodele/invoice-extractor/internal/pipeline"
	"github.com/joseph-ayodele/invoice-extractor/internal/replay"
	"github.com/joseph-ayodele/invoice-extractor/internal/storage"
	"github.com/joseph-ayodele/invoice-extractor/internal/textract"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		bucket   = flag.String("bucket", "", "S3 bucket for staging documents (overrides INVOICE_S3_BUCKET)")
		region   = flag.String("region", "", "AWS region (overrides AWS_REGION)")
		jsonFile = flag.String("json", "", "process a saved expense-analysis JSON response instead of calling AWS")
		out      = flag.String("out", "", "write extracted invoices to this XLSX file")
		keep     = flag.Bool("keep", false, "keep staged documents in S3 after processing")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	// Logs go to stderr so rendered tables stay clean on stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *jsonFile == "" && flag.NArg() == 0 {
		printError("Usage: invoice-extract [flags] FILE...\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := common.LoadConfig()
	if *bucket != "" {
		cfg.AWS.Bucket = *bucket
	}
	if *region != "" {
		cfg.AWS.Region = *region
	}
	if *out != "" {
		cfg.Extract.ExportPath = *out
	}

	var allRecords []entity.InvoiceRecord
	failures := 0

	if *jsonFile != "" {
		records, err := runReplay(ctx, logger, *jsonFile)
		if err != nil {
			logger.Error("replay failed", "file", *jsonFile, "error", err)
			os.Exit(1)
		}
		allRecords = records
	} else {
		if err := cfg.Validate(); err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(1)
		}

		processor, err := buildProcessor(ctx, logger, cfg, *keep)
		if err != nil {
			logger.Error("aws setup failed", "error", err)
			os.Exit(1)
		}

		for _, path := range flag.Args() {
			fileName := filepath.Base(path)
			logger.Info("processing file", "file", fileName)

			records, err := processor.ProcessFile(ctx, path)
			if err != nil {
				logger.Error("processing failed", "file", fileName, "error", err)
				failures++
				continue
			}
			display.Render(os.Stdout, fileName, records)
			allRecords = append(allRecords, records...)
		}
	}

	if cfg.Extract.ExportPath != "" && len(allRecords) > 0 {
		svc := export.NewService(logger)
		xlsxBytes, err := svc.WriteInvoicesXLSX(allRecords)
		if err != nil {
			logger.Error("xlsx export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(cfg.Extract.ExportPath, xlsxBytes, 0644); err != nil {
			logger.Error("could not write export file", "path", cfg.Extract.ExportPath, "error", err)
			os.Exit(1)
		}
		logger.Info("export written", "path", cfg.Extract.ExportPath, "invoices", len(allRecords))
	}

	if failures > 0 {
		logger.Warn("finished with failures", "failed", failures)
		os.Exit(1)
	}
}

func buildProcessor(ctx context.Context, logger *slog.Logger, cfg *common.Config, keep bool) (*pipeline.Processor, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.AWS.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWS.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	store := storage.NewStore(awsCfg, cfg.AWS.Bucket, logger)
	analysis := textract.NewClient(awsCfg, textract.Config{
		PollInterval: cfg.AWS.PollInterval,
		JobTimeout:   cfg.AWS.JobTimeout,
	}, logger)

	processor := pipeline.NewProcessor(logger, store, analysis, extract.NewExtractor(logger))
	processor.KeepRemote = keep
	return processor, nil
}

func runReplay(ctx context.Context, logger *slog.Logger, path string) ([]entity.InvoiceRecord, error) {
	res, err := replay.LoadFile(path)
	if err != nil {
		return nil, err
	}

	processor := pipeline.NewProcessor(logger, nil, nil, extract.NewExtractor(logger))
	records := processor.ProcessResult(ctx, res, nil)
	display.Render(os.Stdout, filepath.Base(path), records)
	return records, nil
}
