package analyzer

import (
	"context"
	"log/slog"
	"time"

	"github.com/passcheck/passcheck/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor audits a list of candidate passwords concurrently.
// It uses errgroup to manage goroutines and respect the concurrency
// limit, and keeps results in input order.
//
// Design decision: We use a separate BatchProcessor rather than adding a
// slice method to Analyzer because batch mode has its own concerns
// (cancellation, per-item error capture, ordered results) that a single
// analysis call does not.
type BatchProcessor struct {
	analyzer *Analyzer

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Default is 10 if not specified or not positive.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor on top of the analyzer.
func NewBatchProcessor(analyzer *Analyzer, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		analyzer:    analyzer,
		concurrency: 10,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch analyzes the passwords concurrently, respecting the
// configured limit and context cancellation. Results keep the input
// order.
//
// A password that fails analysis (unsupported characters) does not abort
// the batch: its report carries the failure message and processing
// continues. The error return indicates cancellation only.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, passwords []string) ([]*model.Report, error) {
	bp.logger.Info("starting batch audit",
		"total", len(passwords),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()
	results := make([]*model.Report, len(passwords))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, password := range passwords {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report, err := bp.analyzer.Analyze(password)
			if err != nil {
				bp.logger.Warn("list entry skipped", "index", i+1, "reason", err)
				report = &model.Report{
					Err:        err.Error(),
					AnalyzedAt: time.Now(),
				}
			}
			results[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	bp.logger.Info("batch audit complete",
		"total", len(passwords),
		"elapsed", time.Since(startTime),
	)

	return results, nil
}
