package service

import (
	"context"
	"fmt"
	"time"

	"doc-compare/internal/domain"
)

const (
	DefaultPollInterval    = 2 * time.Second
	DefaultMaxPollAttempts = 30
)

// AnalysisJobDriver submits encoded chunks to the analysis service and polls
// the resulting job until it reaches a terminal state.
type AnalysisJobDriver struct {
	client       domain.AnalysisClient
	logger       domain.Logger
	pollInterval time.Duration
	maxAttempts  int
}

// NewAnalysisJobDriver creates a driver. Non-positive maxAttempts falls back
// to DefaultMaxPollAttempts; a zero pollInterval polls back to back.
func NewAnalysisJobDriver(client domain.AnalysisClient, logger domain.Logger, pollInterval time.Duration, maxAttempts int) *AnalysisJobDriver {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxPollAttempts
	}
	if pollInterval < 0 {
		pollInterval = 0
	}
	return &AnalysisJobDriver{
		client:       client,
		logger:       logger,
		pollInterval: pollInterval,
		maxAttempts:  maxAttempts,
	}
}

// Run drives one analysis job to completion and returns its result.
// Chunks are submitted strictly in order; only the first submission's job
// handle is polled.
func (d *AnalysisJobDriver) Run(ctx context.Context, chunks []string) (*domain.AnalysisResult, error) {
	handle, err := d.submit(ctx, chunks)
	if err != nil {
		return nil, err
	}
	return d.poll(ctx, handle)
}

func (d *AnalysisJobDriver) submit(ctx context.Context, chunks []string) (string, error) {
	if len(chunks) == 0 {
		return "", &domain.ValidationError{Field: "document", Message: "nothing to submit"}
	}

	// A single chunk is the whole document; page tags are only needed when
	// the encoding had to be split.
	var pages []int
	if len(chunks) > 1 {
		d.logger.Info("Large document, submitting in chunks", "chunks", len(chunks))
		pages = []int{1}
	}

	d.logger.Debug("Submitting chunk", "chunk", 0, "size", len(chunks[0]))
	handle, err := d.client.Submit(ctx, chunks[0], pages)
	if err != nil {
		return "", err
	}
	if handle == "" {
		return "", domain.ErrMissingJobHandle
	}

	for i := 1; i < len(chunks); i++ {
		d.logger.Debug("Submitting chunk", "chunk", i, "page", i+1, "size", len(chunks[i]))
		if _, err := d.client.Submit(ctx, chunks[i], []int{i + 1}); err != nil {
			return "", fmt.Errorf("submit chunk %d of %d: %w", i+1, len(chunks), err)
		}
	}
	return handle, nil
}

func (d *AnalysisJobDriver) poll(ctx context.Context, handle string) (*domain.AnalysisResult, error) {
	d.logger.Info("Waiting for document analysis to complete", "max_attempts", d.maxAttempts)

	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		op, err := d.client.Poll(ctx, handle)
		if err != nil {
			return nil, err
		}
		d.logger.Debug("Status check", "attempt", attempt, "max_attempts", d.maxAttempts, "status", string(op.Status))

		switch op.Status {
		case domain.AnalysisStatusSucceeded:
			if op.AnalyzeResult == nil {
				return nil, domain.ErrMissingResult
			}
			d.logger.Info("Document analysis completed", "pages", len(op.AnalyzeResult.Pages), "attempts", attempt)
			return op.AnalyzeResult, nil
		case domain.AnalysisStatusFailed:
			failure := &domain.AnalysisFailedError{}
			if op.Error != nil {
				failure.Code = op.Error.Code
				failure.Message = op.Error.Message
			}
			return nil, failure
		case domain.AnalysisStatusRunning:
		default:
			return nil, &domain.UnexpectedStatusError{Status: string(op.Status)}
		}

		if attempt < d.maxAttempts {
			if err := d.wait(ctx); err != nil {
				return nil, err
			}
		}
	}

	return nil, &domain.AnalysisTimeoutError{Attempts: d.maxAttempts}
}

func (d *AnalysisJobDriver) wait(ctx context.Context) error {
	if d.pollInterval == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d.pollInterval)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
