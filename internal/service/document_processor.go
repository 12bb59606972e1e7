package service

import (
	"context"
	"errors"

	"doc-compare/internal/domain"

	"golang.org/x/sync/errgroup"
)

// DocumentProcessingService turns uploaded bytes into flattened text:
// encode, analyze, format.
type DocumentProcessingService struct {
	driver *AnalysisJobDriver
	logger domain.Logger
}

// NewDocumentProcessingService creates the document pipeline.
func NewDocumentProcessingService(driver *AnalysisJobDriver, logger domain.Logger) *DocumentProcessingService {
	return &DocumentProcessingService{
		driver: driver,
		logger: logger,
	}
}

// Process implements domain.DocumentProcessor. Size rejections surface as
// *domain.PayloadTooLargeError, every other failure as
// *domain.DocumentProcessingError.
func (s *DocumentProcessingService) Process(ctx context.Context, document []byte) (string, error) {
	s.logger.Info("Starting document processing", "bytes", len(document))

	chunks := EncodeForUpload(document)
	result, err := s.driver.Run(ctx, chunks)
	if err != nil {
		if errors.Is(err, domain.ErrPayloadTooLarge) {
			return "", &domain.PayloadTooLargeError{Cause: err}
		}
		s.logger.Error("Document processing failed", err)
		return "", &domain.DocumentProcessingError{Cause: err}
	}

	text := FormatAnalysis(result)
	s.logger.Info("Document processed", "chunks", len(chunks), "text_length", len(text))
	return text, nil
}

// ProcessAll runs Process for every document concurrently. Each document's
// own pipeline stays sequential. The first failure cancels the others.
func ProcessAll(ctx context.Context, processor domain.DocumentProcessor, documents [][]byte) ([]string, error) {
	texts := make([]string, len(documents))
	g, gctx := errgroup.WithContext(ctx)
	for i, document := range documents {
		g.Go(func() error {
			text, err := processor.Process(gctx, document)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}
