package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrMissingJobHandle     = errors.New("no operation-location in analysis response")
	ErrMissingResult        = errors.New("no analysis results in response")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// InvalidSpanError is returned when a span does not fit inside its content.
type InvalidSpanError struct {
	Offset        int
	Length        int
	ContentLength int
}

func (e *InvalidSpanError) Error() string {
	return fmt.Sprintf("invalid span offset=%d length=%d for content of length %d", e.Offset, e.Length, e.ContentLength)
}

// AnalysisFailedError carries the message reported by a failed analysis job.
type AnalysisFailedError struct {
	Code    string
	Message string
}

func (e *AnalysisFailedError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "Unknown error"
	}
	return "analysis failed: " + msg
}

// UnexpectedStatusError is returned for a status that is neither running,
// succeeded nor failed.
type UnexpectedStatusError struct {
	Status string
}

func (e *UnexpectedStatusError) Error() string {
	return "unexpected status: " + e.Status
}

// AnalysisTimeoutError is returned when the poll budget runs out.
type AnalysisTimeoutError struct {
	Attempts int
}

func (e *AnalysisTimeoutError) Error() string {
	return fmt.Sprintf("document analysis timed out after %d status checks", e.Attempts)
}

// PayloadTooLargeError is returned when the analysis service rejects the
// document because of its size.
type PayloadTooLargeError struct {
	Cause error
}

func (e *PayloadTooLargeError) Error() string {
	return "file is too large to process: maximum file size exceeded"
}

func (e *PayloadTooLargeError) Unwrap() error {
	return e.Cause
}

func (e *PayloadTooLargeError) Is(target error) bool {
	return target == ErrPayloadTooLarge
}

// DocumentProcessingError wraps any other failure of the processing pipeline.
type DocumentProcessingError struct {
	Cause error
}

func (e *DocumentProcessingError) Error() string {
	return "document processing failed: " + e.Cause.Error()
}

func (e *DocumentProcessingError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
