package errors

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"doc-compare/internal/domain"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeProcessing ErrorType = "processing"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeInternal   ErrorType = "internal"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeTooLarge   ErrorType = "payload_too_large"
	ErrorTypeUpstream   ErrorType = "upstream"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusBadRequest,
	}
}

// NewProcessingError creates a new processing error
func NewProcessingError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeProcessing,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewNetworkError creates a new network error
func NewNetworkError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeNetwork,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// NewPayloadTooLargeError creates a new payload too large error
func NewPayloadTooLargeError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeTooLarge,
		Message:    message,
		StatusCode: http.StatusRequestEntityTooLarge,
		Cause:      cause,
	}
}

// NewUpstreamError creates an error for a failed call to an external service
func NewUpstreamError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstream,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Cause:      cause,
	}
}

// FromDomain maps a domain error to an AppError. AppErrors pass through unchanged.
func FromDomain(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErr *domain.ValidationError
	var processingErr *domain.DocumentProcessingError
	var urlErr *url.Error
	switch {
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return NewPayloadTooLargeError("File is too large to process. Maximum file size exceeded.", err)
	case errors.Is(err, domain.ErrSessionNotFound):
		return NewNotFoundError("Please upload documents first")
	case errors.As(err, &validationErr):
		return NewValidationError(validationErr.Error())
	case errors.As(err, &processingErr):
		return NewProcessingError(processingErr.Error(), err)
	case errors.As(err, &urlErr):
		return NewNetworkError("external service unreachable", err)
	default:
		return NewInternalError(err.Error(), err)
	}
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
