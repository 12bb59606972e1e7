package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"doc-compare/internal/domain"
	apperrors "doc-compare/pkg/errors"
)

type contextKey string

const (
	requestIDContextKey contextKey = "request_id"

	requestIDHeader = "X-Request-ID"
)

// GetRequestIDFromContext extracts the request id set by RequestIDMiddleware
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey).(string)
	return id, ok
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeAppError maps err onto its HTTP status and logs server-side failures.
func writeAppError(w http.ResponseWriter, r *http.Request, logger domain.Logger, msg string, err error) {
	appErr := apperrors.FromDomain(err)
	status := apperrors.GetStatusCode(appErr)
	if status >= http.StatusInternalServerError {
		requestID, _ := GetRequestIDFromContext(r.Context())
		logger.Error(msg, err, "request_id", requestID, "status", status)
	} else {
		logger.Warn(msg, "error", err.Error(), "status", status)
	}
	writeError(w, status, appErr.Message)
}
