// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"doc-compare/internal/domain"
	"doc-compare/internal/service"

	"github.com/gorilla/mux"
)

const (
	uploadFieldName   = "documents"
	requiredDocuments = 2

	multipartMemory   = 32 << 20
	multipartOverhead = 1 << 20
)

// DocumentHandler handles document upload and session HTTP requests
type DocumentHandler struct {
	processor   domain.DocumentProcessor
	sessions    domain.SessionStore
	maxFileSize int64
	logger      domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(processor domain.DocumentProcessor, sessions domain.SessionStore, maxFileSize int64, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		processor:   processor,
		sessions:    sessions,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Upload handles the upload of a document pair. Both documents are
// processed concurrently and stored as a new session.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, requiredDocuments*h.maxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, h.tooLargeMessage())
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[uploadFieldName]
	if len(headers) != requiredDocuments {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Exactly %d files are required", requiredDocuments))
		return
	}

	documents := make([][]byte, 0, len(headers))
	for _, header := range headers {
		name := sanitizeFilename(header.Filename)
		if header.Size > h.maxFileSize {
			writeError(w, http.StatusRequestEntityTooLarge, h.tooLargeMessage())
			return
		}
		if header.Size == 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("File %s is empty", name))
			return
		}
		data, err := readFormFile(header)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Could not read file %s", name))
			return
		}
		documents = append(documents, data)
	}

	h.logger.Info("Processing uploaded documents", "count", len(documents))
	texts, err := service.ProcessAll(r.Context(), h.processor, documents)
	if err != nil {
		writeAppError(w, r, h.logger, "Upload processing failed", err)
		return
	}

	session, err := h.sessions.Save([2]string{texts[0], texts[1]})
	if err != nil {
		writeAppError(w, r, h.logger, "Failed to store session", err)
		return
	}

	h.logger.Info("Documents processed successfully", "session_id", session.ID)
	writeJSON(w, http.StatusOK, domain.UploadResponse{
		SessionID: session.ID,
		Documents: texts,
	})
}

// DeleteSession drops a stored document pair
func (h *DocumentHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	if err := h.sessions.Delete(sessionID); err != nil {
		writeAppError(w, r, h.logger, "Failed to delete session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DocumentHandler) tooLargeMessage() string {
	return fmt.Sprintf("File size is too large. Maximum size is %dMB.", h.maxFileSize>>20)
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// sanitizeFilename strips any path components for logging and messages.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(filepath.Base(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "document"
	}
	return name
}
