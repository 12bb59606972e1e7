package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"doc-compare/internal/domain"
	apperrors "doc-compare/pkg/errors"
)

const maxChatMessageLen = 2000

type AIHandler struct {
	comparison domain.ComparisonService
	sessions   domain.SessionStore
	logger     domain.Logger
}

func NewAIHandler(comparison domain.ComparisonService, sessions domain.SessionStore, logger domain.Logger) *AIHandler {
	return &AIHandler{
		comparison: comparison,
		sessions:   sessions,
		logger:     logger,
	}
}

// Compare handles a comparison of a stored session or of two inline documents
func (h *AIHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req domain.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc1, doc2 := req.Doc1, req.Doc2
	if req.SessionID != "" {
		session, err := h.sessions.Get(req.SessionID)
		if err != nil {
			writeAppError(w, r, h.logger, "Compare lookup failed", err)
			return
		}
		doc1, doc2 = session.Documents[0], session.Documents[1]
	}
	if strings.TrimSpace(doc1) == "" || strings.TrimSpace(doc2) == "" {
		writeError(w, http.StatusBadRequest, "Both documents are required for comparison")
		return
	}

	result, err := h.comparison.Compare(r.Context(), doc1, doc2)
	if err != nil {
		writeAppError(w, r, h.logger, "Comparison failed", apperrors.NewUpstreamError("Error comparing documents", err))
		return
	}

	writeJSON(w, http.StatusOK, domain.CompareResponse{ComparisonResult: result})
}

// Chat handles questions about a stored document pair
func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "Please upload documents first")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message cannot be empty")
		return
	}
	if len(req.Message) > maxChatMessageLen {
		writeError(w, http.StatusBadRequest, "message too long")
		return
	}

	session, err := h.sessions.Get(req.SessionID)
	if err != nil {
		writeAppError(w, r, h.logger, "Chat lookup failed", err)
		return
	}

	answer, err := h.comparison.Chat(r.Context(), req.Message, session.Documents[0], session.Documents[1])
	if err != nil {
		writeAppError(w, r, h.logger, "Chat failed", apperrors.NewUpstreamError("Error processing chat message", err))
		return
	}

	writeJSON(w, http.StatusOK, domain.ChatResponse{Response: answer})
}
