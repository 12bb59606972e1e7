package domain

import (
	"context"
	"time"
)

// TextGenerator produces a completion for a system + user prompt pair.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ComparisonService defines operations for the compare and chat features.
type ComparisonService interface {
	// Compare returns a markdown analysis of the two documents.
	Compare(ctx context.Context, doc1, doc2 string) (string, error)

	// Chat answers message using both documents as context.
	Chat(ctx context.Context, message, doc1, doc2 string) (string, error)
}

// DocumentSession holds the flattened text of one uploaded document pair.
type DocumentSession struct {
	ID        string    `json:"session_id"`
	Documents [2]string `json:"documents"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore keeps document sessions for the lifetime of the server.
type SessionStore interface {
	Save(documents [2]string) (*DocumentSession, error)
	Get(id string) (*DocumentSession, error)
	Delete(id string) error
}

// DTOs

type UploadResponse struct {
	SessionID string   `json:"session_id"`
	Documents []string `json:"documents"`
}

type CompareRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Doc1      string `json:"doc1,omitempty"`
	Doc2      string `json:"doc2,omitempty"`
}

type CompareResponse struct {
	ComparisonResult string `json:"comparisonResult"`
}

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
