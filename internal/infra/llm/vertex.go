package llm

import (
	"context"
	"fmt"
	"strings"

	"doc-compare/internal/domain"

	"cloud.google.com/go/vertexai/genai"
)

// VertexGenerator implements domain.TextGenerator with Gemini on Vertex AI.
type VertexGenerator struct {
	client *genai.Client
	model  string
	logger domain.Logger
}

// NewVertexGenerator creates the Vertex AI client using application default credentials.
func NewVertexGenerator(ctx context.Context, projectID, location, model string, logger domain.Logger) (*VertexGenerator, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}
	return &VertexGenerator{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (g *VertexGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(defaultTemperature)
	model.SetMaxOutputTokens(defaultMaxTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	if resp.UsageMetadata != nil {
		g.logger.Debug("Received response from Gemini",
			"prompt_tokens", int(resp.UsageMetadata.PromptTokenCount),
			"completion_tokens", int(resp.UsageMetadata.CandidatesTokenCount),
		)
	}
	return text, nil
}

// Close releases the underlying client.
func (g *VertexGenerator) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}
