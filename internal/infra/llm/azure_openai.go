package llm

import (
	"context"
	"errors"
	"net/http"

	"doc-compare/internal/domain"

	"github.com/sashabaranov/go-openai"
)

const (
	defaultMaxTokens   = 800
	defaultTemperature = 0.7
)

// ErrEmptyCompletion is returned when the model answers without any choice.
var ErrEmptyCompletion = errors.New("empty response from model")

// AzureOpenAIOptions configures the Azure OpenAI chat completions generator.
type AzureOpenAIOptions struct {
	Endpoint   string
	APIKey     string
	Deployment string
	APIVersion string
	HTTPClient *http.Client
}

// AzureOpenAIGenerator implements domain.TextGenerator with Azure OpenAI.
type AzureOpenAIGenerator struct {
	client     *openai.Client
	deployment string
	logger     domain.Logger
}

func NewAzureOpenAIGenerator(opts AzureOpenAIOptions, logger domain.Logger) *AzureOpenAIGenerator {
	cfg := openai.DefaultAzureConfig(opts.APIKey, opts.Endpoint)
	if opts.APIVersion != "" {
		cfg.APIVersion = opts.APIVersion
	}
	deployment := opts.Deployment
	cfg.AzureModelMapperFunc = func(string) string { return deployment }
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}

	return &AzureOpenAIGenerator{
		client:     openai.NewClientWithConfig(cfg),
		deployment: deployment,
		logger:     logger,
	}
}

func (g *AzureOpenAIGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	g.logger.Debug("Sending request to Azure OpenAI", "deployment", g.deployment)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.deployment,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	g.logger.Debug("Received response from Azure OpenAI",
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)
	return resp.Choices[0].Message.Content, nil
}
