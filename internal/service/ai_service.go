package service

import (
	"context"
	"fmt"
	"strings"

	"doc-compare/internal/domain"
)

const (
	compareSystemPrompt = "You are a helpful assistant that compares two documents and provides a detailed analysis of their similarities and differences. " +
		"Format your response in markdown with appropriate headers, lists, and emphasis. " +
		"Use markdown features like ## for sections, * for lists, and ` for code or specific terms."

	excerptLength = 100
)

// ComparisonSections are the markdown headers every comparison must contain, in order.
var ComparisonSections = []string{
	"Summary",
	"Key Similarities",
	"Key Differences",
	"Detailed Analysis",
	"Recommendations",
}

// AIService implements domain.ComparisonService on top of a text generator.
type AIService struct {
	generator domain.TextGenerator
	logger    domain.Logger
}

func NewAIService(generator domain.TextGenerator, logger domain.Logger) *AIService {
	return &AIService{
		generator: generator,
		logger:    logger,
	}
}

func (s *AIService) Compare(ctx context.Context, doc1, doc2 string) (string, error) {
	s.logger.Debug("Comparing documents",
		"doc1_excerpt", excerpt(doc1),
		"doc2_excerpt", excerpt(doc2),
	)

	result, err := s.generator.Generate(ctx, compareSystemPrompt, buildComparePrompt(doc1, doc2))
	if err != nil {
		return "", fmt.Errorf("failed to compare documents: %w", err)
	}

	s.logger.Info("Comparison completed", "result_length", len(result))
	return result, nil
}

func (s *AIService) Chat(ctx context.Context, message, doc1, doc2 string) (string, error) {
	answer, err := s.generator.Generate(ctx, buildChatSystemPrompt(doc1, doc2), message)
	if err != nil {
		return "", fmt.Errorf("failed to process chat: %w", err)
	}
	return answer, nil
}

func buildComparePrompt(doc1, doc2 string) string {
	var sb strings.Builder
	sb.WriteString("Compare these two documents and provide a structured analysis with the following sections in markdown format:\n\n")
	for _, section := range ComparisonSections {
		sb.WriteString("## ")
		sb.WriteString(section)
		sb.WriteString("\n")
	}
	sb.WriteString("\nDocuments to compare:\n\n")
	sb.WriteString("Document 1:\n")
	sb.WriteString(doc1)
	sb.WriteString("\n\nDocument 2:\n")
	sb.WriteString(doc2)
	return sb.String()
}

func buildChatSystemPrompt(doc1, doc2 string) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant analyzing two documents.\n")
	sb.WriteString("Here are the contents of the documents:\n")
	sb.WriteString("Document 1: ")
	sb.WriteString(doc1)
	sb.WriteString("\nDocument 2: ")
	sb.WriteString(doc2)
	sb.WriteString("\nPlease answer questions about these documents.")
	return sb.String()
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLength {
		return text
	}
	return string(runes[:excerptLength]) + "..."
}
