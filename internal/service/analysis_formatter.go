package service

import (
	"strings"
	"unicode"

	"doc-compare/internal/domain"
)

// FormatAnalysis flattens an analysis result into plain text: every line of
// every page followed by a newline, with trailing whitespace trimmed. When the
// pages carry no text the raw content is returned instead.
func FormatAnalysis(result *domain.AnalysisResult) string {
	if result == nil {
		return ""
	}

	var sb strings.Builder
	for _, page := range result.Pages {
		for _, line := range page.Lines {
			sb.WriteString(line.Content)
			sb.WriteByte('\n')
		}
	}

	if text := strings.TrimRightFunc(sb.String(), unicode.IsSpace); text != "" {
		return text
	}
	return result.Content
}
