package service

import (
	"iter"

	"doc-compare/internal/domain"
)

// ExtractSpans yields the substring of content covered by each span, in order.
// Offsets and lengths count unicode code points, matching the stringIndexType
// requested from the analysis service. Iteration stops at the first span that
// does not fit inside content, yielding an *domain.InvalidSpanError.
func ExtractSpans(content string, spans []domain.Span) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		runes := []rune(content)
		for _, span := range spans {
			if span.Offset < 0 || span.Length < 0 || span.Offset > len(runes) || span.Length > len(runes)-span.Offset {
				yield("", &domain.InvalidSpanError{
					Offset:        span.Offset,
					Length:        span.Length,
					ContentLength: len(runes),
				})
				return
			}
			if !yield(string(runes[span.Offset:span.Offset+span.Length]), nil) {
				return
			}
		}
	}
}

// SpanTexts materializes ExtractSpans.
func SpanTexts(content string, spans []domain.Span) ([]string, error) {
	texts := make([]string, 0, len(spans))
	for text, err := range ExtractSpans(content, spans) {
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}
