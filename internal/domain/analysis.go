package domain

import "context"

// AnalysisStatus is the job status reported by the analysis service.
type AnalysisStatus string

const (
	AnalysisStatusNotStarted AnalysisStatus = "notStarted"
	AnalysisStatusRunning    AnalysisStatus = "running"
	AnalysisStatusSucceeded  AnalysisStatus = "succeeded"
	AnalysisStatusFailed     AnalysisStatus = "failed"
)

// Span identifies a substring of AnalysisResult.Content.
type Span struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// Line is a single line of recognized text. Geometry is kept for completeness
// but is not used when flattening.
type Line struct {
	Content string    `json:"content"`
	Polygon []float64 `json:"polygon,omitempty"`
	Spans   []Span    `json:"spans,omitempty"`
}

// Page is one analyzed page in submission order.
type Page struct {
	PageNumber int     `json:"pageNumber"`
	Angle      float64 `json:"angle"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Unit       string  `json:"unit,omitempty"`
	Lines      []Line  `json:"lines"`
}

// DetectedLanguage references Content through spans.
type DetectedLanguage struct {
	Locale     string  `json:"locale"`
	Confidence float64 `json:"confidence"`
	Spans      []Span  `json:"spans"`
}

// DetectedStyle references Content through spans.
type DetectedStyle struct {
	IsHandwritten bool    `json:"isHandwritten"`
	Confidence    float64 `json:"confidence"`
	Spans         []Span  `json:"spans"`
}

// AnalysisResult is the structured output of a successful analysis.
type AnalysisResult struct {
	APIVersion string             `json:"apiVersion,omitempty"`
	ModelID    string             `json:"modelId,omitempty"`
	Content    string             `json:"content"`
	Pages      []Page             `json:"pages"`
	Languages  []DetectedLanguage `json:"languages,omitempty"`
	Styles     []DetectedStyle    `json:"styles,omitempty"`
}

// OperationError is the error object of a failed analysis operation.
type OperationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AnalysisOperation is one status response of a long-running analysis job.
type AnalysisOperation struct {
	Status        AnalysisStatus  `json:"status"`
	AnalyzeResult *AnalysisResult `json:"analyzeResult,omitempty"`
	Error         *OperationError `json:"error,omitempty"`
}

// AnalysisClient talks to the external document analysis service.
type AnalysisClient interface {
	// Submit sends one encoded chunk. pages may be nil. The returned handle is
	// empty when the service did not provide one.
	Submit(ctx context.Context, base64Source string, pages []int) (string, error)
	// Poll fetches the current state of the job behind handle.
	Poll(ctx context.Context, handle string) (*AnalysisOperation, error)
}

// DocumentProcessor turns raw document bytes into flattened text.
type DocumentProcessor interface {
	Process(ctx context.Context, document []byte) (string, error)
}
