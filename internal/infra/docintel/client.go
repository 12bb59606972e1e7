package docintel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"doc-compare/internal/domain"
)

// MinAPIKeyLength is the shortest credential accepted for the analysis service.
const MinAPIKeyLength = 10

const (
	apiKeyHeader            = "Ocp-Apim-Subscription-Key"
	operationLocationHeader = "Operation-Location"
	maxErrorBody            = 64 * 1024
)

// Client implements domain.AnalysisClient against the Azure Document
// Intelligence REST API.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	apiVersion string
	httpClient *http.Client
	logger     domain.Logger

	analyzeURL string
}

// Options configures a Client.
type Options struct {
	Endpoint   string
	APIKey     string
	Model      string
	APIVersion string
	HTTPClient *http.Client
}

// NewClient creates a client. Initialize must succeed before the client is used.
func NewClient(opts Options, logger domain.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		endpoint:   strings.TrimRight(opts.Endpoint, "/"),
		apiKey:     opts.APIKey,
		model:      opts.Model,
		apiVersion: opts.APIVersion,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Initialize validates the endpoint and credential and prepares the analyze URL.
func (c *Client) Initialize() error {
	u, err := url.Parse(c.endpoint)
	if c.endpoint == "" || err != nil || u.Host == "" || u.Scheme != "https" {
		return fmt.Errorf("%w: document intelligence endpoint must be an https URL", domain.ErrInvalidConfiguration)
	}
	if len(c.apiKey) < MinAPIKeyLength {
		return fmt.Errorf("%w: invalid document intelligence API key", domain.ErrInvalidConfiguration)
	}
	if c.model == "" {
		c.model = "prebuilt-read"
	}
	if c.apiVersion == "" {
		c.apiVersion = "2023-10-31-preview"
	}

	query := url.Values{}
	query.Set("api-version", c.apiVersion)
	query.Set("stringIndexType", "unicodeCodePoint")
	c.analyzeURL = fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?%s",
		c.endpoint, url.PathEscape(c.model), query.Encode())

	c.logger.Info("Document Intelligence client initialized", "endpoint", c.endpoint, "model", c.model, "api_version", c.apiVersion)
	return nil
}

type analyzeRequest struct {
	Base64Source string `json:"base64Source"`
	Pages        []int  `json:"pages,omitempty"`
}

// Submit posts one base64 chunk for analysis and returns the operation location.
func (c *Client) Submit(ctx context.Context, base64Source string, pages []int) (string, error) {
	if c.analyzeURL == "" {
		return "", fmt.Errorf("document intelligence client not initialized")
	}

	body, err := json.Marshal(analyzeRequest{Base64Source: base64Source, Pages: pages})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.analyzeURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		return "", readServiceError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.Header.Get(operationLocationHeader), nil
}

// Poll fetches the state of the operation behind handle.
func (c *Client) Poll(ctx context.Context, handle string) (*domain.AnalysisOperation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, handle, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readServiceError(resp)
	}

	var op domain.AnalysisOperation
	if err := json.NewDecoder(resp.Body).Decode(&op); err != nil {
		return nil, fmt.Errorf("failed to decode analysis status: %w", err)
	}
	return &op, nil
}

// ServiceError is a non-success HTTP answer from the analysis service.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("document intelligence returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("document intelligence returned %d: %s", e.StatusCode, e.Message)
}

// Is reports size rejections as domain.ErrPayloadTooLarge.
func (e *ServiceError) Is(target error) bool {
	if target != domain.ErrPayloadTooLarge {
		return false
	}
	return e.StatusCode == http.StatusRequestEntityTooLarge || e.Code == "InvalidContentLength"
}

func readServiceError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	svcErr := &ServiceError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var payload struct {
		Error *domain.OperationError `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != nil {
		svcErr.Code = payload.Error.Code
		if payload.Error.Message != "" {
			svcErr.Message = payload.Error.Message
		}
	}
	return svcErr
}
