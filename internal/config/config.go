package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"doc-compare/internal/domain"
	"doc-compare/internal/infra/docintel"
)

const (
	ProviderAzureOpenAI = "azure-openai"
	ProviderVertex      = "vertex"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	MaxFileSize    int64
	LogLevel       string
	LogFormat      string
	StaticDir      string
	AllowedOrigins []string
	SessionTTL     time.Duration

	AnalysisEndpoint   string
	AnalysisAPIKey     string
	AnalysisModel      string
	AnalysisAPIVersion string
	PollInterval       time.Duration
	MaxPollAttempts    int

	LLMProvider           string
	AzureOpenAIEndpoint   string
	AzureOpenAIAPIKey     string
	AzureOpenAIDeployment string
	AzureOpenAIAPIVersion string
	GCPProjectID          string
	GCPLocation           string
	VertexModel           string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// PaaS platforms provide the listening port via PORT.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "console"),
		StaticDir:      getEnvOrDefault("STATIC_DIR", ""),
		AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		SessionTTL:     getEnvDurationOrDefault("SESSION_TTL", time.Hour),

		AnalysisEndpoint:   strings.TrimRight(getEnvOrDefault("AZURE_DOCUMENT_INTELLIGENCE_ENDPOINT", ""), "/"),
		AnalysisAPIKey:     getEnvOrDefault("AZURE_DOCUMENT_INTELLIGENCE_API_KEY", ""),
		AnalysisModel:      getEnvOrDefault("DOCUMENT_INTELLIGENCE_MODEL", "prebuilt-read"),
		AnalysisAPIVersion: getEnvOrDefault("DOCUMENT_INTELLIGENCE_API_VERSION", "2023-10-31-preview"),
		PollInterval:       getEnvDurationOrDefault("ANALYSIS_POLL_INTERVAL", 2*time.Second),
		MaxPollAttempts:    int(getEnvInt64OrDefault("ANALYSIS_MAX_ATTEMPTS", 30)),

		LLMProvider:           strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderAzureOpenAI)),
		AzureOpenAIEndpoint:   strings.TrimRight(getEnvOrDefault("AZURE_OPENAI_ENDPOINT", ""), "/"),
		AzureOpenAIAPIKey:     getEnvOrDefault("AZURE_OPENAI_API_KEY", ""),
		AzureOpenAIDeployment: getEnvOrDefault("AZURE_OPENAI_DEPLOYMENT", "gpt-4"),
		AzureOpenAIAPIVersion: getEnvOrDefault("AZURE_OPENAI_API_VERSION", "2024-02-15-preview"),
		GCPProjectID:          getEnvOrDefault("GCP_PROJECT_ID", ""),
		GCPLocation:           getEnvOrDefault("GCP_LOCATION", "us-central1"),
		VertexModel:           getEnvOrDefault("VERTEX_MODEL", "gemini-2.0-flash-001"),
	}
}

// Validate checks the settings the server cannot start without.
func (c *AppConfig) Validate() error {
	if err := validateEndpoint("AZURE_DOCUMENT_INTELLIGENCE_ENDPOINT", c.AnalysisEndpoint); err != nil {
		return err
	}
	if len(c.AnalysisAPIKey) < docintel.MinAPIKeyLength {
		return fmt.Errorf("%w: invalid AZURE_DOCUMENT_INTELLIGENCE_API_KEY", domain.ErrInvalidConfiguration)
	}
	if c.MaxPollAttempts <= 0 {
		return fmt.Errorf("%w: ANALYSIS_MAX_ATTEMPTS must be positive", domain.ErrInvalidConfiguration)
	}

	switch c.LLMProvider {
	case ProviderAzureOpenAI:
		if err := validateEndpoint("AZURE_OPENAI_ENDPOINT", c.AzureOpenAIEndpoint); err != nil {
			return err
		}
		if c.AzureOpenAIAPIKey == "" {
			return fmt.Errorf("%w: missing AZURE_OPENAI_API_KEY", domain.ErrInvalidConfiguration)
		}
	case ProviderVertex:
		if c.GCPProjectID == "" {
			return fmt.Errorf("%w: missing GCP_PROJECT_ID", domain.ErrInvalidConfiguration)
		}
	default:
		return fmt.Errorf("%w: unknown LLM_PROVIDER %q", domain.ErrInvalidConfiguration, c.LLMProvider)
	}
	return nil
}

// validateEndpoint requires an absolute https URL; both services receive the
// API key in a request header.
func validateEndpoint(name, raw string) error {
	u, err := url.Parse(raw)
	if raw == "" || err != nil || u.Host == "" || u.Scheme != "https" {
		return fmt.Errorf("%w: %s must be an https URL", domain.ErrInvalidConfiguration, name)
	}
	return nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log output format
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

func (c *AppConfig) GetStaticDir() string {
	return c.StaticDir
}

func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

func (c *AppConfig) GetSessionTTL() time.Duration {
	return c.SessionTTL
}

// GetAnalysisEndpoint returns the document analysis service endpoint
func (c *AppConfig) GetAnalysisEndpoint() string {
	return c.AnalysisEndpoint
}

// GetAnalysisAPIKey returns the document analysis service key
func (c *AppConfig) GetAnalysisAPIKey() string {
	return c.AnalysisAPIKey
}

func (c *AppConfig) GetAnalysisModel() string {
	return c.AnalysisModel
}

func (c *AppConfig) GetAnalysisAPIVersion() string {
	return c.AnalysisAPIVersion
}

// GetPollInterval returns the wait between two status checks
func (c *AppConfig) GetPollInterval() time.Duration {
	return c.PollInterval
}

// GetMaxPollAttempts returns the status check budget per document
func (c *AppConfig) GetMaxPollAttempts() int {
	return c.MaxPollAttempts
}

func (c *AppConfig) GetLLMProvider() string {
	return c.LLMProvider
}

func (c *AppConfig) GetAzureOpenAIEndpoint() string {
	return c.AzureOpenAIEndpoint
}

func (c *AppConfig) GetAzureOpenAIAPIKey() string {
	return c.AzureOpenAIAPIKey
}

func (c *AppConfig) GetAzureOpenAIDeployment() string {
	return c.AzureOpenAIDeployment
}

func (c *AppConfig) GetAzureOpenAIAPIVersion() string {
	return c.AzureOpenAIAPIVersion
}

func (c *AppConfig) GetGCPProjectID() string {
	return c.GCPProjectID
}

func (c *AppConfig) GetGCPLocation() string {
	return c.GCPLocation
}

func (c *AppConfig) GetVertexModel() string {
	return c.VertexModel
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
