package domain

import "time"

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	// With returns a logger that adds fields to every entry.
	With(fields ...interface{}) Logger
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string
	GetStaticDir() string
	GetAllowedOrigins() []string
	GetSessionTTL() time.Duration

	GetAnalysisEndpoint() string
	GetAnalysisAPIKey() string
	GetAnalysisModel() string
	GetAnalysisAPIVersion() string
	GetPollInterval() time.Duration
	GetMaxPollAttempts() int

	GetLLMProvider() string
	GetAzureOpenAIEndpoint() string
	GetAzureOpenAIAPIKey() string
	GetAzureOpenAIDeployment() string
	GetAzureOpenAIAPIVersion() string
	GetGCPProjectID() string
	GetGCPLocation() string
	GetVertexModel() string

	Validate() error
}
