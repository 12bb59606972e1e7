package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"doc-compare/internal/domain"
)

const defaultMaxFileSize int64 = 50 * 1024 * 1024

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "SERVER_PORT", "MAX_FILE_SIZE", "LOG_LEVEL", "LOG_FORMAT",
		"STATIC_DIR", "CORS_ALLOWED_ORIGINS", "SESSION_TTL",
		"AZURE_DOCUMENT_INTELLIGENCE_ENDPOINT", "AZURE_DOCUMENT_INTELLIGENCE_API_KEY",
		"DOCUMENT_INTELLIGENCE_MODEL", "DOCUMENT_INTELLIGENCE_API_VERSION",
		"ANALYSIS_POLL_INTERVAL", "ANALYSIS_MAX_ATTEMPTS",
		"LLM_PROVIDER", "AZURE_OPENAI_ENDPOINT", "AZURE_OPENAI_API_KEY",
		"AZURE_OPENAI_DEPLOYMENT", "AZURE_OPENAI_API_VERSION",
		"GCP_PROJECT_ID", "GCP_LOCATION", "VERTEX_MODEL",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetPollInterval() != 2*time.Second {
		t.Fatalf("expected poll interval 2s, got %s", cfg.GetPollInterval())
	}
	if cfg.GetMaxPollAttempts() != 30 {
		t.Fatalf("expected 30 poll attempts, got %d", cfg.GetMaxPollAttempts())
	}
	if cfg.GetAnalysisModel() != "prebuilt-read" {
		t.Fatalf("expected prebuilt-read model, got %s", cfg.GetAnalysisModel())
	}
	if cfg.GetLLMProvider() != ProviderAzureOpenAI {
		t.Fatalf("expected azure-openai provider, got %s", cfg.GetLLMProvider())
	}
	if cfg.GetAzureOpenAIDeployment() != "gpt-4" {
		t.Fatalf("expected gpt-4 deployment, got %s", cfg.GetAzureOpenAIDeployment())
	}
	if cfg.GetSessionTTL() != time.Hour {
		t.Fatalf("expected 1h session ttl, got %s", cfg.GetSessionTTL())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AZURE_DOCUMENT_INTELLIGENCE_ENDPOINT", "https://di.example.com/")
	t.Setenv("ANALYSIS_POLL_INTERVAL", "250ms")
	t.Setenv("ANALYSIS_MAX_ATTEMPTS", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("LLM_PROVIDER", "Vertex")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetAnalysisEndpoint() != "https://di.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.GetAnalysisEndpoint())
	}
	if cfg.GetPollInterval() != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", cfg.GetPollInterval())
	}
	if cfg.GetMaxPollAttempts() != 5 {
		t.Fatalf("expected 5 attempts, got %d", cfg.GetMaxPollAttempts())
	}
	origins := cfg.GetAllowedOrigins()
	if len(origins) != 2 || origins[0] != "https://a.example" || origins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", origins)
	}
	if cfg.GetLLMProvider() != ProviderVertex {
		t.Fatalf("expected vertex provider, got %s", cfg.GetLLMProvider())
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("ANALYSIS_POLL_INTERVAL", "soon")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetPollInterval() != 2*time.Second {
		t.Fatalf("expected default poll interval, got %s", cfg.GetPollInterval())
	}
}

func validConfig() *AppConfig {
	return &AppConfig{
		AnalysisEndpoint:    "https://di.example.com",
		AnalysisAPIKey:      "0123456789abcdef",
		MaxPollAttempts:     30,
		LLMProvider:         ProviderAzureOpenAI,
		AzureOpenAIEndpoint: "https://aoai.example.com",
		AzureOpenAIAPIKey:   "key",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr bool
	}{
		{"valid", func(c *AppConfig) {}, false},
		{"missing endpoint", func(c *AppConfig) { c.AnalysisEndpoint = "" }, true},
		{"endpoint without scheme", func(c *AppConfig) { c.AnalysisEndpoint = "di.example.com" }, true},
		{"endpoint bad scheme", func(c *AppConfig) { c.AnalysisEndpoint = "ftp://di.example.com" }, true},
		{"endpoint plain http", func(c *AppConfig) { c.AnalysisEndpoint = "http://di.example.com" }, true},
		{"azure openai plain http", func(c *AppConfig) { c.AzureOpenAIEndpoint = "http://aoai.example.com" }, true},
		{"short key", func(c *AppConfig) { c.AnalysisAPIKey = "short" }, true},
		{"zero attempts", func(c *AppConfig) { c.MaxPollAttempts = 0 }, true},
		{"azure openai without key", func(c *AppConfig) { c.AzureOpenAIAPIKey = "" }, true},
		{"vertex without project", func(c *AppConfig) { c.LLMProvider = ProviderVertex }, true},
		{"vertex with project", func(c *AppConfig) { c.LLMProvider = ProviderVertex; c.GCPProjectID = "p" }, false},
		{"unknown provider", func(c *AppConfig) { c.LLMProvider = "llama" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidConfiguration) {
					t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	root := t.TempDir()
	if _, err := LoadEnvFile(root); !errors.Is(err, ErrEnvFileNotFound) {
		t.Fatalf("expected ErrEnvFileNotFound, got %v", err)
	}

	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	envPath := filepath.Join(root, "src", ".env")
	if err := os.WriteFile(envPath, []byte("DOC_COMPARE_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("DOC_COMPARE_TEST_VALUE") })

	found, err := LoadEnvFile(root)
	if err != nil {
		t.Fatalf("expected env file to load, got %v", err)
	}
	if found != envPath {
		t.Fatalf("expected %s, got %s", envPath, found)
	}
	if os.Getenv("DOC_COMPARE_TEST_VALUE") != "from-file" {
		t.Fatalf("expected variable from .env to be set")
	}
}
