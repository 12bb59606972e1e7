package config

import (
	"context"
	"errors"
	"testing"

	"doc-compare/internal/domain"
)

func TestNewContainerWithConfig(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "error"

	container, err := NewContainerWithConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected container, got error %v", err)
	}
	defer container.Close()

	if container.DocumentProcessor == nil || container.ComparisonService == nil || container.SessionStore == nil {
		t.Fatalf("expected all services to be wired: %+v", container)
	}
	if container.Config != cfg {
		t.Fatalf("expected container to keep the given config")
	}
}

func TestNewContainerWithConfig_InvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.AnalysisAPIKey = ""

	if _, err := NewContainerWithConfig(context.Background(), cfg); !errors.Is(err, domain.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}
