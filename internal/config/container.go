package config

import (
	"context"
	"fmt"

	"doc-compare/internal/domain"
	"doc-compare/internal/infra/docintel"
	"doc-compare/internal/infra/llm"
	"doc-compare/internal/repository"
	"doc-compare/internal/service"
	"doc-compare/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	AnalysisClient    domain.AnalysisClient
	DocumentProcessor domain.DocumentProcessor
	ComparisonService domain.ComparisonService
	SessionStore      domain.SessionStore

	closers []func() error
}

// NewContainer creates a new dependency injection container from the
// environment. It fails when the configuration is incomplete.
func NewContainer(ctx context.Context) (*Container, error) {
	return NewContainerWithConfig(ctx, NewConfig())
}

// NewContainerWithConfig wires the container around an existing configuration.
func NewContainerWithConfig(ctx context.Context, cfg domain.Config) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	appLogger := logger.NewLogger(cfg.GetLogLevel(), cfg.GetLogFormat())

	// Document analysis pipeline
	analysisClient := docintel.NewClient(docintel.Options{
		Endpoint:   cfg.GetAnalysisEndpoint(),
		APIKey:     cfg.GetAnalysisAPIKey(),
		Model:      cfg.GetAnalysisModel(),
		APIVersion: cfg.GetAnalysisAPIVersion(),
	}, appLogger.With("component", "docintel"))
	if err := analysisClient.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize analysis client: %w", err)
	}

	driver := service.NewAnalysisJobDriver(
		analysisClient,
		appLogger.With("component", "analysis_driver"),
		cfg.GetPollInterval(),
		cfg.GetMaxPollAttempts(),
	)
	processor := service.NewDocumentProcessingService(driver, appLogger)

	container := &Container{
		Config:            cfg,
		Logger:            appLogger,
		AnalysisClient:    analysisClient,
		DocumentProcessor: processor,
		SessionStore:      repository.NewMemorySessionRepository(cfg.GetSessionTTL(), appLogger),
	}

	generator, err := container.newTextGenerator(ctx)
	if err != nil {
		return nil, err
	}
	container.ComparisonService = service.NewAIService(generator, appLogger.With("component", "ai"))

	return container, nil
}

func (c *Container) newTextGenerator(ctx context.Context) (domain.TextGenerator, error) {
	switch c.Config.GetLLMProvider() {
	case ProviderVertex:
		gen, err := llm.NewVertexGenerator(ctx,
			c.Config.GetGCPProjectID(),
			c.Config.GetGCPLocation(),
			c.Config.GetVertexModel(),
			c.Logger,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize vertex AI: %w", err)
		}
		c.closers = append(c.closers, gen.Close)
		c.Logger.Info("Using Vertex AI text generator", "model", c.Config.GetVertexModel())
		return gen, nil
	default:
		c.Logger.Info("Using Azure OpenAI text generator", "deployment", c.Config.GetAzureOpenAIDeployment())
		return llm.NewAzureOpenAIGenerator(llm.AzureOpenAIOptions{
			Endpoint:   c.Config.GetAzureOpenAIEndpoint(),
			APIKey:     c.Config.GetAzureOpenAIAPIKey(),
			Deployment: c.Config.GetAzureOpenAIDeployment(),
			APIVersion: c.Config.GetAzureOpenAIAPIVersion(),
		}, c.Logger), nil
	}
}

// Close releases clients that hold connections.
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
