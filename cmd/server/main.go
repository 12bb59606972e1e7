package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doc-compare/internal/config"
	"doc-compare/internal/handler"
	"doc-compare/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file
	if path, err := config.LoadEnvFile("."); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	} else {
		log.Printf("Loaded environment from %s", path)
	}

	// Wiring
	ctx := context.Background()
	container, err := config.NewContainer(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer container.Close()

	cfg := container.Config
	container.Logger.Info("Configuration loaded",
		"analysis_endpoint", cfg.GetAnalysisEndpoint(),
		"analysis_api_key", logger.Redact(cfg.GetAnalysisAPIKey()),
		"llm_provider", cfg.GetLLMProvider(),
		"azure_openai_api_key", logger.Redact(cfg.GetAzureOpenAIAPIKey()),
		"max_file_size", cfg.GetMaxFileSize(),
	)

	// Handlers
	documentHandler := handler.NewDocumentHandler(
		container.DocumentProcessor,
		container.SessionStore,
		cfg.GetMaxFileSize(),
		container.Logger,
	)
	aiHandler := handler.NewAIHandler(
		container.ComparisonService,
		container.SessionStore,
		container.Logger,
	)

	// Router
	router := handler.NewRouter(documentHandler, aiHandler, handler.RouterOptions{
		AllowedOrigins: cfg.GetAllowedOrigins(),
		StaticDir:      cfg.GetStaticDir(),
		Logger:         container.Logger,
	})

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
}
