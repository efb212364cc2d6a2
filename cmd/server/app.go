package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ntvhoang/lingo-api/internal/config"
	"github.com/ntvhoang/lingo-api/internal/generation"
	"github.com/ntvhoang/lingo-api/internal/platform/gemini"
	"github.com/ntvhoang/lingo-api/internal/platform/logger"
)

// application holds the dependencies shared across the HTTP layer. All of
// them are constructed once at startup; no per-request mutable state lives
// here.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator
	checker   generation.ReadinessChecker
}

// newApplication loads configuration and wires up application components.
// The process fails fast here when the provider credential is absent.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	generator, err := gemini.NewGeminiGenerator(ctx, appLogger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize content generator: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    appLogger,
		generator: generator,
		checker:   generator,
	}, nil
}
