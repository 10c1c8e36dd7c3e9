package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/careerforge/internal/config"
	"github.com/phrazzld/careerforge/internal/generation"
	"github.com/phrazzld/careerforge/internal/platform/gemini"
	"github.com/phrazzld/careerforge/internal/platform/openai"
)

// application holds all the shared application dependencies.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	completer, err := newCompleter(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM completer: %w", err)
	}

	var opts []generation.Option
	if cfg.LLM.MaxPromptTokens > 0 {
		counter, err := generation.NewTiktokenCounter(cfg.LLM.ModelName)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize token counter: %w", err)
		}
		opts = append(opts, generation.WithTokenCounter(counter))
		logger.Info("Prompt token budget enabled", "max_prompt_tokens", cfg.LLM.MaxPromptTokens)
	}

	service, err := generation.NewService(
		completer,
		cfg.LLM,
		logger.With("component", "generation"),
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"provider", cfg.LLM.Provider,
		"validate_schema", cfg.LLM.ValidateSchema,
		"repair_json", cfg.LLM.RepairJSON)

	return &application{
		config:    cfg,
		logger:    logger,
		generator: service,
	}, nil
}

// newCompleter builds the upstream adapter for the configured provider. With
// no API key it returns nil: the server still starts and every generation
// request is answered with the missing-key message.
func newCompleter(ctx context.Context, llm config.LLMConfig, logger *slog.Logger) (generation.Completer, error) {
	if llm.APIKey() == "" {
		logger.Warn("No API key configured; generation requests will fail until one is set",
			"provider", llm.Provider)
		return nil, nil
	}

	switch llm.Provider {
	case config.ProviderGemini:
		completer, err := gemini.NewCompleter(ctx, llm, logger, nil)
		if err != nil {
			return nil, err
		}
		return completer, nil
	default:
		completer, err := openai.NewCompleter(llm, logger)
		if err != nil {
			return nil, err
		}
		return completer, nil
	}
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
