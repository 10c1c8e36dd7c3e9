// Package main implements the entry point for the careerforge server, which
// exposes the career content generation endpoint.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/careerforge/internal/config"
	"github.com/phrazzld/careerforge/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "careerforge: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging, wires the application and serves
// until a shutdown signal arrives.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "careerforge: failed to close log file: %v\n", err)
		}
	}()

	log.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("provider", cfg.LLM.Provider),
		slog.String("model", cfg.LLM.ModelName),
		slog.Bool("api_key_present", cfg.LLM.APIKey() != ""))

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
