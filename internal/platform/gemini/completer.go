package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/careerforge/internal/config"
	"github.com/phrazzld/careerforge/internal/generation"
	"google.golang.org/genai"
)

// ErrContentBlocked is returned when the safety filters stopped generation.
var ErrContentBlocked = errors.New("content blocked by safety filters")

// Completer calls GenerateContent with a single text prompt.
type Completer struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string

	// temperature is the sampling temperature sent with every request
	temperature float32
}

var _ generation.Completer = (*Completer)(nil)

// NewCompleter creates a Completer. httpClient may be nil to use the default
// client.
func NewCompleter(
	ctx context.Context,
	cfg config.LLMConfig,
	logger *slog.Logger,
	httpClient *http.Client,
) (*Completer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if cfg.ModelName == "" {
		return nil, errors.New("model name cannot be empty")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Completer{
		logger:      logger.With("component", "gemini_completer"),
		client:      client,
		model:       cfg.ModelName,
		temperature: float32(cfg.Temperature),
	}, nil
}

// Complete implements generation.Completer.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.DebugContext(ctx, "calling generate content",
		"model", c.model,
		"prompt_length", len(prompt))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(c.temperature),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("gemini returned status %d: %w", apiErr.Code, err)
		}
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		c.logger.WarnContext(ctx, "generate content returned no candidates")
		return "", nil
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", ErrContentBlocked
	}

	c.logger.DebugContext(ctx, "generate content received",
		"finish_reason", resp.Candidates[0].FinishReason)

	return resp.Text(), nil
}
