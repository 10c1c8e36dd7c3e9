package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/phrazzld/careerforge/internal/config"
	"github.com/phrazzld/careerforge/internal/generation"
)

// Completer sends a single user message to a chat completion model.
type Completer struct {
	client      oai.Client
	model       string
	temperature float64
	logger      *slog.Logger
}

var _ generation.Completer = (*Completer)(nil)

// NewCompleter creates a Completer from the LLM configuration. Extra request
// options (an HTTP client in tests, for example) are applied after the
// configured ones.
func NewCompleter(cfg config.LLMConfig, logger *slog.Logger, opts ...option.RequestOption) (*Completer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("openai API key cannot be empty")
	}
	if cfg.ModelName == "" {
		return nil, errors.New("model name cannot be empty")
	}

	requestOpts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		// The exchange makes exactly one upstream attempt per request.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(cfg.BaseURL))
	}
	requestOpts = append(requestOpts, opts...)

	return &Completer{
		client:      oai.NewClient(requestOpts...),
		model:       cfg.ModelName,
		temperature: cfg.Temperature,
		logger:      logger.With("component", "openai_completer"),
	}, nil
}

// Complete implements generation.Completer. A response without choices or
// with empty content yields ("", nil).
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.DebugContext(ctx, "calling chat completions",
		"model", c.model,
		"prompt_length", len(prompt))

	resp, err := c.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model:       oai.ChatModel(c.model),
		Messages:    []oai.ChatCompletionMessageParamUnion{oai.UserMessage(prompt)},
		Temperature: oai.Float(c.temperature),
	})
	if err != nil {
		var apiErr *oai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("openai returned status %d: %w", apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.logger.WarnContext(ctx, "chat completion returned no choices", "id", resp.ID)
		return "", nil
	}

	c.logger.DebugContext(ctx, "chat completion received",
		"id", resp.ID,
		"finish_reason", resp.Choices[0].FinishReason,
		"total_tokens", resp.Usage.TotalTokens)

	return resp.Choices[0].Message.Content, nil
}
