package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
	"github.com/phrazzld/careerforge/internal/config"
	"github.com/phrazzld/careerforge/internal/platform/logger"
	"github.com/phrazzld/careerforge/internal/redact"
)

// maxLoggedContent caps how much unparseable model output is written to logs.
const maxLoggedContent = 2048

// Completer submits a prompt to an upstream completion model.
//
// Implementations make exactly one attempt. They return ("", nil) when the
// upstream answered successfully but without any message content, and a
// non-nil error for every transport or non-2xx failure.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator produces a Result for a Request.
// This interface is the boundary the HTTP layer depends on.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// Option customizes a Service.
type Option func(*Service)

// WithTokenCounter enables the prompt token budget (cfg.MaxPromptTokens).
func WithTokenCounter(counter TokenCounter) Option {
	return func(s *Service) {
		s.tokens = counter
	}
}

// WithPromptBuilder replaces the prompt builder derived from configuration.
func WithPromptBuilder(builder *PromptBuilder) Option {
	return func(s *Service) {
		s.prompts = builder
	}
}

// Service is the endpoint pipeline of the generation exchange. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	completer Completer
	config    config.LLMConfig
	prompts   *PromptBuilder
	schema    *SchemaValidator
	tokens    TokenCounter
	logger    *slog.Logger
}

var _ Generator = (*Service)(nil)

// NewService creates a Service.
//
// completer may be nil only when the configured provider has no API key; in
// that case every Generate call fails with a configuration error before any
// upstream work is attempted.
func NewService(
	completer Completer,
	cfg config.LLMConfig,
	logger *slog.Logger,
	opts ...Option,
) (*Service, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if completer == nil && cfg.APIKey() != "" {
		return nil, errors.New("completer cannot be nil when an API key is configured")
	}

	s := &Service{
		completer: completer,
		config:    cfg,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.prompts == nil {
		prompts, err := NewPromptBuilderFromFile(cfg.PromptTemplatePath)
		if err != nil {
			return nil, err
		}
		s.prompts = prompts
	}

	if cfg.ValidateSchema {
		schema, err := NewSchemaValidator()
		if err != nil {
			return nil, err
		}
		s.schema = schema
	}

	return s, nil
}

// Generate runs one generation: validate, check the credential, build the
// prompt, call upstream once, then parse and check the model's output. Every
// failure is returned as an *Error whose Message is safe for clients.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.config.APIKey() == "" {
		return nil, NewError(
			KindConfiguration,
			MissingKeyMessage(s.config.Provider),
			fmt.Errorf("no API key configured for provider %s", s.config.Provider),
		)
	}

	prompt, err := s.prompts.Build(req)
	if err != nil {
		return nil, NewError(KindInternal, MsgInternal, err)
	}

	if s.tokens != nil && s.config.MaxPromptTokens > 0 {
		count := s.tokens.CountTokens(prompt)
		if count > s.config.MaxPromptTokens {
			return nil, NewError(KindValidation, MsgNotesTooLong,
				fmt.Errorf("prompt has %d tokens, limit is %d", count, s.config.MaxPromptTokens))
		}
		log.DebugContext(ctx, "prompt token count", "tokens", count)
	}

	callCtx := ctx
	if s.config.RequestTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, time.Duration(s.config.RequestTimeoutSeconds)*time.Second)
		defer cancel()
	}

	start := time.Now()
	content, err := s.completer.Complete(callCtx, prompt)
	if err != nil {
		var genErr *Error
		if errors.As(err, &genErr) {
			return nil, err
		}
		log.ErrorContext(ctx, "upstream completion failed",
			"provider", s.config.Provider,
			"model", s.config.ModelName,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", redact.Error(err))
		return nil, NewError(KindUpstreamUnavailable, MsgGenerationFailed, err)
	}

	log.DebugContext(ctx, "upstream completion received",
		"provider", s.config.Provider,
		"duration_ms", time.Since(start).Milliseconds(),
		"content_length", len(content))

	if content == "" {
		return nil, NewError(KindUpstreamMalformed, MsgNoContent, errors.New("empty message content"))
	}

	return s.parse(ctx, log, content)
}

// parse turns model content into a Result, keeping the exact JSON text.
func (s *Service) parse(ctx context.Context, log *slog.Logger, content string) (*Result, error) {
	raw := strings.TrimSpace(content)

	if !json.Valid([]byte(raw)) && s.config.RepairJSON {
		if repaired, err := repairJSON(raw); err == nil && json.Valid([]byte(repaired)) {
			log.WarnContext(ctx, "repaired malformed model output",
				"original_length", len(raw),
				"repaired_length", len(repaired))
			raw = repaired
		}
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.ErrorContext(ctx, "failed to parse model output",
			"error", err,
			"content", redact.Truncated(content, maxLoggedContent))
		return nil, NewError(KindUpstreamMalformed, MsgParseFailed, err)
	}

	if s.schema != nil {
		if err := s.schema.Validate(decoded); err != nil {
			log.ErrorContext(ctx, "model output does not match result shape",
				"error", err,
				"content", redact.Truncated(raw, maxLoggedContent))
			return nil, NewError(KindUpstreamMalformed, MsgShapeMismatch, err)
		}
	}

	result := &Result{}
	if err := json.Unmarshal([]byte(raw), result); err != nil {
		// Only reachable with shape validation disabled; the raw JSON is still
		// passed through.
		log.WarnContext(ctx, "model output does not decode into a result", "error", err)
	}
	result.Raw = json.RawMessage(raw)

	log.InfoContext(ctx, "career content generated",
		"bullets", len(result.LinkedinBullets),
		"headline_length", len(result.Headline))

	return result, nil
}

// repairJSON strips a Markdown code fence around the output and then lets
// jsonrepair fix common syntax slips (trailing commas, single quotes, ...).
func repairJSON(s string) (string, error) {
	s = stripCodeFence(s)
	if json.Valid([]byte(s)) {
		return s, nil
	}
	return jsonrepair.JSONRepair(s)
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop the info string ("json") on the opening fence line.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
