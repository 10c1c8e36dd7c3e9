package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/phrazzld/careerforge/internal/generation"
)

// DefaultEndpoint is the generation endpoint of a locally running server.
const DefaultEndpoint = "http://localhost:8080/api/generate-career-content"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

// Client calls the generation endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ generation.Generator = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests. The default client
// has no timeout; callers bound requests through the context.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client for endpoint, an absolute http(s) URL.
func New(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: must be an absolute http or https URL", endpoint)
	}

	c := &Client{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Generate sends req to the endpoint once.
//
// A 2xx body is decoded into a Result without checking its shape; Raw holds
// the body as received. Any other status yields a *generation.Error whose
// Error() is exactly the endpoint's message ("Network error" when the body
// is not JSON, "Failed to generate content" when it carries no message).
// Transport failures are returned wrapped as they are.
func (c *Client) Generate(ctx context.Context, req generation.Request) (*generation.Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.DebugContext(ctx, "generation response received",
		"status", resp.StatusCode,
		"body_length", len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := errorMessage(body)
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Err:        generation.NewError(generation.KindForMessage(resp.StatusCode, message), message, nil),
		}
	}

	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("failed to decode response: body is not JSON (%d bytes)", len(body))
	}

	result := &generation.Result{}
	if err := json.Unmarshal(trimmed, result); err != nil {
		// The body is still handed back; missing or mistyped fields stay zero.
		c.logger.WarnContext(ctx, "generation response does not match the result shape", "error", err)
	}
	result.Raw = json.RawMessage(trimmed)
	return result, nil
}

// errorMessage extracts the message of an {"error": ...} body. A non-string
// message is used in its text form.
func errorMessage(body []byte) string {
	if !json.Valid(body) {
		return generation.MsgNetwork
	}

	var payload struct {
		Error generation.Field `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || !payload.Error.Truthy {
		return generation.MsgGenerationFailed
	}
	return payload.Error.Text
}

// StatusError is a non-2xx answer from the endpoint. Its text is exactly the
// endpoint's message, and it unwraps to the tagged *generation.Error.
type StatusError struct {
	StatusCode int
	Err        *generation.Error
}

func (e *StatusError) Error() string {
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// IsStatusError reports whether err came from a non-2xx endpoint answer
// rather than from local validation, transport or decoding.
func IsStatusError(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr)
}
