package generation

import (
	"errors"
	"fmt"

	"github.com/phrazzld/careerforge/internal/config"
)

// Kind classifies a generation failure.
type Kind int

// The closed set of failure kinds.
const (
	// KindInternal is an unexpected failure inside the exchange.
	KindInternal Kind = iota
	// KindValidation is a client-correctable input problem.
	KindValidation
	// KindConfiguration is an operator-correctable setup problem.
	KindConfiguration
	// KindUpstreamUnavailable means the completion call itself failed.
	KindUpstreamUnavailable
	// KindUpstreamMalformed means the completion succeeded but its content is unusable.
	KindUpstreamMalformed
)

// String returns the kind's name for logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindUpstreamMalformed:
		return "upstream_malformed"
	default:
		return "internal"
	}
}

// Client-visible messages. These are the only strings that cross the wire.
const (
	MsgMissingFields    = "Missing required fields: rawNotes, role, tone"
	MsgNotesTooLong     = "Notes are too long"
	MsgOpenAIKeyMissing = "OpenAI API key not configured"
	MsgGeminiKeyMissing = "Gemini API key not configured"
	MsgGenerationFailed = "Failed to generate content"
	MsgNoContent        = "No content received from OpenAI"
	MsgParseFailed      = "Failed to parse AI response"
	MsgShapeMismatch    = "AI response did not match the expected format"
	MsgInternal         = "Internal server error"
	MsgNetwork          = "Network error"
)

var kindByMessage = map[string]Kind{
	MsgMissingFields:    KindValidation,
	MsgNotesTooLong:     KindValidation,
	MsgOpenAIKeyMissing: KindConfiguration,
	MsgGeminiKeyMissing: KindConfiguration,
	MsgGenerationFailed: KindUpstreamUnavailable,
	MsgNoContent:        KindUpstreamMalformed,
	MsgParseFailed:      KindUpstreamMalformed,
	MsgShapeMismatch:    KindUpstreamMalformed,
	MsgInternal:         KindInternal,
}

// Sentinels for errors.Is matching by kind.
var (
	ErrValidation          = &Error{Kind: KindValidation}
	ErrConfiguration       = &Error{Kind: KindConfiguration}
	ErrUpstreamUnavailable = &Error{Kind: KindUpstreamUnavailable}
	ErrUpstreamMalformed   = &Error{Kind: KindUpstreamMalformed}
	ErrInternal            = &Error{Kind: KindInternal}
)

// Error is a tagged generation failure. Message is safe to show to end
// users; Err holds the underlying cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// NewError builds an Error of the given kind.
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Error returns Message, followed by the cause when there is one.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return KindInternal
}

// MessageOf returns the client-visible message for err. Errors that are not
// *Error (or carry no message) map to MsgInternal.
func MessageOf(err error) string {
	var genErr *Error
	if errors.As(err, &genErr) && genErr.Message != "" {
		return genErr.Message
	}
	return MsgInternal
}

// KindForMessage recovers the kind behind a client-visible message. Unknown
// messages are classified by status: 4xx is validation, anything else internal.
func KindForMessage(status int, message string) Kind {
	if kind, ok := kindByMessage[message]; ok {
		return kind
	}
	if status >= 400 && status < 500 {
		return KindValidation
	}
	return KindInternal
}

// MissingKeyMessage returns the configuration message for a provider.
func MissingKeyMessage(provider string) string {
	if provider == config.ProviderGemini {
		return MsgGeminiKeyMissing
	}
	return MsgOpenAIKeyMissing
}
