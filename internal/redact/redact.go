// Package redact scrubs credentials and personal data from strings before they
// are logged. Upstream error bodies, request headers and raw model output all
// pass through here, so provider API keys, bearer tokens and email addresses
// never reach the log sink.
package redact

import (
	"regexp"
	"unicode/utf8"
)

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	TruncationMarker              = "...[truncated]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; more specific token shapes come first so the
// generic assignment rule never sees a half-redacted value.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		replacement: RedactedJWTPlaceholder,
	},
	{
		// OpenAI secret and project keys
		pattern:     regexp.MustCompile(`\bsk-(?:proj-)?[A-Za-z0-9_-]{16,}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		// Google API keys
		pattern:     regexp.MustCompile(`\bAIza[0-9A-Za-z_-]{35}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/=]{8,}`),
		replacement: "Bearer " + RedactedCredentialPlaceholder,
	},
	{
		// user:password@ in URLs
		pattern:     regexp.MustCompile(`(?i)\b([a-z][a-z0-9+.-]*://)[^/\s:@]+:[^/\s@]+@`),
		replacement: "${1}" + RedactedCredentialPlaceholder + "@",
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(api[_-]?key|token|secret|password|passwd|pwd)\s*[:=]\s*['"]?[^\s'"&,]{3,}`),
		replacement: "${1}=" + RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: RedactedEmailPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Truncated redacts input and caps the result at maxBytes, cutting on a rune
// boundary and appending TruncationMarker when anything was dropped.
func Truncated(input string, maxBytes int) string {
	result := String(input)
	if maxBytes <= 0 || len(result) <= maxBytes {
		return result
	}

	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(result[cut]) {
		cut--
	}
	return result[:cut] + TruncationMarker
}
