// Package openai adapts the OpenAI chat completions API to
// generation.Completer using the official openai-go SDK.
package openai
