package mocks

import (
	"context"
	"sync"
)

// DefaultResultJSON is a well-formed model answer for the career prompt.
const DefaultResultJSON = `{"linkedinBullets":["Led migration of billing to event sourcing, cutting reconciliation time 60%","Mentored 4 engineers through their first on-call rotation","Shipped a self-serve onboarding flow used by 12k customers"],"starStory":{"situation":"Billing reconciliation took two days each month.","task":"Make reconciliation near real-time without downtime.","action":"Designed an event-sourced ledger and migrated accounts in batches.","result":"Reconciliation dropped to under an hour and disputes fell 30%."},"headline":"Backend engineer building reliable billing systems"}`

// MockCompleter implements generation.Completer for testing
type MockCompleter struct {
	// CompleteFn allows test cases to mock the Complete behavior
	CompleteFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Content string
	Err     error

	// Call tracking for verification
	CompleteCalls struct {
		mu sync.Mutex

		// Count tracks how many times Complete was called
		Count int

		// Prompts contains all prompts passed to Complete calls
		Prompts []string

		// Contexts contains all contexts passed to Complete calls
		Contexts []context.Context
	}
}

// Complete implements the generation.Completer interface
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.CompleteCalls.mu.Lock()
	m.CompleteCalls.Count++
	m.CompleteCalls.Prompts = append(m.CompleteCalls.Prompts, prompt)
	m.CompleteCalls.Contexts = append(m.CompleteCalls.Contexts, ctx)
	m.CompleteCalls.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, prompt)
	}

	return m.Content, m.Err
}

// CallCount returns how many times Complete was called.
func (m *MockCompleter) CallCount() int {
	m.CompleteCalls.mu.Lock()
	defer m.CompleteCalls.mu.Unlock()
	return m.CompleteCalls.Count
}

// LastPrompt returns the most recent prompt, or "" if Complete was never called.
func (m *MockCompleter) LastPrompt() string {
	m.CompleteCalls.mu.Lock()
	defer m.CompleteCalls.mu.Unlock()
	if len(m.CompleteCalls.Prompts) == 0 {
		return ""
	}
	return m.CompleteCalls.Prompts[len(m.CompleteCalls.Prompts)-1]
}

// NewMockCompleterWithContent creates a MockCompleter that returns content
func NewMockCompleterWithContent(content string) *MockCompleter {
	return &MockCompleter{Content: content}
}

// NewMockCompleterWithError creates a MockCompleter that returns err
func NewMockCompleterWithError(err error) *MockCompleter {
	return &MockCompleter{Err: err}
}

// Reset resets the call tracking state
func (m *MockCompleter) Reset() {
	m.CompleteCalls.mu.Lock()
	defer m.CompleteCalls.mu.Unlock()

	m.CompleteCalls.Count = 0
	m.CompleteCalls.Prompts = nil
	m.CompleteCalls.Contexts = nil
}
