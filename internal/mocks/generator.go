package mocks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/phrazzld/careerforge/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, req generation.Request) (*generation.Result, error)

	// Default response values
	Result *generation.Result
	Err    error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Requests contains all requests passed to Generate calls
		Requests []generation.Request

		// Contexts contains all contexts passed to Generate calls
		Contexts []context.Context
	}
}

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(ctx context.Context, req generation.Request) (*generation.Result, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Requests = append(m.GenerateCalls.Requests, req)
	m.GenerateCalls.Contexts = append(m.GenerateCalls.Contexts, ctx)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}

	return m.Result, m.Err
}

// CallCount returns how many times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// NewMockGeneratorWithResult creates a MockGenerator that returns result
func NewMockGeneratorWithResult(result *generation.Result) *MockGenerator {
	return &MockGenerator{Result: result}
}

// NewMockGeneratorWithError creates a MockGenerator that returns err
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// NewMockGeneratorWithDefaultResult creates a MockGenerator whose result is
// decoded from DefaultResultJSON, with Raw holding the exact bytes.
func NewMockGeneratorWithDefaultResult() *MockGenerator {
	return &MockGenerator{Result: DefaultResult()}
}

// DefaultResult decodes DefaultResultJSON into a Result.
func DefaultResult() *generation.Result {
	result := &generation.Result{}
	_ = json.Unmarshal([]byte(DefaultResultJSON), result)
	result.Raw = json.RawMessage(DefaultResultJSON)
	return result
}

// MockGeneratorThatFails creates a MockGenerator that simulates an upstream failure
func MockGeneratorThatFails() *MockGenerator {
	return &MockGenerator{
		Err: generation.NewError(generation.KindUpstreamUnavailable, generation.MsgGenerationFailed, nil),
	}
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Requests = nil
	m.GenerateCalls.Contexts = nil
}
