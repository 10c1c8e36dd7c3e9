package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/careerforge/internal/generation"
	"github.com/phrazzld/careerforge/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGenerator(t *testing.T) {
	t.Parallel()

	t.Run("Default success case", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithDefaultResult()
		req := generation.Request{RawNotes: "notes", Role: "Engineer", Tone: "Bold"}

		result, err := mockGen.Generate(context.Background(), req)

		require.NoError(t, err)
		assert.Len(t, result.LinkedinBullets, 3, "Should decode three bullets")
		assert.JSONEq(t, mocks.DefaultResultJSON, string(result.Raw))
		assert.Equal(t, 1, mockGen.CallCount(), "Generate should be called once")
		assert.Equal(t, req, mockGen.GenerateCalls.Requests[0], "Should record the request")
	})

	t.Run("Error case", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.MockGeneratorThatFails()

		result, err := mockGen.Generate(context.Background(), generation.Request{})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, generation.ErrUpstreamUnavailable)
		assert.Equal(t, generation.MsgGenerationFailed, generation.MessageOf(err))
	})

	t.Run("Custom function and reset", func(t *testing.T) {
		t.Parallel()

		customErr := errors.New("custom error")
		mockGen := &mocks.MockGenerator{
			GenerateFn: func(ctx context.Context, req generation.Request) (*generation.Result, error) {
				if req.Role == "trigger error" {
					return nil, customErr
				}
				return &generation.Result{Headline: req.Role}, nil
			},
		}

		_, err := mockGen.Generate(context.Background(), generation.Request{Role: "trigger error"})
		assert.Equal(t, customErr, err)

		result, err := mockGen.Generate(context.Background(), generation.Request{Role: "Designer"})
		require.NoError(t, err)
		assert.Equal(t, "Designer", result.Headline)
		assert.Equal(t, 2, mockGen.CallCount())

		mockGen.Reset()
		assert.Equal(t, 0, mockGen.CallCount())
		assert.Empty(t, mockGen.GenerateCalls.Requests)
	})
}

func TestMockCompleter(t *testing.T) {
	t.Parallel()

	completer := mocks.NewMockCompleterWithContent("hello")

	content, err := completer.Complete(context.Background(), "prompt one")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
	assert.Equal(t, "prompt one", completer.LastPrompt())

	completer.Err = errors.New("boom")
	completer.Content = ""
	_, err = completer.Complete(context.Background(), "prompt two")
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 2, completer.CallCount())

	completer.Reset()
	assert.Equal(t, 0, completer.CallCount())
	assert.Equal(t, "", completer.LastPrompt())
}
