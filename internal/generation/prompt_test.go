package generation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/careerforge/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilderEmbedsInputsVerbatim(t *testing.T) {
	t.Parallel()

	builder, err := generation.NewPromptBuilder()
	require.NoError(t, err)

	req := generation.Request{
		RawNotes: "Cut deploy time <50%> & led \"Project X\"",
		Role:     "Staff Engineer",
		Tone:     "Friendly",
	}
	prompt, err := builder.Build(req)
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Target Role: Staff Engineer")
	assert.Contains(t, prompt, "- Preferred Tone: Friendly")
	assert.Contains(t, prompt, "- Raw Experience Notes: Cut deploy time <50%> & led \"Project X\"")
	assert.Contains(t, prompt, "Tailor your response specifically for a Staff Engineer position")
	assert.Contains(t, prompt, "Compelling Staff Engineer-focused headline under 120 characters")
	assert.Contains(t, prompt, "Maintain Friendly voice throughout all content")
	assert.Contains(t, prompt, "Return ONLY the JSON object, no additional text or explanation.")
}

func TestPromptBuilderIsDeterministic(t *testing.T) {
	t.Parallel()

	builder, err := generation.NewPromptBuilder()
	require.NoError(t, err)

	req := generation.Request{RawNotes: "notes", Role: "PM", Tone: "Bold"}
	first, err := builder.Build(req)
	require.NoError(t, err)
	second, err := builder.Build(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := builder.Build(generation.Request{RawNotes: "notes", Role: "PM", Tone: "Professional"})
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestPromptBuilderFromFile(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded template", func(t *testing.T) {
		t.Parallel()

		builder, err := generation.NewPromptBuilderFromFile("")
		require.NoError(t, err)
		prompt, err := builder.Build(generation.Request{RawNotes: "n", Role: "r", Tone: "t"})
		require.NoError(t, err)
		assert.Contains(t, prompt, "GENERATE EXACTLY THIS JSON STRUCTURE")
	})

	t.Run("custom template", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("{{.Role}}|{{.Tone}}|{{.RawNotes}}"), 0o600))

		builder, err := generation.NewPromptBuilderFromFile(path)
		require.NoError(t, err)
		prompt, err := builder.Build(generation.Request{RawNotes: "n", Role: "r", Tone: "t"})
		require.NoError(t, err)
		assert.Equal(t, "r|t|n", prompt)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := generation.NewPromptBuilderFromFile(filepath.Join(t.TempDir(), "nope.tmpl"))
		assert.ErrorContains(t, err, "failed to read prompt template")
	})

	t.Run("unparseable template", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("{{.Role"), 0o600))

		_, err := generation.NewPromptBuilderFromFile(path)
		assert.ErrorContains(t, err, "failed to parse prompt template")
	})

	t.Run("unknown field fails at build time", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "unknown.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("{{.Company}}"), 0o600))

		builder, err := generation.NewPromptBuilderFromFile(path)
		require.NoError(t, err)
		_, err = builder.Build(generation.Request{RawNotes: "n", Role: "r", Tone: "t"})
		assert.ErrorContains(t, err, "failed to execute prompt template")
	})
}
