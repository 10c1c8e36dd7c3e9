package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"
)

//go:embed prompts/career.tmpl
var defaultPromptTemplate string

// promptData represents the data passed to the prompt template
type promptData struct {
	RawNotes string
	Role     string
	Tone     string
}

// PromptBuilder renders the instruction sent to the upstream model.
// Values are embedded verbatim; nothing is escaped.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses the embedded career prompt template.
func NewPromptBuilder() (*PromptBuilder, error) {
	return parsePrompt("career", defaultPromptTemplate)
}

// NewPromptBuilderFromFile parses a prompt template from path. An empty path
// selects the embedded template.
func NewPromptBuilderFromFile(path string) (*PromptBuilder, error) {
	if path == "" {
		return NewPromptBuilder()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt template from %s: %w", path, err)
	}
	return parsePrompt("career", string(content))
}

func parsePrompt(name, text string) (*PromptBuilder, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}
	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for req. Identical requests always produce
// identical prompts.
func (b *PromptBuilder) Build(req Request) (string, error) {
	var buf bytes.Buffer
	data := promptData{
		RawNotes: req.RawNotes,
		Role:     req.Role,
		Tone:     req.Tone,
	}
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
