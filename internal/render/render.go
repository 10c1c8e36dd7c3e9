// Package render presents a generation.Result for people: coloured terminal
// text, Markdown, HTML (through goldmark) or the raw JSON.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/phrazzld/careerforge/internal/generation"
	"github.com/yuin/goldmark"
)

// Format selects an output representation.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatHTML, FormatJSON}
}

// ParseFormat matches s case-insensitively against the supported formats.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q: must be one of text, markdown, html, json", s)
}

// Write renders result to w in format.
func Write(w io.Writer, format Format, result *generation.Result) error {
	switch format {
	case FormatText:
		return Text(w, result)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(result))
		return err
	case FormatHTML:
		html, err := HTML(result)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	case FormatJSON:
		data, err := JSON(result)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

var (
	heading = color.New(color.FgCyan, color.Bold)
	label   = color.New(color.Bold)
)

// Text writes the three panels of the result for a terminal. Colour follows
// fatih/color's detection (disabled when w is not a TTY or NO_COLOR is set).
func Text(w io.Writer, result *generation.Result) error {
	var buf bytes.Buffer

	heading.Fprintln(&buf, "Headline")
	fmt.Fprintf(&buf, "  %s\n\n", result.Headline)

	heading.Fprintln(&buf, "LinkedIn bullets")
	for _, bullet := range result.LinkedinBullets {
		fmt.Fprintf(&buf, "  • %s\n", bullet)
	}
	buf.WriteString("\n")

	heading.Fprintln(&buf, "STAR story")
	for _, part := range starParts(result.StarStory) {
		label.Fprintf(&buf, "  %s: ", part.name)
		fmt.Fprintf(&buf, "%s\n", part.text)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Markdown returns the result as a Markdown document.
func Markdown(result *generation.Result) string {
	var b strings.Builder

	b.WriteString("# Career content\n\n")

	b.WriteString("## Headline\n\n")
	b.WriteString(result.Headline)
	b.WriteString("\n\n")

	b.WriteString("## LinkedIn bullets\n\n")
	for _, bullet := range result.LinkedinBullets {
		b.WriteString("- ")
		b.WriteString(bullet)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("## STAR story\n\n")
	for _, part := range starParts(result.StarStory) {
		fmt.Fprintf(&b, "**%s:** %s\n\n", part.name, part.text)
	}

	return b.String()
}

// HTML converts the Markdown rendering to an HTML fragment. Raw HTML in the
// model's text is not passed through.
func HTML(result *generation.Result) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(result)), &buf); err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return buf.String(), nil
}

// JSON returns the result's raw JSON when present, otherwise an indented
// encoding of the typed fields.
func JSON(result *generation.Result) ([]byte, error) {
	if len(result.Raw) > 0 {
		return result.Raw, nil
	}
	return json.MarshalIndent(result, "", "  ")
}

type starPart struct {
	name string
	text string
}

func starParts(s generation.StarStory) []starPart {
	return []starPart{
		{"Situation", s.Situation},
		{"Task", s.Task},
		{"Action", s.Action},
		{"Result", s.Result},
	}
}
