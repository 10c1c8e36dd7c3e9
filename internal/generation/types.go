package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tone is a style directive that modulates prompt wording and output voice.
type Tone string

// The closed set of supported tones.
const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneBold         Tone = "Bold"
)

// Tones lists every supported tone in display order.
func Tones() []Tone {
	return []Tone{ToneProfessional, ToneFriendly, ToneBold}
}

// ParseTone matches s case-insensitively against the supported tones.
func ParseTone(s string) (Tone, error) {
	trimmed := strings.TrimSpace(s)
	for _, t := range Tones() {
		if strings.EqualFold(trimmed, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tone %q: must be one of Professional, Friendly, Bold", s)
}

// Valid reports whether t is one of the supported tones.
func (t Tone) Valid() bool {
	_, err := ParseTone(string(t))
	return err == nil
}

// Request carries the three user inputs of one generation.
type Request struct {
	RawNotes string `json:"rawNotes"`
	Role     string `json:"role"`
	Tone     string `json:"tone"`
}

// Validate applies the endpoint's presence check: every field must be
// non-empty. Content is not inspected beyond that.
func (r Request) Validate() error {
	if r.RawNotes == "" || r.Role == "" || r.Tone == "" {
		return NewError(KindValidation, MsgMissingFields, nil)
	}
	return nil
}

// StarStory is a behavioral-interview narrative.
type StarStory struct {
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

// Result is the structured content produced for one Request.
type Result struct {
	LinkedinBullets []string  `json:"linkedinBullets"`
	StarStory       StarStory `json:"starStory"`
	Headline        string    `json:"headline"`

	// Raw is the model's JSON exactly as returned (surrounding whitespace
	// trimmed). It is what the endpoint sends back to clients.
	Raw json.RawMessage `json:"-"`
}
