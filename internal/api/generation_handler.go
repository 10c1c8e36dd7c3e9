package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/phrazzld/careerforge/internal/api/shared"
	"github.com/phrazzld/careerforge/internal/generation"
)

var errNullBody = errors.New("request body is null")

// GenerateRequest represents the request body of the generation endpoint.
// Fields may hold any JSON type. A value only has to be truthy, and
// non-string values are passed on as text.
type GenerateRequest struct {
	RawNotes generation.Field `json:"rawNotes"`
	Role     generation.Field `json:"role"`
	Tone     generation.Field `json:"tone"`
}

// Validate reports a missing-fields error when any field is absent or falsy.
func (r GenerateRequest) Validate() error {
	if !r.RawNotes.Truthy || !r.Role.Truthy || !r.Tone.Truthy {
		return generation.NewError(generation.KindValidation, generation.MsgMissingFields, nil)
	}
	return nil
}

// GenerationHandler serves the career content generation endpoint.
type GenerationHandler struct {
	generator generation.Generator
}

// NewGenerationHandler creates a new GenerationHandler
func NewGenerationHandler(generator generation.Generator) *GenerationHandler {
	return &GenerationHandler{generator: generator}
}

// GenerateCareerContent handles POST /api/generate-career-content requests
func (h *GenerationHandler) GenerateCareerContent(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := shared.DecodeJSON(w, r, &body); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, generation.MsgNotesTooLong, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, generation.MsgInternal, err)
		return
	}

	req, err := parseGenerateRequest(body)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, generation.MsgInternal, err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.generator.Generate(r.Context(), generation.Request{
		RawNotes: req.RawNotes.Text,
		Role:     req.Role.Text,
		Tone:     req.Tone.Text,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithRawJSON(w, r, http.StatusOK, result.Raw)
}

// parseGenerateRequest reads the fields of a decoded body. A JSON null cannot
// be read at all; any other non-object body simply has no fields.
func parseGenerateRequest(body json.RawMessage) (GenerateRequest, error) {
	var req GenerateRequest

	trimmed := bytes.TrimSpace(body)
	if bytes.Equal(trimmed, []byte("null")) {
		return req, errNullBody
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return req, nil
	}

	if err := json.Unmarshal(trimmed, &req); err != nil {
		return req, err
	}
	return req, nil
}
