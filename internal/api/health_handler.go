package api

import (
	"net/http"

	"github.com/phrazzld/careerforge/internal/api/shared"
	"github.com/phrazzld/careerforge/internal/config"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     string `json:"status"`
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
}

// HealthHandler reports liveness and whether an upstream credential is set.
// It never reveals the credential itself.
type HealthHandler struct {
	llm config.LLMConfig
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(llm config.LLMConfig) *HealthHandler {
	return &HealthHandler{llm: llm}
}

// Health handles GET /health requests
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:     "ok",
		Provider:   h.llm.Provider,
		Model:      h.llm.ModelName,
		Configured: h.llm.APIKey() != "",
	})
}
