package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/careerforge/internal/api/shared"
	"github.com/phrazzld/careerforge/internal/generation"
)

// MapErrorToStatusCode maps generation errors to HTTP status codes.
// Validation failures are the client's to fix (400); every other kind,
// including configuration and upstream problems, is a server error (500).
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, generation.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-visible message for err. Errors that
// are not tagged generation errors never leak their text.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return generation.MsgInternal
	}
	return generation.MessageOf(err)
}

// HandleAPIError writes the error response for err and logs the detail.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	var opts []shared.ResponseOption
	if errors.Is(err, generation.ErrConfiguration) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}
