package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/careerforge/internal/api/shared"
	"github.com/phrazzld/careerforge/internal/generation"
	"github.com/phrazzld/careerforge/internal/platform/logger"
)

// Recoverer turns a panic in a handler into the catch-all 500 response
// {"error":"Internal server error"}. The panic value and stack are logged.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContextOrDefault(r.Context(), nil).ErrorContext(r.Context(), "handler panicked",
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()),
				"path", r.URL.Path)

			shared.RespondWithJSON(w, r, http.StatusInternalServerError,
				shared.ErrorResponse{Error: generation.MsgInternal})
		}()

		next.ServeHTTP(w, r)
	})
}
