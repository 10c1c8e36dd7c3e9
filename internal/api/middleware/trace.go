package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/careerforge/internal/api/shared"
	"github.com/phrazzld/careerforge/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context, together with a
// logger carrying it, so every log line of the request can be correlated.
// Apply it early in the chain.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := logger.FromContextOrDefault(ctx, base).With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
