package middleware

import "net/http"

// CORS header values of the generation endpoint.
const (
	AllowOrigin  = "*"
	AllowMethods = "POST"
	AllowHeaders = "authorization, x-client-info, apikey, content-type"
)

// CORS marks every response as readable from any origin and answers
// preflight OPTIONS requests itself with 200 and an empty body.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", AllowOrigin)

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", AllowMethods)
			w.Header().Set("Access-Control-Allow-Headers", AllowHeaders)
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
