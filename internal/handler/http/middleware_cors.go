package http

import "net/http"

// withCORS implements credentialed CORS for the configured fixed allow-list
// of origins.
//
// For requests from an allowed origin the response echoes the origin in
// Access-Control-Allow-Origin together with Allow-Credentials, which is what
// cookie-based sessions require (a wildcard origin is rejected by browsers
// when credentials are on). Preflight OPTIONS requests from allowed origins
// are answered directly with 204. Requests from unlisted origins pass
// through without CORS headers, so the browser blocks the cross-origin read.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(h.corsOrigins))
	for _, origin := range h.corsOrigins {
		allowed[origin] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")

				if r.Method == http.MethodOptions {
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Trace-ID")
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}
