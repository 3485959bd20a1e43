// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and CORS concerns are
// all handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"context"
	"net/http"

	"carmarket/internal/logger"
	"carmarket/internal/utils"
	"carmarket/models"
)

// LoginTokenCookie is the name of the cookie carrying the session token.
const LoginTokenCookie = "loginToken"

// auth returns an HTTP middleware that enforces cookie-based session
// authentication for a gated route.
//
// It resolves the loginToken cookie through [service.AuthService.ValidateToken]
// and — on success — stores the caller's identity in the request context
// under [utils.IdentityCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized and the given
// message (each gated route has its own fixed denial body) in the
// following cases:
//   - The loginToken cookie is absent ([ErrNoSessionCookie]).
//   - The cookie is present but empty ([ErrEmptySessionCookie]).
//   - The token is expired, malformed, or tampered with.
//
// The gate runs before any body or query parsing, so an unauthenticated
// request never reaches the directories. All rejection events are logged
// using the context-scoped logger obtained via [logger.FromRequest].
func (h *Handler) auth(message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			identity, err := h.sessionIdentity(r)
			if err != nil {
				log.Err(err).Str("path", r.URL.Path).Msg("no valid session")
				http.Error(w, message, http.StatusUnauthorized)
				return
			}

			// Store the caller's identity in the context so that
			// downstream handlers can retrieve it without re-parsing
			// the token.
			ctx := context.WithValue(r.Context(), utils.IdentityCtxKey, identity)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionIdentity extracts the session token from the loginToken cookie and
// validates it, returning the identity embedded in the token.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionCookie] — if the cookie is missing entirely.
//   - [ErrEmptySessionCookie] — if the cookie exists with an empty value.
//   - [service.ErrTokenIsExpiredOrInvalid] — for every token-level failure.
func (h *Handler) sessionIdentity(r *http.Request) (models.Identity, error) {
	cookie, err := r.Cookie(LoginTokenCookie)
	if err != nil {
		return models.Identity{}, ErrNoSessionCookie
	}
	if cookie.Value == "" {
		return models.Identity{}, ErrEmptySessionCookie
	}

	return h.services.AuthService.ValidateToken(r.Context(), cookie.Value)
}
