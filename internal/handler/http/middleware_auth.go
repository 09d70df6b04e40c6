package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and, on success, stores the token subject
// in the request context under [utils.UsernameCtxKey].
//
// Requests are rejected with 401 Unauthorized and a "WWW-Authenticate: Bearer"
// header when:
//   - the header is absent or is not "Bearer <token>" ("Not authenticated");
//   - the token has expired ("Token has expired");
//   - the token is otherwise invalid ("Invalid token").
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("no bearer token in request")
			writeError(w, fmt.Errorf("%w: %w", ErrNotAuthenticated, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
