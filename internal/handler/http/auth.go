package http

import (
	"net/http"

	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/internal/utils"
	"github.com/MKhiriev/go-empanadas/models"
)

// login handles POST /token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("username", token.Username()).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.String(),
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}
