package http

import (
	"net/http"

	"github.com/MKhiriev/go-empanadas/internal/utils"
	"github.com/MKhiriev/go-empanadas/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
