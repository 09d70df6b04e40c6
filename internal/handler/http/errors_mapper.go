package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-empanadas/internal/app"
	"github.com/MKhiriev/go-empanadas/internal/service"
	"github.com/MKhiriev/go-empanadas/internal/store"
	"github.com/MKhiriev/go-empanadas/internal/utils"
	"github.com/MKhiriev/go-empanadas/models"
)

// errorMapping binds a sentinel to its response. An empty detail means the
// detail is derived from the error itself.
type errorMapping struct {
	target error
	status int
	detail string
}

// errorMappings is checked in order and the first match wins, so an error
// wrapping several sentinels always gets the same response. Authentication
// comes first, then input validation, then lookups.
var errorMappings = []errorMapping{
	{target: ErrNotAuthenticated, status: http.StatusUnauthorized, detail: app.MsgNotAuthenticated},
	{target: service.ErrTokenIsExpired, status: http.StatusUnauthorized, detail: app.MsgTokenIsExpired},
	{target: service.ErrTokenIsInvalid, status: http.StatusUnauthorized, detail: app.MsgTokenIsInvalid},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, detail: app.MsgInvalidCredentials},

	{target: ErrMalformedBody, status: http.StatusUnprocessableEntity},
	{target: ErrInvalidParam, status: http.StatusUnprocessableEntity},
	{target: service.ErrInvalidDataProvided, status: http.StatusUnprocessableEntity},

	{target: store.ErrEmpanadaNotFound, status: http.StatusNotFound, detail: app.MsgEmpanadaNotFound},
}

func lookupError(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m, true
		}
	}
	return errorMapping{}, false
}

func statusFromError(err error) int {
	if m, ok := lookupError(err); ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// detailFromError returns the "detail" message for err. Unmapped client
// errors expose the error text; server errors never do.
func detailFromError(err error, status int) string {
	if m, ok := lookupError(err); ok && m.detail != "" {
		return m.detail
	}
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError responds with the status and detail mapped from err.
// Unauthorized responses carry a bearer challenge.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeDetail(w, status, detailFromError(err, status))
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}
