package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. The entry level
// follows the response status: error for 5xx, warn for 4xx, info otherwise.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.Status()

		log.WithLevel(levelFromStatus(status)).
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

func levelFromStatus(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
