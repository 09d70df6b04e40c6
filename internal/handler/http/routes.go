package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
		r.Post("/token", h.login)
		r.Get("/empanadas", h.listEmpanadas)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/empanadas", h.createEmpanada)
		r.Put("/empanadas/{id}", h.updateEmpanada)
		r.Delete("/empanadas/{id}", h.deleteEmpanada)
	})

	return router
}
