// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-empanadas/internal/app"
)

// routeMethods are the methods probed when building the Allow header.
var routeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// The path is matched against every route of router, parameterised patterns
// included. If some methods are registered for it the response is
// 405 Method Not Allowed with an Allow header listing them; otherwise it is
// 404 Not Found. Both bodies follow the {"detail": ...} error format.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range routeMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			notFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeDetail(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusNotFound, app.MsgNotFound)
}
