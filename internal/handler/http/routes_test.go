package http

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_RegistersAllRoutes(t *testing.T) {
	th := newMockedHandler(t)
	router := th.Init()

	want := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/version"},
		{http.MethodPost, "/token"},
		{http.MethodGet, "/empanadas"},
		{http.MethodPost, "/empanadas"},
		{http.MethodPut, "/empanadas/1"},
		{http.MethodDelete, "/empanadas/1"},
	}

	for _, route := range want {
		assert.True(t, router.Match(chi.NewRouteContext(), route.method, route.path),
			"%s %s should be registered", route.method, route.path)
	}
}

func TestInit_Health(t *testing.T) {
	th := newMockedHandler(t)

	rr := th.serve(http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/empanadas", `{"name":"x","quantity":1}`},
		{http.MethodPut, "/empanadas/1", `{"quantity":1}`},
		{http.MethodDelete, "/empanadas/1", ""},
		{http.MethodPut, "/empanadas/abc", `{"quantity":1}`},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			th := newMockedHandler(t)

			rr := th.serve(route.method, route.path, route.body)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	th := newMockedHandler(t)
	th.empanadaSvc.EXPECT().List(gomock.Any(), gomock.Any()).Return(seeded, nil)

	for _, rr := range []interface{ Header() http.Header }{
		th.serve(http.MethodGet, "/empanadas", ""),
		th.serve(http.MethodGet, "/unknown", ""),
		th.serve(http.MethodDelete, "/empanadas/1", ""),
	} {
		assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
	}
}

func TestInit_RecoversFromPanics(t *testing.T) {
	th := newMockedHandler(t)
	th.empanadaSvc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(any, any) (any, error) {
		panic("unexpected")
	})

	rr := th.serve(http.MethodGet, "/empanadas", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
