package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-empanadas/internal/config"
	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/internal/mock"
	"github.com/MKhiriev/go-empanadas/internal/service"
	"github.com/MKhiriev/go-empanadas/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testHandler bundles a Handler with the mocks behind it.
type testHandler struct {
	*Handler

	authSvc     *mock.MockAuthService
	empanadaSvc *mock.MockEmpanadaService
	appInfoSvc  *mock.MockAppInfoService
}

func newMockedHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		authSvc:     mock.NewMockAuthService(ctrl),
		empanadaSvc: mock.NewMockEmpanadaService(ctrl),
		appInfoSvc:  mock.NewMockAppInfoService(ctrl),
	}
	th.Handler = NewHandler(&service.Services{
		AuthService:     th.authSvc,
		EmpanadaService: th.empanadaSvc,
		AppInfoService:  th.appInfoSvc,
	}, config.Server{RequestTimeout: time.Second}, logger.Nop())

	return th
}

// serve runs a request through the full router.
func (th *testHandler) serve(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	th.Init().ServeHTTP(rr, req)
	return rr
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Detail
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	services := &service.Services{}
	log := logger.Nop()

	h := NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.NotNil(t, h.traceIDGenerator)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
