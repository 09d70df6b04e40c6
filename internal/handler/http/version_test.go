package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	th := newMockedHandler(t)
	th.appInfoSvc.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := th.serve(http.MethodGet, "/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rr.Body.String())
}

func TestGetServerVersion_PostNotAllowed(t *testing.T) {
	th := newMockedHandler(t)

	rr := th.serve(http.MethodPost, "/version", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
