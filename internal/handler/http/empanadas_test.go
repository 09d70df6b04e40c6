// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-empanadas/internal/service"
	"github.com/MKhiriev/go-empanadas/internal/store"
	"github.com/MKhiriev/go-empanadas/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var seeded = []models.Empanada{
	{ID: 1, Name: "carne", Quantity: 10},
	{ID: 2, Name: "pollo", Quantity: 15},
	{ID: 3, Name: "vegetariana", Quantity: 5},
}

// authorize makes the next ParseToken call succeed and returns the header
// pair to send with the request.
func (th *testHandler) authorize(t *testing.T) []string {
	t.Helper()
	th.authSvc.EXPECT().ParseToken(gomock.Any(), "valid").Return(issueToken(t, "user"), nil)
	return []string{"Authorization", "Bearer valid"}
}

func TestListEmpanadas_Filters(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantFilter models.EmpanadaFilter
	}{
		{
			name:   "no filter",
			target: "/empanadas",
		},
		{
			name:       "by id",
			target:     "/empanadas?id=2",
			wantFilter: models.EmpanadaFilter{ID: models.Some(int64(2))},
		},
		{
			name:       "by name",
			target:     "/empanadas?name=carne",
			wantFilter: models.EmpanadaFilter{Name: models.Some("carne")},
		},
		{
			name:       "id and name",
			target:     "/empanadas?id=1&name=pollo",
			wantFilter: models.EmpanadaFilter{ID: models.Some(int64(1)), Name: models.Some("pollo")},
		},
		{
			name:   "empty name means no filter",
			target: "/empanadas?name=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newMockedHandler(t)
			th.empanadaSvc.EXPECT().List(gomock.Any(), tt.wantFilter).Return(seeded, nil)

			rr := th.serve(http.MethodGet, tt.target, "")

			require.Equal(t, http.StatusOK, rr.Code)
			var got []models.Empanada
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, seeded, got)
		})
	}
}

func TestListEmpanadas_EmptyResultIsArray(t *testing.T) {
	th := newMockedHandler(t)
	th.empanadaSvc.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.Empanada{}, nil)

	rr := th.serve(http.MethodGet, "/empanadas?id=999", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListEmpanadas_InvalidID(t *testing.T) {
	for _, target := range []string{"/empanadas?id=abc", "/empanadas?id=", "/empanadas?id=1.5"} {
		t.Run(target, func(t *testing.T) {
			th := newMockedHandler(t)

			rr := th.serve(http.MethodGet, target, "")

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			assert.Contains(t, decodeDetail(t, rr), "id must be an integer")
		})
	}
}

func TestListEmpanadas_NoAuthRequired(t *testing.T) {
	th := newMockedHandler(t)
	th.empanadaSvc.EXPECT().List(gomock.Any(), gomock.Any()).Return(seeded, nil)

	rr := th.serve(http.MethodGet, "/empanadas", "", "Authorization", "Bearer garbage")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateEmpanada(t *testing.T) {
	th := newMockedHandler(t)
	auth := th.authorize(t)

	want := models.CreateEmpanada{Name: models.Some("humita"), Quantity: models.Some(int64(7))}
	created := models.Empanada{ID: 4, Name: "humita", Quantity: 7}
	th.empanadaSvc.EXPECT().Create(gomock.Any(), want).Return(created, nil)

	rr := th.serve(http.MethodPost, "/empanadas", `{"name":"humita","quantity":7}`, auth...)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":4,"name":"humita","quantity":7}`, rr.Body.String())
}

func TestCreateEmpanada_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "missing quantity",
			body:       `{"name":"humita"}`,
			serviceErr: fmt.Errorf("%w: field required: quantity", service.ErrInvalidDataProvided),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "quantity not an integer",
			body:       `{"name":"humita","quantity":"many"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "malformed request body: quantity: must be an integer",
		},
		{
			name:       "body is not JSON",
			body:       `name=humita`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "malformed request body: body is not valid JSON",
		},
		{
			name:       "body is not an object",
			body:       `[1,2]`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "malformed request body: body must be a JSON object",
		},
		{
			name:       "trailing garbage",
			body:       `{"name":"x","quantity":3} trailing`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "malformed request body: unexpected data after JSON value",
		},
		{
			name:       "second JSON value",
			body:       `{"quantity":1}{"name":"z"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "malformed request body: unexpected data after JSON value",
		},
		{
			name:       "internal error",
			body:       `{"name":"humita","quantity":1}`,
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newMockedHandler(t)
			auth := th.authorize(t)
			if tt.serviceErr != nil {
				th.empanadaSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Empanada{}, tt.serviceErr)
			}

			rr := th.serve(http.MethodPost, "/empanadas", tt.body, auth...)

			assert.Equal(t, tt.wantStatus, rr.Code)
			detail := decodeDetail(t, rr)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, detail)
			} else {
				assert.NotEmpty(t, detail)
			}
		})
	}
}

func TestCreateEmpanada_TrailingWhitespaceIsAccepted(t *testing.T) {
	th := newMockedHandler(t)
	auth := th.authorize(t)

	th.empanadaSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Empanada{ID: 4, Name: "x", Quantity: 3}, nil)

	rr := th.serve(http.MethodPost, "/empanadas", "{\"name\":\"x\",\"quantity\":3}\n\t ", auth...)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestCreateEmpanada_Unauthenticated(t *testing.T) {
	th := newMockedHandler(t)

	rr := th.serve(http.MethodPost, "/empanadas", `{"name":"humita","quantity":7}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Not authenticated", decodeDetail(t, rr))
}

func TestUpdateEmpanada(t *testing.T) {
	th := newMockedHandler(t)
	auth := th.authorize(t)

	want := models.UpdateEmpanada{Quantity: models.Some(int64(12))}
	th.empanadaSvc.EXPECT().Update(gomock.Any(), int64(1), want).
		Return(models.Empanada{ID: 1, Name: "carne", Quantity: 12}, nil)

	rr := th.serve(http.MethodPut, "/empanadas/1", `{"quantity":12}`, auth...)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"carne","quantity":12}`, rr.Body.String())
}

func TestUpdateEmpanada_NullFieldIsAbsent(t *testing.T) {
	th := newMockedHandler(t)
	auth := th.authorize(t)

	want := models.UpdateEmpanada{Name: models.Some("criolla")}
	th.empanadaSvc.EXPECT().Update(gomock.Any(), int64(2), want).
		Return(models.Empanada{ID: 2, Name: "criolla", Quantity: 15}, nil)

	rr := th.serve(http.MethodPut, "/empanadas/2", `{"name":"criolla","quantity":null}`, auth...)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdateEmpanada_NotFound(t *testing.T) {
	th := newMockedHandler(t)
	auth := th.authorize(t)

	th.empanadaSvc.EXPECT().Update(gomock.Any(), int64(999), gomock.Any()).
		Return(models.Empanada{}, fmt.Errorf("error updating empanada 999: %w", store.ErrEmpanadaNotFound))

	rr := th.serve(http.MethodPut, "/empanadas/999", `{"quantity":1}`, auth...)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Empanada not found", decodeDetail(t, rr))
}

func TestUpdateEmpanada_InvalidID(t *testing.T) {
	th := newMockedHandler(t)
	auth := th.authorize(t)

	rr := th.serve(http.MethodPut, "/empanadas/abc", `{"quantity":1}`, auth...)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestUpdateEmpanada_MalformedBody(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{name: "empty body", body: "", wantDetail: "malformed request body: body is empty"},
		{name: "trailing garbage", body: `{"quantity":3} trailing`, wantDetail: "malformed request body: unexpected data after JSON value"},
		{name: "second JSON value", body: `{"quantity":1}{"name":"z"}`, wantDetail: "malformed request body: unexpected data after JSON value"},
		{name: "name not a string", body: `{"name":5}`, wantDetail: "malformed request body: name: must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newMockedHandler(t)
			auth := th.authorize(t)

			rr := th.serve(http.MethodPut, "/empanadas/1", tt.body, auth...)

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rr))
		})
	}
}

func TestDeleteEmpanada(t *testing.T) {
	for _, id := range []int64{2, 999} {
		t.Run(fmt.Sprint(id), func(t *testing.T) {
			th := newMockedHandler(t)
			auth := th.authorize(t)
			th.empanadaSvc.EXPECT().Delete(gomock.Any(), id).Return(nil)

			rr := th.serve(http.MethodDelete, fmt.Sprintf("/empanadas/%d", id), "", auth...)

			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
}

func TestDeleteEmpanada_ExpiredToken(t *testing.T) {
	th := newMockedHandler(t)
	th.authSvc.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, service.ErrTokenIsExpired)

	rr := th.serve(http.MethodDelete, "/empanadas/1", "", "Authorization", "Bearer old")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Token has expired", decodeDetail(t, rr))
}
