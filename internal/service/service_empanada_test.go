// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/internal/mock"
	"github.com/MKhiriev/go-empanadas/internal/store"
	"github.com/MKhiriev/go-empanadas/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEmpanadaService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockEmpanadaRepository(ctrl)

	filter := models.EmpanadaFilter{Name: models.Some("carne")}
	want := []models.Empanada{{ID: 1, Name: "carne", Quantity: 10}}
	repo.EXPECT().List(gomock.Any(), filter).Return(want, nil)

	got, err := NewEmpanadaService(repo, logger.Nop()).List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEmpanadaService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockEmpanadaRepository(ctrl)

	repoErr := errors.New("boom")
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, repoErr)

	_, err := NewEmpanadaService(repo, logger.Nop()).List(context.Background(), models.EmpanadaFilter{})
	require.ErrorIs(t, err, repoErr)
}

func TestEmpanadaService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockEmpanadaRepository(ctrl)

	want := models.Empanada{ID: 4, Name: "jamon y queso", Quantity: 8}
	repo.EXPECT().Create(gomock.Any(), "jamon y queso", int64(8)).Return(want, nil)

	got, err := NewEmpanadaService(repo, logger.Nop()).Create(context.Background(), models.CreateEmpanada{
		Name:     models.Some("jamon y queso"),
		Quantity: models.Some(int64(8)),
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEmpanadaService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockEmpanadaRepository(ctrl)

	update := models.UpdateEmpanada{Quantity: models.Some(int64(3))}
	repo.EXPECT().Update(gomock.Any(), int64(999), update).Return(models.Empanada{}, store.ErrEmpanadaNotFound)

	_, err := NewEmpanadaService(repo, logger.Nop()).Update(context.Background(), 999, update)
	require.ErrorIs(t, err, store.ErrEmpanadaNotFound)
}

func TestEmpanadaService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockEmpanadaRepository(ctrl)

	gomock.InOrder(
		repo.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil),
		repo.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil),
	)

	svc := NewEmpanadaService(repo, logger.Nop())
	require.NoError(t, svc.Delete(context.Background(), 2))
	require.NoError(t, svc.Delete(context.Background(), 2))
}

func TestEmpanadaValidationService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        models.CreateEmpanada
		wantCalled bool
	}{
		{
			name:       "complete request",
			req:        models.CreateEmpanada{Name: models.Some("humita"), Quantity: models.Some(int64(0))},
			wantCalled: true,
		},
		{
			name: "missing quantity",
			req:  models.CreateEmpanada{Name: models.Some("humita")},
		},
		{
			name: "missing name",
			req:  models.CreateEmpanada{Quantity: models.Some(int64(1))},
		},
		{
			name: "empty body",
			req:  models.CreateEmpanada{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockEmpanadaService(ctrl)
			if tt.wantCalled {
				inner.EXPECT().Create(gomock.Any(), tt.req).Return(models.Empanada{ID: 1}, nil)
			}

			svc := NewEmpanadaValidationService().Wrap(inner)

			_, err := svc.Create(context.Background(), tt.req)
			if tt.wantCalled {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestEmpanadaValidationService_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockEmpanadaService(ctrl)

	update := models.UpdateEmpanada{}
	inner.EXPECT().List(gomock.Any(), models.EmpanadaFilter{}).Return([]models.Empanada{}, nil)
	inner.EXPECT().Update(gomock.Any(), int64(1), update).Return(models.Empanada{ID: 1}, nil)
	inner.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	svc := NewEmpanadaValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.List(ctx, models.EmpanadaFilter{})
	require.NoError(t, err)
	_, err = svc.Update(ctx, 1, update)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 1))
}

func TestNewServices_EndToEnd(t *testing.T) {
	repo := store.NewMemoryEmpanadaRepository(store.SeedEmpanadas(), logger.Nop())
	ctx := context.Background()

	svc := NewEmpanadaValidationService().Wrap(NewEmpanadaService(repo, logger.Nop()))

	created, err := svc.Create(ctx, models.CreateEmpanada{Name: models.Some("humita"), Quantity: models.Some(int64(7))})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)

	updated, err := svc.Update(ctx, created.ID, models.UpdateEmpanada{Quantity: models.Some(int64(2))})
	require.NoError(t, err)
	assert.Equal(t, models.Empanada{ID: 4, Name: "humita", Quantity: 2}, updated)

	require.NoError(t, svc.Delete(ctx, created.ID))

	all, err := svc.List(ctx, models.EmpanadaFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
