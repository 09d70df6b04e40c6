// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-empanadas/internal/validators"
	"github.com/MKhiriev/go-empanadas/models"
)

// EmpanadaValidationService rejects malformed requests with
// ErrInvalidDataProvided before they reach the wrapped service.
type EmpanadaValidationService struct {
	inner     EmpanadaService
	validator validators.Validator
}

func NewEmpanadaValidationService() EmpanadaServiceWrapper {
	return &EmpanadaValidationService{
		validator: validators.NewEmpanadaValidator(),
	}
}

func (v *EmpanadaValidationService) List(ctx context.Context, filter models.EmpanadaFilter) ([]models.Empanada, error) {
	return v.inner.List(ctx, filter)
}

func (v *EmpanadaValidationService) Create(ctx context.Context, req models.CreateEmpanada) (models.Empanada, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Empanada{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, req)
}

func (v *EmpanadaValidationService) Update(ctx context.Context, id int64, req models.UpdateEmpanada) (models.Empanada, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Empanada{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, req)
}

func (v *EmpanadaValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *EmpanadaValidationService) Wrap(inner EmpanadaService) EmpanadaService {
	v.inner = inner
	return v
}
