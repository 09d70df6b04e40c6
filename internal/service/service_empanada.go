// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/internal/store"
	"github.com/MKhiriev/go-empanadas/models"
)

type empanadaService struct {
	empanadaRepository store.EmpanadaRepository

	logger *logger.Logger
}

// NewEmpanadaService returns an EmpanadaService over repository. It expects
// already validated requests; see NewEmpanadaValidationService.
func NewEmpanadaService(repository store.EmpanadaRepository, logger *logger.Logger) EmpanadaService {
	return &empanadaService{
		empanadaRepository: repository,
		logger:             logger,
	}
}

func (s *empanadaService) List(ctx context.Context, filter models.EmpanadaFilter) ([]models.Empanada, error) {
	empanadas, err := s.empanadaRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing empanadas: %w", err)
	}

	return empanadas, nil
}

func (s *empanadaService) Create(ctx context.Context, req models.CreateEmpanada) (models.Empanada, error) {
	name, _ := req.Name.Get()
	quantity, _ := req.Quantity.Get()

	created, err := s.empanadaRepository.Create(ctx, name, quantity)
	if err != nil {
		return models.Empanada{}, fmt.Errorf("error creating empanada: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", created.ID).Str("name", created.Name).Msg("empanada created")
	return created, nil
}

func (s *empanadaService) Update(ctx context.Context, id int64, req models.UpdateEmpanada) (models.Empanada, error) {
	updated, err := s.empanadaRepository.Update(ctx, id, req)
	if err != nil {
		return models.Empanada{}, fmt.Errorf("error updating empanada %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("empanada updated")
	return updated, nil
}

func (s *empanadaService) Delete(ctx context.Context, id int64) error {
	if err := s.empanadaRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting empanada %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("empanada deleted")
	return nil
}
