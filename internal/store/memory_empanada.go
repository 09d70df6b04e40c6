// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/models"
)

// memoryEmpanadaRepository keeps empanadas in a slice ordered by insertion.
//
// All access goes through mu. Id assignment and append happen under the same
// write lock, so concurrent creates never produce duplicate ids.
type memoryEmpanadaRepository struct {
	mu        sync.RWMutex
	empanadas []models.Empanada

	logger *logger.Logger
}

// NewMemoryEmpanadaRepository returns an [EmpanadaRepository] holding a copy
// of seed.
func NewMemoryEmpanadaRepository(seed []models.Empanada, logger *logger.Logger) EmpanadaRepository {
	logger.Debug().Int("seed", len(seed)).Msg("creating in-memory empanada repository")
	return &memoryEmpanadaRepository{
		empanadas: slices.Clone(seed),
		logger:    logger,
	}
}

func (r *memoryEmpanadaRepository) List(ctx context.Context, filter models.EmpanadaFilter) ([]models.Empanada, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id, ok := filter.ID.Get(); ok {
		return r.filter(func(e models.Empanada) bool { return e.ID == id }), nil
	}

	if name, ok := filter.Name.Get(); ok && name != "" {
		return r.filter(func(e models.Empanada) bool { return e.Name == name }), nil
	}

	return r.filter(func(models.Empanada) bool { return true }), nil
}

// filter must be called with mu held. It always returns a non-nil slice so
// that an empty result is encoded as [] rather than null.
func (r *memoryEmpanadaRepository) filter(match func(models.Empanada) bool) []models.Empanada {
	result := make([]models.Empanada, 0, len(r.empanadas))
	for _, e := range r.empanadas {
		if match(e) {
			result = append(result, e)
		}
	}
	return result
}

func (r *memoryEmpanadaRepository) Create(ctx context.Context, name string, quantity int64) (models.Empanada, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for _, e := range r.empanadas {
		maxID = max(maxID, e.ID)
	}

	created := models.Empanada{ID: maxID + 1, Name: name, Quantity: quantity}
	r.empanadas = append(r.empanadas, created)

	log.Debug().Int64("id", created.ID).Int("size", len(r.empanadas)).Msg("empanada stored")
	return created, nil
}

func (r *memoryEmpanadaRepository) Update(ctx context.Context, id int64, update models.UpdateEmpanada) (models.Empanada, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.empanadas {
		if r.empanadas[i].ID == id {
			update.Apply(&r.empanadas[i])
			return r.empanadas[i], nil
		}
	}

	return models.Empanada{}, ErrEmpanadaNotFound
}

func (r *memoryEmpanadaRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.empanadas)
	r.empanadas = slices.DeleteFunc(r.empanadas, func(e models.Empanada) bool {
		return e.ID == id
	})

	log.Debug().Int64("id", id).Int("removed", before-len(r.empanadas)).Msg("empanadas deleted")
	return nil
}
