// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the process-memory persistence layer: the ordered
// empanada collection and the read-only credential store. Nothing survives a
// restart.
package store

import (
	"github.com/MKhiriev/go-empanadas/internal/config"
	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/models"
)

type Storages struct {
	EmpanadaRepository EmpanadaRepository
	CredentialStore    CredentialStore
}

// NewStorages builds the in-memory stores. The empanada store starts with
// [SeedEmpanadas] unless cfg.Storage.NoSeed is set.
func NewStorages(cfg config.StructuredConfig, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating storages...")

	var seed []models.Empanada
	if !cfg.Storage.NoSeed {
		seed = SeedEmpanadas()
	}

	return &Storages{
		EmpanadaRepository: NewMemoryEmpanadaRepository(seed, logger),
		CredentialStore:    NewMemoryCredentialStore(cfg.App.Users, logger),
	}
}

// SeedEmpanadas returns the initial inventory.
func SeedEmpanadas() []models.Empanada {
	return []models.Empanada{
		{ID: 1, Name: "carne", Quantity: 10},
		{ID: 2, Name: "pollo", Quantity: 15},
		{ID: 3, Name: "vegetariana", Quantity: 5},
	}
}
