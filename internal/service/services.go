// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic between the HTTP layer and the
// in-memory stores: token issuing and verification, and the empanada
// inventory operations.
package service

import (
	"github.com/MKhiriev/go-empanadas/internal/config"
	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/internal/store"
)

type Services struct {
	AuthService     AuthService
	EmpanadaService EmpanadaService
	AppInfoService  AppInfoService
}

// NewServices wires the services over storages. The empanada service is
// wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, appVersion string, logger *logger.Logger) *Services {
	logger.Info().Msg("creating services...")

	empanadaService := NewEmpanadaValidationService().
		Wrap(NewEmpanadaService(storages.EmpanadaRepository, logger))

	return &Services{
		AuthService:     NewAuthService(storages.CredentialStore, cfg.App, logger),
		EmpanadaService: empanadaService,
		AppInfoService:  NewAppInfoService(appVersion, logger),
	}
}
