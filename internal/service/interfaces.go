// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-empanadas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=EmpanadaServiceWrapper

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	// Login checks req against the credential store and issues a token for
	// the user. Returns ErrInvalidCredentials on mismatch.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// ParseToken verifies the signature and expiry of tokenString.
	// Returns ErrTokenIsExpired or ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EmpanadaService exposes the inventory operations.
type EmpanadaService interface {
	List(ctx context.Context, filter models.EmpanadaFilter) ([]models.Empanada, error)
	Create(ctx context.Context, req models.CreateEmpanada) (models.Empanada, error)
	Update(ctx context.Context, id int64, req models.UpdateEmpanada) (models.Empanada, error)
	Delete(ctx context.Context, id int64) error
}

// AppInfoService reports build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EmpanadaServiceWrapper decorates an EmpanadaService with additional
// behavior such as validation.
type EmpanadaServiceWrapper interface {
	Wrap(EmpanadaService) EmpanadaService
}
