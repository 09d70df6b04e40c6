// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the empanada REST API.
//
// [ServerAdapter] hides the transport from callers such as cmd/client. Errors
// returned by the server are mapped by mapHTTPError to the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-empanadas/models"
)

// ServerAdapter is a client of the empanada server. Implementations keep the
// bearer token obtained by Login and attach it to mutating requests.
type ServerAdapter interface {
	// SetToken stores the bearer token used by subsequent authenticated
	// requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login exchanges credentials for a token via POST /token and stores it.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// List fetches GET /empanadas with the given filter.
	List(ctx context.Context, filter models.EmpanadaFilter) ([]models.Empanada, error)

	// Create posts a new item. Requires a token.
	Create(ctx context.Context, name string, quantity int64) (models.Empanada, error)

	// Update sends the present fields of update. Requires a token.
	Update(ctx context.Context, id int64, update models.UpdateEmpanada) (models.Empanada, error)

	// Delete removes an item. Requires a token.
	Delete(ctx context.Context, id int64) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
