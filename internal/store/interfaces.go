// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-empanadas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EmpanadaRepository is an ordered collection of empanadas.
// Implementations must keep ids unique and return copies, never references
// to internal state.
type EmpanadaRepository interface {
	// List returns the items matching filter in insertion order. An id filter
	// takes precedence over a name filter; with no filter all items are
	// returned.
	List(ctx context.Context, filter models.EmpanadaFilter) ([]models.Empanada, error)

	// Create appends a new item whose id is the maximum existing id plus one,
	// or 1 if the collection is empty.
	Create(ctx context.Context, name string, quantity int64) (models.Empanada, error)

	// Update applies the present fields of update to the item with id and
	// returns the result, or [ErrEmpanadaNotFound].
	Update(ctx context.Context, id int64, update models.UpdateEmpanada) (models.Empanada, error)

	// Delete removes every item with id. Deleting an unknown id is not an
	// error.
	Delete(ctx context.Context, id int64) error
}

// CredentialStore is a read-only mapping of usernames to passwords.
type CredentialStore interface {
	// FindByUsername returns the stored credentials or [ErrUserNotFound].
	FindByUsername(ctx context.Context, username string) (models.Credentials, error)
}
