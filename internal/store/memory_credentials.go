// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"maps"

	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/models"
)

// memoryCredentialStore is fixed at construction and never mutated, so it
// needs no locking.
type memoryCredentialStore struct {
	users map[string]string
}

// NewMemoryCredentialStore returns a [CredentialStore] over a copy of users
// (username to plain-text password).
func NewMemoryCredentialStore(users map[string]string, logger *logger.Logger) CredentialStore {
	logger.Debug().Int("users", len(users)).Msg("creating in-memory credential store")
	return &memoryCredentialStore{users: maps.Clone(users)}
}

func (s *memoryCredentialStore) FindByUsername(ctx context.Context, username string) (models.Credentials, error) {
	password, ok := s.users[username]
	if !ok {
		return models.Credentials{}, ErrUserNotFound
	}

	return models.Credentials{Username: username, Password: password}, nil
}
