// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by store implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmpanadaNotFound is returned when an update targets an id that is
	// not in the store.
	ErrEmpanadaNotFound = errors.New("empanada not found")

	// ErrUserNotFound is returned when no credentials exist for a username.
	ErrUserNotFound = errors.New("no user was found")
)
