// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates missing or invalid token or credential
	// settings (for example, an empty token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidClientConfigs is returned by [GetClientConfig].
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
