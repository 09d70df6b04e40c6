// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged config can start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if len(cfg.App.Users) == 0 {
		return fmt.Errorf("%w: at least one user is required", ErrInvalidAppConfigs)
	}

	for username := range cfg.App.Users {
		if username == "" {
			return fmt.Errorf("%w: empty username", ErrInvalidAppConfigs)
		}
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}
