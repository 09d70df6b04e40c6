// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-empanadas/internal/config"
	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/internal/store"
	"github.com/MKhiriev/go-empanadas/internal/utils"
	"github.com/MKhiriev/go-empanadas/internal/validators"
	"github.com/MKhiriev/go-empanadas/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// Tokens are stateless: validity depends only on the signature and the
// embedded expiry, so nothing is recorded on issue.
type authService struct {
	credentialStore store.CredentialStore
	validator       validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuing and verifying tokens.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over credentialStore using the
// token settings of cfg. All state is read-only after construction.
func NewAuthService(credentialStore store.CredentialStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		credentialStore: credentialStore,
		validator:       validators.NewEmpanadaValidator(),
		tokenSignKey:    cfg.TokenSignKey,
		tokenDuration:   cfg.TokenDuration,
		now:             time.Now,
		logger:          logger,
	}
}

// Login authenticates req and issues a token for it.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is absent.
//   - ErrInvalidCredentials if the user is unknown or the password differs.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid login request")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	credentials := req.Credentials()

	found, err := a.credentialStore.FindByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("username", credentials.Username).Msg("unknown user")
			return models.Token{}, ErrInvalidCredentials
		}
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(found.Password), []byte(credentials.Password)) != 1 {
		log.Warn().Str("username", credentials.Username).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(found.Username, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Debug().Str("username", found.Username).Time("expires_at", token.Expiry()).Msg("token issued")
	return token, nil
}

// ParseToken validates tokenString. An expired token yields
// ErrTokenIsExpired; a bad signature, a foreign algorithm or a malformed
// token yields ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, jwt.WithTimeFunc(a.now))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")

		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
