// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-empanadas/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by GenerateJWTToken when a required
// parameter is empty or zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token carries the following claims:
//   - Subject   (sub): the username the token is issued for
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//
// subject, tokenDuration and signKey are required. A negative tokenDuration
// is accepted and yields an already expired token.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("user", time.Now(), time.Hour, "secret")
func GenerateJWTToken(subject string, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if subject == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature and the expiry of
// tokenString and returns its claims.
//
// Only HS256 is accepted and the "exp" claim is mandatory. The returned error
// wraps the jwt sentinel errors, so callers can tell an expired token
// ([jwt.ErrTokenExpired]) apart from any other failure. Extra parser options
// (e.g. [jwt.WithTimeFunc]) are appended after the defaults.
func ValidateAndParseJWTToken(tokenString, signKey string, opts ...jwt.ParserOption) (models.Token, error) {
	parsed := models.Token{SignedString: tokenString}

	options := append([]jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}, opts...)

	token, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, options...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if parsed.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	parsed.Token = token
	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
