// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT together with its compact serialized form.
//
// It embeds [jwt.RegisteredClaims] so that it can be handed directly to
// [jwt.ParseWithClaims]; after a successful parse, Subject and ExpiresAt hold
// the verified claims.
type Token struct {
	// Token is the underlying parsed or freshly built JWT.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation (header.payload.signature).
	SignedString string `json:"-"`
}

// Username returns the "sub" claim.
func (t *Token) Username() string {
	return t.Subject
}

// Expiry returns the "exp" claim, or the zero time when it is missing.
func (t *Token) Expiry() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
