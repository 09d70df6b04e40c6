// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared across the
// application: typed context keys, JSON response writing, the resty-based HTTP
// client, JWT generation and validation, and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key under which the auth middleware stores the
// authenticated username.
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "user")
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from ctx.
// ok is false when the value is missing or is not a non-empty string.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}
